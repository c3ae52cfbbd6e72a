package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// httpBodyLimit caps fetched response bodies so a tool call cannot flood the
// conversation thread.
const httpBodyLimit = 64 * 1024

// CurrentTimeTool reports the current UTC time.
type CurrentTimeTool struct{}

func (t *CurrentTimeTool) Name() string        { return "get_current_time" }
func (t *CurrentTimeTool) Description() string { return "Get the current UTC date and time." }

func (t *CurrentTimeTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func (t *CurrentTimeTool) Execute(_ context.Context, _ *RunContext, _ map[string]interface{}) (string, error) {
	return OKEnvelope(map[string]string{
		"utc": time.Now().UTC().Format(time.RFC3339),
	}), nil
}

// HTTPGetTool fetches a URL over HTTP(S) and returns up to httpBodyLimit
// bytes of the body.
type HTTPGetTool struct {
	client *http.Client
}

// NewHTTPGetTool creates the tool with a bounded-timeout HTTP client.
func NewHTTPGetTool() *HTTPGetTool {
	return &HTTPGetTool{client: &http.Client{Timeout: 30 * time.Second}}
}

func (t *HTTPGetTool) Name() string { return "http_get" }

func (t *HTTPGetTool) Description() string {
	return "Fetch a URL with HTTP GET. Returns status code and the response body (truncated to 64KiB)."
}

func (t *HTTPGetTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"url": map[string]interface{}{
				"type":        "string",
				"description": "Absolute http(s) URL to fetch",
			},
		},
		"required": []string{"url"},
	}
}

func (t *HTTPGetTool) Execute(ctx context.Context, _ *RunContext, args map[string]interface{}) (string, error) {
	raw, _ := args["url"].(string)
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return ErrorEnvelope("invalid_argument", fmt.Sprintf("url must be an absolute http(s) URL, got %q", raw)), nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return ErrorEnvelope("invalid_argument", err.Error()), nil
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return ErrorEnvelope("http_error", err.Error()), nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, httpBodyLimit+1))
	if err != nil {
		return ErrorEnvelope("http_error", err.Error()), nil
	}
	truncated := false
	if len(body) > httpBodyLimit {
		body = body[:httpBodyLimit]
		truncated = true
	}

	return OKEnvelope(map[string]interface{}{
		"status_code": resp.StatusCode,
		"body":        string(body),
		"truncated":   truncated,
	}), nil
}
