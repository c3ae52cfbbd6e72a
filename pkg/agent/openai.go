package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/oikos-sh/brigade/pkg/config"
	"github.com/oikos-sh/brigade/pkg/models"
)

// OpenAIClient is an LLMClient over any OpenAI-compatible chat completion
// endpoint (OpenAI itself, or a proxy configured via base URL).
type OpenAIClient struct {
	client     *openai.Client
	maxRetries int
	retryDelay time.Duration
}

// NewOpenAIClient builds the client from LLM config. BaseURL is optional.
func NewOpenAIClient(cfg *config.LLMConfig) (*OpenAIClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("LLM API key not configured")
	}
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	return &OpenAIClient{
		client:     openai.NewClientWithConfig(clientCfg),
		maxRetries: 3,
		retryDelay: time.Second,
	}, nil
}

// Complete runs one non-streaming chat completion with linear-backoff
// retries on transient failures.
func (c *OpenAIClient) Complete(ctx context.Context, model string, messages []Message, tools []ToolDef) (*Completion, error) {
	req := openai.ChatCompletionRequest{
		Model:    model,
		Messages: convertMessages(messages),
	}
	if len(tools) > 0 {
		req.Tools = convertTools(tools)
	}

	var resp openai.ChatCompletionResponse
	var lastErr error
	for attempt := 0; attempt < c.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retryDelay * time.Duration(attempt)):
			}
		}

		resp, lastErr = c.client.CreateChatCompletion(ctx, req)
		if lastErr == nil {
			break
		}
		if !isRetryable(lastErr) {
			return nil, fmt.Errorf("chat completion failed: %w", lastErr)
		}
	}
	if lastErr != nil {
		return nil, fmt.Errorf("chat completion failed after %d attempts: %w", c.maxRetries, lastErr)
	}

	if len(resp.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}
	msg := resp.Choices[0].Message

	completion := &Completion{Content: msg.Content}
	for _, tc := range msg.ToolCalls {
		completion.ToolCalls = append(completion.ToolCalls, models.ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return completion, nil
}

func convertMessages(messages []Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		m := openai.ChatCompletionMessage{
			Role:    msg.Role,
			Content: msg.Content,
		}
		if msg.Role == RoleAssistant && len(msg.ToolCalls) > 0 {
			m.ToolCalls = make([]openai.ToolCall, len(msg.ToolCalls))
			for i, tc := range msg.ToolCalls {
				m.ToolCalls[i] = openai.ToolCall{
					ID:   tc.ID,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      tc.Name,
						Arguments: tc.Arguments,
					},
				}
			}
		}
		if msg.Role == RoleTool {
			m.ToolCallID = msg.ToolCallID
			m.Name = msg.Name
		}
		out = append(out, m)
	}
	return out
}

func convertTools(tools []ToolDef) []openai.Tool {
	out := make([]openai.Tool, len(tools))
	for i, t := range tools {
		params := t.Parameters
		if params == nil {
			params = map[string]interface{}{
				"type":       "object",
				"properties": map[string]interface{}{},
			}
		}
		out[i] = openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  params,
			},
		}
	}
	return out
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, marker := range []string{"rate limit", "429", "500", "502", "503", "504", "timeout", "deadline exceeded"} {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}
