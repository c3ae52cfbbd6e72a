package tools

import (
	"context"
	"errors"
	"time"

	"github.com/oikos-sh/brigade/pkg/artifact"
)

// ListCommisTool lists the calling owner's recent commis jobs from the
// artifact index.
type ListCommisTool struct {
	store *artifact.Store
}

func NewListCommisTool(store *artifact.Store) *ListCommisTool {
	return &ListCommisTool{store: store}
}

func (t *ListCommisTool) Name() string { return "list_commis" }

func (t *ListCommisTool) Description() string {
	return "List your recent commis jobs (id, task, status, summary), newest first."
}

func (t *ListCommisTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"limit": map[string]interface{}{
				"type":        "integer",
				"description": "Maximum entries to return (default 10)",
			},
			"status": map[string]interface{}{
				"type":        "string",
				"description": "Filter by status (created, running, success, failed, timeout)",
			},
			"since_hours": map[string]interface{}{
				"type":        "integer",
				"description": "Only commis created within the last N hours",
			},
		},
	}
}

func (t *ListCommisTool) Execute(_ context.Context, rc *RunContext, args map[string]interface{}) (string, error) {
	opts := artifact.ListOptions{Limit: 10, OwnerID: rc.OwnerID}
	if f, ok := args["limit"].(float64); ok && f > 0 {
		opts.Limit = int(f)
	}
	if s, ok := args["status"].(string); ok {
		opts.Status = s
	}
	if h, ok := args["since_hours"].(float64); ok && h > 0 {
		since := time.Now().UTC().Add(-time.Duration(h) * time.Hour)
		opts.Since = &since
	}

	entries := t.store.List(opts)
	out := make([]map[string]interface{}, 0, len(entries))
	for _, e := range entries {
		out = append(out, map[string]interface{}{
			"commis_id":  e.CommisID,
			"task":       e.Task,
			"status":     e.Status,
			"summary":    e.Summary,
			"created_at": e.CreatedAt.Format(time.RFC3339),
		})
	}
	return OKEnvelope(out), nil
}

// GetCommisResultTool reads the canonical result of a finished commis.
type GetCommisResultTool struct {
	store *artifact.Store
}

func NewGetCommisResultTool(store *artifact.Store) *GetCommisResultTool {
	return &GetCommisResultTool{store: store}
}

func (t *GetCommisResultTool) Name() string { return "get_commis_result" }

func (t *GetCommisResultTool) Description() string {
	return "Read the full result text of a finished commis job by commis_id."
}

func (t *GetCommisResultTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"commis_id": map[string]interface{}{"type": "string"},
		},
		"required": []string{"commis_id"},
	}
}

func (t *GetCommisResultTool) Execute(_ context.Context, rc *RunContext, args map[string]interface{}) (string, error) {
	commisID, _ := args["commis_id"].(string)
	if commisID == "" {
		return ErrorEnvelope("invalid_argument", "commis_id is required"), nil
	}
	if _, err := t.store.GetMetadata(commisID, rc.OwnerID); err != nil {
		return artifactError(err), nil
	}
	result, err := t.store.GetResult(commisID)
	if err != nil {
		return artifactError(err), nil
	}
	return OKEnvelope(map[string]string{"commis_id": commisID, "result": result}), nil
}

// SearchCommisTool greps artifact files across the owner's commis jobs.
type SearchCommisTool struct {
	store *artifact.Store
}

func NewSearchCommisTool(store *artifact.Store) *SearchCommisTool {
	return &SearchCommisTool{store: store}
}

func (t *SearchCommisTool) Name() string { return "search_commis_artifacts" }

func (t *SearchCommisTool) Description() string {
	return "Search commis artifact files (results, tool outputs) with a regular expression."
}

func (t *SearchCommisTool) Parameters() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"pattern":   map[string]interface{}{"type": "string", "description": "Regular expression"},
			"file_glob": map[string]interface{}{"type": "string", "description": "File name glob, default *.txt"},
		},
		"required": []string{"pattern"},
	}
}

func (t *SearchCommisTool) Execute(_ context.Context, rc *RunContext, args map[string]interface{}) (string, error) {
	pattern, _ := args["pattern"].(string)
	fileGlob, _ := args["file_glob"].(string)

	// Scope the search to the caller's own commis
	var ids []string
	for _, e := range t.store.List(artifact.ListOptions{OwnerID: rc.OwnerID}) {
		ids = append(ids, e.CommisID)
	}
	if len(ids) == 0 {
		return OKEnvelope([]artifact.SearchMatch{}), nil
	}

	matches, err := t.store.Search(pattern, fileGlob, ids)
	if err != nil {
		return ErrorEnvelope("invalid_argument", err.Error()), nil
	}
	return OKEnvelope(matches), nil
}

func artifactError(err error) string {
	switch {
	case errors.Is(err, artifact.ErrNotFound):
		return ErrorEnvelope("not_found", err.Error())
	case errors.Is(err, artifact.ErrAccessDenied):
		return ErrorEnvelope("access_denied", err.Error())
	case errors.Is(err, artifact.ErrInvalidPath):
		return ErrorEnvelope("invalid_argument", err.Error())
	default:
		return ErrorEnvelope("internal_error", err.Error())
	}
}
