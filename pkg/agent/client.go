// Package agent runs fiche conversations: it drives the LLM turn loop,
// executes tools, and suspends runs that hand work off to a commis job.
package agent

import (
	"context"

	"github.com/oikos-sh/brigade/pkg/models"
)

// Message is one conversation message in provider-neutral form.
type Message struct {
	Role       string
	Content    string
	ToolCalls  []models.ToolCall
	ToolCallID string
	Name       string
}

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ToolDef describes a callable tool for the model.
type ToolDef struct {
	Name        string
	Description string
	Parameters  map[string]interface{}
}

// Completion is the model's reply for one turn.
type Completion struct {
	Content   string
	ToolCalls []models.ToolCall
}

// LLMClient produces chat completions. Implementations must be safe for
// concurrent use; the dispatcher shares one client across workers.
type LLMClient interface {
	Complete(ctx context.Context, model string, messages []Message, tools []ToolDef) (*Completion, error)
}
