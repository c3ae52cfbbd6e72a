package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/ent/threadmessage"
	"github.com/oikos-sh/brigade/pkg/events"
	"github.com/oikos-sh/brigade/pkg/models"
	"github.com/oikos-sh/brigade/pkg/tools"
)

// EventSink receives course events from the runner. Emission is
// fire-and-forget; implementations log failures instead of returning them.
type EventSink interface {
	Emit(ctx context.Context, courseID, ownerID int, eventType string, payload map[string]interface{})
}

// ResultKind tags how a run ended.
type ResultKind int

const (
	// ResultDone means the model produced a final answer.
	ResultDone ResultKind = iota
	// ResultSuspended means a tool call handed work to a commis job; the
	// course parks as waiting until the job's result resumes it.
	ResultSuspended
)

// RunResult is the tagged outcome of a fiche run.
type RunResult struct {
	Kind               ResultKind
	Content            string
	AssistantMessageID int
	Suspension         *tools.Suspension
}

// FicheRunner drives the LLM turn loop for one course at a time. The runner
// only touches thread messages and events; course status transitions belong
// to the caller.
type FicheRunner struct {
	db       *ent.Client
	llm      LLMClient
	registry *tools.Registry
	events   EventSink
	maxTurns int

	recentLimit int
}

// NewFicheRunner creates a runner. recentLimit bounds the recent-commis
// context block; 0 disables it.
func NewFicheRunner(db *ent.Client, llm LLMClient, registry *tools.Registry, sink EventSink, maxTurns, recentLimit int) *FicheRunner {
	if maxTurns <= 0 {
		maxTurns = 20
	}
	return &FicheRunner{
		db:          db,
		llm:         llm,
		registry:    registry,
		events:      sink,
		maxTurns:    maxTurns,
		recentLimit: recentLimit,
	}
}

// Run executes a fresh course from the thread's current state.
func (r *FicheRunner) Run(ctx context.Context, course *ent.Course, fiche *ent.Fiche) (*RunResult, error) {
	r.events.Emit(ctx, course.ID, course.OwnerID, events.EventConciergeStarted, map[string]interface{}{
		"fiche_id":  fiche.ID,
		"thread_id": course.ThreadID,
	})

	if err := r.refreshRecentCommisContext(ctx, course.ThreadID, course.OwnerID); err != nil {
		slog.Warn("Failed to refresh recent commis context",
			"course_id", course.ID, "error", err)
	}

	return r.runLoop(ctx, course, fiche)
}

// RunContinuation resumes a course that was waiting on a commis job. The
// tool message answering toolCallID is written first, idempotently: if a
// previous resume already wrote it, the write is skipped and the loop
// continues from the existing state.
func (r *FicheRunner) RunContinuation(ctx context.Context, course *ent.Course, fiche *ent.Fiche, toolCallID, result string) (*RunResult, error) {
	exists, err := r.db.ThreadMessage.Query().
		Where(
			threadmessage.ThreadIDEQ(course.ThreadID),
			threadmessage.ToolCallIDEQ(toolCallID),
			threadmessage.RoleEQ(threadmessage.RoleTool),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing tool message: %w", err)
	}

	if !exists {
		_, err = r.db.ThreadMessage.Create().
			SetThreadID(course.ThreadID).
			SetRole(threadmessage.RoleTool).
			SetContent("Commis completed:\n\n" + result).
			SetToolCallID(toolCallID).
			SetName("spawn_commis").
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to write commis result message: %w", err)
		}
	} else {
		slog.Info("Tool message already present, continuing without rewrite",
			"course_id", course.ID, "tool_call_id", toolCallID)
	}

	if err := r.refreshRecentCommisContext(ctx, course.ThreadID, course.OwnerID); err != nil {
		slog.Warn("Failed to refresh recent commis context",
			"course_id", course.ID, "error", err)
	}

	return r.runLoop(ctx, course, fiche)
}

// runLoop is the shared turn loop. Each turn rebuilds the message list from
// the database so the system prompt and recent-commis context are always
// fresh.
func (r *FicheRunner) runLoop(ctx context.Context, course *ent.Course, fiche *ent.Fiche) (*RunResult, error) {
	rc := &tools.RunContext{
		CourseID: course.ID,
		OwnerID:  course.OwnerID,
		ThreadID: course.ThreadID,
	}
	selected := r.registry.Select(fiche.AllowedTools)
	toolDefs := make([]ToolDef, len(selected))
	for i, t := range selected {
		toolDefs[i] = ToolDef{Name: t.Name(), Description: t.Description(), Parameters: t.Parameters()}
	}

	for turn := 1; turn <= r.maxTurns; turn++ {
		messages, err := r.loadMessages(ctx, course.ThreadID, fiche, selected)
		if err != nil {
			return nil, err
		}

		r.events.Emit(ctx, course.ID, course.OwnerID, events.EventConciergeThinking, map[string]interface{}{
			"turn": turn,
		})

		completion, err := r.llm.Complete(ctx, fiche.Model, messages, toolDefs)
		if err != nil {
			return nil, fmt.Errorf("LLM completion failed on turn %d: %w", turn, err)
		}

		assistant, err := r.db.ThreadMessage.Create().
			SetThreadID(course.ThreadID).
			SetRole(threadmessage.RoleAssistant).
			SetContent(completion.Content).
			SetToolCalls(models.ToolCallsToMaps(completion.ToolCalls)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to persist assistant message: %w", err)
		}

		if len(completion.ToolCalls) == 0 {
			r.events.Emit(ctx, course.ID, course.OwnerID, events.EventConciergeComplete, map[string]interface{}{
				"message_id": assistant.ID,
			})
			return &RunResult{
				Kind:               ResultDone,
				Content:            completion.Content,
				AssistantMessageID: assistant.ID,
			}, nil
		}

		for _, tc := range completion.ToolCalls {
			suspension, err := r.executeToolCall(ctx, rc, tc)
			if err != nil {
				return nil, err
			}
			if suspension != nil {
				r.events.Emit(ctx, course.ID, course.OwnerID, events.EventConciergeWaiting, map[string]interface{}{
					"job_id":       suspension.JobID,
					"commis_id":    suspension.CommisID,
					"tool_call_id": suspension.ToolCallID,
				})
				return &RunResult{
					Kind:               ResultSuspended,
					AssistantMessageID: assistant.ID,
					Suspension:         suspension,
				}, nil
			}
		}
	}

	return nil, fmt.Errorf("run exceeded %d turns without completing", r.maxTurns)
}

// executeToolCall runs one tool call and persists its tool message. Tool
// failures become error envelopes for the model; only infrastructure errors
// (persistence) propagate. A non-nil Suspension means the run must park.
func (r *FicheRunner) executeToolCall(ctx context.Context, rc *tools.RunContext, tc models.ToolCall) (*tools.Suspension, error) {
	rc.ToolCallID = tc.ID

	r.events.Emit(ctx, rc.CourseID, rc.OwnerID, events.EventToolStarted, map[string]interface{}{
		"tool":         tc.Name,
		"tool_call_id": tc.ID,
	})

	output, failed := r.runTool(ctx, rc, tc)

	var susp *tools.Suspension
	if errors.As(failed, &susp) {
		// Suspended: the answering tool message is written by the resume path
		return susp, nil
	}

	eventType := events.EventToolCompleted
	if failed != nil {
		eventType = events.EventToolFailed
		output = tools.ErrorEnvelope("tool_error", failed.Error())
	}
	r.events.Emit(ctx, rc.CourseID, rc.OwnerID, eventType, map[string]interface{}{
		"tool":         tc.Name,
		"tool_call_id": tc.ID,
	})

	_, err := r.db.ThreadMessage.Create().
		SetThreadID(rc.ThreadID).
		SetRole(threadmessage.RoleTool).
		SetContent(output).
		SetToolCallID(tc.ID).
		SetName(tc.Name).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist tool message: %w", err)
	}
	return nil, nil
}

// runTool resolves and executes the tool. The returned error is either a
// *tools.Suspension or a tool failure to be enveloped; never fatal.
func (r *FicheRunner) runTool(ctx context.Context, rc *tools.RunContext, tc models.ToolCall) (string, error) {
	tool, ok := r.registry.Get(tc.Name)
	if !ok {
		return "", fmt.Errorf("unknown tool %q", tc.Name)
	}

	args := map[string]interface{}{}
	if tc.Arguments != "" {
		if err := json.Unmarshal([]byte(tc.Arguments), &args); err != nil {
			return "", fmt.Errorf("invalid tool arguments: %v", err)
		}
	}

	return tool.Execute(ctx, rc, args)
}

// loadMessages builds the provider message list: fresh system prompt first,
// then the thread's conversation in order.
func (r *FicheRunner) loadMessages(ctx context.Context, threadID int, fiche *ent.Fiche, selected []tools.Tool) ([]Message, error) {
	rows, err := r.db.ThreadMessage.Query().
		Where(threadmessage.ThreadIDEQ(threadID)).
		Order(ent.Asc(threadmessage.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load thread messages: %w", err)
	}

	messages := make([]Message, 0, len(rows)+1)
	messages = append(messages, Message{
		Role:    RoleSystem,
		Content: buildSystemPrompt(fiche, selected),
	})

	for _, row := range rows {
		msg := Message{
			Role:    string(row.Role),
			Content: row.Content,
		}
		if row.Role == threadmessage.RoleAssistant {
			msg.ToolCalls = models.ToolCallsFromMaps(row.ToolCalls)
		}
		if row.Role == threadmessage.RoleTool {
			if row.ToolCallID != nil {
				msg.ToolCallID = *row.ToolCallID
			}
			if row.Name != nil {
				msg.Name = *row.Name
			}
		}
		messages = append(messages, msg)
	}
	return messages, nil
}
