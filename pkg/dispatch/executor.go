package dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/ent/commisjob"
	"github.com/oikos-sh/brigade/pkg/agent"
	"github.com/oikos-sh/brigade/pkg/artifact"
	"github.com/oikos-sh/brigade/pkg/models"
	"github.com/oikos-sh/brigade/pkg/tools"
)

// commisSystemPrompt frames the commis's role: do the task, write a result.
const commisSystemPrompt = `You are a commis: a background worker agent executing one delegated task. Work autonomously; there is no user to ask. Use your tools as needed. When the task is done, reply with your final result as plain text. Begin the result with a "## Summary" section of one or two sentences, then the details.`

// WorkspaceRunner executes workspace-mode commis jobs: clone a repository,
// run the external agent binary in it, capture the diff. Implemented by
// workspace.Runner.
type WorkspaceRunner interface {
	Run(ctx context.Context, job *ent.CommisJob) (result string, err error)
}

// StandardExecutor runs commis jobs in-process with the LLM turn loop.
// Workspace-mode jobs are routed to the WorkspaceRunner when one is
// configured.
type StandardExecutor struct {
	llm       agent.LLMClient
	registry  *tools.Registry
	artifacts *artifact.Store
	workspace WorkspaceRunner
	maxTurns  int
}

// NewStandardExecutor creates a StandardExecutor. workspace may be nil;
// workspace-mode jobs then fail with a configuration error.
func NewStandardExecutor(llm agent.LLMClient, registry *tools.Registry, store *artifact.Store, workspace WorkspaceRunner, maxTurns int) *StandardExecutor {
	if maxTurns <= 0 {
		maxTurns = 30
	}
	return &StandardExecutor{
		llm:       llm,
		registry:  registry,
		artifacts: store,
		workspace: workspace,
		maxTurns:  maxTurns,
	}
}

// Execute runs one claimed commis job to completion and settles its
// artifacts. Always returns a non-nil result.
func (e *StandardExecutor) Execute(ctx context.Context, job *ent.CommisJob) *JobResult {
	if err := e.artifacts.Start(job.CommisID); err != nil {
		slog.Warn("Failed to mark commis artifacts running",
			"commis_id", job.CommisID, "error", err)
	}

	var result string
	var err error
	if models.JobMode(job.Config) == models.ModeWorkspace {
		result, err = e.runWorkspace(ctx, job)
	} else {
		result, err = e.runStandard(ctx, job)
	}

	if err != nil {
		status := string(commisjob.StatusFailed)
		if ctx.Err() == context.DeadlineExceeded {
			status = string(commisjob.StatusTimeout)
		}
		if cerr := e.artifacts.Complete(job.CommisID, status, err.Error()); cerr != nil {
			slog.Warn("Failed to settle commis artifacts",
				"commis_id", job.CommisID, "error", cerr)
		}
		return &JobResult{Status: status, Error: err}
	}

	if serr := e.artifacts.SaveResult(job.CommisID, result); serr != nil {
		slog.Error("Failed to save commis result",
			"commis_id", job.CommisID, "error", serr)
	}
	summary := extractSummary(result)
	if serr := e.artifacts.UpdateSummary(job.CommisID, summary, map[string]interface{}{
		"source":       "result",
		"generated_at": time.Now().UTC().Format(time.RFC3339),
	}); serr != nil {
		slog.Warn("Failed to save commis summary",
			"commis_id", job.CommisID, "error", serr)
	}
	if cerr := e.artifacts.Complete(job.CommisID, artifact.StatusSuccess, ""); cerr != nil {
		slog.Warn("Failed to settle commis artifacts",
			"commis_id", job.CommisID, "error", cerr)
	}
	return &JobResult{Status: string(commisjob.StatusSuccess), Result: result}
}

func (e *StandardExecutor) runWorkspace(ctx context.Context, job *ent.CommisJob) (string, error) {
	if e.workspace == nil {
		return "", fmt.Errorf("workspace mode requested but no workspace runner is configured")
	}
	return e.workspace.Run(ctx, job)
}

// runStandard drives the in-process LLM loop. Messages live only in memory
// and in the artifact store's thread.jsonl; commis jobs have no thread rows.
func (e *StandardExecutor) runStandard(ctx context.Context, job *ent.CommisJob) (string, error) {
	rc := &tools.RunContext{OwnerID: job.OwnerID}
	selected := e.commisTools()
	toolDefs := make([]agent.ToolDef, len(selected))
	for i, t := range selected {
		toolDefs[i] = agent.ToolDef{Name: t.Name(), Description: t.Description(), Parameters: t.Parameters()}
	}

	messages := []agent.Message{
		{Role: agent.RoleSystem, Content: commisSystemPrompt},
		{Role: agent.RoleUser, Content: job.Task},
	}
	e.mirrorMessage(job.CommisID, messages[1])

	for turn := 1; turn <= e.maxTurns; turn++ {
		completion, err := e.llm.Complete(ctx, job.Model, messages, toolDefs)
		if err != nil {
			return "", fmt.Errorf("LLM completion failed on turn %d: %w", turn, err)
		}

		assistant := agent.Message{
			Role:      agent.RoleAssistant,
			Content:   completion.Content,
			ToolCalls: completion.ToolCalls,
		}
		messages = append(messages, assistant)
		e.mirrorMessage(job.CommisID, assistant)

		if len(completion.ToolCalls) == 0 {
			return completion.Content, nil
		}

		for _, tc := range completion.ToolCalls {
			output := e.runTool(ctx, rc, job.CommisID, tc)
			toolMsg := agent.Message{
				Role:       agent.RoleTool,
				Content:    output,
				ToolCallID: tc.ID,
				Name:       tc.Name,
			}
			messages = append(messages, toolMsg)
			e.mirrorMessage(job.CommisID, toolMsg)
		}
	}

	return "", fmt.Errorf("commis run exceeded %d turns without completing", e.maxTurns)
}

// runTool executes one tool call, saving its raw output under tool_calls/.
// Failures become error envelopes; a commis cannot suspend.
func (e *StandardExecutor) runTool(ctx context.Context, rc *tools.RunContext, commisID string, tc models.ToolCall) string {
	rc.ToolCallID = tc.ID

	tool, ok := e.registry.Get(tc.Name)
	if !ok {
		return tools.ErrorEnvelope("unknown_tool", fmt.Sprintf("unknown tool %q", tc.Name))
	}

	args := map[string]interface{}{}
	if tc.Arguments != "" {
		if err := json.Unmarshal([]byte(tc.Arguments), &args); err != nil {
			return tools.ErrorEnvelope("invalid_arguments", err.Error())
		}
	}

	output, err := tool.Execute(ctx, rc, args)
	if err != nil {
		output = tools.ErrorEnvelope("tool_error", err.Error())
	}

	if _, serr := e.artifacts.SaveToolOutput(commisID, tc.Name, output, rc.NextSeq()); serr != nil {
		slog.Warn("Failed to save tool output",
			"commis_id", commisID, "tool", tc.Name, "error", serr)
	}
	return output
}

// commisTools is the registry minus spawn_commis: a commis must not spawn
// further commis.
func (e *StandardExecutor) commisTools() []tools.Tool {
	var allowed []string
	for _, name := range e.registry.Names() {
		if name == "spawn_commis" {
			continue
		}
		allowed = append(allowed, name)
	}
	if len(allowed) == 0 {
		return nil
	}
	return e.registry.Select(allowed)
}

// mirrorMessage appends the message to the commis's thread.jsonl.
// Best-effort: the transcript is a debugging artifact, not state.
func (e *StandardExecutor) mirrorMessage(commisID string, msg agent.Message) {
	entry := map[string]interface{}{
		"role":      msg.Role,
		"content":   msg.Content,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	}
	if len(msg.ToolCalls) > 0 {
		entry["tool_calls"] = models.ToolCallsToMaps(msg.ToolCalls)
	}
	if msg.ToolCallID != "" {
		entry["tool_call_id"] = msg.ToolCallID
		entry["name"] = msg.Name
	}
	if err := e.artifacts.SaveMessage(commisID, entry); err != nil {
		slog.Warn("Failed to mirror commis message",
			"commis_id", commisID, "error", err)
	}
}
