package dispatch

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/pkg/agent"
	"github.com/oikos-sh/brigade/pkg/artifact"
	"github.com/oikos-sh/brigade/pkg/models"
	"github.com/oikos-sh/brigade/pkg/tools"
)

// scriptedLLM returns canned completions in order.
type scriptedLLM struct {
	completions []*agent.Completion
	calls       int
	lastTools   []agent.ToolDef
}

func (s *scriptedLLM) Complete(_ context.Context, _ string, _ []agent.Message, defs []agent.ToolDef) (*agent.Completion, error) {
	s.lastTools = defs
	if s.calls >= len(s.completions) {
		return nil, fmt.Errorf("no scripted completion for call %d", s.calls)
	}
	c := s.completions[s.calls]
	s.calls++
	return c, nil
}

type echoTool struct{}

func (echoTool) Name() string        { return "echo" }
func (echoTool) Description() string { return "Echoes its input" }
func (echoTool) Parameters() map[string]interface{} {
	return map[string]interface{}{"type": "object"}
}
func (echoTool) Execute(_ context.Context, _ *tools.RunContext, args map[string]interface{}) (string, error) {
	text, _ := args["text"].(string)
	return tools.OKEnvelope(text), nil
}

func newTestStore(t *testing.T) *artifact.Store {
	t.Helper()
	store, err := artifact.NewStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func newTestJob(t *testing.T, store *artifact.Store, config map[string]interface{}) *ent.CommisJob {
	t.Helper()
	commisID, err := store.Create("check the weather", config, 7, "")
	require.NoError(t, err)
	return &ent.CommisJob{
		ID:       1,
		OwnerID:  7,
		Task:     "check the weather",
		Model:    "gpt-4o",
		CommisID: commisID,
		Config:   config,
	}
}

func TestStandardExecutorSuccess(t *testing.T) {
	store := newTestStore(t)
	job := newTestJob(t, store, nil)

	llm := &scriptedLLM{completions: []*agent.Completion{
		{ToolCalls: []models.ToolCall{{ID: "call_1", Name: "echo", Arguments: `{"text":"hi"}`}}},
		{Content: "## Summary\nEchoed successfully.\n\n## Details\nThe tool said hi."},
	}}
	registry := tools.NewRegistry()
	registry.Register(echoTool{})

	exec := NewStandardExecutor(llm, registry, store, nil, 5)
	result := exec.Execute(context.Background(), job)

	require.NotNil(t, result)
	assert.Equal(t, models.JobSuccess, result.Status)
	assert.NoError(t, result.Error)
	assert.Contains(t, result.Result, "Echoed successfully")

	saved, err := store.GetResult(job.CommisID)
	require.NoError(t, err)
	assert.Equal(t, result.Result, saved)

	meta, err := store.GetMetadata(job.CommisID, 7)
	require.NoError(t, err)
	assert.Equal(t, artifact.StatusSuccess, meta.Status)
	assert.Equal(t, "Echoed successfully.", meta.Summary)

	// The tool output was captured under tool_calls/
	out, err := store.ReadFile(job.CommisID, "tool_calls/001_echo.txt")
	require.NoError(t, err)
	assert.Contains(t, out, "hi")
}

func TestStandardExecutorLLMFailure(t *testing.T) {
	store := newTestStore(t)
	job := newTestJob(t, store, nil)

	llm := &scriptedLLM{} // fails on first call
	exec := NewStandardExecutor(llm, tools.NewRegistry(), store, nil, 5)
	result := exec.Execute(context.Background(), job)

	require.NotNil(t, result)
	assert.Equal(t, models.JobFailed, result.Status)
	assert.Error(t, result.Error)

	meta, err := store.GetMetadata(job.CommisID, 7)
	require.NoError(t, err)
	assert.Equal(t, artifact.StatusFailed, meta.Status)
}

func TestStandardExecutorMaxTurns(t *testing.T) {
	store := newTestStore(t)
	job := newTestJob(t, store, nil)

	// Always asks for another tool call, never finishes
	loop := &agent.Completion{ToolCalls: []models.ToolCall{{ID: "call_x", Name: "echo", Arguments: `{}`}}}
	llm := &scriptedLLM{completions: []*agent.Completion{loop, loop, loop}}
	registry := tools.NewRegistry()
	registry.Register(echoTool{})

	exec := NewStandardExecutor(llm, registry, store, nil, 3)
	result := exec.Execute(context.Background(), job)

	require.NotNil(t, result)
	assert.Equal(t, models.JobFailed, result.Status)
	assert.ErrorContains(t, result.Error, "exceeded 3 turns")
}

func TestStandardExecutorWorkspaceWithoutRunner(t *testing.T) {
	store := newTestStore(t)
	job := newTestJob(t, store, map[string]interface{}{"mode": models.ModeWorkspace, "repo_url": "https://example.com/repo.git"})

	exec := NewStandardExecutor(&scriptedLLM{}, tools.NewRegistry(), store, nil, 5)
	result := exec.Execute(context.Background(), job)

	require.NotNil(t, result)
	assert.Equal(t, models.JobFailed, result.Status)
	assert.ErrorContains(t, result.Error, "no workspace runner")
}

func TestStandardExecutorExcludesSpawnCommis(t *testing.T) {
	store := newTestStore(t)
	job := newTestJob(t, store, nil)

	llm := &scriptedLLM{completions: []*agent.Completion{{Content: "done"}}}
	registry := tools.NewRegistry()
	registry.Register(echoTool{})
	registry.Register(spawnStub{})

	exec := NewStandardExecutor(llm, registry, store, nil, 5)
	result := exec.Execute(context.Background(), job)
	require.NotNil(t, result)
	assert.Equal(t, models.JobSuccess, result.Status)

	names := make([]string, 0, len(llm.lastTools))
	for _, d := range llm.lastTools {
		names = append(names, d.Name)
	}
	assert.Contains(t, names, "echo")
	assert.NotContains(t, names, "spawn_commis")
}

type spawnStub struct{}

func (spawnStub) Name() string                           { return "spawn_commis" }
func (spawnStub) Description() string                    { return "stub" }
func (spawnStub) Parameters() map[string]interface{}     { return map[string]interface{}{} }
func (spawnStub) Execute(context.Context, *tools.RunContext, map[string]interface{}) (string, error) {
	return "", nil
}
