package agent_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/ent/course"
	"github.com/oikos-sh/brigade/ent/threadmessage"
	"github.com/oikos-sh/brigade/pkg/agent"
	"github.com/oikos-sh/brigade/pkg/models"
	"github.com/oikos-sh/brigade/pkg/tools"
	testdb "github.com/oikos-sh/brigade/test/database"
)

// scriptedClient replays canned completions, one per turn.
type scriptedClient struct {
	mu    sync.Mutex
	turns []*agent.Completion
}

func (s *scriptedClient) Complete(_ context.Context, _ string, _ []agent.Message, _ []agent.ToolDef) (*agent.Completion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.turns) == 0 {
		return nil, fmt.Errorf("no scripted completion left")
	}
	next := s.turns[0]
	s.turns = s.turns[1:]
	return next, nil
}

// sinkRecorder collects emitted event types.
type sinkRecorder struct {
	mu    sync.Mutex
	types []string
}

func (r *sinkRecorder) Emit(_ context.Context, _, _ int, eventType string, _ map[string]interface{}) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = append(r.types, eventType)
}

func (r *sinkRecorder) seen(eventType string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, t := range r.types {
		if t == eventType {
			return true
		}
	}
	return false
}

// stubSpawner answers spawn_commis without touching a queue.
type stubSpawner struct {
	jobID    int
	commisID string
}

func (s *stubSpawner) SpawnCommis(_ context.Context, _, _ int, _, _ string, _ map[string]interface{}) (int, string, error) {
	return s.jobID, s.commisID, nil
}

// seedRun creates the owner/fiche/thread/course chain with one user message.
func seedRun(t *testing.T, client *ent.Client) (*ent.Course, *ent.Fiche) {
	t.Helper()
	ctx := context.Background()

	owner, err := client.User.Create().SetEmail("runner@test.local").Save(ctx)
	require.NoError(t, err)
	f, err := client.Fiche.Create().
		SetOwnerID(owner.ID).
		SetName("concierge").
		SetSystemInstructions("assist the user").
		SetModel("gpt-4o").
		Save(ctx)
	require.NoError(t, err)
	thread, err := client.Thread.Create().
		SetFicheID(f.ID).
		SetOwnerID(owner.ID).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.ThreadMessage.Create().
		SetThreadID(thread.ID).
		SetRole(threadmessage.RoleUser).
		SetContent("check the disks").
		Save(ctx)
	require.NoError(t, err)
	c, err := client.Course.Create().
		SetFicheID(f.ID).
		SetThreadID(thread.ID).
		SetOwnerID(owner.ID).
		SetStatus(course.StatusRunning).
		SetCorrelationID("corr-run").
		Save(ctx)
	require.NoError(t, err)
	return c, f
}

func newTestRunner(t *testing.T, client *ent.Client, llm agent.LLMClient) (*agent.FicheRunner, *sinkRecorder) {
	t.Helper()
	registry := tools.NewRegistry()
	registry.Register(tools.NewSpawnCommisTool(&stubSpawner{jobID: 7, commisID: "commis-7"}))
	sink := &sinkRecorder{}
	return agent.NewFicheRunner(client, llm, registry, sink, 5, 0), sink
}

func TestRunCompletesWithoutToolCalls(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	c, f := seedRun(t, client.Client)

	llm := &scriptedClient{turns: []*agent.Completion{
		{Content: "All disks are healthy."},
	}}
	runner, sink := newTestRunner(t, client.Client, llm)

	result, err := runner.Run(ctx, c, f)
	require.NoError(t, err)
	assert.Equal(t, agent.ResultDone, result.Kind)
	assert.Equal(t, "All disks are healthy.", result.Content)

	msg, err := client.ThreadMessage.Get(ctx, result.AssistantMessageID)
	require.NoError(t, err)
	assert.Equal(t, threadmessage.RoleAssistant, msg.Role)
	assert.Equal(t, "All disks are healthy.", msg.Content)

	assert.True(t, sink.seen("concierge_started"))
	assert.True(t, sink.seen("concierge_complete"))
}

func TestRunSuspendsOnSpawnCommis(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	c, f := seedRun(t, client.Client)

	llm := &scriptedClient{turns: []*agent.Completion{
		{ToolCalls: []models.ToolCall{{
			ID:        "call-1",
			Name:      "spawn_commis",
			Arguments: `{"task":"check the disks in detail"}`,
		}}},
	}}
	runner, sink := newTestRunner(t, client.Client, llm)

	result, err := runner.Run(ctx, c, f)
	require.NoError(t, err)
	assert.Equal(t, agent.ResultSuspended, result.Kind)
	require.NotNil(t, result.Suspension)
	assert.Equal(t, 7, result.Suspension.JobID)
	assert.Equal(t, "commis-7", result.Suspension.CommisID)
	assert.Equal(t, "call-1", result.Suspension.ToolCallID)
	assert.True(t, sink.seen("concierge_waiting"))

	// The answering tool message belongs to the resume path, not the spawn
	exists, err := client.ThreadMessage.Query().
		Where(
			threadmessage.ThreadIDEQ(c.ThreadID),
			threadmessage.RoleEQ(threadmessage.RoleTool),
			threadmessage.ToolCallIDEQ("call-1"),
		).
		Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestRunContinuationWritesToolMessageOnce(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	c, f := seedRun(t, client.Client)

	// The paused assistant message holding the spawn_commis call
	_, err := client.ThreadMessage.Create().
		SetThreadID(c.ThreadID).
		SetRole(threadmessage.RoleAssistant).
		SetContent("").
		SetToolCalls(models.ToolCallsToMaps([]models.ToolCall{{
			ID:        "call-1",
			Name:      "spawn_commis",
			Arguments: `{"task":"check the disks"}`,
		}})).
		Save(ctx)
	require.NoError(t, err)

	llm := &scriptedClient{turns: []*agent.Completion{
		{Content: "First continuation answer."},
		{Content: "Second continuation answer."},
	}}
	runner, _ := newTestRunner(t, client.Client, llm)

	result, err := runner.RunContinuation(ctx, c, f, "call-1", "disks at 45%")
	require.NoError(t, err)
	assert.Equal(t, agent.ResultDone, result.Kind)

	// A duplicate delivery keeps the original tool message
	_, err = runner.RunContinuation(ctx, c, f, "call-1", "a different, later result")
	require.NoError(t, err)

	toolMsgs, err := client.ThreadMessage.Query().
		Where(
			threadmessage.ThreadIDEQ(c.ThreadID),
			threadmessage.RoleEQ(threadmessage.RoleTool),
			threadmessage.ToolCallIDEQ("call-1"),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, toolMsgs, 1)
	assert.Contains(t, toolMsgs[0].Content, "disks at 45%")
	assert.NotContains(t, toolMsgs[0].Content, "a different, later result")
}
