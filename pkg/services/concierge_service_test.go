package services_test

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
	"github.com/oikos-sh/brigade/pkg/artifact"
	"github.com/oikos-sh/brigade/pkg/events"
	"github.com/oikos-sh/brigade/pkg/models"
	"github.com/oikos-sh/brigade/pkg/services"
	"github.com/oikos-sh/brigade/pkg/tools"
	testdb "github.com/oikos-sh/brigade/test/database"
)

// scriptedLLM replays canned completions, one per turn, across goroutines.
type scriptedLLM struct {
	mu    sync.Mutex
	turns []*agent.Completion
}

func (s *scriptedLLM) Complete(_ context.Context, _ string, _ []agent.Message, _ []agent.ToolDef) (*agent.Completion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.turns) == 0 {
		return nil, fmt.Errorf("no scripted completion left")
	}
	next := s.turns[0]
	s.turns = s.turns[1:]
	return next, nil
}

// newConciergeFixture wires a ConciergeService around a scripted LLM, with
// the real spawn_commis tool pointing back at the service.
func newConciergeFixture(t *testing.T, llm agent.LLMClient) (*services.ConciergeService, *ent.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)

	store, err := artifact.NewStore(t.TempDir())
	require.NoError(t, err)

	emitter := events.NewEmitter(client.DB())
	eventSvc := services.NewEventService(client.Client, client.DB(), emitter)

	registry := tools.NewRegistry()
	runner := agent.NewFicheRunner(client.Client, llm, registry, eventSvc, 5, 0)
	svc := services.NewConciergeService(client.Client, runner, eventSvc, store, "gpt-4o")
	registry.Register(tools.NewSpawnCommisTool(svc))

	return svc, client.Client
}

// suspendCourse drives one chat through a spawn_commis suspension and
// returns the waiting course and its commis job.
func suspendCourse(t *testing.T, svc *services.ConciergeService, client *ent.Client, email string) (*ent.Course, *ent.CommisJob) {
	t.Helper()
	ctx := context.Background()

	owner, err := client.User.Create().SetEmail(email).Save(ctx)
	require.NoError(t, err)

	resp, err := svc.Chat(ctx, owner.ID, "please check the disks")
	require.NoError(t, err)

	require.NoError(t, svc.ExecuteCourse(ctx, resp.CourseID))

	c, err := client.Course.Get(ctx, resp.CourseID)
	require.NoError(t, err)
	require.Equal(t, course.StatusWaiting, c.Status)

	job, err := client.CommisJob.Query().Only(ctx)
	require.NoError(t, err)
	require.NotNil(t, job.ToolCallID)
	return c, job
}

func TestConcurrentResumeOneWinner(t *testing.T) {
	llm := &scriptedLLM{turns: []*agent.Completion{
		{ToolCalls: []models.ToolCall{{
			ID:        "call-race",
			Name:      "spawn_commis",
			Arguments: `{"task":"inspect every mount"}`,
		}}},
		// Exactly one continuation turn is scripted: if both resumes ran the
		// loop, the loser would error and fail the course
		{Content: "Disks are healthy."},
	}}
	svc, client := newConciergeFixture(t, llm)
	ctx := context.Background()

	c, job := suspendCourse(t, svc, client, "race@test.local")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = svc.ResumeWithCommisResult(ctx, job.ID, models.JobSuccess, "all mounts below 50%")
		}(i)
	}
	wg.Wait()
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	settled, err := client.Course.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, course.StatusSuccess, settled.Status)
	require.NotNil(t, settled.Summary)
	assert.Equal(t, "Disks are healthy.", *settled.Summary)

	// One resume claimed the course; the other skipped without writing
	toolMsgs, err := client.ThreadMessage.Query().
		Where(
			threadmessage.ThreadIDEQ(c.ThreadID),
			threadmessage.RoleEQ(threadmessage.RoleTool),
			threadmessage.ToolCallIDEQ(*job.ToolCallID),
		).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, toolMsgs, 1)
	assert.Contains(t, toolMsgs[0].Content, "all mounts below 50%")
}

func TestResumeAfterSettleIsSkipped(t *testing.T) {
	llm := &scriptedLLM{turns: []*agent.Completion{
		{ToolCalls: []models.ToolCall{{
			ID:        "call-settle",
			Name:      "spawn_commis",
			Arguments: `{"task":"count the inodes"}`,
		}}},
		{Content: "Inode usage is fine."},
	}}
	svc, client := newConciergeFixture(t, llm)
	ctx := context.Background()

	c, job := suspendCourse(t, svc, client, "settle@test.local")

	require.NoError(t, svc.ResumeWithCommisResult(ctx, job.ID, models.JobSuccess, "2% inodes used"))

	before, err := client.ThreadMessage.Query().
		Where(threadmessage.ThreadIDEQ(c.ThreadID)).
		Count(ctx)
	require.NoError(t, err)

	// A duplicate delivery finds the course settled and does nothing
	require.NoError(t, svc.ResumeWithCommisResult(ctx, job.ID, models.JobSuccess, "2% inodes used"))

	after, err := client.ThreadMessage.Query().
		Where(threadmessage.ThreadIDEQ(c.ThreadID)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)

	settled, err := client.Course.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, course.StatusSuccess, settled.Status)
}

func TestResumeWithFailedJobPrefixesResult(t *testing.T) {
	llm := &scriptedLLM{turns: []*agent.Completion{
		{ToolCalls: []models.ToolCall{{
			ID:        "call-fail",
			Name:      "spawn_commis",
			Arguments: `{"task":"rotate the logs"}`,
		}}},
		{Content: "The commis could not finish; I will retry later."},
	}}
	svc, client := newConciergeFixture(t, llm)
	ctx := context.Background()

	c, job := suspendCourse(t, svc, client, "failjob@test.local")

	require.NoError(t, svc.ResumeWithCommisResult(ctx, job.ID, models.JobFailed, "disk filled up mid-run"))

	toolMsg, err := client.ThreadMessage.Query().
		Where(
			threadmessage.ThreadIDEQ(c.ThreadID),
			threadmessage.RoleEQ(threadmessage.RoleTool),
			threadmessage.ToolCallIDEQ(*job.ToolCallID),
		).
		Only(ctx)
	require.NoError(t, err)
	assert.Contains(t, toolMsg.Content, "finished with status failed")
	assert.Contains(t, toolMsg.Content, "disk filled up mid-run")
}
