package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/ent/commisjob"
	"github.com/oikos-sh/brigade/ent/course"
	"github.com/oikos-sh/brigade/pkg/config"
	testdb "github.com/oikos-sh/brigade/test/database"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		MaxConcurrentJobs: 2,
		PollInterval:      10 * time.Millisecond,
		JobTimeout:        5 * time.Second,
		HeartbeatInterval: 50 * time.Millisecond,
		StaleScanInterval: time.Hour,
		StaleThreshold:    time.Minute,
	}
}

func newTestDispatcher(client *ent.Client) *Dispatcher {
	return NewDispatcher("test-pod", client, testQueueConfig(), nil, nil, nil, nil, nil)
}

func seedOwner(t *testing.T, client *ent.Client) int {
	t.Helper()
	u, err := client.User.Create().
		SetEmail(fmt.Sprintf("owner-%s@test.local", t.Name())).
		Save(context.Background())
	require.NoError(t, err)
	return u.ID
}

func seedQueuedJob(t *testing.T, client *ent.Client, ownerID int, commisID string) *ent.CommisJob {
	t.Helper()
	job, err := client.CommisJob.Create().
		SetOwnerID(ownerID).
		SetTask("inspect the production logs").
		SetModel("gpt-4o").
		SetCommisID(commisID).
		Save(context.Background())
	require.NoError(t, err)
	return job
}

// Two replicas draining one queue must hand out every job exactly once.
func TestClaimExclusivityAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	clientA := shared.NewClient(t)
	clientB := shared.NewClient(t)
	ctx := context.Background()

	ownerID := seedOwner(t, clientA.Client)
	const jobs = 20
	for i := 0; i < jobs; i++ {
		seedQueuedJob(t, clientA.Client, ownerID, fmt.Sprintf("c-claim-%d", i))
	}

	workerA := newCommisWorker("a-commis-0", newTestDispatcher(clientA.Client))
	workerB := newCommisWorker("b-commis-0", newTestDispatcher(clientB.Client))

	var mu sync.Mutex
	claimed := map[int]int{}

	var wg sync.WaitGroup
	for _, w := range []*commisWorker{workerA, workerB} {
		wg.Add(1)
		go func(w *commisWorker) {
			defer wg.Done()
			for {
				job, err := w.claimNextJob(ctx)
				if errors.Is(err, ErrNoWorkAvailable) {
					return
				}
				require.NoError(t, err)
				mu.Lock()
				claimed[job.ID]++
				mu.Unlock()
			}
		}(w)
	}
	wg.Wait()

	assert.Len(t, claimed, jobs)
	for id, n := range claimed {
		assert.Equal(t, 1, n, "job %d claimed %d times", id, n)
	}

	running, err := clientA.CommisJob.Query().
		Where(commisjob.StatusEQ(commisjob.StatusRunning)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, jobs, running)
}

func TestClaimStampsHeartbeat(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	ownerID := seedOwner(t, client.Client)
	seedQueuedJob(t, client.Client, ownerID, "c-stamp-1")

	w := newCommisWorker("commis-0", newTestDispatcher(client.Client))
	job, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, commisjob.StatusRunning, job.Status)
	require.NotNil(t, job.StartedAt)
	require.NotNil(t, job.LastHeartbeatAt)

	_, err = w.claimNextJob(ctx)
	require.ErrorIs(t, err, ErrNoWorkAvailable)
}

type recordingResumer struct {
	mu    sync.Mutex
	calls []resumedCall
}

type resumedCall struct {
	jobID  int
	status string
	result string
}

func (r *recordingResumer) ResumeWithCommisResult(_ context.Context, jobID int, status, result string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, resumedCall{jobID, status, result})
	return nil
}

func TestReclaimStaleJobs(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	resumer := &recordingResumer{}
	d := NewDispatcher("test-pod", client.Client, testQueueConfig(), nil, nil, resumer, nil, nil)

	ownerID := seedOwner(t, client.Client)
	dead := seedQueuedJob(t, client.Client, ownerID, "c-stale-dead")
	require.NoError(t, client.CommisJob.UpdateOneID(dead.ID).
		SetStatus(commisjob.StatusRunning).
		SetLastHeartbeatAt(time.Now().Add(-10*time.Minute)).
		Exec(ctx))

	alive := seedQueuedJob(t, client.Client, ownerID, "c-stale-alive")
	require.NoError(t, client.CommisJob.UpdateOneID(alive.ID).
		SetStatus(commisjob.StatusRunning).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx))

	reclaimed, err := d.reclaimStaleJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reclaimed)

	deadRow, err := client.CommisJob.Get(ctx, dead.ID)
	require.NoError(t, err)
	assert.Equal(t, commisjob.StatusFailed, deadRow.Status)
	require.NotNil(t, deadRow.Error)
	assert.Equal(t, staleJobError, *deadRow.Error)
	assert.NotNil(t, deadRow.FinishedAt)

	aliveRow, err := client.CommisJob.Get(ctx, alive.ID)
	require.NoError(t, err)
	assert.Equal(t, commisjob.StatusRunning, aliveRow.Status)

	// A second scan finds nothing; the status guard makes reclaim converge.
	reclaimed, err = d.reclaimStaleJobs(ctx)
	require.NoError(t, err)
	assert.Zero(t, reclaimed)

	// The stale job had no course attached, so no resume was delivered.
	assert.Empty(t, resumer.calls)
}

func TestReclaimResumesWaitingCourse(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	resumer := &recordingResumer{}
	d := NewDispatcher("test-pod", client.Client, testQueueConfig(), nil, nil, resumer, nil, nil)

	ownerID := seedOwner(t, client.Client)
	fiche, err := client.Fiche.Create().
		SetOwnerID(ownerID).
		SetName("concierge").
		SetSystemInstructions("assist").
		SetModel("gpt-4o").
		SetIsConcierge(true).
		Save(ctx)
	require.NoError(t, err)
	thread, err := client.Thread.Create().
		SetFicheID(fiche.ID).
		SetOwnerID(ownerID).
		Save(ctx)
	require.NoError(t, err)
	crs, err := client.Course.Create().
		SetFicheID(fiche.ID).
		SetThreadID(thread.ID).
		SetOwnerID(ownerID).
		SetStatus(course.StatusWaiting).
		SetCorrelationID("corr-stale-1").
		Save(ctx)
	require.NoError(t, err)

	job := seedQueuedJob(t, client.Client, ownerID, "c-stale-course")
	require.NoError(t, client.CommisJob.UpdateOneID(job.ID).
		SetStatus(commisjob.StatusRunning).
		SetConciergeCourseID(crs.ID).
		SetLastHeartbeatAt(time.Now().Add(-10*time.Minute)).
		Exec(ctx))

	reclaimed, err := d.reclaimStaleJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, reclaimed)

	require.Len(t, resumer.calls, 1)
	assert.Equal(t, job.ID, resumer.calls[0].jobID)
	assert.Equal(t, string(commisjob.StatusFailed), resumer.calls[0].status)
	assert.Equal(t, staleJobError, resumer.calls[0].result)
}
