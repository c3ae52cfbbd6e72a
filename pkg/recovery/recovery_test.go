package recovery_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/ent/commisjob"
	"github.com/oikos-sh/brigade/ent/course"
	"github.com/oikos-sh/brigade/ent/deployment"
	"github.com/oikos-sh/brigade/ent/fiche"
	"github.com/oikos-sh/brigade/ent/instance"
	"github.com/oikos-sh/brigade/ent/runnerjob"
	"github.com/oikos-sh/brigade/pkg/recovery"
	testdb "github.com/oikos-sh/brigade/test/database"
)

type fixture struct {
	client *ent.Client

	runningCourse  *ent.Course
	queuedCourse   *ent.Course
	deferredCourse *ent.Course
	waitingCourse  *ent.Course
	runningJob     *ent.CommisJob
	queuedJob      *ent.CommisJob
	runnerJob      *ent.RunnerJob
	fiche          *ent.Fiche
	waitingFiche   *ent.Fiche
	deployment     *ent.Deployment
	deploying      *ent.Instance
	pending        *ent.Instance
	succeeded      *ent.Instance
}

func seed(t *testing.T, client *ent.Client) *fixture {
	t.Helper()
	ctx := context.Background()

	owner, err := client.User.Create().SetEmail("sweep@test.local").Save(ctx)
	require.NoError(t, err)

	f, err := client.Fiche.Create().
		SetOwnerID(owner.ID).
		SetName("concierge").
		SetSystemInstructions("assist").
		SetModel("gpt-4o").
		SetStatus(fiche.StatusRunning).
		Save(ctx)
	require.NoError(t, err)

	thread, err := client.Thread.Create().
		SetFicheID(f.ID).
		SetOwnerID(owner.ID).
		Save(ctx)
	require.NoError(t, err)

	newCourse := func(ficheID, threadID int, status course.Status, corr string) *ent.Course {
		c, err := client.Course.Create().
			SetFicheID(ficheID).
			SetThreadID(threadID).
			SetOwnerID(owner.ID).
			SetStatus(status).
			SetCorrelationID(corr).
			Save(ctx)
		require.NoError(t, err)
		return c
	}
	runningCourse := newCourse(f.ID, thread.ID, course.StatusRunning, "corr-running")
	queuedCourse := newCourse(f.ID, thread.ID, course.StatusQueued, "corr-queued")
	deferredCourse := newCourse(f.ID, thread.ID, course.StatusDeferred, "corr-deferred")

	// A second fiche parked waiting on a commis job survives the sweep intact
	waitingFiche, err := client.Fiche.Create().
		SetOwnerID(owner.ID).
		SetName("concierge-waiting").
		SetSystemInstructions("assist").
		SetModel("gpt-4o").
		SetStatus(fiche.StatusRunning).
		Save(ctx)
	require.NoError(t, err)
	waitingThread, err := client.Thread.Create().
		SetFicheID(waitingFiche.ID).
		SetOwnerID(owner.ID).
		Save(ctx)
	require.NoError(t, err)
	waitingCourse := newCourse(waitingFiche.ID, waitingThread.ID, course.StatusWaiting, "corr-waiting")

	newJob := func(status commisjob.Status, commisID string) *ent.CommisJob {
		j, err := client.CommisJob.Create().
			SetOwnerID(owner.ID).
			SetTask("check the disks").
			SetModel("gpt-4o").
			SetStatus(status).
			SetCommisID(commisID).
			Save(ctx)
		require.NoError(t, err)
		return j
	}
	runningJob := newJob(commisjob.StatusRunning, "c-orphan")
	queuedJob := newJob(commisjob.StatusQueued, "c-waiting")

	runner, err := client.Runner.Create().
		SetName("edge-1").
		SetSecretHash("salt$hash").
		Save(ctx)
	require.NoError(t, err)
	runnerJob, err := client.RunnerJob.Create().
		SetRunnerID(runner.ID).
		SetCommand("uptime").
		SetStatus(runnerjob.StatusRunning).
		Save(ctx)
	require.NoError(t, err)

	dep, err := client.Deployment.Create().
		SetID("dep-20260825T090000-abc123").
		SetImage("app:2").
		SetStatus(deployment.StatusInProgress).
		Save(ctx)
	require.NoError(t, err)

	newInstance := func(sub string, state instance.DeployState) *ent.Instance {
		i, err := client.Instance.Create().
			SetSubdomain(sub).
			SetContainerName("tenant-" + sub).
			SetDeployID(dep.ID).
			SetDeployState(state).
			Save(ctx)
		require.NoError(t, err)
		return i
	}
	deploying := newInstance("alpha", instance.DeployStateDeploying)
	pending := newInstance("beta", instance.DeployStatePending)
	succeeded := newInstance("gamma", instance.DeployStateSucceeded)

	return &fixture{
		client:         client,
		runningCourse:  runningCourse,
		queuedCourse:   queuedCourse,
		deferredCourse: deferredCourse,
		waitingCourse:  waitingCourse,
		runningJob:     runningJob,
		queuedJob:      queuedJob,
		runnerJob:      runnerJob,
		fiche:          f,
		waitingFiche:   waitingFiche,
		deployment:     dep,
		deploying:      deploying,
		pending:        pending,
		succeeded:      succeeded,
	}
}

func TestStartupSweep(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	fx := seed(t, client.Client)

	stats, err := recovery.New(client.Client, nil).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Courses)
	assert.Equal(t, 1, stats.CommisJobs)
	assert.Equal(t, 1, stats.RunnerJobs)
	assert.Equal(t, 1, stats.Fiches)
	assert.Equal(t, 1, stats.Deployments)
	assert.Equal(t, 2, stats.Instances)

	// Running work is failed with the orphan marker
	c, err := client.Course.Get(ctx, fx.runningCourse.ID)
	require.NoError(t, err)
	assert.Equal(t, course.StatusFailed, c.Status)
	require.NotNil(t, c.Error)
	assert.Equal(t, "Orphaned after server restart", *c.Error)
	assert.NotNil(t, c.FinishedAt)

	j, err := client.CommisJob.Get(ctx, fx.runningJob.ID)
	require.NoError(t, err)
	assert.Equal(t, commisjob.StatusFailed, j.Status)

	rj, err := client.RunnerJob.Get(ctx, fx.runnerJob.ID)
	require.NoError(t, err)
	assert.Equal(t, runnerjob.StatusFailed, rj.Status)

	f, err := client.Fiche.Get(ctx, fx.fiche.ID)
	require.NoError(t, err)
	assert.Equal(t, fiche.StatusIdle, f.Status)

	// Queued and deferred courses die with the pod that made them
	qc, err := client.Course.Get(ctx, fx.queuedCourse.ID)
	require.NoError(t, err)
	assert.Equal(t, course.StatusFailed, qc.Status)
	require.NotNil(t, qc.Error)
	assert.Equal(t, "Orphaned after server restart", *qc.Error)
	dc, err := client.Course.Get(ctx, fx.deferredCourse.ID)
	require.NoError(t, err)
	assert.Equal(t, course.StatusFailed, dc.Status)

	// Queued commis jobs stay claimable
	qj, err := client.CommisJob.Get(ctx, fx.queuedJob.ID)
	require.NoError(t, err)
	assert.Equal(t, commisjob.StatusQueued, qj.Status)

	// The waiting course and its fiche are untouched; the resume path owns them
	wc, err := client.Course.Get(ctx, fx.waitingCourse.ID)
	require.NoError(t, err)
	assert.Equal(t, course.StatusWaiting, wc.Status)
	wf, err := client.Fiche.Get(ctx, fx.waitingFiche.ID)
	require.NoError(t, err)
	assert.Equal(t, fiche.StatusRunning, wf.Status)

	// The interrupted rollout pauses; mid-deploy instances fail, untouched
	// ones are skipped, finished ones keep their state
	dep, err := client.Deployment.Get(ctx, fx.deployment.ID)
	require.NoError(t, err)
	assert.Equal(t, deployment.StatusPaused, dep.Status)

	deploying, err := client.Instance.Get(ctx, fx.deploying.ID)
	require.NoError(t, err)
	assert.Equal(t, instance.DeployStateFailed, deploying.DeployState)
	pending, err := client.Instance.Get(ctx, fx.pending.ID)
	require.NoError(t, err)
	assert.Equal(t, instance.DeployStateSkipped, pending.DeployState)
	done, err := client.Instance.Get(ctx, fx.succeeded.ID)
	require.NoError(t, err)
	assert.Equal(t, instance.DeployStateSucceeded, done.DeployState)
}

func TestSweepIsIdempotent(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	seed(t, client.Client)

	r := recovery.New(client.Client, nil)
	_, err := r.Run(ctx)
	require.NoError(t, err)

	again, err := r.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, &recovery.Stats{}, again)
}

func TestSweepOnEmptyDatabase(t *testing.T) {
	client := testdb.NewTestClient(t)

	start := time.Now()
	stats, err := recovery.New(client.Client, nil).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &recovery.Stats{}, stats)
	assert.Less(t, time.Since(start), 10*time.Second)
}
