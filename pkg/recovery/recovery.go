// Package recovery sweeps state abandoned by a previous process at startup.
// The sweep is ordered and idempotent: running it again (or concurrently from
// another pod) converges to the same state, because every step guards on the
// statuses it repairs.
package recovery

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/ent/commisjob"
	"github.com/oikos-sh/brigade/ent/course"
	"github.com/oikos-sh/brigade/ent/deployment"
	"github.com/oikos-sh/brigade/ent/fiche"
	"github.com/oikos-sh/brigade/ent/instance"
	"github.com/oikos-sh/brigade/ent/runnerjob"
	"github.com/oikos-sh/brigade/pkg/artifact"
)

// orphanError marks work that was in flight when the previous process died.
const orphanError = "Orphaned after server restart"

// deployInterruptedError marks instances caught mid-deploy by a restart.
const deployInterruptedError = "Control plane restarted during deploy"

// Stats counts what the sweep repaired.
type Stats struct {
	Courses     int
	CommisJobs  int
	RunnerJobs  int
	Fiches      int
	Deployments int
	Instances   int
}

// Recoverer runs the startup sweep.
type Recoverer struct {
	db        *ent.Client
	artifacts *artifact.Store
}

// New creates a Recoverer. artifacts may be nil (artifact settlement is then
// skipped).
func New(db *ent.Client, store *artifact.Store) *Recoverer {
	return &Recoverer{db: db, artifacts: store}
}

// Run executes the ordered sweep: courses first (so nothing resumes against
// a half-repaired queue), then commis jobs, runner jobs, fiches, and finally
// the deployer's state. Queued commis jobs are never touched; they stay
// claimable. Courses are different: a course only executes on the pod that
// created it, so queued and deferred courses die with their process and are
// failed alongside running ones.
func (r *Recoverer) Run(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	now := time.Now()

	n, err := r.db.Course.Update().
		Where(course.StatusIn(
			course.StatusRunning,
			course.StatusQueued,
			course.StatusDeferred,
		)).
		SetStatus(course.StatusFailed).
		SetError(orphanError).
		SetFinishedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to recover running courses: %w", err)
	}
	stats.Courses = n

	orphanedJobs, err := r.db.CommisJob.Query().
		Where(commisjob.StatusEQ(commisjob.StatusRunning)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query running commis jobs: %w", err)
	}
	for _, job := range orphanedJobs {
		if err := r.db.CommisJob.UpdateOneID(job.ID).
			SetStatus(commisjob.StatusFailed).
			SetError(orphanError).
			SetFinishedAt(now).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to recover commis job %d: %w", job.ID, err)
		}
		r.settleArtifacts(job.CommisID)
		stats.CommisJobs++
	}

	n, err = r.db.RunnerJob.Update().
		Where(runnerjob.StatusEQ(runnerjob.StatusRunning)).
		SetStatus(runnerjob.StatusFailed).
		SetError(orphanError).
		SetFinishedAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to recover running runner jobs: %w", err)
	}
	stats.RunnerJobs = n

	// A running fiche whose course is parked waiting on a commis is not
	// orphaned; the resume path will pick it up. Only fiches with no live
	// course left are idled.
	n, err = r.db.Fiche.Update().
		Where(
			fiche.StatusEQ(fiche.StatusRunning),
			fiche.Not(fiche.HasCoursesWith(course.StatusIn(
				course.StatusQueued,
				course.StatusRunning,
				course.StatusWaiting,
				course.StatusDeferred,
			))),
		).
		SetStatus(fiche.StatusIdle).
		SetLastError(orphanError).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to recover running fiches: %w", err)
	}
	stats.Fiches = n

	n, err = r.db.Deployment.Update().
		Where(deployment.StatusIn(deployment.StatusPending, deployment.StatusInProgress)).
		SetStatus(deployment.StatusPaused).
		SetError(deployInterruptedError).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to pause interrupted deployments: %w", err)
	}
	stats.Deployments = n

	n, err = r.db.Instance.Update().
		Where(instance.DeployStateEQ(instance.DeployStateDeploying)).
		SetDeployState(instance.DeployStateFailed).
		SetDeployError(deployInterruptedError).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fail mid-deploy instances: %w", err)
	}
	stats.Instances = n

	// Instances queued for the interrupted rollout never started; they are
	// skipped, not failed.
	skipped, err := r.db.Instance.Update().
		Where(instance.DeployStateEQ(instance.DeployStatePending)).
		SetDeployState(instance.DeployStateSkipped).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to skip pending instances: %w", err)
	}
	stats.Instances += skipped

	slog.Info("Startup recovery complete",
		"courses", stats.Courses,
		"commis_jobs", stats.CommisJobs,
		"runner_jobs", stats.RunnerJobs,
		"fiches", stats.Fiches,
		"deployments", stats.Deployments,
		"instances", stats.Instances)
	return stats, nil
}

// settleArtifacts mirrors the orphan failure into the artifact store.
// Best-effort: the DB row is the source of truth for job status.
func (r *Recoverer) settleArtifacts(commisID string) {
	if r.artifacts == nil {
		return
	}
	if err := r.artifacts.Complete(commisID, artifact.StatusFailed, orphanError); err != nil {
		slog.Warn("Failed to settle orphaned commis artifacts",
			"commis_id", commisID, "error", err)
	}
}
