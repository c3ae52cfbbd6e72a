package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/oikos-sh/brigade/ent/commisjob"
	"github.com/oikos-sh/brigade/pkg/artifact"
	"github.com/oikos-sh/brigade/pkg/events"
)

// staleJobError marks jobs reclaimed because their worker stopped
// heartbeating, typically a crashed or partitioned pod.
const staleJobError = "job heartbeat expired, worker presumed dead"

// runStaleReclaim periodically fails running jobs whose heartbeat is older
// than the stale threshold and delivers the failure to their waiting courses.
// Every pod runs this scan; per-row updates guard on status, so concurrent
// scans converge.
func (d *Dispatcher) runStaleReclaim(ctx context.Context) {
	ticker := time.NewTicker(d.config.StaleScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			reclaimed, err := d.reclaimStaleJobs(ctx)
			if err != nil {
				slog.Error("Stale job scan failed", "error", err)
			}
			d.stale.mu.Lock()
			d.stale.lastStaleScan = time.Now()
			d.stale.reclaimed += reclaimed
			d.stale.mu.Unlock()
		}
	}
}

func (d *Dispatcher) reclaimStaleJobs(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-d.config.StaleThreshold)

	stale, err := d.client.CommisJob.Query().
		Where(
			commisjob.StatusEQ(commisjob.StatusRunning),
			commisjob.LastHeartbeatAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query stale jobs: %w", err)
	}
	if len(stale) == 0 {
		return 0, nil
	}

	reclaimed := 0
	for _, job := range stale {
		// Guard on status in the update itself; a job finalized between the
		// query and here is left alone.
		n, err := d.client.CommisJob.Update().
			Where(
				commisjob.IDEQ(job.ID),
				commisjob.StatusEQ(commisjob.StatusRunning),
				commisjob.LastHeartbeatAtLT(cutoff),
			).
			SetStatus(commisjob.StatusFailed).
			SetError(staleJobError).
			SetFinishedAt(time.Now()).
			Save(ctx)
		if err != nil {
			slog.Error("Failed to reclaim stale job", "job_id", job.ID, "error", err)
			continue
		}
		if n == 0 {
			continue
		}
		reclaimed++

		slog.Warn("Reclaimed stale commis job",
			"job_id", job.ID, "commis_id", job.CommisID,
			"last_heartbeat_at", job.LastHeartbeatAt)

		if d.artifacts != nil {
			if err := d.artifacts.Complete(job.CommisID, artifact.StatusFailed, staleJobError); err != nil {
				slog.Warn("Failed to settle stale commis artifacts",
					"commis_id", job.CommisID, "error", err)
			}
		}

		if d.events != nil && job.ConciergeCourseID != nil {
			d.events.Emit(ctx, *job.ConciergeCourseID, job.OwnerID, events.EventCommisComplete, events.CommisCompletePayload{
				JobID:    job.ID,
				CommisID: job.CommisID,
				Status:   string(commisjob.StatusFailed),
				Error:    staleJobError,
				OwnerID:  job.OwnerID,
			}.Map())
		}

		// Unwedge the waiting course so the concierge can report the failure
		if d.resumer != nil {
			if err := d.resumer.ResumeWithCommisResult(ctx, job.ID, string(commisjob.StatusFailed), staleJobError); err != nil {
				slog.Error("Failed to resume course for stale job",
					"job_id", job.ID, "error", err)
			}
		}
	}
	return reclaimed, nil
}
