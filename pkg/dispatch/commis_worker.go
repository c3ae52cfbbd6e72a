package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/ent/commisjob"
	"github.com/oikos-sh/brigade/pkg/events"
)

// commisWorker polls for and processes commis jobs.
type commisWorker struct {
	id         string
	dispatcher *Dispatcher
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

func newCommisWorker(id string, d *Dispatcher) *commisWorker {
	return &commisWorker{
		id:         id,
		dispatcher: d,
		stopCh:     make(chan struct{}),
	}
}

// Start begins the polling loop in a goroutine.
func (w *commisWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish its current job.
func (w *commisWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

func (w *commisWorker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Commis worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Commis worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, commis worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoWorkAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing commis job", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

func (w *commisWorker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

func (w *commisWorker) pollAndProcess(ctx context.Context) error {
	d := w.dispatcher

	job, err := w.claimNextJob(ctx)
	if err != nil {
		return err
	}

	log := slog.With("job_id", job.ID, "commis_id", job.CommisID, "worker_id", w.id)
	log.Info("Commis job claimed")

	startedAt := time.Now()
	if d.events != nil && job.ConciergeCourseID != nil {
		d.events.Emit(ctx, *job.ConciergeCourseID, job.OwnerID, events.EventCommisStarted, map[string]interface{}{
			"job_id":    job.ID,
			"commis_id": job.CommisID,
		})
	}

	jobCtx, cancelJob := context.WithTimeout(ctx, d.config.JobTimeout)
	defer cancelJob()

	d.registerJob(job.ID, cancelJob)
	defer d.unregisterJob(job.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(jobCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, job.ID)

	result := d.executor.Execute(jobCtx, job)

	// Synthesize a safe result when the executor returned nil
	synthesized := result == nil
	if result == nil {
		switch {
		case errors.Is(jobCtx.Err(), context.DeadlineExceeded):
			result = &JobResult{
				Status: string(commisjob.StatusTimeout),
				Error:  fmt.Errorf("job timed out after %v", d.config.JobTimeout),
			}
		default:
			result = &JobResult{
				Status: string(commisjob.StatusFailed),
				Error:  fmt.Errorf("executor returned nil result"),
			}
		}
	}
	if result.Status == "" {
		if errors.Is(jobCtx.Err(), context.DeadlineExceeded) {
			result.Status = string(commisjob.StatusTimeout)
		} else {
			result.Status = string(commisjob.StatusFailed)
		}
	}

	cancelHeartbeat()

	// Terminal update on a background context; jobCtx may be dead
	if err := w.finalizeJob(context.Background(), job, result); err != nil {
		log.Error("Failed to finalize commis job", "error", err)
		return err
	}

	// The executor settles its own artifacts; synthesized results bypass it
	if synthesized && d.artifacts != nil {
		var errMsg string
		if result.Error != nil {
			errMsg = result.Error.Error()
		}
		if err := d.artifacts.Complete(job.CommisID, result.Status, errMsg); err != nil {
			log.Warn("Failed to settle commis artifacts", "error", err)
		}
	}

	if d.events != nil && job.ConciergeCourseID != nil {
		payload := events.CommisCompletePayload{
			JobID:      job.ID,
			CommisID:   job.CommisID,
			Status:     result.Status,
			DurationMs: time.Since(startedAt).Milliseconds(),
			OwnerID:    job.OwnerID,
		}
		if result.Error != nil {
			payload.Error = result.Error.Error()
		}
		d.events.Emit(context.Background(), *job.ConciergeCourseID, job.OwnerID, events.EventCommisComplete, payload.Map())
	}

	// Deliver the result to the waiting concierge course. The resume path is
	// idempotent; failures here are retried by nothing, so log loudly.
	if d.resumer != nil {
		if err := d.resumer.ResumeWithCommisResult(context.Background(), job.ID, result.Status, result.Result); err != nil {
			log.Error("Failed to resume concierge course", "error", err)
		}
	}

	log.Info("Commis job complete", "status", result.Status)
	return nil
}

// claimNextJob atomically claims the oldest queued job using FOR UPDATE SKIP
// LOCKED. The queued → running transition happens only here.
func (w *commisWorker) claimNextJob(ctx context.Context) (*ent.CommisJob, error) {
	d := w.dispatcher

	tx, err := d.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	job, err := tx.CommisJob.Query().
		Where(commisjob.StatusEQ(commisjob.StatusQueued)).
		Order(ent.Asc(commisjob.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoWorkAvailable
		}
		return nil, fmt.Errorf("failed to query queued jobs: %w", err)
	}

	now := time.Now()
	job, err = job.Update().
		SetStatus(commisjob.StatusRunning).
		SetStartedAt(now).
		SetLastHeartbeatAt(now).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim job: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return job, nil
}

// runHeartbeat periodically refreshes last_heartbeat_at for stale detection.
func (w *commisWorker) runHeartbeat(ctx context.Context, jobID int) {
	ticker := time.NewTicker(w.dispatcher.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.dispatcher.client.CommisJob.UpdateOneID(jobID).
				SetLastHeartbeatAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "job_id", jobID, "error", err)
			}
		}
	}
}

// finalizeJob writes the terminal job status.
func (w *commisWorker) finalizeJob(ctx context.Context, job *ent.CommisJob, result *JobResult) error {
	update := w.dispatcher.client.CommisJob.UpdateOneID(job.ID).
		SetStatus(commisjob.Status(result.Status)).
		SetFinishedAt(time.Now())
	if result.Error != nil {
		update = update.SetError(result.Error.Error())
	}
	return update.Exec(ctx)
}

func (w *commisWorker) pollInterval() time.Duration {
	base := w.dispatcher.config.PollInterval
	jitter := w.dispatcher.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}
