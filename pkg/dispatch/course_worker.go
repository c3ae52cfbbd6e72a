package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/ent/course"
)

// courseWorker polls for queued courses and drives each to its next
// settlement point (success, failed, or waiting on a commis).
type courseWorker struct {
	id         string
	dispatcher *Dispatcher
	stopCh     chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

func newCourseWorker(id string, d *Dispatcher) *courseWorker {
	return &courseWorker{
		id:         id,
		dispatcher: d,
		stopCh:     make(chan struct{}),
	}
}

func (w *courseWorker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

func (w *courseWorker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

func (w *courseWorker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id)
	log.Info("Course worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Course worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, course worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoWorkAvailable) {
					w.sleep(w.dispatcher.config.PollInterval)
					continue
				}
				log.Error("Error processing course", "error", err)
				w.sleep(time.Second)
			}
		}
	}
}

func (w *courseWorker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

func (w *courseWorker) pollAndProcess(ctx context.Context) error {
	c, err := w.claimNextCourse(ctx)
	if err != nil {
		return err
	}

	log := slog.With("course_id", c.ID, "worker_id", w.id)
	log.Info("Course claimed")

	// ExecuteCourse settles the course itself, including on error. The error
	// comes back so the worker can log it; there is nothing left to repair.
	if err := w.dispatcher.courses.ExecuteCourse(ctx, c.ID); err != nil {
		log.Error("Course execution failed", "error", err)
	} else {
		log.Info("Course settled")
	}
	return nil
}

// claimNextCourse atomically claims the oldest queued course. WAITING courses
// are never claimable here; only resume delivery moves them.
func (w *courseWorker) claimNextCourse(ctx context.Context) (*ent.Course, error) {
	tx, err := w.dispatcher.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	c, err := tx.Course.Query().
		Where(course.StatusEQ(course.StatusQueued)).
		Order(ent.Asc(course.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoWorkAvailable
		}
		return nil, fmt.Errorf("failed to query queued courses: %w", err)
	}

	c, err = c.Update().
		SetStatus(course.StatusRunning).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim course: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return c, nil
}
