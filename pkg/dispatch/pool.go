package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/ent/commisjob"
	"github.com/oikos-sh/brigade/ent/course"
	"github.com/oikos-sh/brigade/pkg/artifact"
	"github.com/oikos-sh/brigade/pkg/config"
)

// Dispatcher owns the worker goroutines: commis workers, one course worker,
// and the stale-reclaim scan.
type Dispatcher struct {
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executor  JobExecutor
	courses   CourseExecutor
	resumer   ConciergeResumer
	events    EventSink
	artifacts *artifact.Store

	commisWorkers []*commisWorker
	courseWorker  *courseWorker
	stopCh        chan struct{}
	stopOnce      sync.Once
	wg            sync.WaitGroup

	// Active job cancel registry: job id → cancel function
	activeJobs map[int]context.CancelFunc
	mu         sync.RWMutex
	started    bool

	stale staleState
}

type staleState struct {
	mu            sync.Mutex
	lastStaleScan time.Time
	reclaimed     int
}

// NewDispatcher creates a Dispatcher. events and store may be nil; event
// emission and artifact settlement are then skipped.
func NewDispatcher(podID string, client *ent.Client, cfg *config.QueueConfig, executor JobExecutor, courses CourseExecutor, resumer ConciergeResumer, events EventSink, store *artifact.Store) *Dispatcher {
	return &Dispatcher{
		podID:      podID,
		client:     client,
		config:     cfg,
		executor:   executor,
		courses:    courses,
		resumer:    resumer,
		events:     events,
		artifacts:  store,
		stopCh:     make(chan struct{}),
		activeJobs: make(map[int]context.CancelFunc),
	}
}

// Start spawns the workers and the stale-reclaim task. Safe to call more
// than once; duplicates are ignored.
func (d *Dispatcher) Start(ctx context.Context) error {
	if d.started {
		slog.Warn("Dispatcher already started, ignoring duplicate Start call", "pod_id", d.podID)
		return nil
	}
	d.started = true

	slog.Info("Starting dispatcher",
		"pod_id", d.podID, "commis_workers", d.config.MaxConcurrentJobs)

	for i := 0; i < d.config.MaxConcurrentJobs; i++ {
		w := newCommisWorker(fmt.Sprintf("%s-commis-%d", d.podID, i), d)
		d.commisWorkers = append(d.commisWorkers, w)
		w.Start(ctx)
	}

	d.courseWorker = newCourseWorker(d.podID+"-course", d)
	d.courseWorker.Start(ctx)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.runStaleReclaim(ctx)
	}()

	slog.Info("Dispatcher started")
	return nil
}

// Stop signals all workers to stop and waits for them. Workers finish their
// current work before exiting.
func (d *Dispatcher) Stop() {
	slog.Info("Stopping dispatcher gracefully")

	active := d.activeJobIDs()
	if len(active) > 0 {
		slog.Info("Waiting for active jobs to complete", "count", len(active), "job_ids", active)
	}

	for _, w := range d.commisWorkers {
		w.Stop()
	}
	if d.courseWorker != nil {
		d.courseWorker.Stop()
	}

	d.stopOnce.Do(func() { close(d.stopCh) })
	d.wg.Wait()

	slog.Info("Dispatcher stopped gracefully")
}

// registerJob stores a cancel function for manual cancellation.
func (d *Dispatcher) registerJob(jobID int, cancel context.CancelFunc) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.activeJobs[jobID] = cancel
}

// unregisterJob removes the cancel function when processing ends.
func (d *Dispatcher) unregisterJob(jobID int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	delete(d.activeJobs, jobID)
}

// CancelJob triggers context cancellation for a job running on this pod.
func (d *Dispatcher) CancelJob(jobID int) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if cancel, ok := d.activeJobs[jobID]; ok {
		cancel()
		return true
	}
	return false
}

// Health returns the dispatcher's health snapshot.
func (d *Dispatcher) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := d.client.CommisJob.Query().
		Where(commisjob.StatusEQ(commisjob.StatusQueued)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check", "error", errQ)
	}
	courseBacklog, errC := d.client.Course.Query().
		Where(course.StatusEQ(course.StatusQueued)).
		Count(ctx)
	if errC != nil {
		slog.Error("Failed to query course backlog for health check", "error", errC)
	}

	d.mu.RLock()
	active := len(d.activeJobs)
	d.mu.RUnlock()

	d.stale.mu.Lock()
	lastScan := d.stale.lastStaleScan
	reclaimed := d.stale.reclaimed
	d.stale.mu.Unlock()

	dbHealthy := errQ == nil && errC == nil
	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	} else if errC != nil {
		dbError = fmt.Sprintf("course backlog query failed: %v", errC)
	}

	return &PoolHealth{
		IsHealthy:      dbHealthy && len(d.commisWorkers) > 0,
		DBReachable:    dbHealthy,
		DBError:        dbError,
		PodID:          d.podID,
		ActiveJobs:     active,
		MaxConcurrent:  d.config.MaxConcurrentJobs,
		QueueDepth:     queueDepth,
		CourseBacklog:  courseBacklog,
		LastStaleScan:  lastScan,
		StaleReclaimed: reclaimed,
	}
}

func (d *Dispatcher) activeJobIDs() []int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	ids := make([]int, 0, len(d.activeJobs))
	for id := range d.activeJobs {
		ids = append(ids, id)
	}
	return ids
}
