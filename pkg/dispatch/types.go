// Package dispatch runs the worker pool that claims and executes queued
// courses and commis jobs. Claims are atomic row locks; two pods can share
// one queue safely.
package dispatch

import (
	"context"
	"errors"
	"time"

	"github.com/oikos-sh/brigade/ent"
)

// Sentinel errors for dispatch operations.
var (
	// ErrNoWorkAvailable indicates nothing is queued.
	ErrNoWorkAvailable = errors.New("no work available")

	// ErrAtCapacity indicates the global concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// JobExecutor executes one claimed commis job. The executor writes artifacts
// progressively during execution; the worker handles claiming, heartbeat,
// terminal status, and concierge resume.
type JobExecutor interface {
	Execute(ctx context.Context, job *ent.CommisJob) *JobResult
}

// JobResult is the terminal outcome of a commis job execution.
type JobResult struct {
	Status string // success, failed, timeout
	Result string // canonical result text
	Error  error
}

// CourseExecutor executes one claimed course to its next settlement point.
// Implemented by services.ConciergeService.
type CourseExecutor interface {
	ExecuteCourse(ctx context.Context, courseID int) error
}

// ConciergeResumer delivers a finished commis result to its waiting course.
// Implemented by services.ConciergeService.
type ConciergeResumer interface {
	ResumeWithCommisResult(ctx context.Context, jobID int, jobStatus, result string) error
}

// EventSink receives course events from the dispatcher. Emission is
// fire-and-forget. Implemented by services.EventService.
type EventSink interface {
	Emit(ctx context.Context, courseID, ownerID int, eventType string, payload map[string]interface{})
}

// PoolHealth is the dispatcher's health snapshot.
type PoolHealth struct {
	IsHealthy      bool      `json:"is_healthy"`
	DBReachable    bool      `json:"db_reachable"`
	DBError        string    `json:"db_error,omitempty"`
	PodID          string    `json:"pod_id"`
	ActiveJobs     int       `json:"active_jobs"`
	MaxConcurrent  int       `json:"max_concurrent"`
	QueueDepth     int       `json:"queue_depth"`
	CourseBacklog  int       `json:"course_backlog"`
	LastStaleScan  time.Time `json:"last_stale_scan"`
	StaleReclaimed int       `json:"stale_reclaimed"`
}
