// Package models defines request/response shapes and shared domain values
// used across services, the dispatcher, and the HTTP API.
package models

// Course statuses. Terminal = {success, failed, cancelled}.
const (
	CourseQueued    = "queued"
	CourseRunning   = "running"
	CourseSuccess   = "success"
	CourseFailed    = "failed"
	CourseCancelled = "cancelled"
	CourseWaiting   = "waiting"
	CourseDeferred  = "deferred"
)

// CourseTerminal reports whether a course status is terminal.
func CourseTerminal(status string) bool {
	switch status {
	case CourseSuccess, CourseFailed, CourseCancelled:
		return true
	}
	return false
}

// CommisJob statuses. Terminal = {success, failed, timeout}.
const (
	JobQueued  = "queued"
	JobRunning = "running"
	JobSuccess = "success"
	JobFailed  = "failed"
	JobTimeout = "timeout"
)

// JobTerminal reports whether a commis job status is terminal.
func JobTerminal(status string) bool {
	switch status {
	case JobSuccess, JobFailed, JobTimeout:
		return true
	}
	return false
}

// Deployment statuses. Non-terminal = {pending, in_progress, paused}.
const (
	DeployPending    = "pending"
	DeployInProgress = "in_progress"
	DeployPaused     = "paused"
	DeployCompleted  = "completed"
	DeployFailed     = "failed"
)

// DeploymentLive reports whether a deployment status is non-terminal.
func DeploymentLive(status string) bool {
	switch status {
	case DeployPending, DeployInProgress, DeployPaused:
		return true
	}
	return false
}

// Instance deploy states.
const (
	DeployStateIdle       = "idle"
	DeployStatePending    = "pending"
	DeployStateDeploying  = "deploying"
	DeployStateSucceeded  = "succeeded"
	DeployStateFailed     = "failed"
	DeployStateRolledBack = "rolled_back"
	DeployStateSkipped    = "skipped"
)

// Commis execution modes.
const (
	ModeStandard  = "standard"
	ModeWorkspace = "workspace"
)

// JobMode extracts the execution mode from a commis job config, defaulting
// to standard.
func JobMode(config map[string]interface{}) string {
	if config == nil {
		return ModeStandard
	}
	if mode, ok := config["mode"].(string); ok && mode != "" {
		return mode
	}
	return ModeStandard
}
