package models

import "time"

// CreateDeploymentRequest is the body of POST /api/deployments.
type CreateDeploymentRequest struct {
	Image            string `json:"image" binding:"required"`
	MaxParallel      int    `json:"max_parallel,omitempty"`
	FailureThreshold int    `json:"failure_threshold,omitempty"`
	DryRun           bool   `json:"dry_run,omitempty"`
	// Force is accepted for API compatibility but never overrides the
	// single-live-deployment guard.
	Force bool `json:"force,omitempty"`
}

// InstanceDeployView is the per-instance slice of a deployment status.
type InstanceDeployView struct {
	ID          int    `json:"id"`
	Subdomain   string `json:"subdomain"`
	DeployRing  int    `json:"deploy_ring"`
	DeployState string `json:"deploy_state"`
	DeployError string `json:"deploy_error,omitempty"`
}

// DeploymentStatus is the body of GET /api/deployments/{id}.
type DeploymentStatus struct {
	ID               string               `json:"id"`
	Image            string               `json:"image"`
	Status           string               `json:"status"`
	MaxParallel      int                  `json:"max_parallel"`
	FailureThreshold int                  `json:"failure_threshold"`
	FailureCount     int                  `json:"failure_count"`
	Error            string               `json:"error,omitempty"`
	CreatedAt        time.Time            `json:"created_at"`
	FinishedAt       *time.Time           `json:"finished_at,omitempty"`
	Counts           DeployCounts         `json:"counts"`
	Instances        []InstanceDeployView `json:"instances,omitempty"`
}

// DeployCounts aggregates instance deploy states for a deployment.
type DeployCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Succeeded  int `json:"succeeded"`
	Failed     int `json:"failed"`
	RolledBack int `json:"rolled_back"`
	Skipped    int `json:"skipped"`
}

// DryRunResponse lists the instances a deployment would target, without
// mutating anything.
type DryRunResponse struct {
	Image     string               `json:"image"`
	DryRun    bool                 `json:"dry_run"`
	Instances []InstanceDeployView `json:"instances"`
}

// RollbackRequest is the body of POST /api/deployments/{id}/rollback.
type RollbackRequest struct {
	Scope string `json:"scope,omitempty"`
}
