package models

import "time"

// EnrollTokenResponse is the body of POST /api/runners/enroll-token. The
// plaintext token is returned exactly once; only its salted hash is stored.
type EnrollTokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// RegisterRunnerRequest is the body of POST /api/runners/register.
type RegisterRunnerRequest struct {
	EnrollToken string                 `json:"enroll_token" binding:"required"`
	Name        string                 `json:"name,omitempty"`
	Labels      map[string]string      `json:"labels,omitempty"`
	Metadata    map[string]interface{} `json:"metadata,omitempty"`
}

// RegisterRunnerResponse carries the runner's one-time secret.
type RegisterRunnerResponse struct {
	RunnerID     int    `json:"runner_id"`
	Name         string `json:"name"`
	RunnerSecret string `json:"runner_secret"`
}

// RotateSecretResponse is the body of POST /api/runners/{id}/rotate-secret.
// Rotation sets the runner back to offline until it reconnects with the new
// secret.
type RotateSecretResponse struct {
	RunnerID     int    `json:"runner_id"`
	RunnerSecret string `json:"runner_secret"`
	Status       string `json:"status"`
}
