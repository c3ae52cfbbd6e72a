package config

import "time"

// DeployConfig contains rolling deployer configuration.
type DeployConfig struct {
	// ProvisionerBaseURL is the data-plane provisioner endpoint.
	ProvisionerBaseURL string

	// ProvisionerToken authenticates provisioner calls.
	ProvisionerToken string

	// DefaultMaxParallel is the cohort size used when a deployment request
	// does not specify one.
	DefaultMaxParallel int

	// DefaultFailureThreshold is the failure budget used when a deployment
	// request does not specify one.
	DefaultFailureThreshold int

	// HealthTimeout bounds the post-provision health wait per instance.
	HealthTimeout time.Duration

	// HealthInterval is the poll interval during the health wait.
	HealthInterval time.Duration
}

// LoadDeployConfig returns deployer configuration from the environment with
// built-in defaults.
func LoadDeployConfig() *DeployConfig {
	return &DeployConfig{
		ProvisionerBaseURL:      getEnv("PROVISIONER_BASE_URL", "http://localhost:9090"),
		ProvisionerToken:        getEnv("PROVISIONER_TOKEN", ""),
		DefaultMaxParallel:      getEnvInt("DEPLOY_DEFAULT_MAX_PARALLEL", 1),
		DefaultFailureThreshold: getEnvInt("DEPLOY_DEFAULT_FAILURE_THRESHOLD", 1),
		HealthTimeout:           getEnvDuration("DEPLOY_HEALTH_TIMEOUT", 2*time.Minute),
		HealthInterval:          getEnvDuration("DEPLOY_HEALTH_INTERVAL", 3*time.Second),
	}
}
