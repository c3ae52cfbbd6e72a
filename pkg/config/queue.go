package config

import "time"

// QueueConfig contains dispatcher and worker pool configuration.
// These values control how commis jobs are polled, claimed, and processed.
type QueueConfig struct {
	// MaxConcurrentJobs is the number of jobs a single claim may take and the
	// cap on jobs executing concurrently in this process.
	MaxConcurrentJobs int

	// PollInterval is the base interval for checking queued jobs.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// JobTimeout is the maximum time a commis job may run. On breach the
	// job's subprocess is killed (workspace mode) or the run is abandoned
	// with a timeout status (standard mode).
	JobTimeout time.Duration

	// HeartbeatInterval is how often a running job refreshes
	// last_heartbeat_at.
	HeartbeatInterval time.Duration

	// StaleScanInterval is how often to scan for running jobs whose owner
	// process died without finalizing them.
	StaleScanInterval time.Duration

	// StaleThreshold is how long a running job may go without a heartbeat
	// before it is reclaimed as failed.
	StaleThreshold time.Duration

	// GracefulShutdownTimeout is the max time to wait for active jobs to
	// complete during shutdown.
	GracefulShutdownTimeout time.Duration

	// RecentCommisLimit is how many of the owner's recent commis jobs are
	// listed in the concierge's injected context message.
	RecentCommisLimit int
}

// LoadQueueConfig returns queue configuration from the environment with
// built-in defaults.
func LoadQueueConfig() *QueueConfig {
	return &QueueConfig{
		MaxConcurrentJobs:       getEnvInt("QUEUE_MAX_CONCURRENT_JOBS", 5),
		PollInterval:            getEnvDuration("QUEUE_POLL_INTERVAL", 1*time.Second),
		PollIntervalJitter:      getEnvDuration("QUEUE_POLL_JITTER", 500*time.Millisecond),
		JobTimeout:              getEnvDuration("QUEUE_JOB_TIMEOUT", 15*time.Minute),
		HeartbeatInterval:       getEnvDuration("QUEUE_HEARTBEAT_INTERVAL", 30*time.Second),
		StaleScanInterval:       getEnvDuration("QUEUE_STALE_SCAN_INTERVAL", 5*time.Minute),
		StaleThreshold:          getEnvDuration("QUEUE_STALE_THRESHOLD", 5*time.Minute),
		GracefulShutdownTimeout: getEnvDuration("QUEUE_SHUTDOWN_TIMEOUT", 15*time.Minute),
		RecentCommisLimit:       getEnvInt("QUEUE_RECENT_COMMIS_LIMIT", 5),
	}
}
