// Package config loads application configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the umbrella configuration object returned by Load() and passed
// to every component at startup.
type Config struct {
	// ListenAddr is the HTTP server bind address, e.g. ":8080".
	ListenAddr string

	// DataDir is the artifact store root.
	DataDir string

	// AdminToken guards operator-only endpoints (deployments, enroll tokens).
	AdminToken string

	// JWTSecret signs user API tokens.
	JWTSecret string

	// SealKey is the 32-byte symmetric key (base64) used to encrypt connector
	// credentials at rest.
	SealKey string

	// HatchBinary is the external workspace-mode agent binary.
	HatchBinary string

	LLM    LLMConfig
	Queue  *QueueConfig
	Deploy *DeployConfig
	MCP    []MCPServerConfig
}

// LLMConfig configures the OpenAI-compatible chat completion client.
type LLMConfig struct {
	APIKey       string
	BaseURL      string
	DefaultModel string
	Timeout      time.Duration
}

// Load reads configuration from environment variables, applying defaults.
// Call godotenv.Load() before this to honor a local .env file.
func Load() (*Config, error) {
	cfg := &Config{
		ListenAddr:  getEnv("LISTEN_ADDR", ":8080"),
		DataDir:     getEnv("DATA_DIR", "./data/commis"),
		AdminToken:  os.Getenv("ADMIN_TOKEN"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		SealKey:     os.Getenv("CREDENTIAL_SEAL_KEY"),
		HatchBinary: getEnv("HATCH_BINARY", "hatch"),
		LLM: LLMConfig{
			APIKey:       os.Getenv("LLM_API_KEY"),
			BaseURL:      os.Getenv("LLM_BASE_URL"),
			DefaultModel: getEnv("LLM_DEFAULT_MODEL", "gpt-4o"),
			Timeout:      getEnvDuration("LLM_TIMEOUT", 120*time.Second),
		},
		Queue:  LoadQueueConfig(),
		Deploy: LoadDeployConfig(),
	}

	mcp, err := LoadMCPServers()
	if err != nil {
		return nil, fmt.Errorf("failed to load MCP server config: %w", err)
	}
	cfg.MCP = mcp

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that required settings are present and consistent.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("LLM_API_KEY is required")
	}
	if c.Queue.MaxConcurrentJobs < 1 {
		return fmt.Errorf("QUEUE_MAX_CONCURRENT_JOBS must be at least 1: got %d", c.Queue.MaxConcurrentJobs)
	}
	if c.Deploy.DefaultMaxParallel < 1 {
		return fmt.Errorf("DEPLOY_DEFAULT_MAX_PARALLEL must be at least 1: got %d", c.Deploy.DefaultMaxParallel)
	}
	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return defaultVal
	}
	return d
}
