// Brigade control plane server: HTTP API, course and commis dispatcher,
// event spine, and the rolling deployer.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/oikos-sh/brigade/pkg/agent"
	"github.com/oikos-sh/brigade/pkg/api"
	"github.com/oikos-sh/brigade/pkg/artifact"
	"github.com/oikos-sh/brigade/pkg/auth"
	"github.com/oikos-sh/brigade/pkg/config"
	"github.com/oikos-sh/brigade/pkg/database"
	"github.com/oikos-sh/brigade/pkg/deploy"
	"github.com/oikos-sh/brigade/pkg/dispatch"
	"github.com/oikos-sh/brigade/pkg/events"
	"github.com/oikos-sh/brigade/pkg/mcp"
	"github.com/oikos-sh/brigade/pkg/recovery"
	"github.com/oikos-sh/brigade/pkg/services"
	"github.com/oikos-sh/brigade/pkg/tools"
	"github.com/oikos-sh/brigade/pkg/version"
	"github.com/oikos-sh/brigade/pkg/workspace"
)

// conciergeMaxTurns bounds a single concierge execution segment.
const conciergeMaxTurns = 30

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	envFile := flag.String("env-file", getEnv("ENV_FILE", ".env"), "Path to .env file")
	flag.Parse()

	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envFile, "error", err)
	}

	podID := resolvePodID()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Starting brigade",
		"version", version.Full(), "pod_id", podID, "listen_addr", cfg.ListenAddr)

	// Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// Artifact store
	store, err := artifact.NewStore(cfg.DataDir)
	if err != nil {
		slog.Error("Failed to open artifact store", "root", cfg.DataDir, "error", err)
		os.Exit(1)
	}

	// Startup recovery: settle rows orphaned by a previous crash before any
	// worker claims new work.
	if stats, err := recovery.New(dbClient.Client, store).Run(ctx); err != nil {
		slog.Error("Startup recovery failed", "error", err)
	} else {
		slog.Info("Startup recovery complete",
			"courses", stats.Courses,
			"commis_jobs", stats.CommisJobs,
			"runner_jobs", stats.RunnerJobs,
			"fiches", stats.Fiches,
			"deployments", stats.Deployments,
			"instances", stats.Instances)
	}

	// Event spine
	emitter := events.NewEmitter(dbClient.DB())
	eventSvc := services.NewEventService(dbClient.Client, dbClient.DB(), emitter)
	broker := events.NewBroker(eventSvc)
	listener := events.NewNotifyListener(dbConfig.DSN(), broker)
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)
	broker.SetListener(listener)
	slog.Info("Event spine initialized")

	// Auth
	tokens := auth.NewTokenManager(cfg.JWTSecret)
	var sealer *auth.Sealer
	if cfg.SealKey != "" {
		if sealer, err = auth.NewSealer(cfg.SealKey); err != nil {
			slog.Error("Failed to initialize credential sealer", "error", err)
			os.Exit(1)
		}
	}

	// LLM client
	llmClient, err := agent.NewOpenAIClient(&cfg.LLM)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "error", err)
		os.Exit(1)
	}

	// Tool registry: builtins, artifact browsing, then MCP server tools.
	registry := tools.NewRegistry()
	registry.Register(&tools.CurrentTimeTool{})
	registry.Register(tools.NewHTTPGetTool())
	registry.Register(tools.NewListCommisTool(store))
	registry.Register(tools.NewGetCommisResultTool(store))
	registry.Register(tools.NewSearchCommisTool(store))

	mcpPool := mcp.NewPool(cfg.MCP)
	mcpPool.Connect(ctx)
	defer mcpPool.Close()
	mcp.RegisterTools(ctx, mcpPool, registry)
	if failed := mcpPool.Failed(); len(failed) > 0 {
		slog.Warn("Some MCP servers are unavailable", "failed", failed)
	}

	// Concierge and domain services
	ficheRunner := agent.NewFicheRunner(dbClient.Client, llmClient, registry, eventSvc,
		conciergeMaxTurns, cfg.Queue.RecentCommisLimit)
	concierge := services.NewConciergeService(dbClient.Client, ficheRunner, eventSvc, store, cfg.LLM.DefaultModel)
	registry.Register(tools.NewSpawnCommisTool(concierge))

	courseSvc := services.NewCourseService(dbClient.Client, eventSvc)
	timelineSvc := services.NewTimelineService(eventSvc, courseSvc)
	runnerSvc := services.NewRunnerService(dbClient.Client)
	userSvc := services.NewUserService(dbClient.Client, sealer)

	// Commis execution and dispatcher
	wsRunner := workspace.NewRunner(cfg.HatchBinary, store, os.TempDir())
	executor := dispatch.NewStandardExecutor(llmClient, registry, store, wsRunner, 0)
	dispatcher := dispatch.NewDispatcher(podID, dbClient.Client, cfg.Queue,
		executor, concierge, concierge, eventSvc, store)
	if err := dispatcher.Start(ctx); err != nil {
		slog.Error("Failed to start dispatcher", "error", err)
		os.Exit(1)
	}

	// Rolling deployer
	provisioner := deploy.NewHTTPProvisioner(cfg.Deploy)
	deployEngine := deploy.NewEngine(dbClient.Client, provisioner, cfg.Deploy)
	deploySvc := deploy.NewService(dbClient.Client, deployEngine, cfg.Deploy)

	// HTTP server
	server := api.NewServer(cfg, api.Deps{
		DB:          dbClient,
		Courses:     courseSvc,
		Concierge:   concierge,
		Timeline:    timelineSvc,
		Events:      eventSvc,
		Runners:     runnerSvc,
		Users:       userSvc,
		Deployments: deploySvc,
		Broker:      broker,
		Dispatcher:  dispatcher,
		Tokens:      tokens,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil {
			errCh <- err
		}
	}()
	slog.Info("Brigade started", "pod_id", podID, "commis_workers", cfg.Queue.MaxConcurrentJobs)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Graceful shutdown: drain the dispatcher within its budget, then the
	// HTTP server. Jobs that outlive the budget are stale-reclaimed on the
	// next startup.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		dispatcher.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Dispatcher stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Dispatcher shutdown timeout exceeded, in-flight jobs will be reclaimed")
	}

	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := server.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
