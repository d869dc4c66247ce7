// Forge execution engine — accepts ticket batches over HTTP, dispatches them
// to coding agents in VM slots, and drives every ticket through verification
// to a reviewed pull request.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/forgeworks/forge/ent/ticket"
	"github.com/forgeworks/forge/pkg/api"
	"github.com/forgeworks/forge/pkg/config"
	"github.com/forgeworks/forge/pkg/database"
	"github.com/forgeworks/forge/pkg/gitforge"
	"github.com/forgeworks/forge/pkg/notify"
	"github.com/forgeworks/forge/pkg/retry"
	"github.com/forgeworks/forge/pkg/scheduler"
	"github.com/forgeworks/forge/pkg/services"
	"github.com/forgeworks/forge/pkg/sweep"
	"github.com/forgeworks/forge/pkg/verification"
	"github.com/forgeworks/forge/pkg/vmpool"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolveEngineID determines this engine's identity for multi-replica
// coordination and startup lease recovery.
// Priority: ENGINE_ID env > HOSTNAME env > "local"
func resolveEngineID() string {
	if id := os.Getenv("ENGINE_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	pidFile := flag.String("pid-file",
		getEnv("PID_FILE", ""),
		"Write the engine PID to this file at startup (empty disables)")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	httpPort := getEnv("HTTP_PORT", "8080")
	engineID := resolveEngineID()

	slog.Info("Starting forge",
		"http_port", httpPort,
		"engine_id", engineID,
		"config_dir", *configDir)

	ctx := context.Background()

	// 1. Initialize configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Initialize database
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

	// Probe the generated schema against the migrated database so drift
	// fails the boot, not the first request.
	if _, err := dbClient.Ticket.Query().Count(ctx); err != nil {
		slog.Error("Schema probe failed", "error", err)
		os.Exit(1)
	}

	// 3. PID marker for process supervisors
	if *pidFile != "" {
		if err := os.WriteFile(*pidFile, []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
			slog.Error("Failed to write PID file", "path", *pidFile, "error", err)
			os.Exit(1)
		}
		defer os.Remove(*pidFile)
		slog.Info("Wrote PID file", "path", *pidFile, "pid", os.Getpid())
	}

	// 4. Domain services
	tickets := services.NewTicketService(dbClient.Client)
	projects := services.NewProjectService(dbClient.Client)
	artifacts := services.NewArtifactService(dbClient.Client)
	events := services.NewEventService(dbClient.Client)
	slog.Info("Services initialized")

	// 5. Outbound clients. The notifier is nil when disabled; every caller
	// tolerates that.
	verifier := verification.NewHTTPClient(cfg.Verifier)
	forgeHost := gitforge.NewGitHubClient(cfg.GitForge)
	notifier := notify.NewService(cfg.Notifier)
	failures := scheduler.NewFailureRouter(tickets, retry.NewClassifier(cfg.Retry), notifier)

	// 6. Post-execution pipeline: verification, PR creation, review routing.
	// Its scan loop also picks up completions reported by pull agents and
	// re-drives runs lost to a crash.
	pipeline := scheduler.NewPipeline(tickets, artifacts, projects, verifier, forgeHost, notifier, cfg.Pipeline)
	pipeline.Start(ctx)

	// 7. Scheduler: direct-mode dispatch plus the lease reaper that pull
	// agents depend on. Startup lease recovery for this engine's previous
	// run happens inside Start.
	sched := scheduler.NewScheduler(engineID, tickets, vmpool.NewHTTPAdapter(cfg.VMPool), pipeline, failures, cfg.Scheduler)
	sched.RegisterExecutor(ticket.ExecutionModeDirect, scheduler.NewAgentExecutor(projects))
	if err := sched.Start(ctx); err != nil {
		slog.Error("Failed to start scheduler", "error", err)
		os.Exit(1)
	}
	if cfg.VMPool.BaseURL == "" {
		slog.Warn("No VM pool configured; direct-mode tickets will fail slot acquisition")
	}

	// 8. Background sweep: dependency unblocking, stuck reporting, event
	// compaction.
	sweeper := sweep.NewService(cfg.Sweep, tickets, events)
	sweeper.Start(ctx)

	// 9. HTTP server
	httpServer := api.NewServer(cfg, dbClient, tickets, projects, sched, pipeline)
	httpServer.SetArtifactService(artifacts)
	httpServer.SetEventService(events)
	httpServer.SetFailureRouter(failures)
	if err := httpServer.ValidateWiring(); err != nil {
		slog.Error("HTTP server wiring incomplete", "error", err)
		os.Exit(1)
	}

	// 10. Start HTTP server (non-blocking)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Forge started successfully",
		"engine_id", engineID,
		"max_concurrent", cfg.Scheduler.MaxConcurrent)

	// 11. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 12. Graceful shutdown. The scheduler drains its executions under its
	// own GracefulShutdownTimeout; stragglers are cancelled, which returns
	// their tickets to ready for the next engine.
	sched.Stop()
	sweeper.Stop()
	pipeline.Stop()

	// Stop HTTP server with its own timeout budget
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
