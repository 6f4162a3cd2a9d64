// Fateforger server: drives conversational day-planning sessions over
// HTTP, syncs committed plans to the calendar MCP server, and persists
// durable constraints in PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hugocool/fateforger/pkg/api"
	"github.com/hugocool/fateforger/pkg/calendar"
	"github.com/hugocool/fateforger/pkg/calsync"
	"github.com/hugocool/fateforger/pkg/cleanup"
	"github.com/hugocool/fateforger/pkg/config"
	"github.com/hugocool/fateforger/pkg/constraint"
	"github.com/hugocool/fateforger/pkg/database"
	"github.com/hugocool/fateforger/pkg/events"
	"github.com/hugocool/fateforger/pkg/flow"
	"github.com/hugocool/fateforger/pkg/llm"
	"github.com/hugocool/fateforger/pkg/patcher"
	"github.com/hugocool/fateforger/pkg/prompt"
	"github.com/hugocool/fateforger/pkg/retriever"
	"github.com/hugocool/fateforger/pkg/session"
	"github.com/hugocool/fateforger/pkg/slack"
	"github.com/hugocool/fateforger/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	ctx := context.Background()
	slog.Info("Starting", "version", version.Full())

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
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

	// 3. LLM extraction client
	// Note: grpc.NewClient uses lazy dialing; the connection happens on
	// the first RPC call.
	llmClient, err := llm.NewClient(cfg.LLM.Addr)
	if err != nil {
		slog.Error("Failed to initialize LLM client", "addr", cfg.LLM.Addr, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := llmClient.Close(); err != nil {
			slog.Error("Error closing LLM client", "error", err)
		}
	}()
	slog.Info("LLM client initialized", "addr", cfg.LLM.Addr)

	// 4. Calendar MCP client, capability, and health monitor
	calClient := calendar.NewClient(cfg.Calendar)
	defer func() {
		if err := calClient.Close(); err != nil {
			slog.Error("Error closing calendar client", "error", err)
		}
	}()
	capability := calendar.NewCapability(calClient)

	healthMonitor := calendar.NewHealthMonitor(calClient)
	healthMonitor.Start(ctx)
	defer healthMonitor.Stop()
	slog.Info("Calendar health monitor started", "url", cfg.Calendar.URL)

	// 5. Constraint store and retrieval
	store := constraint.NewEntStore(dbClient.Client)
	fetcher := retriever.New(store)

	// 6. Update publisher + NOTIFY listener (dedicated pgx connection)
	publisher := events.NewPublisher(dbClient.DB())
	listener := events.NewListener(dbConfig.DSN())
	if err := listener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer listener.Stop(ctx)

	if err := listener.Subscribe(ctx, events.GlobalUpdatesChannel, func(channel string, payload []byte) {
		slog.Debug("Plan update", "channel", channel, "bytes", len(payload))
	}); err != nil {
		slog.Warn("Could not subscribe to plan updates", "error", err)
	}
	slog.Info("Update streaming initialized")

	// 7. Retention sweeper for the durable tables
	retention := cleanup.NewService(&cfg.Retention, dbClient.Client)
	retention.Start(ctx)
	defer retention.Stop()

	// 8. Session coordination and the flow controller
	sessions := session.NewManager()
	coord := session.NewCoordinator(session.Limits{
		DurablePrefetch: cfg.Limits.DurablePrefetch,
		DurableUpsert:   cfg.Limits.DurableUpsert,
		Extraction:      cfg.Limits.Extraction,
	})
	prompts := prompt.NewBuilder()
	syncEngine := calsync.NewEngine(capability, dbClient.Client)

	controller := flow.NewController(flow.Deps{
		Sessions:  sessions,
		Coord:     coord,
		Gen:       llmClient,
		Prompts:   prompts,
		Store:     store,
		Retriever: fetcher,
		Patcher:   patcher.New(llmClient, prompts),
		Calendar:  capability,
		Syncer:    syncEngine,
		Publisher: publisher,
	}, flow.Config{
		CalendarID:            cfg.Flow.CalendarID,
		DefaultTimezone:       cfg.Flow.DefaultTimezone,
		GraphTurnTimeout:      cfg.Flow.GraphTurnTimeout.Std(),
		DecisionTimeout:       cfg.Flow.DecisionTimeout.Std(),
		GateTimeout:           cfg.Flow.GateTimeout.Std(),
		ExtractorTimeout:      cfg.Flow.ExtractorTimeout.Std(),
		PrefetchWaitBudget:    cfg.Flow.PrefetchWaitBudget.Std(),
		CalendarWaitBudget:    cfg.Flow.CalendarWaitBudget.Std(),
		FuzzyToleranceMinutes: cfg.Flow.FuzzyToleranceMinutes,
		FallbackBlockMinutes:  cfg.Flow.FallbackBlockMinutes,
		DebugLogDir:           cfg.Flow.DebugLogDir,
	})
	slog.Info("Flow controller initialized")

	// 9. HTTP server
	httpServer := api.NewServer(controller, sessions, dbClient)
	httpServer.SetHealthMonitor(healthMonitor)
	if cfg.Slack.Enabled {
		if svc := slack.NewService(slack.ServiceConfig{Token: os.Getenv(cfg.Slack.TokenEnv)}); svc != nil {
			httpServer.SetSlackDelivery(svc)
			slog.Info("Slack delivery enabled")
		} else {
			slog.Warn("Slack enabled but token is empty, delivery disabled", "token_env", cfg.Slack.TokenEnv)
		}
	}

	errCh := make(chan error, 1)
	go func() {
		addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Fateforger started successfully", "http_port", cfg.HTTP.Port)

	// 10. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 11. Graceful shutdown: stop accepting requests first, then let
	// the deferred teardown close the listener, monitor, and clients.
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
