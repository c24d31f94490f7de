// Warden server — persists jobs, evaluates clearances, runs the chat
// tool-call loop, and supervises live transcription streams.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/codeready-toolchain/warden/pkg/api"
	"github.com/codeready-toolchain/warden/pkg/chat"
	"github.com/codeready-toolchain/warden/pkg/cleanup"
	"github.com/codeready-toolchain/warden/pkg/config"
	"github.com/codeready-toolchain/warden/pkg/database"
	"github.com/codeready-toolchain/warden/pkg/events"
	"github.com/codeready-toolchain/warden/pkg/jobs"
	"github.com/codeready-toolchain/warden/pkg/provider"
	"github.com/codeready-toolchain/warden/pkg/sandbox"
	"github.com/codeready-toolchain/warden/pkg/secrets"
	"github.com/codeready-toolchain/warden/pkg/services"
	"github.com/codeready-toolchain/warden/pkg/shell"
	"github.com/codeready-toolchain/warden/pkg/transcribe"
	"github.com/codeready-toolchain/warden/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func setupLogging(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./config"),
		"Path to configuration directory")
	flag.Parse()

	ctx := context.Background()

	// 1. Configuration (loads .env, merges warden.yaml over defaults)
	cfg, err := config.Initialize(*configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	setupLogging(cfg.LogLevel)
	slog.Info("Starting warden",
		"version", version.Full(),
		"port", cfg.Server.Port,
		"config_dir", *configDir)

	// 2. Database (pool, migrations, integrity hooks)
	dbURL, err := config.DatabaseURL()
	if err != nil {
		slog.Error("Failed to resolve database URL", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, database.Config{
		URL:             dbURL,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	})
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

	// 3. Domain services
	jobService := services.NewJobService(dbClient.Client)
	segmentService := services.NewSegmentService(dbClient.Client)
	channelService := services.NewChannelService(dbClient.Client)
	directoryService := services.NewDirectoryService(dbClient.Client)
	resourceService := services.NewResourceService(dbClient.Client)
	permService := services.NewPermissionService(dbClient.Client)

	// 4. Startup reconciliation: transcription jobs left Executing by a
	// previous process have no live stream and can never finish.
	if n, err := jobService.ReconcileOrphanedTranscriptions(ctx); err != nil {
		slog.Error("Failed to reconcile orphaned transcriptions", "error", err)
		// Non-fatal, the rows stay Executing until the next restart.
	} else if n > 0 {
		slog.Info("Reconciled orphaned transcription jobs", "count", n)
	}

	// 5. Secrets cipher for provider API keys
	masterKey := config.MasterKey()
	if masterKey == "" {
		slog.Warn("WARDEN_MASTER_KEY not set; provider model registration will fail")
	}
	cipher := secrets.NewCipher(masterKey)

	// 6. Provider bridge (lazy dial; connects on first RPC)
	bridge, err := provider.NewGRPCClient(cfg.Bridge.Address, provider.RetryPolicy{
		MaxRetries:  cfg.Bridge.MaxRetries,
		BaseBackoff: cfg.Bridge.BaseBackoff,
	})
	if err != nil {
		slog.Error("Failed to initialize provider bridge client", "addr", cfg.Bridge.Address, "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := bridge.Close(); err != nil {
			slog.Error("Error closing provider bridge client", "error", err)
		}
	}()
	slog.Info("Provider bridge client initialized", "addr", cfg.Bridge.Address)

	// 7. Event hub: publisher fans out to the websocket connection manager
	publisher := events.NewEventPublisher()
	connManager := events.NewConnectionManager(cfg.Server.WriteTimeout)
	publisher.AddSink(connManager)

	// 8. Job engine: executor registry + lifecycle manager
	registry := jobs.NewRegistry(
		directoryService,
		resourceService,
		sandbox.NewCLICompiler(cfg.Sandbox.CompilerCommand),
		sandbox.NewFSRegistrar(cfg.Sandbox.Root),
		shell.NewLocalRunner(),
	)
	manager := jobs.NewManager(jobService, permService, registry, publisher)

	// 9. Transcription orchestrator
	orchestrator := transcribe.NewOrchestrator(
		jobService, segmentService, directoryService,
		cipher, bridge, bridge, publisher,
		cfg.Transcription.ChunkDuration, cfg.Transcription.QueueSize,
	)
	manager.SetTranscriber(orchestrator)

	// 10. Retention sweeper
	sweeper := cleanup.NewService(cfg.Retention, jobService, channelService)
	sweeper.Start(ctx)

	// 11. Chat tool-call loop
	chatEngine := chat.NewEngine(channelService, manager, directoryService, permService, bridge, cipher, publisher)
	chatEngine.SetHistoryLimit(cfg.Chat.HistoryLimit)

	// 12. HTTP server
	apiServer := api.NewServer(api.Deps{
		Manager:          manager,
		Jobs:             jobService,
		Segments:         segmentService,
		Chat:             chatEngine,
		Channels:         channelService,
		Directory:        directoryService,
		Resources:        resourceService,
		Perms:            permService,
		Cipher:           cipher,
		WS:               connManager,
		Streams:          orchestrator,
		AllowedWSOrigins: cfg.Server.AllowedWSOrigins,
		HealthCheck: func(ctx context.Context) error {
			_, err := dbClient.Health(ctx)
			return err
		},
	})

	router := gin.New()
	router.Use(gin.Recovery())
	apiServer.RegisterRoutes(router)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Warden started successfully")

	// 13. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 14. Graceful shutdown: stop accepting requests, then abort live
	// transcription streams so their jobs reach a terminal state.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	sweeper.Stop()

	if n := orchestrator.ActiveStreams(); n > 0 {
		slog.Info("Cancelling active transcription streams", "count", n)
		streamCtx, streamCancel := context.WithTimeout(ctx, 10*time.Second)
		orchestrator.CancelAll(streamCtx)
		streamCancel()
	}

	slog.Info("Shutdown complete")
}
