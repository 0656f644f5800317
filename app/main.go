package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lysyi3m/tweet-display/app/api"
	"github.com/lysyi3m/tweet-display/app/archive"
	"github.com/lysyi3m/tweet-display/app/cfg"
	"github.com/lysyi3m/tweet-display/app/database"
	"github.com/lysyi3m/tweet-display/app/gender"
	"github.com/lysyi3m/tweet-display/app/geo"
	"github.com/lysyi3m/tweet-display/app/graphs"
	"github.com/lysyi3m/tweet-display/app/tasks"
)

func main() {
	appCfg, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown, exit gracefully
		return
	}

	if appCfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	slog.Info("Starting Tweet Display server", "version", appCfg.Version)

	db, err := database.NewConnection(appCfg.DBPath)
	if err != nil {
		slog.Error("Failed to open database", "path", appCfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "path", appCfg.DBPath, "migration_version", version, "dirty", dirty)

	// Capabilities are built once here and injected everywhere; the timezone
	// index in particular is expensive to construct.
	tzLookup, err := geo.NewTZFLookup()
	if err != nil {
		slog.Error("Failed to initialize timezone lookup", "error", err)
		os.Exit(1)
	}
	detector := gender.NewDictionaryDetector()
	slog.Info("Capabilities initialized", "gender_names", detector.Size())

	resolver := archive.NewResolver(tzLookup)
	assembler := archive.NewAssembler(resolver)

	graphRepo := database.NewGraphRepository(db)
	materializer := graphs.NewMaterializer(graphRepo)

	httpClient := &http.Client{Timeout: 2 * time.Minute}

	scheduler := tasks.NewScheduler(httpClient, assembler, detector, materializer)
	scheduler.Start()
	defer scheduler.Stop()

	apiHandler := api.NewHandler(graphRepo, scheduler, httpClient, assembler, detector, materializer)
	server := api.NewServer(apiHandler, appCfg.APIAccessKey)

	httpServer := &http.Server{
		Addr:         ":" + appCfg.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("Starting HTTP server", "port", appCfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	slog.Info("Tweet Display server started")

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	slog.Info("Shutting down server gracefully")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	// Scheduler is stopped via defer
	slog.Info("Tweet Display server shutdown complete")
}
