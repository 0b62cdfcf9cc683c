package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MikeSquared-Agency/heartmind/internal/anthropic"
	"github.com/MikeSquared-Agency/heartmind/internal/api"
	"github.com/MikeSquared-Agency/heartmind/internal/config"
	"github.com/MikeSquared-Agency/heartmind/internal/hermes"
	"github.com/MikeSquared-Agency/heartmind/internal/sculpture"
	"github.com/MikeSquared-Agency/heartmind/internal/session"
	"github.com/MikeSquared-Agency/heartmind/internal/store"
)

func main() {
	cfg := config.Load()
	slog.SetDefault(config.NewLogger(cfg.LogLevel, os.Stdout))

	slog.Info("heartmind starting", "port", cfg.Port)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Anthropic client
	if cfg.AnthropicAPIKey == "" {
		slog.Error("ANTHROPIC_API_KEY is required")
		os.Exit(1)
	}
	llm := anthropic.NewClient(cfg.AnthropicAPIKey, cfg.AnthropicModel)
	slog.Info("anthropic client ready", "model", cfg.AnthropicModel)

	opts := []sculpture.Option{sculpture.WithMaxTokens(cfg.MaxTokens)}

	// Turn log (optional)
	if cfg.DatabaseURL != "" {
		db, err := store.New(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.EnsureSchema(ctx); err != nil {
			slog.Error("failed to prepare schema", "error", err)
			os.Exit(1)
		}
		opts = append(opts, sculpture.WithRecorder(db))
		slog.Info("database connected")
	} else {
		slog.Warn("DATABASE_URL not set, turns will not be recorded")
	}

	// NATS effect layer (optional)
	var hermesClient *hermes.Client
	if cfg.NatsURL != "" {
		var err error
		hermesClient, err = hermes.NewClient(ctx, cfg.NatsURL, cfg.NatsToken, slog.Default())
		if err != nil {
			slog.Error("failed to connect to NATS", "error", err)
			os.Exit(1)
		}
		defer hermesClient.Close()
		opts = append(opts, sculpture.WithPublisher(hermesClient))
		slog.Info("NATS connected", "url", cfg.NatsURL)
	} else {
		slog.Warn("NATS_URL not set, lighting cues stay local")
	}

	sessions := session.NewRegistry(cfg.Clock())
	sc := sculpture.New(sessions, llm, slog.Default(), opts...)

	// HTTP API
	srv := api.NewServer(cfg.Port, cfg.APIToken, sc)
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("HTTP server error", "error", err)
			cancel()
		}
	}()

	// Announce registration
	if hermesClient != nil {
		if err := hermesClient.Publish(hermes.SubjectRegistered, map[string]any{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"port":      cfg.Port,
			"model":     cfg.AnthropicModel,
		}); err != nil {
			slog.Warn("failed to publish registration", "error", err)
		}
	}

	slog.Info("heartmind ready", "port", cfg.Port)

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-ctx.Done():
	}
	slog.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP shutdown error", "error", err)
	}
	cancel()
	slog.Info("heartmind stopped")
}
