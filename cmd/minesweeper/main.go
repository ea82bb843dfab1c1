// Package main is the entry point for the terminal Minesweeper.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/samdwyer/minesweeper/internal/game"
	"github.com/samdwyer/minesweeper/internal/telemetry"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, nil))

	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		logger.Debug(".env file not loaded", "error", err)
	}

	if err := run(logger); err != nil {
		logger.Error("minesweeper failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := game.LoadConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	setupOTelEnv()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if cfg.Telemetry {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			// Continue without telemetry - the game still works
			logger.Warn("telemetry setup failed, running without observability", "error", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error("telemetry shutdown failed", "error", err)
				}
			}()
		}
	}

	gameLogger, closeLog, err := newGameLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file %s: %w", cfg.LogFile, err)
	}
	defer closeLog()

	g, err := game.New(cfg, gameLogger)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}

	return g.Run(ctx)
}

// newGameLogger returns the logger used while the terminal UI owns the
// screen. Without a log file output is discarded.
func newGameLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(tint.NewHandler(io.Discard, nil)), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(tint.NewHandler(f, &tint.Options{
		Level:   slog.LevelDebug,
		NoColor: true,
	}))
	return logger, func() { f.Close() }, nil
}

// setupOTelEnv configures OTEL environment variables from our custom env vars.
func setupOTelEnv() {
	apiKey := os.Getenv(game.EnvAPIKey)
	if apiKey == "" {
		return
	}

	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	dataset := os.Getenv("MINESWEEPER_HONEYCOMB_DATASET")
	if dataset == "" {
		dataset = "minesweeper"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
