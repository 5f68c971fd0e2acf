// Package main is the entry point for dungeoncrawl.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeoncrawl/internal/game"
	"github.com/samdwyer/dungeoncrawl/internal/logger"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
	"github.com/samdwyer/dungeoncrawl/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "dungeoncrawl:", err)
		os.Exit(1)
	}
}

func run() (err error) {
	// Load .env file for local development
	envErr := godotenv.Load()

	closeLog, err := logger.Init()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer closeLog()

	log := logger.For("main")
	defer func() {
		if err != nil {
			log.WithError(err).Error("dungeoncrawl exited")
		}
	}()
	if envErr != nil {
		log.WithError(envErr).Debug(".env file not loaded")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	setupOTelEnv()
	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.WithError(err).Warn("Telemetry setup failed, running without traces")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.WithError(err).Warn("Telemetry shutdown failed")
				}
			}()
		}
	}

	cfg, err := game.LoadConfig()
	if err != nil {
		return err
	}

	g, err := game.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initialize game: %w", err)
	}
	log.WithField("seed", g.Seed()).WithField("run_id", g.RunID()).Info("Starting game")

	screen, err := ui.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer screen.Close()
	screen.CloseOnDone(ctx)

	err = g.Run(ctx, ui.NewInput(screen), ui.NewRenderer(screen))
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// setupOTelEnv points the OTLP exporter at Honeycomb when an API key is set
// and no endpoint was configured explicitly.
func setupOTelEnv() {
	apiKey := os.Getenv("HONEYCOMB_DUNGEONCRAWL_API_KEY")
	if apiKey == "" {
		return
	}
	if os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") == "" {
		os.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "https://api.honeycomb.io")
	}

	dataset := os.Getenv("HONEYCOMB_DUNGEONCRAWL_DATASET")
	if dataset == "" {
		dataset = "dungeoncrawl"
	}
	os.Setenv("OTEL_EXPORTER_OTLP_HEADERS",
		fmt.Sprintf("x-honeycomb-team=%s,x-honeycomb-dataset=%s", apiKey, dataset))
}
