package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/mveldre/rentahouse/internal/client/cli"
	"github.com/mveldre/rentahouse/internal/client/config"
	"github.com/mveldre/rentahouse/internal/logging"
)

func main() {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	app.Run(ctx)
}
