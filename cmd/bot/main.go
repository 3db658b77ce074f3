// Package main contains the entrypoint for the LINE game
// recommendation bot.
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/kittipat/linegamebot/internal/config"
	"github.com/kittipat/linegamebot/internal/gamebot"
	"github.com/kittipat/linegamebot/internal/line"
	"github.com/kittipat/linegamebot/internal/logger"
	"github.com/kittipat/linegamebot/internal/rawg"
	"github.com/kittipat/linegamebot/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	exitCode := run(ctx)
	stop() // Ensure context cancellation is signaled before exit
	os.Exit(exitCode)
}

// run initializes and starts all application components (config, logger,
// catalog client, LINE clients, HTTP server), handles graceful shutdown,
// and returns an exit code (0 for success, 1 for failure).
func run(ctx context.Context) int {
	configPath := flag.String("config", "./config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", *configPath, "error", err)
		return 1
	}

	log := logger.New(cfg.Log.Level, cfg.Log.JSON)
	slog.SetDefault(log)
	log.Info("Logger initialized", "level", cfg.Log.Level, "json", cfg.Log.JSON)

	catalog := rawg.NewClient(cfg.RAWG, log)
	service := gamebot.NewService(catalog, log)

	replier, err := line.NewReplier(cfg.Line.ChannelToken)
	if err != nil {
		log.Error("Failed to create LINE messaging client", "error", err)
		return 1
	}
	dispatcher := line.NewDispatcher(cfg.Line.ChannelSecret, service, replier, log)

	srv := server.New(cfg.Server, dispatcher, log)

	log.Info("Starting bot...", "port", cfg.Server.Port)
	runErr := srv.Run(ctx)

	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		log.Error("Bot stopped due to error", "error", runErr)
		return 1
	}

	log.Info("Bot stopped gracefully.")
	return 0
}
