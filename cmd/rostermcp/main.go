package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/maxviazov/cricket-roster-service/internal/app"
	"github.com/maxviazov/cricket-roster-service/internal/config"
	"github.com/maxviazov/cricket-roster-service/internal/logger"
	"github.com/maxviazov/cricket-roster-service/internal/mcpserver"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file (optional)")
	flag.Parse()

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// stdout carries the protocol
	cfg.Logger.Output = os.Stderr
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	svcs, err := app.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("service wiring failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := svcs.Pool.Load(ctx); err != nil {
		appLogger.Warn().Err(err).Msg("initial player pool not loaded; tools will report pool_not_ready until retried")
	}

	server := mcpserver.New(svcs, cfg.App.Version, appLogger)
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		appLogger.Fatal().Err(err).Msg("mcp server stopped")
	}
}
