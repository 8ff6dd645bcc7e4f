package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/cricket-roster-service/internal/app"
	"github.com/maxviazov/cricket-roster-service/internal/config"
	"github.com/maxviazov/cricket-roster-service/internal/handler"
	"github.com/maxviazov/cricket-roster-service/internal/handler/middleware"
	"github.com/maxviazov/cricket-roster-service/internal/logger"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	// Load application config
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Config loading failed: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(&cfg.Logger)
	if err != nil {
		log.Fatalf("❌ Logger initialization failed: %v", err)
	}

	svcs, err := app.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("service wiring failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The initial fetch runs in the background; until it finishes /ready answers 503
	// and team-building calls answer 409 pool_not_ready.
	go func() {
		if err := svcs.Pool.Load(ctx); err != nil {
			appLogger.Warn().Err(err).Msg("initial player pool not loaded, waiting for manual retry")
		}
	}()

	if cfg.App.Env != "dev" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.RequestLogger(appLogger))
	handler.Register(r, svcs.Pool, svcs.Pool, svcs.Teams, svcs.Players, svcs.Views)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: r,
	}

	go func() {
		appLogger.Info().Int("port", cfg.App.Port).Msg("🚀 Service started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	<-ctx.Done()
	appLogger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.App.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error().Err(err).Msg("forced shutdown")
		return
	}
	appLogger.Info().Msg("server stopped")
}
