// Package app wires one roster session and its services from configuration.
// Both the HTTP server and the MCP tool server start from here.
package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/maxviazov/cricket-roster-service/internal/config"
	"github.com/maxviazov/cricket-roster-service/internal/generator"
	"github.com/maxviazov/cricket-roster-service/internal/repository/memory"
	"github.com/maxviazov/cricket-roster-service/internal/service"
)

// Services is the full use-case surface of a session.
type Services struct {
	Pool    service.PoolService
	Teams   service.TeamService
	Players service.PlayerService
	Views   service.ViewService
}

// New builds the store, the session and every service. The pool is left loading;
// callers decide when to start the fetch.
func New(cfg *config.Config, logger zerolog.Logger) (*Services, error) {
	gen, err := NewGenerator(cfg.Generator, logger)
	if err != nil {
		return nil, err
	}
	store, err := memory.NewRoster(memory.Options{
		DefaultTeam:      cfg.Roster.DefaultTeamName,
		MaxTeamSize:      cfg.Roster.MaxTeamSize,
		AllowedTeamSizes: cfg.Roster.AllowedTeamSizes,
	})
	if err != nil {
		return nil, fmt.Errorf("roster store: %w", err)
	}
	sess := service.NewSession(store, memory.NewTxManager(), cfg.Roster.DefaultTeamName)
	return &Services{
		Pool:    service.NewPoolService(sess, gen, cfg.Roster.InitialPoolSize, logger),
		Teams:   service.NewTeamService(sess, logger),
		Players: service.NewPlayerService(sess, logger),
		Views:   service.NewViewService(sess, logger),
	}, nil
}

// NewGenerator picks the generation collaborator. Without an API key the Gemini provider
// degrades to the synthetic generator so the app still starts offline.
func NewGenerator(cfg config.GeneratorConfig, logger zerolog.Logger) (generator.Generator, error) {
	l := logger.With().Str("module", "app").Logger()
	switch cfg.Provider {
	case config.ProviderSynthetic:
		l.Info().Uint64("seed", cfg.Seed).Msg("using synthetic player generator")
		return generator.NewSynthetic(cfg.Seed), nil
	case config.ProviderGemini, "":
		if cfg.APIKey == "" {
			l.Warn().Msg("no gemini api key configured, falling back to synthetic player generator")
			return generator.NewSynthetic(cfg.Seed), nil
		}
		l.Info().Str("model", cfg.Model).Msg("using gemini player generator")
		return generator.NewGemini(generator.GeminiOptions{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Timeout: cfg.Timeout,
		})
	default:
		return nil, fmt.Errorf("unknown generator provider %q", cfg.Provider)
	}
}
