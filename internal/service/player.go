package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/cricket-roster-service/internal/importer"
	"github.com/maxviazov/cricket-roster-service/internal/model"
	"github.com/maxviazov/cricket-roster-service/internal/repository"
)

// DefaultHighestWicket is what the manual form shows before anything is typed.
const DefaultHighestWicket = "0/0"

// CreatePlayerInput is the manual player form.
type CreatePlayerInput struct {
	Name    string     `json:"name" validate:"required,max=100"`
	Country string     `json:"country" validate:"required,max=100"`
	Role    string     `json:"role" validate:"role"`
	Stats   StatsInput `json:"stats"`
}

// StatsInput mirrors model.PlayerStats with the form's non-negative rules.
type StatsInput struct {
	Runs           int     `json:"runs" validate:"gte=0"`
	Wickets        int     `json:"wickets" validate:"gte=0"`
	BattingAverage float64 `json:"battingAverage" validate:"gte=0"`
	HighestRun     int     `json:"highestRun" validate:"gte=0"`
	HighestWicket  string  `json:"highestWicket" validate:"max=16"`
	ManOfTheMatch  int     `json:"manOfTheMatch" validate:"gte=0"`
}

type playerService struct {
	s   *Session
	log zerolog.Logger
}

func NewPlayerService(s *Session, logger zerolog.Logger) PlayerService {
	l := logger.With().Str("module", "service").Str("component", "player").Logger()
	return &playerService{s: s, log: l}
}

func (p *playerService) CreatePlayer(ctx context.Context, in CreatePlayerInput) (model.Player, error) {
	start := time.Now()
	in.Name = strings.TrimSpace(in.Name)
	in.Country = strings.TrimSpace(in.Country)
	in.Role = strings.TrimSpace(in.Role)
	in.Stats.HighestWicket = strings.TrimSpace(in.Stats.HighestWicket)

	if err := validateStruct(in); err != nil {
		p.log.Debug().Interface("field_errors", FieldErrors(err)).Msg("player validation failed")
		return model.Player{}, err
	}

	draft := model.PlayerDraft{
		Name:    in.Name,
		Country: in.Country,
		Role:    model.RoleBatsman,
		Stats:   model.PlayerStats(in.Stats),
	}
	if in.Role != "" {
		draft.Role, _ = model.ParseRole(in.Role)
	}
	if draft.Stats.HighestWicket == "" {
		draft.Stats.HighestWicket = DefaultHighestWicket
	}

	var out model.Player
	err := p.s.do(ctx, func() error {
		if err := p.s.requireReady(); err != nil {
			return err
		}
		out = p.s.store.Prepend(draft)
		p.s.pool.Size = p.s.store.Len()
		return nil
	})
	if err != nil {
		return model.Player{}, err
	}
	p.log.Info().Dur("took", time.Since(start)).Int64("player_id", out.ID).Msg("player created")
	return out, nil
}

// ImportPlayers parses the whole payload before touching the pool, so a bad file adds nothing.
func (p *playerService) ImportPlayers(ctx context.Context, r io.Reader) ([]model.Player, error) {
	start := time.Now()
	drafts, err := importer.Parse(r)
	if err != nil {
		p.log.Debug().Err(err).Msg("import rejected")
		return nil, err
	}

	var out []model.Player
	err = p.s.do(ctx, func() error {
		if err := p.s.requireReady(); err != nil {
			return err
		}
		out = p.s.store.Append(drafts)
		p.s.pool.Size = p.s.store.Len()
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.log.Info().Dur("took", time.Since(start)).Int("count", len(out)).Msg("players imported")
	return out, nil
}

func (p *playerService) GetPlayer(ctx context.Context, id int64) (model.Player, error) {
	if id <= 0 {
		return model.Player{}, NewInvalidInputError([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	var out model.Player
	err := p.s.do(ctx, func() error {
		pl, err := p.s.store.GetByID(id)
		out = pl
		return err
	})
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		p.log.Error().Err(err).Int64("player_id", id).Msg("get player failed")
	}
	return out, err
}

func (p *playerService) ListPool(ctx context.Context, page repository.Page) (repository.PageResult[model.Player], error) {
	var out repository.PageResult[model.Player]
	err := p.s.do(ctx, func() error {
		out = p.s.store.List(page.Normalize())
		return nil
	})
	return out, err
}
