package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/maxviazov/cricket-roster-service/internal/model"
	"github.com/maxviazov/cricket-roster-service/internal/view"
)

type viewService struct {
	s   *Session
	log zerolog.Logger
}

func NewViewService(s *Session, logger zerolog.Logger) ViewService {
	l := logger.With().Str("module", "service").Str("component", "view").Logger()
	return &viewService{s: s, log: l}
}

func (v *viewService) State(ctx context.Context) (model.ViewState, error) {
	var out model.ViewState
	err := v.s.do(ctx, func() error {
		out = v.s.view
		return nil
	})
	return out, err
}

// Navigate falls back to ManageTeams when TeamDetails has nothing to show.
func (v *viewService) Navigate(ctx context.Context, screen model.Screen) (model.ViewState, error) {
	if _, ok := model.ParseScreen(string(screen)); !ok {
		return model.ViewState{}, NewInvalidInputError([]FieldError{{Field: "screen", Message: "must be one of home, manage_teams, team_details"}})
	}
	return v.update(ctx, func(s model.ViewState) model.ViewState {
		return view.Navigate(s, screen, v.s.store.Exists)
	})
}

func (v *viewService) SetActiveTeam(ctx context.Context, name string) (model.ViewState, error) {
	return v.update(ctx, func(s model.ViewState) model.ViewState {
		return view.SetActive(s, name, v.s.store.Exists)
	})
}

func (v *viewService) ViewTeam(ctx context.Context, name string) (model.ViewState, error) {
	return v.update(ctx, func(s model.ViewState) model.ViewState {
		return view.ViewTeam(s, name, v.s.store.Exists)
	})
}

func (v *viewService) update(ctx context.Context, fn func(model.ViewState) model.ViewState) (model.ViewState, error) {
	var out model.ViewState
	err := v.s.do(ctx, func() error {
		v.s.view = fn(v.s.view)
		out = v.s.view
		return nil
	})
	if err == nil {
		v.log.Debug().Str("screen", string(out.Screen)).Str("active", out.ActiveTeam).Msg("view changed")
	}
	return out, err
}
