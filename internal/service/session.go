package service

import (
	"context"

	"github.com/maxviazov/cricket-roster-service/internal/model"
	"github.com/maxviazov/cricket-roster-service/internal/repository"
	"github.com/maxviazov/cricket-roster-service/internal/view"
)

// Session is the combined roster store, view state and pool status for one user.
// The fields are only touched inside tx.WithinTx, which makes every operation run to completion
// before the next one starts.
type Session struct {
	tx          repository.TxManager
	store       repository.RosterRepository
	defaultTeam string

	view     model.ViewState
	pool     model.PoolState
	inFlight bool
}

// NewSession starts on the Home screen with defaultTeam active and the pool loading.
func NewSession(store repository.RosterRepository, tx repository.TxManager, defaultTeam string) *Session {
	return &Session{
		tx:          tx,
		store:       store,
		defaultTeam: defaultTeam,
		view:        view.Initial(defaultTeam),
		pool:        model.PoolState{Status: model.PoolLoading},
	}
}

func (s *Session) do(ctx context.Context, fn func() error) error {
	return s.tx.WithinTx(ctx, func(context.Context) error { return fn() })
}

func (s *Session) requireReady() error {
	if s.pool.Status != model.PoolReady {
		return ErrPoolNotReady
	}
	return nil
}

func (s *Session) roster(name string) (model.TeamRoster, error) {
	team, err := s.store.Get(name)
	if err != nil {
		return model.TeamRoster{}, err
	}
	players := make([]model.Player, 0, len(team.PlayerIDs))
	for _, id := range team.PlayerIDs {
		p, err := s.store.GetByID(id)
		if err != nil {
			return model.TeamRoster{}, err
		}
		players = append(players, p)
	}
	limit := s.store.MaxTeamSize()
	return model.TeamRoster{Name: name, Players: players, MaxTeamSize: limit, IsFull: len(players) >= limit}, nil
}
