package service

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/maxviazov/cricket-roster-service/internal/model"
	"github.com/maxviazov/cricket-roster-service/internal/repository"
	"github.com/maxviazov/cricket-roster-service/internal/view"
)

// teamService holds team use-case logic: validation + orchestration, no transport details.
type teamService struct {
	s   *Session
	log zerolog.Logger
}

func NewTeamService(s *Session, logger zerolog.Logger) TeamService {
	l := logger.With().Str("module", "service").Str("component", "team").Logger()
	return &teamService{s: s, log: l}
}

func (t *teamService) CreateTeam(ctx context.Context, name string) (model.Team, error) {
	start := time.Now()
	name = strings.TrimSpace(name)

	var out model.Team
	err := t.s.do(ctx, func() error {
		if err := t.s.requireReady(); err != nil {
			return err
		}
		if err := t.s.store.Create(name); err != nil {
			return err
		}
		t.s.view = view.TeamCreated(t.s.view, name)
		out = model.Team{Name: name, PlayerIDs: []int64{}}
		return nil
	})
	if err != nil {
		t.log.Debug().Err(err).Str("name", name).Msg("create team rejected")
		return model.Team{}, err
	}
	t.log.Info().Dur("took", time.Since(start)).Str("team", name).Msg("team created")
	return out, nil
}

// RenameTeam is a no-op when oldName is unknown or unchanged.
func (t *teamService) RenameTeam(ctx context.Context, oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	renamed := false
	err := t.s.do(ctx, func() error {
		if err := t.s.requireReady(); err != nil {
			return err
		}
		if !t.s.store.Exists(oldName) || oldName == newName {
			return nil
		}
		if err := t.s.store.Rename(oldName, newName); err != nil {
			return err
		}
		t.s.view = view.TeamRenamed(t.s.view, oldName, newName)
		renamed = true
		return nil
	})
	if err != nil {
		t.log.Debug().Err(err).Str("from", oldName).Str("to", newName).Msg("rename team rejected")
		return err
	}
	if renamed {
		t.log.Info().Str("from", oldName).Str("to", newName).Msg("team renamed")
	}
	return nil
}

// DeleteTeam is irreversible; confirmation belongs to the caller. Unknown names are a no-op.
func (t *teamService) DeleteTeam(ctx context.Context, name string) error {
	deleted := false
	err := t.s.do(ctx, func() error {
		if err := t.s.requireReady(); err != nil {
			return err
		}
		if !t.s.store.Delete(name) {
			return nil
		}
		deleted = true
		t.s.view = view.TeamDeleted(t.s.view, name, t.s.store.Names(), t.s.defaultTeam)
		return nil
	})
	if err != nil {
		return err
	}
	if deleted {
		t.log.Info().Str("team", name).Msg("team deleted")
	}
	return nil
}

func (t *teamService) GetTeam(ctx context.Context, name string) (model.TeamRoster, error) {
	var out model.TeamRoster
	err := t.s.do(ctx, func() error {
		r, err := t.s.roster(name)
		out = r
		return err
	})
	return out, err
}

func (t *teamService) ListTeams(ctx context.Context) ([]model.TeamSummary, error) {
	var out []model.TeamSummary
	err := t.s.do(ctx, func() error {
		out = t.s.store.Summaries()
		return nil
	})
	return out, err
}

// AvailablePlayers lists the pool minus the team's members, in pool order.
func (t *teamService) AvailablePlayers(ctx context.Context, teamName string) ([]model.Player, error) {
	var out []model.Player
	err := t.s.do(ctx, func() error {
		team, err := t.s.store.Get(teamName)
		if err != nil {
			return err
		}
		members := make(map[int64]struct{}, len(team.PlayerIDs))
		for _, id := range team.PlayerIDs {
			members[id] = struct{}{}
		}
		all := t.s.store.List(repository.Page{Limit: t.s.store.Len()})
		out = make([]model.Player, 0, len(all.Items))
		for _, p := range all.Items {
			if _, ok := members[p.ID]; !ok {
				out = append(out, p)
			}
		}
		return nil
	})
	return out, err
}

// AddPlayer reports whether the roster changed. A full team, an unknown team or
// an existing member are silent no-ops.
func (t *teamService) AddPlayer(ctx context.Context, teamName string, playerID int64) (bool, error) {
	if playerID <= 0 {
		return false, NewInvalidInputError([]FieldError{{Field: "player_id", Message: "must be > 0"}})
	}
	var changed bool
	err := t.s.do(ctx, func() error {
		if err := t.s.requireReady(); err != nil {
			return err
		}
		changed = t.s.store.AddMember(teamName, playerID)
		return nil
	})
	if err != nil {
		return false, err
	}
	t.log.Debug().Str("team", teamName).Int64("player_id", playerID).Bool("changed", changed).Msg("add player")
	return changed, nil
}

func (t *teamService) RemovePlayer(ctx context.Context, teamName string, playerID int64) (bool, error) {
	if playerID <= 0 {
		return false, NewInvalidInputError([]FieldError{{Field: "player_id", Message: "must be > 0"}})
	}
	var changed bool
	err := t.s.do(ctx, func() error {
		if err := t.s.requireReady(); err != nil {
			return err
		}
		changed = t.s.store.RemoveMember(teamName, playerID)
		return nil
	})
	if err != nil {
		return false, err
	}
	t.log.Debug().Str("team", teamName).Int64("player_id", playerID).Bool("changed", changed).Msg("remove player")
	return changed, nil
}

func (t *teamService) MaxTeamSize(ctx context.Context) (int, error) {
	var out int
	err := t.s.do(ctx, func() error {
		out = t.s.store.MaxTeamSize()
		return nil
	})
	return out, err
}

// SetMaxTeamSize truncates oversized teams immediately; there is no undo.
func (t *teamService) SetMaxTeamSize(ctx context.Context, size int) error {
	err := t.s.do(ctx, func() error {
		if err := t.s.requireReady(); err != nil {
			return err
		}
		return t.s.store.SetMaxTeamSize(size)
	})
	if err != nil {
		t.log.Debug().Err(err).Int("size", size).Msg("set team size rejected")
		return err
	}
	t.log.Info().Int("size", size).Msg("max team size changed")
	return nil
}
