package service_test

import (
	"context"
	"fmt"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/cricket-roster-service/internal/generator"
	"github.com/maxviazov/cricket-roster-service/internal/generator/mockgenerator"
	"github.com/maxviazov/cricket-roster-service/internal/model"
	"github.com/maxviazov/cricket-roster-service/internal/repository/memory"
	"github.com/maxviazov/cricket-roster-service/internal/service"
)

const defaultTeam = "Team 1"

type harness struct {
	gen     *mockgenerator.Generator
	pool    service.PoolService
	teams   service.TeamService
	players service.PlayerService
	views   service.ViewService
}

func drafts(n int) []model.PlayerDraft {
	out := make([]model.PlayerDraft, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.PlayerDraft{Name: fmt.Sprintf("P%d", i+1), Country: "India", Role: model.RoleBowler})
	}
	return out
}

// newHarness builds the full service graph over the memory store. allowed nil accepts any cap >= 1.
func newHarness(t *testing.T, maxTeamSize int, allowed []int) *harness {
	t.Helper()
	logger := zerolog.New(io.Discard)
	store, err := memory.NewRoster(memory.Options{DefaultTeam: defaultTeam, MaxTeamSize: maxTeamSize, AllowedTeamSizes: allowed})
	require.NoError(t, err)
	sess := service.NewSession(store, memory.NewTxManager(), defaultTeam)
	gen := &mockgenerator.Generator{}
	return &harness{
		gen:     gen,
		pool:    service.NewPoolService(sess, gen, 3, logger),
		teams:   service.NewTeamService(sess, logger),
		players: service.NewPlayerService(sess, logger),
		views:   service.NewViewService(sess, logger),
	}
}

// ready loads n generated players.
func (h *harness) ready(t *testing.T, n int) {
	t.Helper()
	h.gen.On("Generate", mock.Anything, 3).Return(drafts(n), nil).Once()
	require.NoError(t, h.pool.Load(context.Background()))
}

func (h *harness) fail(t *testing.T) {
	t.Helper()
	h.gen.On("Generate", mock.Anything, 3).Return(nil, fmt.Errorf("%w: boom", generator.ErrGeneration)).Once()
	require.ErrorIs(t, h.pool.Load(context.Background()), generator.ErrGeneration)
}
