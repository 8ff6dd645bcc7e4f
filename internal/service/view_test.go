package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/cricket-roster-service/internal/model"
	"github.com/maxviazov/cricket-roster-service/internal/service"
)

func TestViewService_Transitions(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t, 6, nil)
	h.ready(t, 1)

	st, err := h.views.State(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.ViewState{Screen: model.ScreenHome, ActiveTeam: defaultTeam}, st)

	st, err = h.views.Navigate(ctx, model.ScreenTeamDetails)
	require.NoError(t, err)
	assert.Equal(t, model.ScreenManageTeams, st.Screen, "details without a team falls back")

	st, err = h.views.ViewTeam(ctx, defaultTeam)
	require.NoError(t, err)
	assert.Equal(t, model.ScreenTeamDetails, st.Screen)
	require.NotNil(t, st.ViewingTeam)

	st, err = h.views.SetActiveTeam(ctx, "Ghost")
	require.NoError(t, err)
	assert.Equal(t, defaultTeam, st.ActiveTeam)

	_, err = h.views.Navigate(ctx, model.Screen("settings"))
	assert.ErrorIs(t, err, service.ErrInvalidInput)
}
