package view_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/cricket-roster-service/internal/model"
	"github.com/maxviazov/cricket-roster-service/internal/view"
)

func lookup(names ...string) view.TeamLookup {
	return func(n string) bool { return slices.Contains(names, n) }
}

func ptr(s string) *string { return &s }

func TestInitial(t *testing.T) {
	s := view.Initial("Team 1")
	assert.Equal(t, model.ScreenHome, s.Screen)
	assert.Equal(t, "Team 1", s.ActiveTeam)
	assert.Nil(t, s.ViewingTeam)
}

func TestTeamCreated(t *testing.T) {
	s := model.ViewState{Screen: model.ScreenManageTeams, ActiveTeam: "Team 1"}
	s = view.TeamCreated(s, "Alpha")
	assert.Equal(t, model.ScreenHome, s.Screen)
	assert.Equal(t, "Alpha", s.ActiveTeam)
}

func TestViewTeam(t *testing.T) {
	s := view.Initial("Team 1")

	got := view.ViewTeam(s, "Team 1", lookup("Team 1"))
	require.NotNil(t, got.ViewingTeam)
	assert.Equal(t, "Team 1", *got.ViewingTeam)
	assert.Equal(t, model.ScreenTeamDetails, got.Screen)

	got = view.ViewTeam(s, "Ghosts", lookup("Team 1"))
	assert.Nil(t, got.ViewingTeam)
	assert.Equal(t, model.ScreenManageTeams, got.Screen)
}

func TestTeamDeleted(t *testing.T) {
	cases := []struct {
		name       string
		in         model.ViewState
		deleted    string
		remaining  []string
		wantActive string
		wantScreen model.Screen
		wantView   *string
	}{
		{
			name:       "active deleted, one left",
			in:         model.ViewState{Screen: model.ScreenManageTeams, ActiveTeam: "Alpha"},
			deleted:    "Alpha",
			remaining:  []string{"Beta"},
			wantActive: "Beta",
			wantScreen: model.ScreenManageTeams,
		},
		{
			name:       "viewed deleted resets viewing and active",
			in:         model.ViewState{Screen: model.ScreenTeamDetails, ActiveTeam: "Alpha", ViewingTeam: ptr("Beta")},
			deleted:    "Beta",
			remaining:  []string{"Gamma", "Alpha"},
			wantActive: "Gamma",
			wantScreen: model.ScreenManageTeams,
		},
		{
			name:       "last team deleted uses fallback",
			in:         model.ViewState{Screen: model.ScreenHome, ActiveTeam: "Alpha"},
			deleted:    "Alpha",
			wantActive: "Team 1",
			wantScreen: model.ScreenManageTeams,
		},
		{
			name:       "unrelated team leaves state alone",
			in:         model.ViewState{Screen: model.ScreenTeamDetails, ActiveTeam: "Alpha", ViewingTeam: ptr("Alpha")},
			deleted:    "Beta",
			remaining:  []string{"Alpha"},
			wantActive: "Alpha",
			wantScreen: model.ScreenTeamDetails,
			wantView:   ptr("Alpha"),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := view.TeamDeleted(tc.in, tc.deleted, tc.remaining, "Team 1")
			assert.Equal(t, tc.wantActive, got.ActiveTeam)
			assert.Equal(t, tc.wantScreen, got.Screen)
			assert.Equal(t, tc.wantView, got.ViewingTeam)
		})
	}
}

func TestTeamRenamed(t *testing.T) {
	s := model.ViewState{Screen: model.ScreenTeamDetails, ActiveTeam: "Alpha", ViewingTeam: ptr("Alpha")}
	got := view.TeamRenamed(s, "Alpha", "Omega")
	assert.Equal(t, "Omega", got.ActiveTeam)
	require.NotNil(t, got.ViewingTeam)
	assert.Equal(t, "Omega", *got.ViewingTeam)
	assert.Equal(t, model.ScreenTeamDetails, got.Screen)

	// the input record is not aliased
	assert.Equal(t, "Alpha", *s.ViewingTeam)
}

func TestNavigate_DetailsRequiresViewingTeam(t *testing.T) {
	s := view.Initial("Team 1")
	got := view.Navigate(s, model.ScreenTeamDetails, lookup("Team 1"))
	assert.Equal(t, model.ScreenManageTeams, got.Screen)

	s.ViewingTeam = ptr("Team 1")
	got = view.Navigate(s, model.ScreenTeamDetails, lookup("Team 1"))
	assert.Equal(t, model.ScreenTeamDetails, got.Screen)

	got = view.Navigate(s, model.ScreenTeamDetails, lookup("Other"))
	assert.Equal(t, model.ScreenManageTeams, got.Screen)
	assert.Nil(t, got.ViewingTeam)
}

func TestSetActive(t *testing.T) {
	s := view.Initial("Team 1")
	assert.Equal(t, "Alpha", view.SetActive(s, "Alpha", lookup("Team 1", "Alpha")).ActiveTeam)
	assert.Equal(t, "Team 1", view.SetActive(s, "Nope", lookup("Team 1")).ActiveTeam)
}
