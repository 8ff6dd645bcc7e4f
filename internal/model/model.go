// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes; the only behavior here is parsing enums.
package model

import "strings"

// Role is the playing role of a cricketer.
type Role string

const (
	RoleBatsman      Role = "Batsman"
	RoleBowler       Role = "Bowler"
	RoleAllRounder   Role = "All-Rounder"
	RoleWicketKeeper Role = "Wicket-Keeper"
)

// Roles lists every valid role in display order.
var Roles = []Role{RoleBatsman, RoleBowler, RoleAllRounder, RoleWicketKeeper}

// ParseRole matches a role case-insensitively. ok is false for anything else.
func ParseRole(s string) (Role, bool) {
	s = strings.TrimSpace(s)
	for _, r := range Roles {
		if strings.EqualFold(s, string(r)) {
			return r, true
		}
	}
	return "", false
}

// PlayerStats holds career numbers for a player.
type PlayerStats struct {
	Runs           int     `json:"runs"`
	Wickets        int     `json:"wickets"`
	BattingAverage float64 `json:"battingAverage"`
	HighestRun     int     `json:"highestRun"`
	HighestWicket  string  `json:"highestWicket"` // free-form, e.g. "5/25"
	ManOfTheMatch  int     `json:"manOfTheMatch"`
}

// PlayerDraft is a player record that has not been given an ID yet.
// Generated, imported and manually created players all start as drafts.
type PlayerDraft struct {
	Name    string      `json:"name"`
	Country string      `json:"country"`
	Role    Role        `json:"role"`
	Stats   PlayerStats `json:"stats"`
}

// WithID turns the draft into a pool player.
func (d PlayerDraft) WithID(id int64) Player {
	return Player{ID: id, Name: d.Name, Country: d.Country, Role: d.Role, Stats: d.Stats}
}

// Player is a pool member. Identity is the ID, never the struct value.
type Player struct {
	ID      int64       `json:"id"`
	Name    string      `json:"name"`
	Country string      `json:"country"`
	Role    Role        `json:"role"`
	Stats   PlayerStats `json:"stats"`
}

// Team is a read-only snapshot of a named roster.
type Team struct {
	Name      string  `json:"name"`
	PlayerIDs []int64 `json:"player_ids"`
}

// TeamSummary is the row shown in the team list.
type TeamSummary struct {
	Name        string `json:"name"`
	PlayerCount int    `json:"player_count"`
}

// TeamRoster resolves a team's members against the pool for display.
type TeamRoster struct {
	Name        string   `json:"name"`
	Players     []Player `json:"players"`
	MaxTeamSize int      `json:"max_team_size"`
	IsFull      bool     `json:"is_full"`
}

// Screen is a top-level UI destination.
type Screen string

const (
	ScreenHome        Screen = "home"
	ScreenManageTeams Screen = "manage_teams"
	ScreenTeamDetails Screen = "team_details"
)

// ParseScreen accepts the canonical names only.
func ParseScreen(s string) (Screen, bool) {
	switch Screen(strings.TrimSpace(s)) {
	case ScreenHome:
		return ScreenHome, true
	case ScreenManageTeams:
		return ScreenManageTeams, true
	case ScreenTeamDetails:
		return ScreenTeamDetails, true
	default:
		return "", false
	}
}

// ViewState is the finite-state record driven by the view coordinator.
// ViewingTeam is nil unless a team detail screen has been opened.
type ViewState struct {
	Screen      Screen  `json:"screen"`
	ActiveTeam  string  `json:"active_team"`
	ViewingTeam *string `json:"viewing_team"`
}

// PoolStatus reports the progress of the initial player fetch.
type PoolStatus string

const (
	PoolLoading PoolStatus = "loading"
	PoolReady   PoolStatus = "ready"
	PoolFailed  PoolStatus = "failed"
)

// PoolState is what the UI needs to render the loading, error or ready state.
type PoolState struct {
	Status PoolStatus `json:"status"`
	Error  string     `json:"error,omitempty"`
	Size   int        `json:"size"`
}
