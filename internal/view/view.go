// Package view is the View-State Coordinator. Every transition takes the current
// model.ViewState and returns the next one; nothing here holds state.
package view

import "github.com/maxviazov/cricket-roster-service/internal/model"

// TeamLookup answers whether a team name currently exists.
type TeamLookup func(name string) bool

// Initial is the startup state: quick-build against the default team.
func Initial(defaultTeam string) model.ViewState {
	return model.ViewState{Screen: model.ScreenHome, ActiveTeam: defaultTeam}
}

// TeamCreated makes the new team active and sends the user to build it.
func TeamCreated(s model.ViewState, name string) model.ViewState {
	s.ActiveTeam = name
	s.Screen = model.ScreenHome
	return s
}

// ViewTeam opens the detail screen for name. Unknown teams fall back to ManageTeams.
func ViewTeam(s model.ViewState, name string, exists TeamLookup) model.ViewState {
	if !exists(name) {
		s.ViewingTeam = nil
		s.Screen = model.ScreenManageTeams
		return s
	}
	n := name
	s.ViewingTeam = &n
	s.Screen = model.ScreenTeamDetails
	return s
}

// SetActive switches the quick-build target. Unknown names leave the state unchanged.
func SetActive(s model.ViewState, name string, exists TeamLookup) model.ViewState {
	if exists(name) {
		s.ActiveTeam = name
	}
	return s
}

// Navigate moves to screen, then re-checks the detail screen invariant.
func Navigate(s model.ViewState, screen model.Screen, exists TeamLookup) model.ViewState {
	s.Screen = screen
	return Reconcile(s, exists)
}

// TeamDeleted resets references to the deleted team. remaining is the key order after deletion;
// fallback is used when nothing remains.
func TeamDeleted(s model.ViewState, deleted string, remaining []string, fallback string) model.ViewState {
	viewing := s.ViewingTeam != nil && *s.ViewingTeam == deleted
	if s.ActiveTeam != deleted && !viewing {
		return s
	}
	s.ViewingTeam = nil
	s.ActiveTeam = fallback
	if len(remaining) > 0 {
		s.ActiveTeam = remaining[0]
	}
	s.Screen = model.ScreenManageTeams
	return s
}

// TeamRenamed follows the team to its new name without changing screens.
func TeamRenamed(s model.ViewState, oldName, newName string) model.ViewState {
	if s.ActiveTeam == oldName {
		s.ActiveTeam = newName
	}
	if s.ViewingTeam != nil && *s.ViewingTeam == oldName {
		n := newName
		s.ViewingTeam = &n
	}
	return s
}

// Reconcile enforces that TeamDetails always points at an existing team.
func Reconcile(s model.ViewState, exists TeamLookup) model.ViewState {
	if s.Screen == model.ScreenTeamDetails && (s.ViewingTeam == nil || !exists(*s.ViewingTeam)) {
		s.Screen = model.ScreenManageTeams
		s.ViewingTeam = nil
	}
	return s
}
