package repository

import (
	"context"

	"github.com/maxviazov/cricket-roster-service/internal/model"
)

// TxFunc is the unit of work executed within a transaction boundary.
// I pass context through so nested calls can honor cancellations and deadlines.
type TxFunc func(ctx context.Context) error

// TxManager serializes units of work that touch more than one piece of state.
// Roster and view-state changes are not independently atomic, so every mutation goes through here.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// PlayerRepository declares operations on the player pool.
// The pool only grows: there is no delete.
type PlayerRepository interface {
	// Append runs the allocator over drafts and adds the results at the end of the pool.
	Append(drafts []model.PlayerDraft) []model.Player
	// Prepend allocates one ID and inserts the player at the front of the pool.
	Prepend(draft model.PlayerDraft) model.Player
	GetByID(id int64) (model.Player, error)
	List(p Page) PageResult[model.Player]
	Len() int
}

// TeamRepository declares operations on named rosters.
// Unknown team or player names are no-ops, not errors, for the mutating calls.
type TeamRepository interface {
	Create(name string) error
	Delete(name string) bool
	Rename(oldName, newName string) error
	Exists(name string) bool
	Get(name string) (model.Team, error)
	// Names returns team names in key order: creation order, with a renamed team moved to the end.
	Names() []string
	Summaries() []model.TeamSummary

	AddMember(teamName string, playerID int64) bool
	RemoveMember(teamName string, playerID int64) bool

	MaxTeamSize() int
	// SetMaxTeamSize updates the global cap and truncates every oversized team from the tail.
	SetMaxTeamSize(size int) error
}

// RosterRepository is the whole Roster Store: pool plus teams.
type RosterRepository interface {
	PlayerRepository
	TeamRepository
}
