// Package memory is the in-process Roster Store: the player pool and the named teams.
// Nothing here is safe for concurrent use on its own; callers serialize through TxManager.
package memory

import (
	"fmt"
	"slices"
	"strings"

	"github.com/maxviazov/cricket-roster-service/internal/model"
	"github.com/maxviazov/cricket-roster-service/internal/repository"
)

// Options configure a new roster.
type Options struct {
	// DefaultTeam is created at startup and re-created when the last team is deleted.
	DefaultTeam string
	MaxTeamSize int
	// AllowedTeamSizes bounds SetMaxTeamSize. Empty means any size >= 1.
	AllowedTeamSizes []int
}

type roster struct {
	players map[int64]model.Player
	order   []int64 // pool display order

	teams       map[string]*memberList
	names       []string // key order
	maxTeamSize int
	allowed     []int
	defaultTeam string
}

// NewRoster builds an empty pool with a single empty default team.
func NewRoster(opts Options) (repository.RosterRepository, error) {
	if strings.TrimSpace(opts.DefaultTeam) == "" {
		return nil, &repository.DuplicateNameError{Name: opts.DefaultTeam, Empty: true}
	}
	if opts.MaxTeamSize < 1 || (len(opts.AllowedTeamSizes) > 0 && !slices.Contains(opts.AllowedTeamSizes, opts.MaxTeamSize)) {
		return nil, fmt.Errorf("%w: %d", repository.ErrInvalidTeamSize, opts.MaxTeamSize)
	}
	r := &roster{
		players:     make(map[int64]model.Player),
		teams:       make(map[string]*memberList),
		maxTeamSize: opts.MaxTeamSize,
		allowed:     slices.Clone(opts.AllowedTeamSizes),
		defaultTeam: opts.DefaultTeam,
	}
	r.insertTeam(opts.DefaultTeam)
	return r, nil
}

// Pool

func (r *roster) Append(drafts []model.PlayerDraft) []model.Player {
	added := repository.AllocateIDs(repository.MaxID(r.order), drafts)
	for _, p := range added {
		r.players[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return added
}

func (r *roster) Prepend(draft model.PlayerDraft) model.Player {
	p := repository.AllocateIDs(repository.MaxID(r.order), []model.PlayerDraft{draft})[0]
	r.players[p.ID] = p
	r.order = append([]int64{p.ID}, r.order...)
	return p
}

func (r *roster) GetByID(id int64) (model.Player, error) {
	p, ok := r.players[id]
	if !ok {
		return model.Player{}, repository.ErrNotFound
	}
	return p, nil
}

func (r *roster) List(p repository.Page) repository.PageResult[model.Player] {
	all := make([]model.Player, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.players[id])
	}
	return repository.Paginate(all, p)
}

func (r *roster) Len() int { return len(r.order) }

// Teams

func (r *roster) Create(name string) error {
	if err := r.checkName(name); err != nil {
		return err
	}
	r.insertTeam(name)
	return nil
}

// Delete removes the team. Deleting the last team brings back an empty default team,
// so there is always at least one team to act on.
func (r *roster) Delete(name string) bool {
	if _, ok := r.teams[name]; !ok {
		return false
	}
	delete(r.teams, name)
	r.names = slices.DeleteFunc(r.names, func(n string) bool { return n == name })
	if len(r.names) == 0 {
		r.insertTeam(r.defaultTeam)
	}
	return true
}

// Rename carries the member sequence over unchanged. The team moves to the end of key order.
func (r *roster) Rename(oldName, newName string) error {
	members, ok := r.teams[oldName]
	if !ok || oldName == newName {
		return nil
	}
	if err := r.checkName(newName); err != nil {
		return err
	}
	delete(r.teams, oldName)
	r.names = slices.DeleteFunc(r.names, func(n string) bool { return n == oldName })
	r.teams[newName] = members
	r.names = append(r.names, newName)
	return nil
}

func (r *roster) Exists(name string) bool {
	_, ok := r.teams[name]
	return ok
}

func (r *roster) Get(name string) (model.Team, error) {
	m, ok := r.teams[name]
	if !ok {
		return model.Team{}, repository.ErrNotFound
	}
	return model.Team{Name: name, PlayerIDs: m.IDs()}, nil
}

func (r *roster) Names() []string { return slices.Clone(r.names) }

func (r *roster) Summaries() []model.TeamSummary {
	out := make([]model.TeamSummary, 0, len(r.names))
	for _, n := range r.names {
		out = append(out, model.TeamSummary{Name: n, PlayerCount: r.teams[n].Len()})
	}
	return out
}

// AddMember is a no-op when the team is unknown or full, the player is not in the pool,
// or the player is already on that team.
func (r *roster) AddMember(teamName string, playerID int64) bool {
	m, ok := r.teams[teamName]
	if !ok || m.Len() >= r.maxTeamSize {
		return false
	}
	if _, ok := r.players[playerID]; !ok {
		return false
	}
	return m.Add(playerID)
}

func (r *roster) RemoveMember(teamName string, playerID int64) bool {
	m, ok := r.teams[teamName]
	if !ok {
		return false
	}
	return m.Remove(playerID)
}

func (r *roster) MaxTeamSize() int { return r.maxTeamSize }

func (r *roster) SetMaxTeamSize(size int) error {
	if size < 1 || (len(r.allowed) > 0 && !slices.Contains(r.allowed, size)) {
		return fmt.Errorf("%w: %d", repository.ErrInvalidTeamSize, size)
	}
	for _, n := range r.names {
		r.teams[n].Truncate(size)
	}
	r.maxTeamSize = size
	return nil
}

func (r *roster) checkName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &repository.DuplicateNameError{Name: name, Empty: true}
	}
	if _, exists := r.teams[name]; exists {
		return &repository.DuplicateNameError{Name: name}
	}
	return nil
}

func (r *roster) insertTeam(name string) {
	r.teams[name] = newMemberList()
	r.names = append(r.names, name)
}

var _ repository.RosterRepository = (*roster)(nil)
