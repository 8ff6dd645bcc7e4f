// Package contract holds behavior suites every Roster Store implementation must pass.
package contract

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/maxviazov/cricket-roster-service/internal/model"
	"github.com/maxviazov/cricket-roster-service/internal/repository"
)

// DefaultTeam is the team name factories must seed the store with.
const DefaultTeam = "Team 1"

// RosterFactory returns a fresh store with one empty DefaultTeam and the given cap.
type RosterFactory func(t *testing.T, maxTeamSize int) (repository.RosterRepository, func())

// TxFactory returns a fresh TxManager.
type TxFactory func(t *testing.T) repository.TxManager

func drafts(n int) []model.PlayerDraft {
	out := make([]model.PlayerDraft, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, model.PlayerDraft{Name: fmt.Sprintf("P%d", i+1), Country: "India", Role: model.RoleBatsman})
	}
	return out
}

// RunPlayerRepositoryContract covers pool growth and the identity allocator.
func RunPlayerRepositoryContract(t *testing.T, makeRepo RosterFactory) {
	t.Helper()

	t.Run("append_assigns_sequential_ids", func(t *testing.T) {
		repo, cleanup := makeRepo(t, 6)
		t.Cleanup(cleanup)
		added := repo.Append(drafts(3))
		if len(added) != 3 {
			t.Fatalf("expected 3 players, got %d", len(added))
		}
		for i, p := range added {
			if p.ID != int64(i+1) {
				t.Fatalf("player %d: expected id %d, got %d", i, i+1, p.ID)
			}
		}
	})

	t.Run("append_continues_above_max", func(t *testing.T) {
		repo, cleanup := makeRepo(t, 6)
		t.Cleanup(cleanup)
		repo.Append(drafts(2))
		next := repo.Append(drafts(3))
		if next[0].ID != 3 || next[2].ID != 5 {
			t.Fatalf("unexpected ids: %+v", next)
		}
	})

	t.Run("append_empty_batch_is_noop", func(t *testing.T) {
		repo, cleanup := makeRepo(t, 6)
		t.Cleanup(cleanup)
		repo.Append(drafts(2))
		added := repo.Append(nil)
		if len(added) != 0 || repo.Len() != 2 {
			t.Fatalf("expected no change, got added=%d len=%d", len(added), repo.Len())
		}
	})

	t.Run("prepend_goes_to_front", func(t *testing.T) {
		repo, cleanup := makeRepo(t, 6)
		t.Cleanup(cleanup)
		repo.Append(drafts(2))
		p := repo.Prepend(model.PlayerDraft{Name: "Manual"})
		if p.ID != 3 {
			t.Fatalf("expected id 3, got %d", p.ID)
		}
		page := repo.List(repository.Page{Limit: 10})
		if page.Total != 3 || page.Items[0].ID != 3 || page.Items[1].ID != 1 {
			t.Fatalf("unexpected pool order: %+v", page.Items)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, cleanup := makeRepo(t, 6)
		t.Cleanup(cleanup)
		_, err := repo.GetByID(424242)
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("list_pagination_total", func(t *testing.T) {
		repo, cleanup := makeRepo(t, 6)
		t.Cleanup(cleanup)
		repo.Append(drafts(7))
		res := repo.List(repository.Page{Limit: 3, Offset: 3})
		if len(res.Items) != 3 || res.Total != 7 || res.Items[0].ID != 4 {
			t.Fatalf("unexpected page: %+v", res)
		}
	})
}

// RunTeamRepositoryContract covers membership, capacity and lifecycle rules.
func RunTeamRepositoryContract(t *testing.T, makeRepo RosterFactory) {
	t.Helper()

	t.Run("starts_with_default_team", func(t *testing.T) {
		repo, cleanup := makeRepo(t, 6)
		t.Cleanup(cleanup)
		if names := repo.Names(); len(names) != 1 || names[0] != DefaultTeam {
			t.Fatalf("unexpected teams: %v", names)
		}
	})

	t.Run("summaries_follow_key_order_next_to_pool_list", func(t *testing.T) {
		repo, cleanup := makeRepo(t, 6)
		t.Cleanup(cleanup)
		ps := repo.Append(drafts(2))
		if err := repo.Create("Alpha"); err != nil {
			t.Fatalf("create: %v", err)
		}
		repo.AddMember("Alpha", ps[1].ID)

		sums := repo.Summaries()
		want := []model.TeamSummary{{Name: DefaultTeam, PlayerCount: 0}, {Name: "Alpha", PlayerCount: 1}}
		if len(sums) != len(want) || sums[0] != want[0] || sums[1] != want[1] {
			t.Fatalf("unexpected summaries: %+v", sums)
		}
		if page := repo.List(repository.Page{}); page.Total != 2 {
			t.Fatalf("expected 2 pool players, got %d", page.Total)
		}
	})

	t.Run("add_respects_capacity", func(t *testing.T) {
		repo, cleanup := makeRepo(t, 2)
		t.Cleanup(cleanup)
		ps := repo.Append(drafts(3))
		for _, p := range ps {
			repo.AddMember(DefaultTeam, p.ID)
		}
		team, _ := repo.Get(DefaultTeam)
		if len(team.PlayerIDs) != 2 || team.PlayerIDs[0] != ps[0].ID || team.PlayerIDs[1] != ps[1].ID {
			t.Fatalf("unexpected roster: %v", team.PlayerIDs)
		}
	})

	t.Run("add_twice_keeps_one_entry", func(t *testing.T) {
		repo, cleanup := makeRepo(t, 6)
		t.Cleanup(cleanup)
		p := repo.Append(drafts(1))[0]
		if !repo.AddMember(DefaultTeam, p.ID) {
			t.Fatalf("first add should succeed")
		}
		if repo.AddMember(DefaultTeam, p.ID) {
			t.Fatalf("second add should be a no-op")
		}
		team, _ := repo.Get(DefaultTeam)
		if len(team.PlayerIDs) != 1 {
			t.Fatalf("expected one entry, got %v", team.PlayerIDs)
		}
	})

	t.Run("add_unknown_player_or_team_is_noop", func(t *testing.T) {
		repo, cleanup := makeRepo(t, 6)
		t.Cleanup(cleanup)
		p := repo.Append(drafts(1))[0]
		if repo.AddMember(DefaultTeam, 999) {
			t.Fatalf("player outside the pool must not be added")
		}
		if repo.AddMember("Ghosts", p.ID) {
			t.Fatalf("unknown team must not be created implicitly")
		}
		if repo.Exists("Ghosts") {
			t.Fatalf("unknown team appeared")
		}
	})

	t.Run("remove_keeps_pool_and_other_teams", func(t *testing.T) {
		repo, cleanup := makeRepo(t, 6)
		t.Cleanup(cleanup)
		p := repo.Append(drafts(1))[0]
		if err := repo.Create("Alpha"); err != nil {
			t.Fatalf("create: %v", err)
		}
		repo.AddMember(DefaultTeam, p.ID)
		repo.AddMember("Alpha", p.ID)
		if !repo.RemoveMember(DefaultTeam, p.ID) {
			t.Fatalf("remove should report a change")
		}
		if repo.RemoveMember(DefaultTeam, p.ID) {
			t.Fatalf("second remove should be a no-op")
		}
		if _, err := repo.GetByID(p.ID); err != nil {
			t.Fatalf("player left the pool: %v", err)
		}
		alpha, _ := repo.Get("Alpha")
		if len(alpha.PlayerIDs) != 1 {
			t.Fatalf("other team changed: %v", alpha.PlayerIDs)
		}
	})

	t.Run("shrink_truncates_tail_and_does_not_restore", func(t *testing.T) {
		repo, cleanup := makeRepo(t, 6)
		t.Cleanup(cleanup)
		ps := repo.Append(drafts(6))
		for _, p := range ps {
			repo.AddMember(DefaultTeam, p.ID)
		}
		if err := repo.SetMaxTeamSize(5); err != nil {
			t.Fatalf("shrink: %v", err)
		}
		team, _ := repo.Get(DefaultTeam)
		if len(team.PlayerIDs) != 5 || team.PlayerIDs[4] != ps[4].ID {
			t.Fatalf("unexpected roster after shrink: %v", team.PlayerIDs)
		}
		if err := repo.SetMaxTeamSize(6); err != nil {
			t.Fatalf("grow: %v", err)
		}
		team, _ = repo.Get(DefaultTeam)
		if len(team.PlayerIDs) != 5 {
			t.Fatalf("dropped member came back: %v", team.PlayerIDs)
		}
		// the dropped player is a free agent again, not a hidden member
		if !repo.AddMember(DefaultTeam, ps[5].ID) {
			t.Fatalf("dropped player should be addable again")
		}
	})

	t.Run("invalid_size_rejected", func(t *testing.T) {
		repo, cleanup := makeRepo(t, 6)
		t.Cleanup(cleanup)
		if err := repo.SetMaxTeamSize(0); !errors.Is(err, repository.ErrInvalidTeamSize) {
			t.Fatalf("expected ErrInvalidTeamSize, got %v", err)
		}
		if repo.MaxTeamSize() != 6 {
			t.Fatalf("cap changed on error: %d", repo.MaxTeamSize())
		}
	})

	t.Run("create_duplicate_or_blank_name", func(t *testing.T) {
		repo, cleanup := makeRepo(t, 6)
		t.Cleanup(cleanup)
		p := repo.Append(drafts(1))[0]
		repo.AddMember(DefaultTeam, p.ID)
		err := repo.Create(DefaultTeam)
		if !errors.Is(err, repository.ErrDuplicateName) {
			t.Fatalf("expected ErrDuplicateName, got %v", err)
		}
		if err := repo.Create("   "); !errors.Is(err, repository.ErrDuplicateName) {
			t.Fatalf("expected ErrDuplicateName for blank name, got %v", err)
		}
		team, _ := repo.Get(DefaultTeam)
		if len(team.PlayerIDs) != 1 {
			t.Fatalf("existing team touched: %v", team.PlayerIDs)
		}
	})

	t.Run("rename_carries_members_and_moves_to_end", func(t *testing.T) {
		repo, cleanup := makeRepo(t, 6)
		t.Cleanup(cleanup)
		p := repo.Append(drafts(1))[0]
		repo.AddMember(DefaultTeam, p.ID)
		_ = repo.Create("Beta")
		if err := repo.Rename(DefaultTeam, "Alpha"); err != nil {
			t.Fatalf("rename: %v", err)
		}
		if repo.Exists(DefaultTeam) {
			t.Fatalf("old name still present")
		}
		alpha, err := repo.Get("Alpha")
		if err != nil || len(alpha.PlayerIDs) != 1 || alpha.PlayerIDs[0] != p.ID {
			t.Fatalf("members not carried over: %+v %v", alpha, err)
		}
		if names := repo.Names(); names[0] != "Beta" || names[1] != "Alpha" {
			t.Fatalf("unexpected key order: %v", names)
		}
	})

	t.Run("rename_noops_and_collision", func(t *testing.T) {
		repo, cleanup := makeRepo(t, 6)
		t.Cleanup(cleanup)
		_ = repo.Create("Beta")
		if err := repo.Rename("Nope", "Other"); err != nil {
			t.Fatalf("missing team should be a no-op, got %v", err)
		}
		if err := repo.Rename("Beta", "Beta"); err != nil {
			t.Fatalf("same name should be a no-op, got %v", err)
		}
		err := repo.Rename("Beta", DefaultTeam)
		if !errors.Is(err, repository.ErrDuplicateName) {
			t.Fatalf("expected ErrDuplicateName, got %v", err)
		}
		if !repo.Exists("Beta") || !repo.Exists(DefaultTeam) {
			t.Fatalf("collision changed teams: %v", repo.Names())
		}
	})

	t.Run("delete_last_team_restores_default", func(t *testing.T) {
		repo, cleanup := makeRepo(t, 6)
		t.Cleanup(cleanup)
		p := repo.Append(drafts(1))[0]
		repo.AddMember(DefaultTeam, p.ID)
		if !repo.Delete(DefaultTeam) {
			t.Fatalf("delete should report a change")
		}
		team, err := repo.Get(DefaultTeam)
		if err != nil || len(team.PlayerIDs) != 0 {
			t.Fatalf("expected an empty default team, got %+v %v", team, err)
		}
		if repo.Delete("Nope") {
			t.Fatalf("unknown team delete should be a no-op")
		}
	})
}

// RunTxManagerContract checks that nested units of work do not deadlock and errors propagate.
func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("nested_runs_inline", func(t *testing.T) {
		tx := makeTx(t)
		calls := 0
		err := tx.WithinTx(t.Context(), func(ctx context.Context) error {
			calls++
			return tx.WithinTx(ctx, func(context.Context) error {
				calls++
				return nil
			})
		})
		if err != nil || calls != 2 {
			t.Fatalf("unexpected result: calls=%d err=%v", calls, err)
		}
	})

	t.Run("error_propagates", func(t *testing.T) {
		tx := makeTx(t)
		boom := errors.New("boom")
		if err := tx.WithinTx(t.Context(), func(context.Context) error { return boom }); !errors.Is(err, boom) {
			t.Fatalf("expected boom, got %v", err)
		}
	})

	t.Run("canceled_context", func(t *testing.T) {
		tx := makeTx(t)
		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		ran := false
		err := tx.WithinTx(ctx, func(context.Context) error { ran = true; return nil })
		if !errors.Is(err, context.Canceled) || ran {
			t.Fatalf("expected context.Canceled without running, got ran=%v err=%v", ran, err)
		}
	})
}
