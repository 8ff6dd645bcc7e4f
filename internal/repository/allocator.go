package repository

import "github.com/maxviazov/cricket-roster-service/internal/model"

// MaxID returns the highest ID in ids, or 0 when there are none.
func MaxID(ids []int64) int64 {
	var top int64
	for _, id := range ids {
		if id > top {
			top = id
		}
	}
	return top
}

// AllocateIDs assigns strictly increasing IDs to drafts, starting right above maxID.
// The batch is numbered in input order, so it never collides with itself or the pool.
// An empty batch returns an empty, non-nil slice.
func AllocateIDs(maxID int64, drafts []model.PlayerDraft) []model.Player {
	if maxID < 0 {
		maxID = 0
	}
	out := make([]model.Player, 0, len(drafts))
	for _, d := range drafts {
		maxID++
		out = append(out, d.WithID(maxID))
	}
	return out
}
