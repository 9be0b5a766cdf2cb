package core

import "time"

// MergeImported sanitizes each incoming entry and appends the valid ones
// to existing. An entry whose id is already taken, by an existing note or
// an earlier entry of the same batch, gets a fresh id and updatedAt = now.
func MergeImported(existing []Note, incoming []any, now time.Time) ([]Note, ImportSummary) {
	var summary ImportSummary

	taken := make(map[string]bool, len(existing)+len(incoming))
	for _, n := range existing {
		taken[n.ID] = true
	}

	merged := cloneNotes(existing)
	for _, raw := range incoming {
		n, ok := SanitizeNote(raw, now)
		if !ok {
			summary.Invalid++
			continue
		}
		if taken[n.ID] {
			summary.Conflicts++
			n.ID = uniqueID(taken)
			n.UpdatedAt = now
			if n.UpdatedAt.Before(n.CreatedAt) {
				n.UpdatedAt = n.CreatedAt
			}
		}
		taken[n.ID] = true
		merged = append(merged, n)
		summary.Added++
	}
	return SortByUpdatedAtDesc(merged), summary
}

func uniqueID(taken map[string]bool) string {
	for {
		if id := NewID(); !taken[id] {
			return id
		}
	}
}
