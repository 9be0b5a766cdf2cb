package core

import "time"

// ArchivePastWeeks archives every note whose weeks all lie before
// currentWeek. Notes without weeks, with a current or future week, or
// already archived are left alone. It returns the notes newest first and
// the number archived.
func ArchivePastWeeks(notes []Note, currentWeek int, now time.Time) ([]Note, int) {
	out := cloneNotes(notes)
	changed := 0
	for i := range out {
		if out[i].Status == StatusArchived || !pastWeeks(out[i].Weeks(), currentWeek) {
			continue
		}
		out[i].Status = StatusArchived
		out[i].UpdatedAt = now
		changed++
	}
	return SortByUpdatedAtDesc(out), changed
}

func pastWeeks(weeks []int, currentWeek int) bool {
	if len(weeks) == 0 {
		return false
	}
	return weeks[len(weeks)-1] < currentWeek
}
