package board

import (
	"time"

	"github.com/aretw0/boardflow/pkg/core"
)

// DismissReminder hides a note's reminder until it is rescheduled.
func (s *Store) DismissReminder(id string) {
	s.mutate(func(st *core.BoardState) bool {
		st.DismissedReminderIDs = core.AddID(st.DismissedReminderIDs, id)
		return true
	})
}

// MarkReminderSent records that a note's reminder was delivered.
func (s *Store) MarkReminderSent(id string) {
	s.mutate(func(st *core.BoardState) bool {
		st.SentReminderIDs = core.AddID(st.SentReminderIDs, id)
		return true
	})
}

// ClearReminderMarkers lets a note's reminder fire again.
func (s *Store) ClearReminderMarkers(id string) {
	s.mutate(func(st *core.BoardState) bool {
		st.DismissedReminderIDs = core.RemoveID(st.DismissedReminderIDs, id)
		st.SentReminderIDs = core.RemoveID(st.SentReminderIDs, id)
		return true
	})
}

// DueReminders returns the notes whose reminder should fire at now.
func (s *Store) DueReminders(now time.Time) []core.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return core.DueReminders(s.state.Notes, s.state.DismissedReminderIDs, s.state.SentReminderIDs, now)
}
