package board

import "github.com/aretw0/boardflow/pkg/core"

// Snapshot returns a copy of the whole state.
func (s *Store) Snapshot() core.BoardState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Notes returns every note, newest first.
func (s *Store) Notes() []core.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone().Notes
}

// Note returns the note with id.
func (s *Store) Note(id string) (core.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := indexOf(s.state.Notes, id); i >= 0 {
		return s.state.Notes[i].Clone(), true
	}
	return core.Note{}, false
}

// VisibleNotes returns the notes passing the active view filters.
func (s *Store) VisibleNotes() []core.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return core.FilterNotes(s.state.Notes, s.state.View.Filters, s.currentWeek())
}
