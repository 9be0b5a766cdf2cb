package board

import (
	"strings"
	"time"

	"github.com/aretw0/boardflow/pkg/core"
)

// NoteDraft holds the fields of a note to create. Zero values take the
// note defaults; a nil Position lets the store place the note.
type NoteDraft struct {
	Title       string
	Body        string
	Color       core.Color
	ClassTag    string
	Priority    core.Priority
	ReminderAt  *time.Time
	WeekNumber  *int
	WeekNumbers []int
	Status      core.Status
	Position    *core.Position
}

// DraftFromQuickParse turns a parsed quick-input line into a draft.
func DraftFromQuickParse(q core.QuickParse) NoteDraft {
	return NoteDraft{
		Title:      q.Title,
		Body:       q.Body,
		ClassTag:   q.ClassTag,
		Priority:   q.Priority,
		ReminderAt: q.ReminderAt,
		WeekNumber: q.WeekNumber,
	}
}

// NotePatch is a partial note update. Nil fields are left unchanged.
type NotePatch struct {
	Title    *string
	Body     *string
	Color    *core.Color
	ClassTag *string // blank clears the tag
	Priority *core.Priority
	Status   *core.Status
	Position *core.Position

	ReminderAt    *time.Time
	ClearReminder bool

	WeekNumber  *int
	WeekNumbers []int // replaces the week set when non-nil
}

func (p NotePatch) touchesReminder() bool {
	return p.ReminderAt != nil || p.ClearReminder
}

// CreateNote adds a note built from draft and returns it.
func (s *Store) CreateNote(draft NoteDraft) core.Note {
	var created core.Note
	s.mutate(func(st *core.BoardState) bool {
		n := core.NewNote(core.NoteSeed{
			Title:       draft.Title,
			Body:        draft.Body,
			ClassTag:    draft.ClassTag,
			Priority:    draft.Priority,
			ReminderAt:  draft.ReminderAt,
			WeekNumber:  draft.WeekNumber,
			WeekNumbers: draft.WeekNumbers,
		}, s.timestamp())
		if draft.Color.Valid() {
			n.Color = draft.Color
		}
		if draft.Status.Valid() {
			n.Status = draft.Status
		}
		n.Position = s.placement(st.Notes, draft.Position, n.WeekNumber)

		st.Notes = core.SortByUpdatedAtDesc(append([]core.Note{n}, st.Notes...))
		created = n.Clone()
		return true
	})
	return created
}

// CreateFromQuickInput parses one line of text and creates a note from it.
func (s *Store) CreateFromQuickInput(input string) core.Note {
	parsed := core.ParseQuickInput(input, s.now().In(s.loc))
	return s.CreateNote(DraftFromQuickParse(parsed))
}

func (s *Store) placement(notes []core.Note, explicit *core.Position, week *int) core.Position {
	switch {
	case explicit != nil:
		return clampPosition(*explicit)
	case s.touch:
		return core.TouchPosition
	default:
		return core.GridPosition(notes, week)
	}
}

func clampPosition(p core.Position) core.Position {
	return core.Position{X: max(0, p.X), Y: max(0, p.Y)}
}

// UpdateNote applies patch to the note with id and refreshes its updatedAt.
// Changing or clearing the reminder also clears the note's dismissed and
// sent markers. It reports false when no note has that id.
func (s *Store) UpdateNote(id string, patch NotePatch) bool {
	return s.mutate(func(st *core.BoardState) bool {
		i := indexOf(st.Notes, id)
		if i < 0 {
			return false
		}
		n := st.Notes[i]
		applyPatch(&n, patch)
		n.UpdatedAt = s.timestamp()
		if n.UpdatedAt.Before(n.CreatedAt) {
			n.UpdatedAt = n.CreatedAt
		}
		st.Notes[i] = n
		st.Notes = core.SortByUpdatedAtDesc(st.Notes)

		if patch.touchesReminder() {
			st.DismissedReminderIDs = core.RemoveID(st.DismissedReminderIDs, id)
			st.SentReminderIDs = core.RemoveID(st.SentReminderIDs, id)
		}
		return true
	})
}

func applyPatch(n *core.Note, p NotePatch) {
	if p.Title != nil {
		n.Title = strings.TrimSpace(*p.Title)
		if n.Title == "" {
			n.Title = core.DefaultTitle
		}
	}
	if p.Body != nil {
		n.Body = *p.Body
	}
	if p.Color != nil && p.Color.Valid() {
		n.Color = *p.Color
	}
	if p.ClassTag != nil {
		n.ClassTag = strings.TrimSpace(*p.ClassTag)
	}
	if p.Priority != nil && p.Priority.Valid() {
		n.Priority = *p.Priority
	}
	if p.Status != nil && p.Status.Valid() {
		n.Status = *p.Status
	}
	if p.Position != nil {
		n.Position = clampPosition(*p.Position)
	}
	switch {
	case p.ClearReminder:
		n.ReminderAt = nil
	case p.ReminderAt != nil:
		at := p.ReminderAt.UTC().Truncate(time.Millisecond)
		n.ReminderAt = &at
	}
	switch {
	case p.WeekNumbers != nil:
		n.SetWeeks(core.NormalizeWeeks(p.WeekNumbers, p.WeekNumber))
	case p.WeekNumber != nil:
		n.SetWeeks(core.NormalizeWeeks(n.Weeks(), p.WeekNumber))
	}
}

// UpdateNotePosition moves a note on the free canvas.
func (s *Store) UpdateNotePosition(id string, pos core.Position) bool {
	return s.UpdateNote(id, NotePatch{Position: &pos})
}

// UpdateNoteStatus moves a note to another lane.
func (s *Store) UpdateNoteStatus(id string, status core.Status) bool {
	if !status.Valid() {
		return false
	}
	return s.UpdateNote(id, NotePatch{Status: &status})
}

// UpdateNoteWeek adds week to the note's week set. Invalid weeks are ignored.
func (s *Store) UpdateNoteWeek(id string, week int) bool {
	if !core.ValidWeek(week) {
		return false
	}
	return s.UpdateNote(id, NotePatch{WeekNumber: &week})
}

// RemoveNote deletes a note and its reminder markers.
func (s *Store) RemoveNote(id string) bool {
	return s.mutate(func(st *core.BoardState) bool {
		i := indexOf(st.Notes, id)
		if i < 0 {
			return false
		}
		st.Notes = append(st.Notes[:i:i], st.Notes[i+1:]...)
		st.DismissedReminderIDs = core.RemoveID(st.DismissedReminderIDs, id)
		st.SentReminderIDs = core.RemoveID(st.SentReminderIDs, id)
		return true
	})
}

// RunAutoArchive archives notes whose weeks all lie before currentWeek, or
// before the current ISO week when currentWeek is 0. It saves only when a
// note changed and returns how many did.
func (s *Store) RunAutoArchive(currentWeek int) int {
	if currentWeek <= 0 {
		currentWeek = s.currentWeek()
	}
	changed := 0
	s.mutate(func(st *core.BoardState) bool {
		st.Notes, changed = core.ArchivePastWeeks(st.Notes, currentWeek, s.timestamp())
		return changed > 0
	})
	if changed > 0 {
		s.logger.Info("notes archived", "count", changed, "week", currentWeek)
	}
	return changed
}

func indexOf(notes []core.Note, id string) int {
	for i, n := range notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}
