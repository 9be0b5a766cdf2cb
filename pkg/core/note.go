package core

import (
	"sort"
	"strings"
	"time"
)

// NoteSeed carries the optional fields a new note can start from.
type NoteSeed struct {
	Title       string
	Body        string
	ClassTag    string
	Priority    Priority
	ReminderAt  *time.Time
	WeekNumber  *int
	WeekNumbers []int
}

// SeedFromQuickParse converts a parsed quick-input line into a seed.
func SeedFromQuickParse(q QuickParse) NoteSeed {
	return NoteSeed{
		Title:      q.Title,
		Body:       q.Body,
		ClassTag:   q.ClassTag,
		Priority:   q.Priority,
		ReminderAt: q.ReminderAt,
		WeekNumber: q.WeekNumber,
	}
}

// NewNote builds a note on the board lane at the default position.
func NewNote(seed NoteSeed, now time.Time) Note {
	title := strings.TrimSpace(seed.Title)
	if title == "" {
		title = DefaultTitle
	}
	priority := seed.Priority
	if !priority.Valid() {
		priority = DefaultPriority
	}
	weeks := NormalizeWeeks(seed.WeekNumbers, seed.WeekNumber)

	return Note{
		ID:          NewID(),
		Title:       title,
		Body:        strings.TrimSpace(seed.Body),
		Color:       DefaultColor,
		ClassTag:    strings.TrimSpace(seed.ClassTag),
		Priority:    priority,
		ReminderAt:  utcPtr(seed.ReminderAt),
		WeekNumber:  primaryWeek(weeks),
		WeekNumbers: weeks,
		Status:      StatusBoard,
		Position:    DefaultPosition,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Clone returns a deep copy of the note.
func (n Note) Clone() Note {
	out := n
	out.ReminderAt = utcPtr(n.ReminderAt)
	if n.WeekNumber != nil {
		w := *n.WeekNumber
		out.WeekNumber = &w
	}
	out.WeekNumbers = append([]int{}, n.WeekNumbers...)
	return out
}

// Weeks returns the note's canonical week set, tolerating a note whose
// scalar and set fields disagree.
func (n Note) Weeks() []int {
	return NormalizeWeeks(n.WeekNumbers, n.WeekNumber)
}

// HasWeek reports whether week is in the note's week set.
func (n Note) HasWeek(week int) bool {
	for _, w := range n.Weeks() {
		if w == week {
			return true
		}
	}
	return false
}

// SetWeeks replaces the week set, keeping the scalar week in sync.
func (n *Note) SetWeeks(weeks []int) {
	n.WeekNumbers = NormalizeWeeks(weeks, nil)
	n.WeekNumber = primaryWeek(n.WeekNumbers)
}

// SortByUpdatedAtDesc returns a copy of notes ordered newest first.
// Notes with equal timestamps keep their relative order.
func SortByUpdatedAtDesc(notes []Note) []Note {
	out := append([]Note{}, notes...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	return out
}

func cloneNotes(notes []Note) []Note {
	out := make([]Note, len(notes))
	for i, n := range notes {
		out[i] = n.Clone()
	}
	return out
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := t.UTC()
	return &v
}
