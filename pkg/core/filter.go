package core

import (
	"sort"
	"strings"
	"time"
)

// DefaultFilters returns filters that let every non-archived note through.
func DefaultFilters() Filters {
	return Filters{
		Priority: PriorityFilter(FilterAll),
		Status:   StatusFilter(FilterAll),
	}
}

// FilterNotes returns the notes passing every active filter, in their
// original order. currentWeek is only consulted when OnlyCurrentWeek is set.
func FilterNotes(notes []Note, f Filters, currentWeek int) []Note {
	query := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if !f.IncludeArchived && n.Status == StatusArchived {
			continue
		}
		if f.Status != FilterAll && f.Status != "" && Status(f.Status) != n.Status {
			continue
		}
		if f.ClassTag != nil && *f.ClassTag != "" && *f.ClassTag != n.ClassTag {
			continue
		}
		if f.Priority != FilterAll && f.Priority != "" && Priority(f.Priority) != n.Priority {
			continue
		}
		if f.WeekNumber != nil && *f.WeekNumber != 0 && !n.HasWeek(*f.WeekNumber) {
			continue
		}
		if f.OnlyCurrentWeek && !n.HasWeek(currentWeek) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(n.Title+" "+n.Body), query) {
			continue
		}
		out = append(out, n.Clone())
	}
	return out
}

// DueReminders returns the notes whose reminder is at or before now, that
// are not archived and are in neither marker list, earliest first.
func DueReminders(notes []Note, dismissed, sent []string, now time.Time) []Note {
	skip := make(map[string]bool, len(dismissed)+len(sent))
	for _, id := range dismissed {
		skip[id] = true
	}
	for _, id := range sent {
		skip[id] = true
	}

	due := make([]Note, 0)
	for _, n := range notes {
		if n.ReminderAt == nil || n.Status == StatusArchived || skip[n.ID] {
			continue
		}
		if n.ReminderAt.After(now) {
			continue
		}
		due = append(due, n.Clone())
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].ReminderAt.Before(*due[j].ReminderAt)
	})
	return due
}
