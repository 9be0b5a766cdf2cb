package core

import (
	"regexp"
	"sort"
	"strconv"
	"time"
)

const (
	minWeek = 1
	maxWeek = 53

	// reminderHour is the local time of day a parsed D/M date fires at.
	reminderHour = 8
)

var dayMonthPattern = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})$`)

// ISOWeek returns the ISO-8601 week number of t in t's location.
func ISOWeek(t time.Time) int {
	_, week := t.ISOWeek()
	return week
}

// ValidWeek reports whether w is a usable week number.
func ValidWeek(w int) bool {
	return w >= minWeek && w <= maxWeek
}

// NormalizeWeeks merges a week set and a single week into the canonical
// sorted, deduplicated form. Out-of-range values are dropped.
func NormalizeWeeks(weeks []int, week *int) []int {
	out := make([]int, 0, len(weeks)+1)
	seen := make(map[int]bool, len(weeks)+1)
	add := func(w int) {
		if !ValidWeek(w) || seen[w] {
			return
		}
		seen[w] = true
		out = append(out, w)
	}
	for _, w := range weeks {
		add(w)
	}
	if week != nil {
		add(*week)
	}
	sort.Ints(out)
	return out
}

// primaryWeek returns the first element of a normalized week set.
func primaryWeek(weeks []int) *int {
	if len(weeks) == 0 {
		return nil
	}
	w := weeks[0]
	return &w
}

// ParseDayMonth reads a "D/M" or "D-M" token as a date in now's year and
// location at 08:00. Dates that do not exist in that year are rejected.
func ParseDayMonth(token string, now time.Time) (time.Time, bool) {
	m := dayMonthPattern.FindStringSubmatch(token)
	if m == nil {
		return time.Time{}, false
	}
	day, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	if day < 1 || day > 31 || month < 1 || month > 12 {
		return time.Time{}, false
	}

	candidate := time.Date(now.Year(), time.Month(month), day, reminderHour, 0, 0, 0, now.Location())
	if candidate.Day() != day || candidate.Month() != time.Month(month) {
		return time.Time{}, false
	}
	return candidate, true
}
