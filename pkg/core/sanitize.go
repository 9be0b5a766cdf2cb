package core

import (
	"math"
	"strings"
	"time"
)

// timestampLayouts are the textual forms accepted for persisted times.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// SanitizeNote validates one untrusted note object, as produced by
// decoding JSON into an any. It reports false when raw is not an object,
// has no non-empty string id, or has a blank title. Every other field is
// checked on its own and replaced by its default when unusable.
func SanitizeNote(raw any, now time.Time) (Note, bool) {
	obj, ok := asObject(raw)
	if !ok {
		return Note{}, false
	}
	id, _ := obj["id"].(string)
	if id == "" {
		return Note{}, false
	}
	title, _ := obj["title"].(string)
	title = strings.TrimSpace(title)
	if title == "" {
		return Note{}, false
	}

	n := Note{
		ID:       id,
		Title:    title,
		Color:    DefaultColor,
		Priority: DefaultPriority,
		Status:   StatusBoard,
		Position: DefaultPosition,
	}
	if body, ok := obj["body"].(string); ok {
		n.Body = body
	}
	if c, ok := obj["color"].(string); ok && Color(c).Valid() {
		n.Color = Color(c)
	}
	if p, ok := obj["priority"].(string); ok && Priority(p).Valid() {
		n.Priority = Priority(p)
	}
	if s, ok := obj["status"].(string); ok && Status(s).Valid() {
		n.Status = Status(s)
	}
	if tag, ok := obj["classTag"].(string); ok && strings.TrimSpace(tag) != "" {
		n.ClassTag = tag
	}
	if pos, ok := sanitizePosition(obj["position"]); ok {
		n.Position = pos
	}

	n.CreatedAt = now
	if t, ok := parseTimestamp(obj["createdAt"]); ok {
		n.CreatedAt = t
	}
	n.UpdatedAt = n.CreatedAt
	if t, ok := parseTimestamp(obj["updatedAt"]); ok && !t.Before(n.CreatedAt) {
		n.UpdatedAt = t
	}
	if t, ok := parseTimestamp(obj["reminderAt"]); ok {
		n.ReminderAt = &t
	}

	n.SetWeeks(NormalizeWeeks(weekList(obj["weekNumbers"]), weekValue(obj["weekNumber"])))
	return n, true
}

// maxCoordinate bounds an untrusted position so it always fits an int.
const maxCoordinate = math.MaxInt32

func sanitizePosition(raw any) (Position, bool) {
	obj, ok := asObject(raw)
	if !ok {
		return Position{}, false
	}
	x := numberField(obj, "x")
	y := numberField(obj, "y")
	if x == nil || y == nil || *x < 0 || *y < 0 {
		return Position{}, false
	}
	if *x > maxCoordinate || *y > maxCoordinate {
		return Position{}, false
	}
	return Position{X: int(math.Round(*x)), Y: int(math.Round(*y))}, true
}

func parseTimestamp(raw any) (time.Time, bool) {
	s, ok := raw.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Truncate(time.Millisecond), true
		}
	}
	return time.Time{}, false
}

func weekValue(raw any) *int {
	f, ok := raw.(float64)
	if !ok || f != math.Trunc(f) || f < minWeek || f > maxWeek {
		return nil
	}
	w := int(f)
	return &w
}

func weekList(raw any) []int {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]int, 0, len(items))
	for _, item := range items {
		if w := weekValue(item); w != nil {
			out = append(out, *w)
		}
	}
	return out
}

func asObject(raw any) (map[string]any, bool) {
	obj, ok := raw.(map[string]any)
	return obj, ok && obj != nil
}

// numberField returns the finite number stored under key, if any.
func numberField(obj map[string]any, key string) *float64 {
	f, ok := obj[key].(float64)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func stringList(raw any) []string {
	items, ok := raw.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// truthy follows loose boolean coercion for flags read from old payloads.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0 && !math.IsNaN(x)
	case string:
		return x != ""
	default:
		return true
	}
}
