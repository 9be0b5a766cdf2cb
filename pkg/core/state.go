package core

import (
	"encoding/json"
	"fmt"
	"time"
)

// DefaultView returns the free layout with default filters.
func DefaultView() View {
	return View{Mode: ModeFree, Filters: DefaultFilters(), Sort: SortUpdatedAtDesc}
}

// DefaultSettings returns the settings of a fresh board.
func DefaultSettings() Settings {
	return Settings{Theme: ThemeSystem, AdminDesign: DefaultAdminDesign()}
}

// DefaultState returns an empty board.
func DefaultState() BoardState {
	return BoardState{
		Version:              StateVersion,
		Notes:                []Note{},
		View:                 DefaultView(),
		Settings:             DefaultSettings(),
		DismissedReminderIDs: []string{},
		SentReminderIDs:      []string{},
	}
}

// Clone returns a deep copy of the state.
func (s BoardState) Clone() BoardState {
	out := s
	out.Notes = cloneNotes(s.Notes)
	out.View.Filters = s.View.Filters.Clone()
	out.Settings.AdminDesign = s.Settings.AdminDesign.Clone()
	out.DismissedReminderIDs = append([]string{}, s.DismissedReminderIDs...)
	out.SentReminderIDs = append([]string{}, s.SentReminderIDs...)
	return out
}

// Clone returns a copy that shares no pointers with f.
func (f Filters) Clone() Filters {
	out := f
	if f.ClassTag != nil {
		tag := *f.ClassTag
		out.ClassTag = &tag
	}
	if f.WeekNumber != nil {
		w := *f.WeekNumber
		out.WeekNumber = &w
	}
	return out
}

// NormalizeState validates an untrusted state object field by field. Notes
// that fail sanitization are dropped; every other field falls back to its
// default. It reports false only when raw is not an object.
func NormalizeState(raw any, now time.Time) (BoardState, bool) {
	obj, ok := asObject(raw)
	if !ok {
		return BoardState{}, false
	}

	state := DefaultState()
	if items, ok := obj["notes"].([]any); ok {
		for _, item := range items {
			if n, ok := SanitizeNote(item, now); ok {
				state.Notes = append(state.Notes, n)
			}
		}
	}
	state.View = normalizeView(obj["view"])
	state.Settings = normalizeSettings(obj["settings"])
	state.DismissedReminderIDs = dedupe(stringList(obj["dismissedReminderIds"]))
	state.SentReminderIDs = dedupe(stringList(obj["sentReminderIds"]))
	return state, true
}

// DecodeState parses and normalizes a persisted payload.
func DecodeState(data []byte, now time.Time) (BoardState, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return BoardState{}, fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	state, ok := NormalizeState(raw, now)
	if !ok {
		return BoardState{}, fmt.Errorf("%w: payload is not an object", ErrInvalidState)
	}
	return state, nil
}

// EncodeState serializes a state for persistence.
func EncodeState(state BoardState) ([]byte, error) {
	state.Version = StateVersion
	data, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to encode state: %w", err)
	}
	return data, nil
}

func normalizeView(raw any) View {
	view := DefaultView()
	obj, ok := asObject(raw)
	if !ok {
		return view
	}
	if m, ok := obj["mode"].(string); ok && BoardMode(m).Valid() {
		view.Mode = BoardMode(m)
	}

	filters, ok := asObject(obj["filters"])
	if !ok {
		return view
	}
	f := &view.Filters
	if tag, ok := filters["classTag"].(string); ok {
		f.ClassTag = &tag
	}
	if p, ok := filters["priority"].(string); ok && PriorityFilter(p).Valid() {
		f.Priority = PriorityFilter(p)
	}
	f.WeekNumber = weekValue(filters["weekNumber"])
	if s, ok := filters["status"].(string); ok && StatusFilter(s).Valid() {
		f.Status = StatusFilter(s)
	}
	if s, ok := filters["search"].(string); ok {
		f.Search = s
	}
	f.OnlyCurrentWeek = truthy(filters["onlyCurrentWeek"])
	f.IncludeArchived = truthy(filters["includeArchived"])
	return view
}

func normalizeSettings(raw any) Settings {
	settings := DefaultSettings()
	obj, ok := asObject(raw)
	if !ok {
		return settings
	}
	if t, ok := obj["theme"].(string); ok && Theme(t).Valid() {
		settings.Theme = Theme(t)
	}
	settings.AutoArchivePastWeeks = truthy(obj["autoArchivePastWeeks"])
	settings.AdminDesign = normalizeAdminDesign(obj["adminDesign"])
	return settings
}

func dedupe(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// AddID appends id to ids unless already present.
func AddID(ids []string, id string) []string {
	for _, existing := range ids {
		if existing == id {
			return ids
		}
	}
	return append(append([]string{}, ids...), id)
}

// RemoveID returns ids without id.
func RemoveID(ids []string, id string) []string {
	out := make([]string, 0, len(ids))
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
