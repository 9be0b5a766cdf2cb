// Package core holds the board domain: notes, filters, view and settings
// state, and the pure functions that compute the next state.
//
// Nothing in this package performs I/O. Time and identity are passed in or
// produced by NewID / Now so callers can control them in tests.
package core

import "time"

// StateVersion is the schema version written with every persisted state.
const StateVersion = 1

// DefaultTitle replaces a blank note title.
const DefaultTitle = "Ny lapp"

// Color is the sticky-note background.
type Color string

const (
	ColorSlate  Color = "slate"
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorAmber  Color = "amber"
	ColorRose   Color = "rose"
	ColorViolet Color = "violet"

	DefaultColor = ColorBlue
)

// Colors lists every valid color in display order.
var Colors = []Color{ColorSlate, ColorBlue, ColorGreen, ColorAmber, ColorRose, ColorViolet}

func (c Color) Valid() bool {
	for _, v := range Colors {
		if c == v {
			return true
		}
	}
	return false
}

// Priority of a note.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"

	DefaultPriority = PriorityMedium
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Status is the board lane of a note. Any status may move to any other.
type Status string

const (
	StatusBoard    Status = "board"
	StatusTodo     Status = "todo"
	StatusDoing    Status = "doing"
	StatusDone     Status = "done"
	StatusArchived Status = "archived"
)

// Statuses lists every valid status.
var Statuses = []Status{StatusBoard, StatusTodo, StatusDoing, StatusDone, StatusArchived}

func (s Status) Valid() bool {
	for _, v := range Statuses {
		if s == v {
			return true
		}
	}
	return false
}

// BoardMode is the display layout.
type BoardMode string

const (
	ModeFree    BoardMode = "free"
	ModeColumns BoardMode = "columns"
	ModeClass   BoardMode = "class"
)

func (m BoardMode) Valid() bool {
	return m == ModeFree || m == ModeColumns || m == ModeClass
}

// Theme is the color scheme preference.
type Theme string

const (
	ThemeSystem Theme = "system"
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
)

func (t Theme) Valid() bool {
	return t == ThemeSystem || t == ThemeLight || t == ThemeDark
}

// Next cycles dark -> light -> system -> dark.
func (t Theme) Next() Theme {
	switch t {
	case ThemeDark:
		return ThemeLight
	case ThemeLight:
		return ThemeSystem
	default:
		return ThemeDark
	}
}

// Position is the placement of a note on the free canvas.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// DefaultPosition is used when a note carries no usable position.
var DefaultPosition = Position{X: 24, Y: 24}

// Note is a single sticky note.
//
// WeekNumbers is always sorted and deduplicated; WeekNumber mirrors its
// first element and is nil when the set is empty.
type Note struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Color       Color      `json:"color"`
	ClassTag    string     `json:"classTag,omitempty"`
	Priority    Priority   `json:"priority"`
	ReminderAt  *time.Time `json:"reminderAt,omitempty"`
	WeekNumber  *int       `json:"weekNumber,omitempty"`
	WeekNumbers []int      `json:"weekNumbers"`
	Status      Status     `json:"status"`
	Position    Position   `json:"position"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// PriorityFilter is a priority or FilterAll.
type PriorityFilter string

// StatusFilter is a status or FilterAll.
type StatusFilter string

// FilterAll disables a priority or status filter.
const FilterAll = "all"

func (f PriorityFilter) Valid() bool {
	return f == FilterAll || Priority(f).Valid()
}

func (f StatusFilter) Valid() bool {
	return f == FilterAll || Status(f).Valid()
}

// Filters is the transient projection applied to the note list.
type Filters struct {
	ClassTag        *string        `json:"classTag"`
	Priority        PriorityFilter `json:"priority"`
	WeekNumber      *int           `json:"weekNumber"`
	Status          StatusFilter   `json:"status"`
	Search          string         `json:"search"`
	OnlyCurrentWeek bool           `json:"onlyCurrentWeek"`
	IncludeArchived bool           `json:"includeArchived"`
}

// SortUpdatedAtDesc is the only supported sort order.
const SortUpdatedAtDesc = "updatedAtDesc"

// View is the display mode plus the active filters.
type View struct {
	Mode    BoardMode `json:"mode"`
	Filters Filters   `json:"filters"`
	Sort    string    `json:"sort"`
}

// Settings are the user preferences persisted with the board.
type Settings struct {
	Theme                Theme       `json:"theme"`
	AutoArchivePastWeeks bool        `json:"autoArchivePastWeeks"`
	AdminDesign          AdminDesign `json:"adminDesign"`
}

// BoardState is the unit of load and save.
type BoardState struct {
	Version              int      `json:"version"`
	Notes                []Note   `json:"notes"`
	View                 View     `json:"view"`
	Settings             Settings `json:"settings"`
	DismissedReminderIDs []string `json:"dismissedReminderIds"`
	SentReminderIDs      []string `json:"sentReminderIds"`
}

// ImportSummary counts the outcome of an import merge.
type ImportSummary struct {
	Added     int `json:"added"`
	Conflicts int `json:"conflicts"`
	Invalid   int `json:"invalid"`
}

// QuickParse is the structured result of parsing one quick-input line.
type QuickParse struct {
	Title      string     `json:"title"`
	Body       string     `json:"body"`
	ClassTag   string     `json:"classTag,omitempty"`
	Priority   Priority   `json:"priority"`
	ReminderAt *time.Time `json:"reminderAt,omitempty"`
	WeekNumber *int       `json:"weekNumber,omitempty"`
}

// EventType represents the type of change observed on a backend.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents an external change of persisted state.
type Event struct {
	Type      EventType
	ID        string
	Timestamp int64 // Unix timestamp
}

// String implements fmt.Stringer.
func (e Event) String() string {
	return string(e.Type) + " " + e.ID
}
