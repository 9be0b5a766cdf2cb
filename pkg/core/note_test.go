package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/boardflow/pkg/core"
)

func intPtr(v int) *int { return &v }

func TestNewNote(t *testing.T) {
	now := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)

	t.Run("Defaults", func(t *testing.T) {
		n := core.NewNote(core.NoteSeed{Title: "   "}, now)

		assert.NotEmpty(t, n.ID)
		assert.Equal(t, core.DefaultTitle, n.Title)
		assert.Equal(t, core.DefaultColor, n.Color)
		assert.Equal(t, core.DefaultPriority, n.Priority)
		assert.Equal(t, core.StatusBoard, n.Status)
		assert.Equal(t, core.DefaultPosition, n.Position)
		assert.Equal(t, now, n.CreatedAt)
		assert.Equal(t, now, n.UpdatedAt)
		assert.Empty(t, n.WeekNumbers)
		assert.Nil(t, n.WeekNumber)
	})

	t.Run("Trims And Normalizes Weeks", func(t *testing.T) {
		n := core.NewNote(core.NoteSeed{
			Title:       "  Prov  ",
			Body:        "  kapitel 3 ",
			Priority:    core.PriorityHigh,
			WeekNumber:  intPtr(12),
			WeekNumbers: []int{14, 12, 60, 0, 14},
		}, now)

		assert.Equal(t, "Prov", n.Title)
		assert.Equal(t, "kapitel 3", n.Body)
		assert.Equal(t, core.PriorityHigh, n.Priority)
		assert.Equal(t, []int{12, 14}, n.WeekNumbers)
		require.NotNil(t, n.WeekNumber)
		assert.Equal(t, 12, *n.WeekNumber)
	})

	t.Run("Unique Ids", func(t *testing.T) {
		seen := map[string]bool{}
		for i := 0; i < 100; i++ {
			id := core.NewNote(core.NoteSeed{}, now).ID
			require.False(t, seen[id], "duplicate id %s", id)
			seen[id] = true
		}
	})
}

func TestSortByUpdatedAtDesc(t *testing.T) {
	base := time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC)
	notes := []core.Note{
		{ID: "old", UpdatedAt: base},
		{ID: "new", UpdatedAt: base.Add(2 * time.Hour)},
		{ID: "tie-a", UpdatedAt: base.Add(time.Hour)},
		{ID: "tie-b", UpdatedAt: base.Add(time.Hour)},
	}

	sorted := core.SortByUpdatedAtDesc(notes)

	ids := make([]string, len(sorted))
	for i, n := range sorted {
		ids[i] = n.ID
	}
	assert.Equal(t, []string{"new", "tie-a", "tie-b", "old"}, ids)
	assert.Equal(t, "old", notes[0].ID, "input must not be reordered")
}

func TestGridPosition(t *testing.T) {
	note := func(status core.Status, weeks ...int) core.Note {
		n := core.Note{Status: status}
		n.SetWeeks(weeks)
		return n
	}

	t.Run("Empty Board", func(t *testing.T) {
		assert.Equal(t, core.Position{X: 24, Y: 24}, core.GridPosition(nil, nil))
	})

	t.Run("Counts Only Same Bucket", func(t *testing.T) {
		notes := []core.Note{
			note(core.StatusBoard),
			note(core.StatusBoard),
			note(core.StatusBoard, 10),
			note(core.StatusArchived),
		}
		assert.Equal(t, core.Position{X: 624, Y: 24}, core.GridPosition(notes, nil))
		assert.Equal(t, core.Position{X: 324, Y: 24}, core.GridPosition(notes, intPtr(10)))
	})

	t.Run("Wraps After Three Columns", func(t *testing.T) {
		notes := make([]core.Note, 4)
		for i := range notes {
			notes[i] = note(core.StatusTodo, 5, 6)
		}
		assert.Equal(t, core.Position{X: 324, Y: 244}, core.GridPosition(notes, intPtr(6)))
	})
}
