package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/boardflow/pkg/core"
)

func TestParseQuickInput(t *testing.T) {
	feb10 := time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)
	jan20 := time.Date(2026, time.January, 20, 9, 30, 0, 0, time.UTC)

	t.Run("Class Date And Priority", func(t *testing.T) {
		got := core.ParseQuickInput("8B prov 12/3 boka sal hög", feb10)

		assert.Equal(t, "8B", got.ClassTag)
		assert.Equal(t, core.PriorityHigh, got.Priority)
		assert.Equal(t, "prov boka sal", got.Title)
		assert.Equal(t, "", got.Body)
		require.NotNil(t, got.ReminderAt)
		assert.Equal(t, time.Date(2026, time.March, 12, 8, 0, 0, 0, time.UTC), *got.ReminderAt)
		require.NotNil(t, got.WeekNumber)
		assert.Equal(t, 11, *got.WeekNumber)
	})

	t.Run("Dash Date And Medium Keyword", func(t *testing.T) {
		got := core.ParseQuickInput("10C nationella 03-05 medel planera rättning efteråt", jan20)

		assert.Equal(t, "10C", got.ClassTag)
		assert.Equal(t, core.PriorityMedium, got.Priority)
		assert.Equal(t, "nationella planera rättning efteråt", got.Title)
		assert.Equal(t, "", got.Body)
		require.NotNil(t, got.ReminderAt)
		assert.Equal(t, time.Date(2026, time.May, 3, 8, 0, 0, 0, time.UTC), *got.ReminderAt)
		require.NotNil(t, got.WeekNumber)
		assert.Equal(t, 18, *got.WeekNumber)
	})

	t.Run("Only Metadata Falls Back To Default Title", func(t *testing.T) {
		got := core.ParseQuickInput("7A 15/4 prio1", feb10)

		assert.Equal(t, "7A", got.ClassTag)
		assert.Equal(t, core.PriorityHigh, got.Priority)
		assert.Equal(t, core.DefaultTitle, got.Title)
		assert.Equal(t, "", got.Body)
	})

	t.Run("Reminder Is Local Morning", func(t *testing.T) {
		stockholm := time.FixedZone("CET", 3600)
		now := time.Date(2026, time.February, 10, 12, 0, 0, 0, stockholm)

		got := core.ParseQuickInput("möte 12/3", now)

		require.NotNil(t, got.ReminderAt)
		assert.Equal(t, time.Date(2026, time.March, 12, 7, 0, 0, 0, time.UTC), *got.ReminderAt)
		assert.Equal(t, time.UTC, got.ReminderAt.Location())
	})

	t.Run("Each Category Fires Once", func(t *testing.T) {
		got := core.ParseQuickInput("8B 9C p3 p1 1/2 3/4", feb10)

		assert.Equal(t, "8B", got.ClassTag)
		assert.Equal(t, core.PriorityLow, got.Priority)
		require.NotNil(t, got.ReminderAt)
		assert.Equal(t, time.February, got.ReminderAt.Month())
		assert.Equal(t, 1, got.ReminderAt.Day())
		assert.Equal(t, "9C p1 3/4", got.Title)
	})

	t.Run("Explicit Medium Also Locks Priority", func(t *testing.T) {
		got := core.ParseQuickInput("medel rätta hög", feb10)
		assert.Equal(t, core.PriorityMedium, got.Priority)
		assert.Equal(t, "rätta hög", got.Title)
	})

	t.Run("Invalid Calendar Date Stays In Text", func(t *testing.T) {
		got := core.ParseQuickInput("inlämning 31/2", feb10)

		assert.Nil(t, got.ReminderAt)
		assert.Nil(t, got.WeekNumber)
		assert.Equal(t, "inlämning 31/2", got.Title)
	})

	t.Run("Keywords Are Case Insensitive", func(t *testing.T) {
		got := core.ParseQuickInput("HÖG rätta prov", feb10)
		assert.Equal(t, core.PriorityHigh, got.Priority)
		assert.Equal(t, "rätta prov", got.Title)
	})

	t.Run("Lowercase Class Tag Is Text", func(t *testing.T) {
		got := core.ParseQuickInput("8b läxa", feb10)
		assert.Empty(t, got.ClassTag)
		assert.Equal(t, "8b läxa", got.Title)
	})

	t.Run("Empty Input", func(t *testing.T) {
		got := core.ParseQuickInput("   ", feb10)
		assert.Equal(t, core.DefaultTitle, got.Title)
		assert.Equal(t, "", got.Body)
		assert.Equal(t, core.DefaultPriority, got.Priority)
	})
}

func TestParseQuickInput_TitleLength(t *testing.T) {
	now := time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		input string
		title string
		body  string
	}{
		{"a b c d", "a b c d", ""},
		{"a b c d e", "a b c d", "e"},
		{"a b c d e f g", "a b c d", "e f g"},
		{"a b c d e f g h", "a b c d e", "f g h"},
		{"a b c d e f g h i j k l", "a b c d e f", "g h i j k l"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := core.ParseQuickInput(tt.input, now)
			assert.Equal(t, tt.title, got.Title)
			assert.Equal(t, tt.body, got.Body)
		})
	}
}
