package core_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/boardflow/pkg/core"
)

func decodeRaw(t *testing.T, s string) any {
	t.Helper()
	var raw any
	require.NoError(t, json.Unmarshal([]byte(s), &raw))
	return raw
}

func TestSanitizeNote(t *testing.T) {
	now := time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Rejects Missing Id Or Title", func(t *testing.T) {
		for _, payload := range []string{
			`null`,
			`"note"`,
			`[]`,
			`{"title":"x"}`,
			`{"id":"","title":"x"}`,
			`{"id":42,"title":"x"}`,
			`{"id":"a"}`,
			`{"id":"a","title":"   "}`,
			`{"id":"a","title":7}`,
		} {
			_, ok := core.SanitizeNote(decodeRaw(t, payload), now)
			assert.False(t, ok, payload)
		}
	})

	t.Run("Defaults Invalid Fields", func(t *testing.T) {
		raw := decodeRaw(t, `{
			"id": "n1",
			"title": "  Läxa  ",
			"body": 12,
			"color": "pink",
			"priority": "urgent",
			"status": "lost",
			"classTag": "  ",
			"position": {"x": -5, "y": 10},
			"createdAt": "not a date",
			"reminderAt": "soon",
			"weekNumber": 70,
			"weekNumbers": [3, 3, 1.5, "4", 2]
		}`)

		n, ok := core.SanitizeNote(raw, now)
		require.True(t, ok)

		assert.Equal(t, "n1", n.ID)
		assert.Equal(t, "Läxa", n.Title)
		assert.Equal(t, "", n.Body)
		assert.Equal(t, core.DefaultColor, n.Color)
		assert.Equal(t, core.DefaultPriority, n.Priority)
		assert.Equal(t, core.StatusBoard, n.Status)
		assert.Empty(t, n.ClassTag)
		assert.Equal(t, core.DefaultPosition, n.Position)
		assert.Equal(t, now, n.CreatedAt)
		assert.Equal(t, now, n.UpdatedAt)
		assert.Nil(t, n.ReminderAt)
		assert.Equal(t, []int{2, 3}, n.WeekNumbers)
		require.NotNil(t, n.WeekNumber)
		assert.Equal(t, 2, *n.WeekNumber)
	})

	t.Run("UpdatedAt Falls Back To CreatedAt", func(t *testing.T) {
		raw := decodeRaw(t, `{"id":"n","title":"t","createdAt":"2026-01-05T10:00:00Z"}`)
		n, ok := core.SanitizeNote(raw, now)
		require.True(t, ok)
		assert.Equal(t, time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC), n.UpdatedAt)
	})

	t.Run("Oversized Position Falls Back To Default", func(t *testing.T) {
		for _, pos := range []string{
			`{"x":1e300,"y":2}`,
			`{"x":2,"y":1e19}`,
			`{"x":4294967296,"y":0}`,
		} {
			raw := decodeRaw(t, `{"id":"n","title":"t","position":`+pos+`}`)
			n, ok := core.SanitizeNote(raw, now)
			require.True(t, ok)
			assert.Equal(t, core.DefaultPosition, n.Position, pos)
		}
	})

	t.Run("Large Position Within Bounds Is Kept", func(t *testing.T) {
		raw := decodeRaw(t, `{"id":"n","title":"t","position":{"x":2147483647,"y":1.6}}`)
		n, ok := core.SanitizeNote(raw, now)
		require.True(t, ok)
		assert.Equal(t, core.Position{X: 2147483647, Y: 2}, n.Position)
	})

	t.Run("Out Of Range Weeks Are Dropped", func(t *testing.T) {
		raw := decodeRaw(t, `{"id":"n","title":"t","weekNumber":1e300,"weekNumbers":[-1e300, 1e19, 9]}`)
		n, ok := core.SanitizeNote(raw, now)
		require.True(t, ok)
		assert.Equal(t, []int{9}, n.WeekNumbers)
	})

	t.Run("Valid Note Round Trips", func(t *testing.T) {
		reminder := time.Date(2026, time.April, 3, 6, 0, 0, 0, time.UTC)
		original := core.Note{
			ID:          "abc",
			Title:       "Prov",
			Body:        " rum 12 ",
			Color:       core.ColorRose,
			ClassTag:    "9A",
			Priority:    core.PriorityLow,
			ReminderAt:  &reminder,
			WeekNumber:  intPtr(14),
			WeekNumbers: []int{14, 15},
			Status:      core.StatusDoing,
			Position:    core.Position{X: 324, Y: 0},
			CreatedAt:   time.Date(2026, time.March, 1, 8, 0, 0, 123e6, time.UTC),
			UpdatedAt:   time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC),
		}

		data, err := json.Marshal(original)
		require.NoError(t, err)

		n, ok := core.SanitizeNote(decodeRaw(t, string(data)), now)
		require.True(t, ok)
		assert.Equal(t, original, n)
	})
}
