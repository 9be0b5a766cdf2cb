package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/boardflow/pkg/core"
)

func TestArchivePastWeeks(t *testing.T) {
	created := time.Date(2026, time.January, 5, 8, 0, 0, 0, time.UTC)
	now := time.Date(2026, time.March, 9, 8, 0, 0, 0, time.UTC)

	mk := func(id string, status core.Status, weeks ...int) core.Note {
		n := core.Note{ID: id, Status: status, CreatedAt: created, UpdatedAt: created}
		n.SetWeeks(weeks)
		return n
	}
	notes := []core.Note{
		mk("no-week", core.StatusBoard),
		mk("past", core.StatusTodo, 3, 9),
		mk("spans", core.StatusBoard, 9, 11),
		mk("current", core.StatusDoing, 11),
		mk("already", core.StatusArchived, 1),
	}

	out, changed := core.ArchivePastWeeks(notes, 11, now)

	require.Equal(t, 1, changed)
	require.Len(t, out, len(notes))
	assert.Equal(t, "past", out[0].ID, "archived note is newest")
	assert.Equal(t, core.StatusArchived, out[0].Status)
	assert.Equal(t, now, out[0].UpdatedAt)

	byID := map[string]core.Note{}
	for _, n := range out {
		byID[n.ID] = n
	}
	assert.Equal(t, core.StatusBoard, byID["no-week"].Status)
	assert.Equal(t, core.StatusBoard, byID["spans"].Status)
	assert.Equal(t, core.StatusDoing, byID["current"].Status)
	assert.Equal(t, created, byID["already"].UpdatedAt)
	assert.Equal(t, core.StatusTodo, notes[1].Status, "input must not change")
}
