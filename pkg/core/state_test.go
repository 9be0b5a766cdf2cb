package core_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/boardflow/pkg/core"
)

func TestDecodeState(t *testing.T) {
	now := time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Default State Survives Round Trip", func(t *testing.T) {
		data, err := core.EncodeState(core.DefaultState())
		require.NoError(t, err)

		state, err := core.DecodeState(data, now)
		require.NoError(t, err)
		assert.Equal(t, core.DefaultState(), state)
	})

	t.Run("Rejects Non Objects", func(t *testing.T) {
		for _, payload := range []string{`[]`, `"state"`, `null`, `42`, `{broken`} {
			_, err := core.DecodeState([]byte(payload), now)
			assert.ErrorIs(t, err, core.ErrInvalidState, payload)
		}
	})

	t.Run("Empty Object Yields Defaults", func(t *testing.T) {
		state, err := core.DecodeState([]byte(`{}`), now)
		require.NoError(t, err)
		assert.Equal(t, core.DefaultState(), state)
	})

	t.Run("Normalizes Every Section", func(t *testing.T) {
		payload := `{
			"version": 7,
			"notes": [{"id": "a", "title": "Ok"}, {"id": "b", "title": ""}, 5],
			"view": {
				"mode": "grid",
				"filters": {"classTag": "8B", "priority": "urgent", "status": "done", "weekNumber": 12, "search": "x", "onlyCurrentWeek": 1}
			},
			"settings": {
				"theme": "dark",
				"autoArchivePastWeeks": true,
				"adminDesign": {
					"enabled": "yes",
					"selectedModule": "sidebar",
					"modules": {
						"board": {"offsetX": 2000, "offsetY": -12.6, "widthPercent": 5, "minHeight": 9000, "opacity": 0, "fontScale": 3, "fontFamily": "comic", "visible": false},
						"sidebar": {"offsetX": 5}
					}
				}
			},
			"dismissedReminderIds": ["a", 3, "a", "b"],
			"sentReminderIds": "nope"
		}`

		state, err := core.DecodeState([]byte(payload), now)
		require.NoError(t, err)

		assert.Equal(t, core.StateVersion, state.Version)
		require.Len(t, state.Notes, 1)
		assert.Equal(t, "a", state.Notes[0].ID)

		assert.Equal(t, core.ModeFree, state.View.Mode)
		require.NotNil(t, state.View.Filters.ClassTag)
		assert.Equal(t, "8B", *state.View.Filters.ClassTag)
		assert.Equal(t, core.PriorityFilter(core.FilterAll), state.View.Filters.Priority)
		assert.Equal(t, core.StatusFilter("done"), state.View.Filters.Status)
		require.NotNil(t, state.View.Filters.WeekNumber)
		assert.Equal(t, 12, *state.View.Filters.WeekNumber)
		assert.True(t, state.View.Filters.OnlyCurrentWeek)
		assert.False(t, state.View.Filters.IncludeArchived)
		assert.Equal(t, core.SortUpdatedAtDesc, state.View.Sort)

		assert.Equal(t, core.ThemeDark, state.Settings.Theme)
		assert.True(t, state.Settings.AutoArchivePastWeeks)

		design := state.Settings.AdminDesign
		assert.True(t, design.Enabled)
		assert.Equal(t, core.ModuleTopbar, design.SelectedModule)
		assert.Len(t, design.Modules, len(core.ModuleIDs))
		assert.NotContains(t, design.Modules, core.ModuleID("sidebar"))
		assert.Equal(t, core.ModuleStyle{
			OffsetX:      900,
			OffsetY:      -13,
			WidthPercent: 30,
			MinHeight:    1500,
			Opacity:      0.2,
			FontScale:    1.6,
			FontFamily:   core.FontSans,
			Visible:      false,
		}, design.Modules[core.ModuleBoard])
		assert.Equal(t, core.DefaultModuleStyle(), design.Modules[core.ModuleFilters])

		assert.Equal(t, []string{"a", "b"}, state.DismissedReminderIDs)
		assert.Equal(t, []string{}, state.SentReminderIDs)
	})
}

func TestDecodeState_Untrusted(t *testing.T) {
	now := time.Date(2026, time.April, 1, 9, 0, 0, 0, time.UTC)

	t.Run("Positions Stay Non Negative", func(t *testing.T) {
		payload := `{"notes":[{"id":"a","title":"t","position":{"x":1e300,"y":2}}]}`
		state, err := core.DecodeState([]byte(payload), now)
		require.NoError(t, err)
		require.Len(t, state.Notes, 1)
		assert.Equal(t, core.DefaultPosition, state.Notes[0].Position)
	})

	t.Run("Filter Week Must Be A Valid Week", func(t *testing.T) {
		for _, week := range []string{`1e300`, `3.5`, `0`, `54`, `-2`, `"12"`} {
			payload := `{"view":{"filters":{"weekNumber":` + week + `}}}`
			state, err := core.DecodeState([]byte(payload), now)
			require.NoError(t, err)
			assert.Nil(t, state.View.Filters.WeekNumber, week)
		}
	})

	t.Run("Filter Week Keeps Integral Weeks", func(t *testing.T) {
		state, err := core.DecodeState([]byte(`{"view":{"filters":{"weekNumber":53}}}`), now)
		require.NoError(t, err)
		require.NotNil(t, state.View.Filters.WeekNumber)
		assert.Equal(t, 53, *state.View.Filters.WeekNumber)
	})
}

func TestBoardStateClone(t *testing.T) {
	state := core.DefaultState()
	tag := "8B"
	state.View.Filters.ClassTag = &tag
	state.Notes = append(state.Notes, core.Note{ID: "a", WeekNumbers: []int{3}})
	state.DismissedReminderIDs = append(state.DismissedReminderIDs, "a")

	clone := state.Clone()
	*clone.View.Filters.ClassTag = "9C"
	clone.Notes[0].WeekNumbers[0] = 4
	clone.DismissedReminderIDs[0] = "z"
	clone.Settings.AdminDesign.Modules[core.ModuleBoard] = core.ModuleStyle{}

	assert.Equal(t, "8B", *state.View.Filters.ClassTag)
	assert.Equal(t, 3, state.Notes[0].WeekNumbers[0])
	assert.Equal(t, "a", state.DismissedReminderIDs[0])
	assert.Equal(t, core.DefaultModuleStyle(), state.Settings.AdminDesign.Modules[core.ModuleBoard])
}

func TestThemeNext(t *testing.T) {
	assert.Equal(t, core.ThemeLight, core.ThemeDark.Next())
	assert.Equal(t, core.ThemeSystem, core.ThemeLight.Next())
	assert.Equal(t, core.ThemeDark, core.ThemeSystem.Next())
}
