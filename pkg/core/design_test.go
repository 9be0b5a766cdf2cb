package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aretw0/boardflow/pkg/core"
)

func f64(v float64) *float64 { return &v }

func TestModuleStyleApply(t *testing.T) {
	serif := core.FontSerif
	bogus := core.FontFamily("comic")
	hidden := false

	t.Run("Rounds And Clamps", func(t *testing.T) {
		got := core.DefaultModuleStyle().Apply(core.ModuleStylePatch{
			OffsetX:      f64(12.5),
			OffsetY:      f64(-1200),
			WidthPercent: f64(64.4),
			MinHeight:    f64(-3),
			Opacity:      f64(0.55),
			FontScale:    f64(0.1),
		})

		assert.Equal(t, 13, got.OffsetX)
		assert.Equal(t, -900, got.OffsetY)
		assert.Equal(t, 64, got.WidthPercent)
		assert.Equal(t, 0, got.MinHeight)
		assert.InDelta(t, 0.55, got.Opacity, 1e-9)
		assert.InDelta(t, 0.7, got.FontScale, 1e-9)
	})

	t.Run("Partial Leaves Other Fields", func(t *testing.T) {
		base := core.DefaultModuleStyle()
		base.OffsetX = 40

		got := base.Apply(core.ModuleStylePatch{FontFamily: &serif, Visible: &hidden})

		assert.Equal(t, 40, got.OffsetX)
		assert.Equal(t, core.FontSerif, got.FontFamily)
		assert.False(t, got.Visible)
		assert.Equal(t, 100, got.WidthPercent)
	})

	t.Run("Unknown Font Ignored", func(t *testing.T) {
		got := core.DefaultModuleStyle().Apply(core.ModuleStylePatch{FontFamily: &bogus})
		assert.Equal(t, core.FontSans, got.FontFamily)
	})
}

func TestDefaultAdminDesign(t *testing.T) {
	design := core.DefaultAdminDesign()

	assert.False(t, design.Enabled)
	assert.Equal(t, core.ModuleTopbar, design.SelectedModule)
	for _, id := range core.ModuleIDs {
		assert.Equal(t, core.DefaultModuleStyle(), design.Modules[id], id)
	}
	assert.Equal(t, core.DefaultModuleStyle(), design.Style(core.ModuleID("missing")))
}
