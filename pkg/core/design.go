package core

import "math"

// ModuleID names a UI region that can carry a style override.
type ModuleID string

const (
	ModuleTopbar        ModuleID = "topbar"
	ModuleArchiveToggle ModuleID = "archiveToggle"
	ModuleFilters       ModuleID = "filters"
	ModuleStatus        ModuleID = "status"
	ModuleBoard         ModuleID = "board"
	ModuleReminders     ModuleID = "reminders"
)

// ModuleIDs is the fixed set of styleable regions, in display order.
var ModuleIDs = []ModuleID{
	ModuleTopbar,
	ModuleArchiveToggle,
	ModuleFilters,
	ModuleStatus,
	ModuleBoard,
	ModuleReminders,
}

func (m ModuleID) Valid() bool {
	for _, id := range ModuleIDs {
		if m == id {
			return true
		}
	}
	return false
}

// FontFamily is the typeface class applied to a region.
type FontFamily string

const (
	FontSans    FontFamily = "sans"
	FontSerif   FontFamily = "serif"
	FontMono    FontFamily = "mono"
	FontDisplay FontFamily = "display"
)

func (f FontFamily) Valid() bool {
	return f == FontSans || f == FontSerif || f == FontMono || f == FontDisplay
}

// Slider ranges for module styles.
const (
	MinOffset       = -900
	MaxOffset       = 900
	MinWidthPercent = 30
	MaxWidthPercent = 100
	MinHeightFloor  = 0
	MaxMinHeight    = 1500
	MinOpacity      = 0.2
	MaxOpacity      = 1.0
	MinFontScale    = 0.7
	MaxFontScale    = 1.6
)

// ModuleStyle is the visual override of one region.
type ModuleStyle struct {
	OffsetX      int        `json:"offsetX"`
	OffsetY      int        `json:"offsetY"`
	WidthPercent int        `json:"widthPercent"`
	MinHeight    int        `json:"minHeight"`
	Opacity      float64    `json:"opacity"`
	FontScale    float64    `json:"fontScale"`
	FontFamily   FontFamily `json:"fontFamily"`
	Visible      bool       `json:"visible"`
}

// DefaultModuleStyle returns the neutral style.
func DefaultModuleStyle() ModuleStyle {
	return ModuleStyle{
		WidthPercent: MaxWidthPercent,
		Opacity:      1,
		FontScale:    1,
		FontFamily:   FontSans,
		Visible:      true,
	}
}

// AdminDesign holds design mode and the per-region overrides.
type AdminDesign struct {
	Enabled        bool                     `json:"enabled"`
	SelectedModule ModuleID                 `json:"selectedModule"`
	Modules        map[ModuleID]ModuleStyle `json:"modules"`
}

// DefaultAdminDesign returns design mode off with every region at the
// neutral style.
func DefaultAdminDesign() AdminDesign {
	modules := make(map[ModuleID]ModuleStyle, len(ModuleIDs))
	for _, id := range ModuleIDs {
		modules[id] = DefaultModuleStyle()
	}
	return AdminDesign{
		SelectedModule: ModuleTopbar,
		Modules:        modules,
	}
}

// Clone returns a copy with its own module map.
func (d AdminDesign) Clone() AdminDesign {
	out := d
	out.Modules = make(map[ModuleID]ModuleStyle, len(d.Modules))
	for id, style := range d.Modules {
		out.Modules[id] = style
	}
	return out
}

// Style returns the style of id, falling back to the default.
func (d AdminDesign) Style(id ModuleID) ModuleStyle {
	if style, ok := d.Modules[id]; ok {
		return style
	}
	return DefaultModuleStyle()
}

// ModuleStylePatch is a partial style update. Nil fields are left alone.
type ModuleStylePatch struct {
	OffsetX      *float64
	OffsetY      *float64
	WidthPercent *float64
	MinHeight    *float64
	Opacity      *float64
	FontScale    *float64
	FontFamily   *FontFamily
	Visible      *bool
}

// Apply returns s with the patch merged in. Integer sliders are rounded,
// every slider is clamped to its range and unknown font families are ignored.
func (s ModuleStyle) Apply(p ModuleStylePatch) ModuleStyle {
	if p.Visible != nil {
		s.Visible = *p.Visible
	}
	if p.OffsetX != nil {
		s.OffsetX = clampRound(*p.OffsetX, MinOffset, MaxOffset)
	}
	if p.OffsetY != nil {
		s.OffsetY = clampRound(*p.OffsetY, MinOffset, MaxOffset)
	}
	if p.WidthPercent != nil {
		s.WidthPercent = clampRound(*p.WidthPercent, MinWidthPercent, MaxWidthPercent)
	}
	if p.MinHeight != nil {
		s.MinHeight = clampRound(*p.MinHeight, MinHeightFloor, MaxMinHeight)
	}
	if p.Opacity != nil {
		s.Opacity = clampFloat(*p.Opacity, MinOpacity, MaxOpacity)
	}
	if p.FontScale != nil {
		s.FontScale = clampFloat(*p.FontScale, MinFontScale, MaxFontScale)
	}
	if p.FontFamily != nil && p.FontFamily.Valid() {
		s.FontFamily = *p.FontFamily
	}
	return s
}

// normalizeModuleStyle reads an untrusted style object. Absent or
// mistyped fields take their default.
func normalizeModuleStyle(raw any) ModuleStyle {
	style := DefaultModuleStyle()
	obj, ok := asObject(raw)
	if !ok {
		return style
	}

	var patch ModuleStylePatch
	patch.OffsetX = numberField(obj, "offsetX")
	patch.OffsetY = numberField(obj, "offsetY")
	patch.WidthPercent = numberField(obj, "widthPercent")
	patch.MinHeight = numberField(obj, "minHeight")
	patch.Opacity = numberField(obj, "opacity")
	patch.FontScale = numberField(obj, "fontScale")
	if s, ok := obj["fontFamily"].(string); ok {
		f := FontFamily(s)
		patch.FontFamily = &f
	}
	if v, ok := obj["visible"].(bool); ok {
		patch.Visible = &v
	}
	return style.Apply(patch)
}

func normalizeAdminDesign(raw any) AdminDesign {
	design := DefaultAdminDesign()
	obj, ok := asObject(raw)
	if !ok {
		return design
	}

	if v, present := obj["enabled"]; present {
		design.Enabled = truthy(v)
	}
	if s, ok := obj["selectedModule"].(string); ok && ModuleID(s).Valid() {
		design.SelectedModule = ModuleID(s)
	}
	modules, _ := asObject(obj["modules"])
	for _, id := range ModuleIDs {
		design.Modules[id] = normalizeModuleStyle(modules[string(id)])
	}
	return design
}

func clampRound(v, lo, hi float64) int {
	if math.IsNaN(v) {
		return int(lo)
	}
	return int(math.Round(clampFloat(v, lo, hi)))
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(hi, math.Max(lo, v))
}
