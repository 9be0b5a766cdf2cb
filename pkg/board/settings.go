package board

import "github.com/aretw0/boardflow/pkg/core"

// FiltersPatch is a partial filter update. Nil fields are left unchanged.
type FiltersPatch struct {
	ClassTag        *string // empty clears
	Priority        *core.PriorityFilter
	WeekNumber      *int // 0 clears
	Status          *core.StatusFilter
	Search          *string
	OnlyCurrentWeek *bool
	IncludeArchived *bool
}

// SetViewMode switches the display layout.
func (s *Store) SetViewMode(mode core.BoardMode) bool {
	if !mode.Valid() {
		return false
	}
	return s.mutate(func(st *core.BoardState) bool {
		st.View.Mode = mode
		return true
	})
}

// UpdateFilters merges patch into the active filters. Invalid priority or
// status values are ignored.
func (s *Store) UpdateFilters(patch FiltersPatch) {
	s.mutate(func(st *core.BoardState) bool {
		f := &st.View.Filters
		if patch.ClassTag != nil {
			if *patch.ClassTag == "" {
				f.ClassTag = nil
			} else {
				tag := *patch.ClassTag
				f.ClassTag = &tag
			}
		}
		if patch.Priority != nil && patch.Priority.Valid() {
			f.Priority = *patch.Priority
		}
		if patch.WeekNumber != nil {
			if *patch.WeekNumber == 0 {
				f.WeekNumber = nil
			} else {
				w := *patch.WeekNumber
				f.WeekNumber = &w
			}
		}
		if patch.Status != nil && patch.Status.Valid() {
			f.Status = *patch.Status
		}
		if patch.Search != nil {
			f.Search = *patch.Search
		}
		if patch.OnlyCurrentWeek != nil {
			f.OnlyCurrentWeek = *patch.OnlyCurrentWeek
		}
		if patch.IncludeArchived != nil {
			f.IncludeArchived = *patch.IncludeArchived
		}
		return true
	})
}

// ResetFilters restores the default filters.
func (s *Store) ResetFilters() {
	s.mutate(func(st *core.BoardState) bool {
		st.View.Filters = core.DefaultFilters()
		return true
	})
}

// SetTheme sets the color scheme.
func (s *Store) SetTheme(theme core.Theme) bool {
	if !theme.Valid() {
		return false
	}
	return s.mutate(func(st *core.BoardState) bool {
		st.Settings.Theme = theme
		return true
	})
}

// ToggleTheme cycles dark, light, system and returns the new theme.
func (s *Store) ToggleTheme() core.Theme {
	var next core.Theme
	s.mutate(func(st *core.BoardState) bool {
		next = st.Settings.Theme.Next()
		st.Settings.Theme = next
		return true
	})
	return next
}

// SetAutoArchivePastWeeks turns the auto-archive setting on or off.
func (s *Store) SetAutoArchivePastWeeks(enabled bool) {
	s.mutate(func(st *core.BoardState) bool {
		st.Settings.AutoArchivePastWeeks = enabled
		return true
	})
}

// AutoArchiveEnabled reports the auto-archive setting.
func (s *Store) AutoArchiveEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Settings.AutoArchivePastWeeks
}

// SetDesignEnabled turns design mode on or off.
func (s *Store) SetDesignEnabled(enabled bool) {
	s.mutate(func(st *core.BoardState) bool {
		st.Settings.AdminDesign.Enabled = enabled
		return true
	})
}

// SelectDesignModule chooses the region being edited.
func (s *Store) SelectDesignModule(id core.ModuleID) bool {
	if !id.Valid() {
		return false
	}
	return s.mutate(func(st *core.BoardState) bool {
		st.Settings.AdminDesign.SelectedModule = id
		return true
	})
}

// UpdateModuleStyle merges a clamped partial style into one region.
func (s *Store) UpdateModuleStyle(id core.ModuleID, patch core.ModuleStylePatch) bool {
	if !id.Valid() {
		return false
	}
	return s.mutate(func(st *core.BoardState) bool {
		design := &st.Settings.AdminDesign
		if design.Modules == nil {
			design.Modules = core.DefaultAdminDesign().Modules
		}
		design.Modules[id] = design.Style(id).Apply(patch)
		return true
	})
}

// ResetModuleStyle restores one region to the neutral style.
func (s *Store) ResetModuleStyle(id core.ModuleID) bool {
	if !id.Valid() {
		return false
	}
	return s.mutate(func(st *core.BoardState) bool {
		if st.Settings.AdminDesign.Modules == nil {
			st.Settings.AdminDesign.Modules = core.DefaultAdminDesign().Modules
		}
		st.Settings.AdminDesign.Modules[id] = core.DefaultModuleStyle()
		return true
	})
}

// ResetDesign restores the whole design state.
func (s *Store) ResetDesign() {
	s.mutate(func(st *core.BoardState) bool {
		st.Settings.AdminDesign = core.DefaultAdminDesign()
		return true
	})
}
