package board

import "github.com/aretw0/introspection"

// StoreState exposes internal state for observability.
type StoreState struct {
	Hydrated     bool   `json:"hydrated"`
	Notes        int    `json:"notes"`
	Mode         string `json:"mode"`
	Theme        string `json:"theme"`
	PendingSaves int64  `json:"pending_saves"`
	Saves        int64  `json:"saves"`
	SaveFailures int64  `json:"save_failures"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StoreState{
		Hydrated:     s.hydrated,
		Notes:        len(s.state.Notes),
		Mode:         string(s.state.View.Mode),
		Theme:        string(s.state.Settings.Theme),
		PendingSaves: s.inFlight.Load(),
		Saves:        s.saves.Load(),
		SaveFailures: s.saveFailures.Load(),
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string { return "board-store" }

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
