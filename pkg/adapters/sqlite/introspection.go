package sqlite

import (
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path      string     `json:"path"`
	Key       string     `json:"key"`
	Writes    int        `json:"writes"`
	LastWrite *time.Time `json:"last_write,omitempty"`
	Closed    bool       `json:"closed"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StoreState{Path: s.path, Key: s.key, Writes: s.writes, LastWrite: s.lastWrite, Closed: s.closed}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string { return "sqlite-store" }

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
