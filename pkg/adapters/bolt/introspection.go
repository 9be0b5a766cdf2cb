package bolt

import (
	"time"

	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	Path      string     `json:"path"`
	Bucket    string     `json:"bucket"`
	Key       string     `json:"key"`
	Writes    int        `json:"writes"`
	LastWrite *time.Time `json:"last_write,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StoreState{
		Path:      s.db.Path(),
		Bucket:    string(s.bucket),
		Key:       string(s.key),
		Writes:    s.writes,
		LastWrite: s.lastWrite,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string { return "bolt-store" }

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
