package persistence

import "github.com/aretw0/introspection"

// ChainState exposes internal state for observability.
type ChainState struct {
	Primary          string `json:"primary,omitempty"`
	Fallback         string `json:"fallback,omitempty"`
	PrimaryAvailable bool   `json:"primary_available"`
	HasSnapshot      bool   `json:"has_snapshot"`
	Loads            int    `json:"loads"`
	Saves            int    `json:"saves"`
	LastLoadSource   string `json:"last_load_source,omitempty"`
	LastFailure      string `json:"last_failure,omitempty"`
}

// State implements introspection.Introspectable.
func (c *Chain) State() any {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := ChainState{
		PrimaryAvailable: !c.primaryBad,
		HasSnapshot:      c.snapshot != nil,
		Loads:            c.loads,
		Saves:            c.saves,
		LastLoadSource:   c.lastSource,
		LastFailure:      c.lastFailure,
	}
	if c.primary != nil {
		s.Primary = c.primary.Name()
	}
	if c.fallback != nil {
		s.Fallback = c.fallback.Name()
	}
	return s
}

// ComponentType implements introspection.Component.
func (c *Chain) ComponentType() string { return "persistence-chain" }

var _ introspection.Introspectable = (*Chain)(nil)
var _ introspection.Component = (*Chain)(nil)
