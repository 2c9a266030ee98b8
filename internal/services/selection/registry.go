package selection

import (
	"fmt"
	"sync"
)

// Scope names the surface a selection store belongs to
type Scope string

const (
	ScopeGallery     Scope = "gallery"
	ScopeClassify    Scope = "classify"
	ScopeMinutes     Scope = "minutes"
	ScopePaintings   Scope = "paintings"
	ScopeElements    Scope = "elements"
	ScopeRecognition Scope = "recognition"
)

// Registry maps scopes to their selection stores. Scopes are
// provisioned at startup; asking for an unprovisioned scope is a
// programming error, not a runtime condition.
type Registry struct {
	mu     sync.RWMutex
	stores map[Scope]*Store
}

// NewRegistry creates a registry with the given scopes provisioned
func NewRegistry(scopes ...Scope) *Registry {
	r := &Registry{stores: make(map[Scope]*Store)}
	for _, scope := range scopes {
		r.stores[scope] = NewStore()
	}
	return r
}

// DefaultRegistry provisions every scope the application uses
func DefaultRegistry() *Registry {
	return NewRegistry(
		ScopeGallery,
		ScopeClassify,
		ScopeMinutes,
		ScopePaintings,
		ScopeElements,
		ScopeRecognition,
	)
}

// Provision adds a store for the scope if one doesn't exist yet
func (r *Registry) Provision(scope Scope) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.stores[scope]; !ok {
		r.stores[scope] = NewStore()
	}
}

// Lookup returns the store for the scope when it is provisioned
func (r *Registry) Lookup(scope Scope) (*Store, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	store, ok := r.stores[scope]
	return store, ok
}

// MustStore returns the store for the scope, panicking when the
// scope was never provisioned
func (r *Registry) MustStore(scope Scope) *Store {
	r.mu.RLock()
	defer r.mu.RUnlock()
	store, ok := r.stores[scope]
	if !ok {
		panic(fmt.Sprintf("selection: scope %q not provisioned", scope))
	}
	return store
}

// Scopes returns the provisioned scope names
func (r *Registry) Scopes() []Scope {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Scope, 0, len(r.stores))
	for scope := range r.stores {
		out = append(out, scope)
	}
	return out
}
