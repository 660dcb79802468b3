package dmx

import (
	"maps"
	"slices"
)

// Registry maps universe ids to universes. The zero value is not usable;
// create one with NewRegistry.
type Registry struct {
	universes map[int]*Universe
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{universes: make(map[int]*Universe)}
}

// AddUniverse registers u under u.ID(). An existing universe with the same id
// is replaced. It returns r so registrations can be chained.
func (r *Registry) AddUniverse(u *Universe) *Registry {
	r.universes[u.ID()] = u
	return r
}

// Universe returns the universe registered under id.
func (r *Registry) Universe(id int) (*Universe, bool) {
	u, ok := r.universes[id]
	return u, ok
}

// Has reports whether a universe is registered under id.
func (r *Registry) Has(id int) bool {
	_, ok := r.universes[id]
	return ok
}

// IDs returns the registered ids in ascending order.
func (r *Registry) IDs() []int {
	return slices.Sorted(maps.Keys(r.universes))
}

// Len returns the number of registered universes.
func (r *Registry) Len() int { return len(r.universes) }
