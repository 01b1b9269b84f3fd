package surface

// Handle refers to a unit tracked by a Registry. The zero Handle never
// resolves.
type Handle uint64

// Registry maps handles to live units. It lets the navigation history refer to
// units without owning them: the toolkit releases a unit when it destroys it,
// and every later lookup through its handle fails.
//
// A Registry is not safe for concurrent use.
type Registry struct {
	last    Handle
	units   map[Handle]Surface
	handles map[Surface]Handle
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		units:   make(map[Handle]Surface),
		handles: make(map[Surface]Handle),
	}
}

// Track returns the handle for unit, registering it first if needed.
// Tracking the same unit twice returns the same handle.
func (r *Registry) Track(unit Surface) Handle {
	if unit == nil {
		return 0
	}
	if h, ok := r.handles[unit]; ok {
		return h
	}

	r.last++
	r.units[r.last] = unit
	r.handles[unit] = r.last
	return r.last
}

// Release marks unit as destroyed. It reports whether unit was tracked.
func (r *Registry) Release(unit Surface) bool {
	if unit == nil {
		return false
	}
	h, ok := r.handles[unit]
	if !ok {
		return false
	}

	delete(r.handles, unit)
	delete(r.units, h)
	return true
}

// Resolve returns the unit behind h if it is still alive.
func (r *Registry) Resolve(h Handle) (Surface, bool) {
	unit, ok := r.units[h]
	return unit, ok
}

// Alive reports whether h still resolves.
func (r *Registry) Alive(h Handle) bool {
	_, ok := r.units[h]
	return ok
}

// Len returns the number of live units.
func (r *Registry) Len() int {
	return len(r.units)
}
