package router

import (
	"maps"
	"slices"

	"github.com/BrandonKowalski/trail/pkg/trail/surface"
)

// BackwardFunc dismisses an entry's unit while unwinding toward target.
// It must call done exactly once, when the dismissal has finished.
type BackwardFunc func(target string, style Style, unit surface.Surface, done func())

// BackwardSetupFunc re-initialises the unit unwinding stopped at. from and
// params describe the entry that was current when the unwind began.
type BackwardSetupFunc func(unit surface.Surface, from string, params map[string]string, payload any)

// Entry is one past presentation.
// The unit is referenced through a registry handle and is not kept alive by
// the entry.
type Entry struct {
	Route         string
	Parameters    map[string]string
	Style         Style
	BackwardSetup BackwardSetupFunc
	Backward      BackwardFunc
	Unit          surface.Handle
}

// History records presentations, oldest first. The last entry is the
// current screen.
//
// History grows by Push, is cleared by ReplaceRoot presentations and loses
// suffixes when unwinding. Entries whose unit has been destroyed are dropped
// by Prune.
type History struct {
	entries []Entry
	units   *surface.Registry
}

// NewHistory creates an empty history resolving units through units.
func NewHistory(units *surface.Registry) *History {
	return &History{
		entries: make([]Entry, 0),
		units:   units,
	}
}

// Push appends an entry.
func (h *History) Push(e Entry) {
	e.Parameters = maps.Clone(e.Parameters)
	h.entries = append(h.entries, e)
}

// Prune drops every entry whose unit is no longer alive and returns how
// many were dropped. Order is preserved.
func (h *History) Prune() int {
	before := len(h.entries)
	h.entries = slices.DeleteFunc(h.entries, func(e Entry) bool {
		return !h.units.Alive(e.Unit)
	})
	return before - len(h.entries)
}

// Index returns the position of the oldest entry for route, or -1.
func (h *History) Index(route string) int {
	return slices.IndexFunc(h.entries, func(e Entry) bool {
		return e.Route == route
	})
}

// At returns the entry at i, or nil when out of range.
func (h *History) At(i int) *Entry {
	if i < 0 || i >= len(h.entries) {
		return nil
	}
	return &h.entries[i]
}

// Current returns the newest entry, or nil when empty.
func (h *History) Current() *Entry {
	return h.At(len(h.entries) - 1)
}

// Unit resolves the entry's unit if it is still alive.
func (h *History) Unit(e Entry) (surface.Surface, bool) {
	return h.units.Resolve(e.Unit)
}

// Entries returns a copy of the entries, oldest first.
func (h *History) Entries() []Entry {
	return slices.Clone(h.entries)
}

// Routes returns the route of every entry, oldest first.
func (h *History) Routes() []string {
	out := make([]string, len(h.entries))
	for i, e := range h.entries {
		out[i] = e.Route
	}
	return out
}

// IsEmpty returns true if the history has no entries.
func (h *History) IsEmpty() bool {
	return len(h.entries) == 0
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Clear removes all entries.
func (h *History) Clear() {
	clear(h.entries)
	h.entries = h.entries[:0]
}

// truncate keeps the first n entries.
func (h *History) truncate(n int) {
	if n < 0 || n >= len(h.entries) {
		return
	}
	clear(h.entries[n:])
	h.entries = h.entries[:n]
}
