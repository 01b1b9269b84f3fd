package router

import (
	"github.com/BrandonKowalski/trail/pkg/trail/surface"
	"github.com/BrandonKowalski/trail/pkg/trail/transition"
)

// Result reports what a GoBack call did. Unwinding never fails loudly; a
// request that cannot be honoured is ignored and the reason returned here.
type Result int

const (
	ResultUnwinding  Result = iota // Unwind started (it may complete later)
	ResultTooShallow               // Fewer than two live entries
	ResultNotFound                 // No live entry for the requested route
	ResultBusy                     // Another unwind is still in flight
)

func (r Result) String() string {
	switch r {
	case ResultUnwinding:
		return "unwinding"
	case ResultTooShallow:
		return "too shallow"
	case ResultNotFound:
		return "not found"
	case ResultBusy:
		return "busy"
	default:
		return "unknown"
	}
}

// GoBack unwinds one step, to the entry before the current one.
func (n *Navigator) GoBack(payload any) Result {
	if n.unwinding.Load() {
		n.logger.Debug("Ignoring go back, unwind in flight")
		return ResultBusy
	}

	n.history.Prune()
	if n.history.Len() < 2 {
		n.logger.Debug("Ignoring go back, history too shallow", "depth", n.history.Len())
		return ResultTooShallow
	}
	return n.unwindTo(n.history.Len()-2, payload)
}

// GoBackTo unwinds to the oldest live entry for route.
//
// Entries are dropped newest first. Each dropped entry's backward handler
// runs to completion before the next one starts; entries without a handler
// are passed over. Once the target is reached the history is truncated after
// it and the target's backward setup receives the route, parameters and
// payload of the entry that was current when the unwind began.
//
// Targeting the current route dismisses nothing and only replays its
// backward setup.
func (n *Navigator) GoBackTo(route string, payload any) Result {
	if n.unwinding.Load() {
		n.logger.Debug("Ignoring go back, unwind in flight", "route", route)
		return ResultBusy
	}

	n.history.Prune()
	if n.history.Len() < 2 {
		n.logger.Debug("Ignoring go back, history too shallow", "route", route, "depth", n.history.Len())
		return ResultTooShallow
	}

	i := n.history.Index(route)
	if i < 0 {
		n.logger.Debug("Ignoring go back, route not in history", "route", route)
		return ResultNotFound
	}
	return n.unwindTo(i, payload)
}

// unwind walks the entries above a target, newest first.
type unwind struct {
	nav     *Navigator
	target  int
	dest    Entry
	from    Entry
	steps   []Entry // newest first, target excluded
	next    int
	payload any

	// Set while a backward handler is running, so a continuation fired from
	// inside the handler resumes the loop instead of recursing.
	inHandler bool
	resumed   bool
}

func (n *Navigator) unwindTo(target int, payload any) Result {
	entries := n.history.Entries()

	steps := make([]Entry, 0, len(entries)-target-1)
	for i := len(entries) - 1; i > target; i-- {
		steps = append(steps, entries[i])
	}

	u := &unwind{
		nav:     n,
		target:  target,
		dest:    entries[target],
		from:    entries[len(entries)-1],
		steps:   steps,
		payload: payload,
	}

	n.unwinding.Store(true)
	n.logger.Debug("Unwinding", "to", u.dest.Route, "from", u.from.Route, "steps", len(steps))
	u.run()
	return ResultUnwinding
}

func (u *unwind) run() {
	for {
		entry, unit, ok := u.advance()
		if !ok {
			u.finish()
			return
		}

		u.inHandler, u.resumed = true, false
		entry.Backward(u.dest.Route, entry.Style, unit, transition.Once(u.resume))
		u.inHandler = false

		if !u.resumed {
			// The handler finishes later; resume picks the loop back up.
			return
		}
	}
}

func (u *unwind) resume() {
	if u.inHandler {
		u.resumed = true
		return
	}
	u.run()
}

// advance returns the next entry whose backward handler must run.
func (u *unwind) advance() (Entry, surface.Surface, bool) {
	for u.next < len(u.steps) {
		entry := u.steps[u.next]
		u.next++

		if entry.Backward == nil {
			continue
		}
		unit, ok := u.nav.history.Unit(entry)
		if !ok {
			u.nav.logger.Debug("Skipping destroyed unit", "route", entry.Route)
			continue
		}
		return entry, unit, true
	}
	return Entry{}, nil, false
}

func (u *unwind) finish() {
	n := u.nav
	n.history.truncate(u.target + 1)
	n.unwinding.Store(false)

	if u.dest.BackwardSetup == nil {
		return
	}
	unit, ok := n.history.Unit(u.dest)
	if !ok {
		n.logger.Debug("Unwind target destroyed before setup", "route", u.dest.Route)
		return
	}
	u.dest.BackwardSetup(unit, u.from.Route, u.from.Parameters, u.payload)
}
