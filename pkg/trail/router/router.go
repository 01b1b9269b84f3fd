package router

import (
	"log/slog"

	"go.uber.org/atomic"

	"github.com/BrandonKowalski/trail/pkg/trail/internal"
	"github.com/BrandonKowalski/trail/pkg/trail/surface"
	"github.com/BrandonKowalski/trail/pkg/trail/transition"
)

// Factory builds the unit a route presents.
type Factory func() surface.Surface

// SetupFunc prepares a freshly built unit before it is presented.
type SetupFunc func(unit surface.Surface, params map[string]string, payload any)

// Setupper is implemented by units that configure themselves from the
// route invocation. It runs before the binding's SetupFunc.
type Setupper interface {
	Setup(route string, params map[string]string, payload any)
}

// Binding describes what happens when a route fires.
type Binding struct {
	Source        Factory
	Style         Style
	Setup         SetupFunc
	Backward      BackwardFunc
	BackwardSetup BackwardSetupFunc
}

// HandlerFunc is the shape route tables invoke handlers with.
type HandlerFunc func(route string, params map[string]string, payload any, done func())

// Options configures a Navigator.
type Options struct {
	Window surface.Window    // Holds the root surface; required
	Units  *surface.Registry // Liveness registry shared with the toolkit; created when nil
	// Committer wraps Show, ShowDetail and Push mutations; defaults to
	// transition.Immediate, which completes as soon as the mutation returns.
	// Toolkits that animate those mutations need transition.Transactions
	// (with the toolkit holding it) or sdlkit.Timed so completions wait for
	// the animation.
	Committer transition.Committer
	NewStack  func(root surface.Surface) surface.Surface // Builds wrappers for InNavigation styles
	Logger    *slog.Logger                               // Defaults to the internal trail logger
}

// Navigator presents units for route invocations and unwinds through the
// resulting history.
//
// A Navigator is driven from one serial context (the UI thread of the
// toolkit). It does no locking of its own; concurrent calls are not
// supported.
type Navigator struct {
	window     surface.Window
	units      *surface.Registry
	dispatcher *Dispatcher
	history    *History
	unwinding  *atomic.Bool
	logger     *slog.Logger
}

// New creates a Navigator.
func New(opts Options) *Navigator {
	if opts.Units == nil {
		opts.Units = surface.NewRegistry()
	}
	if opts.Committer == nil {
		opts.Committer = transition.Immediate{}
	}
	if opts.Logger == nil {
		opts.Logger = internal.GetInternalLogger()
	}

	return &Navigator{
		window: opts.Window,
		units:  opts.Units,
		dispatcher: &Dispatcher{
			Window:    opts.Window,
			Committer: opts.Committer,
			NewStack:  opts.NewStack,
			Logger:    opts.Logger,
		},
		history:   NewHistory(opts.Units),
		unwinding: atomic.NewBool(false),
		logger:    opts.Logger,
	}
}

// History returns the navigation history.
func (n *Navigator) History() *History {
	return n.history
}

// Units returns the liveness registry units are tracked in.
func (n *Navigator) Units() *surface.Registry {
	return n.units
}

// Handler returns the route handler that presents b.
func (n *Navigator) Handler(b Binding) HandlerFunc {
	return func(route string, params map[string]string, payload any, done func()) {
		n.Invoke(b, route, params, payload, done)
	}
}

// Invoke builds the unit for b, presents it on the frontmost surface and
// records it in the history once the presentation has completed. done runs
// after the history entry has been appended.
//
// Without a root surface the unit becomes the root and no transition runs.
func (n *Navigator) Invoke(b Binding, route string, params map[string]string, payload any, done func()) {
	done = transition.Once(done)

	if b.Source == nil {
		n.logger.Error("Route has no unit source", "route", route)
		done()
		return
	}
	unit := b.Source()
	if unit == nil {
		n.logger.Error("Unit source returned nil", "route", route)
		done()
		return
	}

	if s, ok := unit.(Setupper); ok {
		s.Setup(route, params, payload)
	}
	if b.Setup != nil {
		b.Setup(unit, params, payload)
	}

	handle := n.units.Track(unit)
	record := func() {
		if b.Style.Kind() == KindReplaceRoot {
			n.history.Clear()
		}
		n.history.Push(Entry{
			Route:         route,
			Parameters:    params,
			Style:         b.Style,
			BackwardSetup: b.BackwardSetup,
			Backward:      b.Backward,
			Unit:          handle,
		})
		n.logger.Debug("Presented route", "route", route, "style", b.Style.String(), "depth", n.history.Len())
		done()
	}

	root := n.window.Root()
	if root == nil {
		n.window.SetRoot(unit)
		record()
		return
	}

	from := surface.Frontmost(root)
	n.dispatcher.Present(unit, from, b.Style, record)
}
