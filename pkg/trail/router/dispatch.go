package router

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/BrandonKowalski/trail/pkg/trail/surface"
	"github.com/BrandonKowalski/trail/pkg/trail/transition"
)

// Dispatcher turns a Style into one concrete toolkit transition.
//
// Every path through Present ends in exactly one call of done, including the
// paths where nothing can be presented.
type Dispatcher struct {
	Window    surface.Window
	Committer transition.Committer
	// NewStack builds the stack surface InNavigation wraps units in.
	NewStack func(root surface.Surface) surface.Surface
	Logger   *slog.Logger
}

// Present shows unit from the surface from using style.
func (d *Dispatcher) Present(unit, from surface.Surface, style Style, done func()) {
	done = transition.Once(done)

	switch style.kind {
	case KindShow:
		shower, ok := from.(surface.Shower)
		if !ok {
			d.unsupported(style, from)
			done()
			return
		}
		d.Committer.Commit(done, func() { shower.Show(unit) })

	case KindShowDetail:
		shower, ok := from.(surface.Shower)
		if !ok {
			d.unsupported(style, from)
			done()
			return
		}
		d.Committer.Commit(done, func() { shower.ShowDetail(unit) })

	case KindPresent:
		presenter, ok := from.(surface.Presenter)
		if !ok {
			d.unsupported(style, from)
			done()
			return
		}
		presenter.Present(unit, style.animated, done)

	case KindPush:
		stack := stackFor(from)
		if stack == nil {
			d.Logger.Debug("No stack to push onto", "from", describe(from))
			done()
			return
		}
		d.Committer.Commit(done, func() { stack.Push(unit, style.animated) })

	case KindCustom:
		if style.custom == nil {
			done()
			return
		}
		style.custom(from, unit, done)

	case KindInNavigation:
		inner, _ := style.Inner()
		if d.NewStack == nil {
			d.Logger.Warn("No stack factory configured, presenting unwrapped", "style", style.String())
			d.Present(unit, from, inner, done)
			return
		}
		d.Present(d.NewStack(unit), from, inner, done)

	case KindReplaceRoot:
		d.Window.SetRoot(unit)
		done()

	default:
		d.Logger.Error("Unknown presentation style", "kind", int(style.kind))
		done()
	}
}

func (d *Dispatcher) unsupported(style Style, from surface.Surface) {
	d.Logger.Warn("Surface cannot perform presentation", "style", style.String(), "from", describe(from))
}

// stackFor returns from when it is stack-capable, else its enclosing stack.
// A nil pointer returned as the enclosing stack counts as no stack.
func stackFor(from surface.Surface) surface.Stacker {
	if stack, ok := from.(surface.Stacker); ok {
		return stack
	}
	enclosed, ok := from.(surface.Enclosed)
	if !ok {
		return nil
	}
	stack := enclosed.EnclosingStack()
	if v := reflect.ValueOf(stack); !v.IsValid() || (v.Kind() == reflect.Pointer && v.IsNil()) {
		return nil
	}
	return stack
}

func describe(s surface.Surface) string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T(%v)", s, s)
}
