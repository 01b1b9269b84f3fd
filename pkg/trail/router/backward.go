package router

import "github.com/BrandonKowalski/trail/pkg/trail/surface"

// DefaultBackward is a stock BackwardFunc that undoes the presentation the
// entry's style performed.
//
// Pushed and shown units are removed from their container, presented units
// are dismissed, and units wrapped by InNavigation are dismissed together
// with their wrapper. ReplaceRoot and Custom entries continue immediately:
// there is nothing generic to undo for them.
func DefaultBackward(_ string, style Style, unit surface.Surface, done func()) {
	switch style.Base().Kind() {
	case KindReplaceRoot, KindCustom:
		done()
		return
	}

	target := unit
	if style.Kind() == KindInNavigation {
		if enclosed, ok := unit.(surface.Enclosed); ok {
			if stack := enclosed.EnclosingStack(); stack != nil {
				target = stack
			}
		}
	}

	dismisser, ok := target.(surface.Dismisser)
	if !ok {
		done()
		return
	}
	dismisser.Dismiss(style.Animated(), done)
}
