// Package surface describes the presentation container hierarchy that screens
// are shown in: tab containers, stacked containers and modal layers.
//
// The hierarchy is owned by the toolkit, not by the navigation engine. The
// engine only walks it (Frontmost), asks it to perform mutations through the
// optional capability interfaces below, and checks whether units it once
// presented are still alive through a Registry.
package surface

// Surface is a node in the presentation hierarchy. A presented screen (a
// "unit") is also a Surface, since it can present further screens itself.
//
// Units are compared by identity; use pointer types.
type Surface interface {
	// Next returns the currently active child surface, or nil at a leaf.
	// Tab containers report the selected tab, stack containers the modal
	// they present or else their visible child, plain surfaces their modal.
	Next() Surface
}

// Frontmost walks from root through Next until no child remains and returns
// the last surface reached. A nil root yields nil.
//
// The tree must be acyclic: a surface never reports itself or an ancestor as
// its active child. This is not checked.
func Frontmost(root Surface) Surface {
	if root == nil {
		return nil
	}

	current := root
	for next := current.Next(); next != nil; next = current.Next() {
		current = next
	}
	return current
}

// Shower attaches a unit as the primary or the secondary (detail) child.
type Shower interface {
	Show(unit Surface)
	ShowDetail(unit Surface)
}

// Presenter overlays a unit modally. done is the toolkit's native completion.
type Presenter interface {
	Present(unit Surface, animated bool, done func())
}

// Stacker is a stack-capable surface.
type Stacker interface {
	Surface
	Push(unit Surface, animated bool)
	Pop(animated bool) Surface
}

// Enclosed is implemented by surfaces that may live inside a stack.
// EnclosingStack returns nil when the surface is not stacked. Return an
// untyped nil there, not a nil pointer converted to Stacker.
type Enclosed interface {
	EnclosingStack() Stacker
}

// Dismisser removes a surface from wherever it was presented or pushed.
type Dismisser interface {
	Dismiss(animated bool, done func())
}

// Window holds the root of the hierarchy.
type Window interface {
	Root() Surface
	SetRoot(root Surface)
}
