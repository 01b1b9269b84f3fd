// Package router presents screens for route invocations and unwinds through
// the history those presentations leave behind.
//
// A Navigator owns one History. Each route handler built with
// Navigator.Handler constructs a unit, finds the frontmost surface of the
// window's hierarchy, presents the unit there with the binding's Style and,
// once the transition reports completion, appends a history Entry.
//
// # Basic Usage
//
//	tree := surface.NewTree(units, nil)
//	nav := router.New(router.Options{Window: tree, Units: units, NewStack: tree.Wrap})
//
//	home := nav.Handler(router.Binding{
//	    Source: func() surface.Surface { return tree.NewStack("main", tree.NewLeaf("home")) },
//	})
//	detail := nav.Handler(router.Binding{
//	    Source:   func() surface.Surface { return tree.NewLeaf("detail") },
//	    Style:    router.Push(true),
//	    Backward: router.DefaultBackward,
//	})
//
//	home("/home", nil, nil, nil)
//	detail("/detail/:id", map[string]string{"id": "7"}, nil, nil)
//
//	nav.GoBack(nil) // pops detail, then runs home's BackwardSetup
//
// # Going Back
//
// GoBack and GoBackTo first drop entries whose unit was destroyed by the
// toolkit, then run the backward handler of every entry above the target,
// newest first, strictly one after another: a handler's dismissal must report
// completion before the next handler starts. The target's BackwardSetup then
// receives the data of the screen that was left, along with the caller's
// payload.
//
// Requests that cannot be honoured (an unknown route, a history with fewer
// than two live entries, an unwind already in flight) change nothing; the
// returned Result says why.
package router
