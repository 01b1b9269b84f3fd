package router_test

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/BrandonKowalski/trail/pkg/trail/router"
	"github.com/BrandonKowalski/trail/pkg/trail/surface"
)

// ListResume is position state a list screen restores when navigated back to.
type ListResume struct {
	SelectedIndex int
}

// Example demonstrates presenting two screens and going back one step.
func Example() {
	units := surface.NewRegistry()
	tree := surface.NewTree(units, nil)

	nav := router.New(router.Options{
		Window:   tree,
		Units:    units,
		NewStack: tree.Wrap,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	list := nav.Handler(router.Binding{
		Source: func() surface.Surface {
			return tree.NewStack("games", tree.NewLeaf("game-list"))
		},
		BackwardSetup: func(_ surface.Surface, from string, params map[string]string, payload any) {
			resume := payload.(ListResume)
			fmt.Printf("List: back from %s (game %s), restoring index %d\n", from, params["id"], resume.SelectedIndex)
		},
	})

	detail := nav.Handler(router.Binding{
		Source: func() surface.Surface { return tree.NewLeaf("game-detail") },
		Style:  router.Push(true),
		Setup: func(unit surface.Surface, params map[string]string, _ any) {
			fmt.Printf("Detail: showing game %s\n", params["id"])
		},
		Backward: func(target string, style router.Style, unit surface.Surface, done func()) {
			fmt.Printf("Detail: dismissing toward %s\n", target)
			router.DefaultBackward(target, style, unit, done)
		},
	})

	list("/games", nil, nil, nil)
	detail("/games/:id", map[string]string{"id": "7"}, nil, nil)
	tree.Flush()

	fmt.Println("History:", nav.History().Routes())

	nav.GoBack(ListResume{SelectedIndex: 2})
	tree.Flush()

	fmt.Println("History:", nav.History().Routes())

	// Output:
	// Detail: showing game 7
	// History: [/games /games/:id]
	// Detail: dismissing toward /games
	// List: back from /games/:id (game 7), restoring index 2
	// History: [/games]
}

// Example_goBackTo demonstrates unwinding several screens at once.
func Example_goBackTo() {
	tree := surface.NewTree(nil, nil)
	nav := router.New(router.Options{
		Window: tree,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	screen := func(name string, style router.Style) router.HandlerFunc {
		return nav.Handler(router.Binding{
			Source: func() surface.Surface { return tree.NewLeaf(name) },
			Style:  style,
			Backward: func(target string, style router.Style, unit surface.Surface, done func()) {
				fmt.Println("dismiss", name)
				router.DefaultBackward(target, style, unit, done)
			},
			BackwardSetup: func(surface.Surface, string, map[string]string, any) {
				fmt.Println("resume", name)
			},
		})
	}

	screen("home", router.Show())("/home", nil, nil, nil)
	screen("settings", router.Present(false))("/settings", nil, nil, nil)
	screen("account", router.Present(false))("/settings/account", nil, nil, nil)
	screen("password", router.Present(false))("/settings/account/password", nil, nil, nil)

	nav.GoBackTo("/settings", nil)

	// Output:
	// dismiss password
	// dismiss account
	// resume settings
}
