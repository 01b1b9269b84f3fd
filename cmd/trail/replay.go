package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/trail/pkg/trail"
	"github.com/BrandonKowalski/trail/pkg/trail/config"
	"github.com/BrandonKowalski/trail/pkg/trail/router"
	"github.com/BrandonKowalski/trail/pkg/trail/surface"
	"github.com/BrandonKowalski/trail/pkg/trail/transition"
)

// session drives a Navigator over an in-memory window.
type session struct {
	out       io.Writer
	msgs      *messages
	tree      *surface.Tree
	nav       *trail.Navigator
	autoFlush bool
}

func newSession(out io.Writer, msgs *messages, file *config.File, autoFlush bool) (*session, error) {
	units := surface.NewRegistry()
	txs := transition.NewTransactions()
	tree := surface.NewTree(units, txs)

	nav, err := trail.New(trail.Options{
		Window:    tree,
		Units:     units,
		Committer: txs,
		NewStack:  tree.Wrap,
	})
	if err != nil {
		return nil, err
	}

	s := &session{out: out, msgs: msgs, tree: tree, nav: nav, autoFlush: autoFlush}
	if _, err := nav.MapFile(file, s.catalog(file)); err != nil {
		return nil, err
	}
	return s, nil
}

// catalog builds a screen for every name a route file mentions.
//
//	name           a plain screen
//	stack:name     a screen inside its own navigation stack
//	tabs:a,b,c     a tab bar with one stacked screen per tab
func (s *session) catalog(file *config.File) config.Catalog {
	catalog := config.Catalog{}
	for _, spec := range file.Routes {
		screen := spec.Screen
		if _, ok := catalog[screen]; ok {
			continue
		}

		name := screen
		source := func() surface.Surface { return s.tree.NewLeaf(screen) }
		switch {
		case strings.HasPrefix(screen, "stack:"):
			name = strings.TrimPrefix(screen, "stack:")
			source = func() surface.Surface { return s.tree.Wrap(s.tree.NewLeaf(name)) }
		case strings.HasPrefix(screen, "tabs:"):
			names := strings.Split(strings.TrimPrefix(screen, "tabs:"), ",")
			name = "tabs"
			source = func() surface.Surface {
				tabs := make([]surface.Surface, len(names))
				for i, n := range names {
					tabs[i] = s.tree.Wrap(s.tree.NewLeaf(strings.TrimSpace(n)))
				}
				return s.tree.NewTabs("tabs", tabs...)
			}
		}

		catalog[screen] = router.Binding{
			Source: source,
			Backward: func(target string, style router.Style, unit surface.Surface, done func()) {
				s.say(dimStyle, "Dismissed", map[string]any{"Name": name, "Target": target})
				router.DefaultBackward(target, style, unit, done)
			},
			BackwardSetup: func(_ surface.Surface, from string, _ map[string]string, _ any) {
				s.say(okStyle, "Resumed", map[string]any{"Name": name, "From": from})
			},
		}
	}
	return catalog
}

func (s *session) say(style lipgloss.Style, id string, data map[string]any) {
	fmt.Fprintln(s.out, style.Render(s.msgs.get(id, data)))
}

// run executes a navigation script, one command per line:
//
//	open URL        open a URL
//	back            go back one screen
//	back-to ROUTE   go back to the oldest entry for a route pattern
//	destroy NAME    tear a surface down behind the navigator's back
//	flush           finish running animations
//	print           show the history and the window
//
// Blank lines and lines starting with '#' are ignored.
func (s *session) run(script io.Reader) error {
	scanner := bufio.NewScanner(script)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		command, arg, _ := strings.Cut(text, " ")
		arg = strings.TrimSpace(arg)
		if err := s.exec(line, command, arg); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (s *session) exec(line int, command, arg string) error {
	needsArg := map[string]bool{"open": true, "back-to": true, "destroy": true}
	if needsArg[command] && arg == "" {
		return errors.New(s.msgs.get("MissingArgument", map[string]any{"Line": line, "Command": command}))
	}

	switch command {
	case "open":
		completed := false
		if err := s.nav.OpenErr(arg, nil, func() { completed = true }); err != nil {
			s.say(errorStyle, "NoRoute", map[string]any{"URL": arg})
			return nil
		}
		s.settle()
		if completed {
			s.say(okStyle, "Opened", map[string]any{"URL": arg})
		} else {
			s.say(dimStyle, "OpenPending", map[string]any{"URL": arg})
		}

	case "back":
		result := s.nav.GoBack(nil)
		s.settle()
		s.say(dimStyle, "Back", map[string]any{"Result": result.String()})

	case "back-to":
		result := s.nav.GoBackTo(arg, nil)
		s.settle()
		s.say(dimStyle, "Back", map[string]any{"Result": result.String()})

	case "destroy":
		unit := s.tree.Find(arg)
		if unit == nil {
			s.say(errorStyle, "NoSurface", map[string]any{"Name": arg})
			return nil
		}
		s.tree.Destroy(unit)
		s.say(dimStyle, "Destroyed", map[string]any{"Name": arg})

	case "flush":
		s.say(dimStyle, "Flushed", map[string]any{"Count": s.tree.Flush()})

	case "print":
		fmt.Fprint(s.out, renderHistory(s.msgs, s.nav.History()))
		fmt.Fprint(s.out, renderTree(s.msgs, s.tree))

	default:
		return errors.New(s.msgs.get("UnknownCommand", map[string]any{"Line": line, "Command": command}))
	}
	return nil
}

func (s *session) settle() {
	if s.autoFlush {
		s.tree.Flush()
	}
}
