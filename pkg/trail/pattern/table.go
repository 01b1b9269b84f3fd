// Package pattern maps URL patterns to route handlers.
//
// A pattern is an optional "scheme://" followed by slash separated segments.
// A segment is matched literally unless it is a capture (":name"), a glob
// ("*.json", "item-?") or "**", which spans zero or more segments. Query
// values of an opened URL are merged into the parameters; captures win over
// query values of the same name.
//
//	table := pattern.New(nil)
//	table.Map("app://games/:id", nil, nil, func(route string, params map[string]string, payload any, done func()) {
//	    fmt.Println(route, params["id"])
//	    done()
//	})
//	table.Open("app://games/7?tab=info", nil, nil)
package pattern

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
	"golang.org/x/text/cases"

	"github.com/BrandonKowalski/trail/pkg/trail/internal"
)

var (
	ErrNoRoute   = errors.New("no route matches")
	ErrOwnerGone = errors.New("route owner already finished")
)

// Handler runs when an opened URL matches its pattern. route is the pattern
// that matched, not the URL.
type Handler func(route string, params map[string]string, payload any, done func())

// Token identifies a mapped route.
type Token uuid.UUID

func (t Token) String() string {
	return uuid.UUID(t).String()
}

// IsZero reports whether t was never issued.
func (t Token) IsZero() bool {
	return t == Token{}
}

type route struct {
	token   Token
	pattern *compiled
	tags    []string
	handler Handler
	stop    func() bool
}

type store struct {
	mu     sync.Mutex
	routes []*route
}

func (s *store) add(r *route) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.routes = append(s.routes, r)
}

func (s *store) remove(token Token) *route {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, r := range s.routes {
		if r.token == token {
			s.routes = slices.Delete(s.routes, i, i+1)
			return r
		}
	}
	return nil
}

func (s *store) snapshot() []*route {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.routes)
}

// Table holds mapped routes. Tables returned by Tagged share the routes of
// the table they came from and only see routes carrying one of their tags.
type Table struct {
	store  *store
	tags   []string
	logger *slog.Logger
}

// New creates an empty table. A nil logger selects the internal trail logger.
func New(logger *slog.Logger) *Table {
	if logger == nil {
		logger = internal.GetInternalLogger()
	}
	return &Table{store: &store{}, logger: logger}
}

func foldTags(tags []string) []string {
	fold := cases.Fold()
	folded := make([]string, 0, len(tags))
	for _, tag := range tags {
		f := fold.String(tag)
		if !slices.Contains(folded, f) {
			folded = append(folded, f)
		}
	}
	return folded
}

// Map registers h for pattern. Without tags, a tagged view maps with its own
// tags. When owner is done the route is unmapped.
func (t *Table) Map(pattern string, tags []string, owner context.Context, h Handler) (Token, error) {
	c, err := compile(pattern)
	if err != nil {
		return Token{}, err
	}
	if h == nil {
		return Token{}, fmt.Errorf("%w %q: nil handler", ErrBadPattern, pattern)
	}
	if owner != nil && owner.Err() != nil {
		return Token{}, fmt.Errorf("map %q: %w", pattern, ErrOwnerGone)
	}

	r := &route{
		token:   Token(uuid.New()),
		pattern: c,
		tags:    foldTags(tags),
		handler: h,
	}
	if len(tags) == 0 {
		r.tags = slices.Clone(t.tags)
	}

	t.store.add(r)
	if owner != nil {
		r.stop = context.AfterFunc(owner, func() {
			if t.store.remove(r.token) != nil {
				t.logger.Debug("Route owner finished, unmapped", "pattern", pattern)
			}
		})
	}

	t.logger.Debug("Mapped route", "pattern", pattern, "token", r.token.String(), "tags", r.tags)
	return r.token, nil
}

// Unmap removes the route registered under token. It reports whether a
// route was removed.
func (t *Table) Unmap(token Token) bool {
	r := t.store.remove(token)
	if r == nil {
		return false
	}
	if r.stop != nil {
		r.stop()
	}
	return true
}

// Tagged returns a view of t restricted to routes carrying at least one of
// tags. Tags compare case-insensitively.
func (t *Table) Tagged(tags ...string) *Table {
	return &Table{store: t.store, tags: foldTags(tags), logger: t.logger}
}

func (t *Table) visible(r *route) bool {
	if t.tags == nil {
		return true
	}
	for _, tag := range r.tags {
		if slices.Contains(t.tags, tag) {
			return true
		}
	}
	return false
}

func (t *Table) routes() []*route {
	var visible []*route
	for _, r := range t.store.snapshot() {
		if t.visible(r) {
			visible = append(visible, r)
		}
	}
	return visible
}

// Patterns lists the visible patterns, oldest mapping first.
func (t *Table) Patterns() []string {
	var patterns []string
	for _, r := range t.routes() {
		patterns = append(patterns, r.pattern.source)
	}
	return patterns
}

// Len returns the number of visible routes.
func (t *Table) Len() int {
	return len(t.routes())
}

// Open runs the handler of the most recently mapped route matching rawURL.
// It reports whether one matched; done is not called when nothing matches.
func (t *Table) Open(rawURL string, payload any, done func()) bool {
	return t.OpenErr(rawURL, payload, done) == nil
}

// OpenErr is Open reporting a miss as an error wrapping ErrNoRoute.
func (t *Table) OpenErr(rawURL string, payload any, done func()) error {
	routes := t.routes()
	for i := len(routes) - 1; i >= 0; i-- {
		r := routes[i]
		params, ok := r.pattern.match(rawURL)
		if !ok {
			continue
		}

		t.logger.Debug("Opening route", "url", rawURL, "pattern", r.pattern.source)
		r.handler(r.pattern.source, params, payload, done)
		return nil
	}

	if closest := closestPattern(rawURL, routes); closest != "" {
		t.logger.Warn("No route matches", "url", rawURL, "closest", closest)
		return fmt.Errorf("open %q: %w (closest pattern %q)", rawURL, ErrNoRoute, closest)
	}
	t.logger.Warn("No route matches", "url", rawURL)
	return fmt.Errorf("open %q: %w", rawURL, ErrNoRoute)
}

func closestPattern(rawURL string, routes []*route) string {
	best, bestDistance := "", -1
	for _, r := range routes {
		d := levenshtein.ComputeDistance(rawURL, r.pattern.source)
		if bestDistance < 0 || d < bestDistance {
			best, bestDistance = r.pattern.source, d
		}
	}
	return best
}
