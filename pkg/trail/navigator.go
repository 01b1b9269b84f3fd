package trail

import (
	"context"
	"log/slog"
	"os"

	"github.com/BrandonKowalski/trail/pkg/trail/config"
	"github.com/BrandonKowalski/trail/pkg/trail/constants"
	"github.com/BrandonKowalski/trail/pkg/trail/internal"
	"github.com/BrandonKowalski/trail/pkg/trail/pattern"
	"github.com/BrandonKowalski/trail/pkg/trail/router"
)

type (
	Token  = pattern.Token
	Result = router.Result
)

// Route describes what a mapped pattern presents.
type Route struct {
	Tags []string // Defaults to "Views"
	// Owner unmaps the route when done. A nil owner keeps the route mapped
	// until Unmap.
	Owner         context.Context
	Source        router.Factory
	Style         router.Style
	Setup         router.SetupFunc
	Backward      router.BackwardFunc
	BackwardSetup router.BackwardSetupFunc
}

func (r Route) binding() router.Binding {
	return router.Binding{
		Source:        r.Source,
		Style:         r.Style,
		Setup:         r.Setup,
		Backward:      r.Backward,
		BackwardSetup: r.BackwardSetup,
	}
}

// Navigator maps URL patterns to screens and navigates between them.
type Navigator struct {
	table  *pattern.Table
	nav    *router.Navigator
	view   bool
	logger *slog.Logger
}

// New creates a Navigator presenting into opts.Window.
func New(opts Options) (*Navigator, error) {
	if opts.Window == nil {
		return nil, NewInfrastructureError("new", ErrNoWindow)
	}

	configureLogging(opts)
	logger := opts.Logger
	if logger == nil {
		logger = internal.GetInternalLogger()
	}

	return &Navigator{
		table: pattern.New(logger),
		nav: router.New(router.Options{
			Window:    opts.Window,
			Units:     opts.Units,
			Committer: opts.Committer,
			NewStack:  opts.NewStack,
			Logger:    logger,
		}),
		logger: logger,
	}, nil
}

// Map registers route under urlPattern. The most recently mapped matching
// pattern wins when a URL is opened.
func (n *Navigator) Map(urlPattern string, route Route) (Token, error) {
	tags := route.Tags
	if len(tags) == 0 && !n.view {
		tags = []string{constants.DefaultTag}
	}

	token, err := n.table.Map(urlPattern, tags, route.Owner, n.handler(route.binding()))
	if err != nil {
		return token, NewInfrastructureError("map", err)
	}
	return token, nil
}

func (n *Navigator) handler(b router.Binding) pattern.Handler {
	return pattern.Handler(n.nav.Handler(b))
}

// Unmap removes a mapped route. Entries it already added to the history stay.
func (n *Navigator) Unmap(token Token) bool {
	return n.table.Unmap(token)
}

// Open presents the route matching rawURL. done runs once the presentation
// completed and the history records it. It reports whether a route matched.
func (n *Navigator) Open(rawURL string, payload any, done func()) bool {
	return n.table.Open(rawURL, payload, done)
}

// OpenErr is Open reporting a miss as an error.
func (n *Navigator) OpenErr(rawURL string, payload any, done func()) error {
	return n.table.OpenErr(rawURL, payload, done)
}

// GoBack unwinds to the previous screen.
func (n *Navigator) GoBack(payload any) Result {
	return n.nav.GoBack(payload)
}

// GoBackTo unwinds to the oldest history entry presented for route, which
// is the pattern it was mapped under.
func (n *Navigator) GoBackTo(route string, payload any) Result {
	return n.nav.GoBackTo(route, payload)
}

// History returns the navigation history.
func (n *Navigator) History() *router.History {
	return n.nav.History()
}

// Patterns lists the patterns this navigator can open.
func (n *Navigator) Patterns() []string {
	return n.table.Patterns()
}

// Tagged returns a navigator that only opens routes carrying one of tags.
// It shares routes and history with n. Routes mapped on it without tags get
// its tags.
func (n *Navigator) Tagged(tags ...string) *Navigator {
	return &Navigator{
		table:  n.table.Tagged(tags...),
		nav:    n.nav,
		view:   true,
		logger: n.logger,
	}
}

// Load maps every route of a route file, resolving screens in catalog.
// Nothing is mapped when any route is invalid.
func (n *Navigator) Load(path string, catalog config.Catalog) ([]Token, error) {
	file, err := config.Load(path)
	if err != nil {
		return nil, NewInfrastructureError("load", err)
	}
	if file.Log.Level != "" && os.Getenv(constants.LogLevelEnvVar) == "" {
		internal.SetInternalLogLevel(internal.ParseLevel(file.Log.Level))
	}
	return n.MapFile(file, catalog)
}

// MapFile maps the routes of a decoded route file.
func (n *Navigator) MapFile(file *config.File, catalog config.Catalog) ([]Token, error) {
	declared, err := file.Resolve(catalog)
	if err != nil {
		return nil, NewInfrastructureError("load", err)
	}

	var tokens []Token
	for _, d := range declared {
		token, err := n.Map(d.Pattern, Route{
			Tags:          d.Tags,
			Source:        d.Binding.Source,
			Style:         d.Binding.Style,
			Setup:         d.Binding.Setup,
			Backward:      d.Binding.Backward,
			BackwardSetup: d.Binding.BackwardSetup,
		})
		if err != nil {
			for _, t := range tokens {
				n.Unmap(t)
			}
			return nil, err
		}
		tokens = append(tokens, token)
	}

	n.logger.Debug("Loaded routes", "count", len(tokens))
	return tokens, nil
}
