package router

import (
	"fmt"
	"strings"

	"github.com/BrandonKowalski/trail/pkg/trail/surface"
)

// Kind identifies a presentation style variant.
type Kind int

const (
	KindShow         Kind = iota // Attach as the primary child
	KindShowDetail               // Attach as the detail child
	KindPresent                  // Overlay modally
	KindPush                     // Push onto a stack
	KindCustom                   // Caller-supplied transition
	KindInNavigation             // Wrap in a fresh stack, then apply the inner style
	KindReplaceRoot              // Install as the new root
)

func (k Kind) String() string {
	switch k {
	case KindShow:
		return "show"
	case KindShowDetail:
		return "show-detail"
	case KindPresent:
		return "present"
	case KindPush:
		return "push"
	case KindCustom:
		return "custom"
	case KindInNavigation:
		return "in-navigation"
	case KindReplaceRoot:
		return "replace-root"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// CustomFunc performs a caller-defined transition and must call done once it
// has finished.
type CustomFunc func(presenting, presented surface.Surface, done func())

// Style describes how a unit is presented. The zero Style is Show.
//
// Styles are built with the constructors below and nest through InNavigation.
type Style struct {
	kind     Kind
	animated bool
	custom   CustomFunc
	inner    *Style
}

func Show() Style       { return Style{kind: KindShow} }
func ShowDetail() Style { return Style{kind: KindShowDetail} }

func Present(animated bool) Style {
	return Style{kind: KindPresent, animated: animated}
}

func Push(animated bool) Style {
	return Style{kind: KindPush, animated: animated}
}

func Custom(fn CustomFunc) Style {
	return Style{kind: KindCustom, custom: fn}
}

// InNavigation wraps the unit in a freshly built stack surface and presents
// the wrapper with inner.
func InNavigation(inner Style) Style {
	return Style{kind: KindInNavigation, inner: &inner}
}

// ReplaceRoot discards the whole hierarchy and installs the unit as root.
// Presenting with it also clears the navigation history.
func ReplaceRoot() Style { return Style{kind: KindReplaceRoot} }

func (s Style) Kind() Kind { return s.kind }

// Inner returns the wrapped style of an InNavigation style.
func (s Style) Inner() (Style, bool) {
	if s.kind != KindInNavigation || s.inner == nil {
		return Style{}, false
	}
	return *s.inner, true
}

// Animated reports whether the style animates, looking through InNavigation.
func (s Style) Animated() bool {
	if inner, ok := s.Inner(); ok {
		return inner.Animated()
	}
	return s.animated
}

// Base returns the innermost style, unwrapping every InNavigation layer.
func (s Style) Base() Style {
	for {
		inner, ok := s.Inner()
		if !ok {
			return s
		}
		s = inner
	}
}

// String renders the style in the form ParseStyle accepts, e.g.
// "in-navigation(push(animated))".
func (s Style) String() string {
	switch s.kind {
	case KindPresent, KindPush:
		if s.animated {
			return s.kind.String() + "(animated)"
		}
		return s.kind.String()
	case KindInNavigation:
		inner, _ := s.Inner()
		return "in-navigation(" + inner.String() + ")"
	default:
		return s.kind.String()
	}
}

// ParseStyle parses the textual form produced by Style.String. Custom styles
// carry a function and cannot be parsed.
func ParseStyle(text string) (Style, error) {
	t := strings.ToLower(strings.TrimSpace(text))

	name, arg := t, ""
	if open := strings.IndexByte(t, '('); open >= 0 {
		if !strings.HasSuffix(t, ")") {
			return Style{}, fmt.Errorf("router: unbalanced style %q", text)
		}
		name, arg = strings.TrimSpace(t[:open]), strings.TrimSpace(t[open+1:len(t)-1])
	}

	switch name {
	case "", "show":
		return noArg(Show(), arg, text)
	case "show-detail":
		return noArg(ShowDetail(), arg, text)
	case "replace-root":
		return noArg(ReplaceRoot(), arg, text)
	case "present", "push":
		animated := false
		switch arg {
		case "":
		case "animated":
			animated = true
		default:
			return Style{}, fmt.Errorf("router: unknown %s option %q", name, arg)
		}
		if name == "present" {
			return Present(animated), nil
		}
		return Push(animated), nil
	case "in-navigation":
		if arg == "" {
			return Style{}, fmt.Errorf("router: in-navigation needs an inner style")
		}
		inner, err := ParseStyle(arg)
		if err != nil {
			return Style{}, err
		}
		return InNavigation(inner), nil
	case "custom":
		return Style{}, fmt.Errorf("router: custom styles cannot be declared by name")
	default:
		return Style{}, fmt.Errorf("router: unknown style %q", text)
	}
}

func noArg(s Style, arg, text string) (Style, error) {
	if arg != "" {
		return Style{}, fmt.Errorf("router: style %q takes no options", text)
	}
	return s, nil
}
