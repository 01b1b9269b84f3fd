package pattern

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	ErrEmptyPattern = errors.New("empty pattern")
	ErrBadPattern   = errors.New("invalid pattern")
)

type segmentKind int

const (
	segmentLiteral segmentKind = iota
	segmentCapture
	segmentGlob
	segmentAny // "**", zero or more segments
)

type segment struct {
	kind segmentKind
	text string // literal text, capture name or glob
}

// compiled is a parsed pattern. A pattern without a scheme matches URLs of
// any scheme.
type compiled struct {
	source   string
	scheme   string
	segments []segment
}

func compile(source string) (*compiled, error) {
	if strings.TrimSpace(source) == "" {
		return nil, ErrEmptyPattern
	}

	scheme, parts := split(source)
	c := &compiled{source: source, scheme: scheme}
	seen := map[string]bool{}

	for _, part := range parts {
		switch {
		case part == "**":
			c.segments = append(c.segments, segment{kind: segmentAny})
		case strings.HasPrefix(part, ":"):
			name := part[1:]
			if name == "" {
				return nil, fmt.Errorf("%w %q: unnamed capture", ErrBadPattern, source)
			}
			if seen[name] {
				return nil, fmt.Errorf("%w %q: capture %q repeated", ErrBadPattern, source, name)
			}
			seen[name] = true
			c.segments = append(c.segments, segment{kind: segmentCapture, text: name})
		case strings.ContainsAny(part, "*?[{"):
			if !doublestar.ValidatePattern(part) {
				return nil, fmt.Errorf("%w %q: bad glob %q", ErrBadPattern, source, part)
			}
			c.segments = append(c.segments, segment{kind: segmentGlob, text: part})
		default:
			c.segments = append(c.segments, segment{kind: segmentLiteral, text: part})
		}
	}

	return c, nil
}

// split separates an optional "scheme://" prefix from the slash separated
// segments that follow it. The host, when present, is the first segment.
func split(s string) (string, []string) {
	var scheme string
	if i := strings.Index(s, "://"); i >= 0 {
		scheme, s = strings.ToLower(s[:i]), s[i+3:]
	}

	var parts []string
	for _, part := range strings.Split(s, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return scheme, parts
}

// match reports whether the URL path matches and returns the captured
// parameters merged over the query values.
func (c *compiled) match(rawURL string) (map[string]string, bool) {
	path, query, _ := strings.Cut(rawURL, "?")
	path, _, _ = strings.Cut(path, "#")

	scheme, parts := split(path)
	if c.scheme != "" && c.scheme != scheme {
		return nil, false
	}

	captures := map[string]string{}
	if !matchSegments(c.segments, parts, captures) {
		return nil, false
	}

	params := map[string]string{}
	if values, err := url.ParseQuery(query); err == nil {
		for key, vs := range values {
			if len(vs) > 0 {
				params[key] = vs[len(vs)-1]
			}
		}
	}
	for key, value := range captures {
		params[key] = value
	}
	return params, true
}

func matchSegments(segments []segment, parts []string, captures map[string]string) bool {
	for len(segments) > 0 {
		seg := segments[0]

		if seg.kind == segmentAny {
			for skip := 0; skip <= len(parts); skip++ {
				if matchSegments(segments[1:], parts[skip:], captures) {
					return true
				}
			}
			return false
		}

		if len(parts) == 0 {
			return false
		}
		part := parts[0]

		switch seg.kind {
		case segmentLiteral:
			if seg.text != part {
				return false
			}
		case segmentCapture:
			value, err := url.PathUnescape(part)
			if err != nil {
				value = part
			}
			captures[seg.text] = value
		case segmentGlob:
			if ok, _ := doublestar.Match(seg.text, part); !ok {
				return false
			}
		}

		segments, parts = segments[1:], parts[1:]
	}
	return len(parts) == 0
}
