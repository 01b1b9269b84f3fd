// Package config loads declarative route tables.
//
// A route file names, for each pattern, the screen to present and how to
// present it. Screens themselves are code: a Catalog maps screen names to
// the bindings that build them.
//
//	[log]
//	level = "debug"
//
//	[[route]]
//	pattern = "app://games"
//	screen = "game-list"
//	style = "in-navigation(present(animated))"
//
//	[[route]]
//	pattern = "app://games/:id"
//	screen = "game-detail"
//	style = "push(animated)"
//	backward = "default"
//
// The same table can be written in YAML with the same keys.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/BrandonKowalski/trail/pkg/trail/router"
)

// Format is the encoding of a route file.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// Backward handler names accepted in route files.
const (
	BackwardNone    = "none"
	BackwardDefault = "default"
)

var (
	ErrUnknownFormat = errors.New("unknown route file format")
	ErrUnknownScreen = errors.New("unknown screen")
)

// Log configures logging from a route file.
type Log struct {
	Level string `toml:"level" yaml:"level"`
	Path  string `toml:"path" yaml:"path"`
}

// RouteSpec declares one route.
type RouteSpec struct {
	Pattern  string   `toml:"pattern" yaml:"pattern"`
	Screen   string   `toml:"screen" yaml:"screen"`
	Style    string   `toml:"style" yaml:"style"`
	Tags     []string `toml:"tags" yaml:"tags"`
	Backward string   `toml:"backward" yaml:"backward"` // "default" or "none"; empty keeps the catalog's
}

// File is a decoded route file.
type File struct {
	Log    Log         `toml:"log" yaml:"log"`
	Routes []RouteSpec `toml:"route" yaml:"route"`
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Load reads and decodes a route file, choosing the format by extension.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading route file: %w", err)
	}

	file, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return file, nil
}

// Decode parses route file content.
func Decode(data []byte, format Format) (*File, error) {
	var file File
	switch format {
	case TOML:
		if _, err := toml.Decode(string(data), &file); err != nil {
			return nil, fmt.Errorf("parsing route file: %w", err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parsing route file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return &file, nil
}

// Catalog maps screen names to the bindings that build them. A route file
// may override the style and backward handler of a binding.
type Catalog map[string]router.Binding

// Declared is a route resolved against a catalog.
type Declared struct {
	Pattern string
	Tags    []string
	Binding router.Binding
}

// Resolve turns every route of f into a Declared route. All problems are
// reported together.
func (f *File) Resolve(catalog Catalog) ([]Declared, error) {
	var (
		declared []Declared
		errs     []error
	)

	for i, spec := range f.Routes {
		d, err := spec.resolve(catalog)
		if err != nil {
			errs = append(errs, fmt.Errorf("route %d (%s): %w", i+1, spec.Pattern, err))
			continue
		}
		declared = append(declared, d)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return declared, nil
}

func (spec RouteSpec) resolve(catalog Catalog) (Declared, error) {
	if spec.Pattern == "" {
		return Declared{}, errors.New("missing pattern")
	}

	binding, ok := catalog[spec.Screen]
	if !ok {
		return Declared{}, fmt.Errorf("%w %q", ErrUnknownScreen, spec.Screen)
	}

	if strings.TrimSpace(spec.Style) != "" {
		style, err := router.ParseStyle(spec.Style)
		if err != nil {
			return Declared{}, err
		}
		binding.Style = style
	}

	switch strings.ToLower(strings.TrimSpace(spec.Backward)) {
	case "":
	case BackwardNone:
		binding.Backward = nil
	case BackwardDefault:
		binding.Backward = router.DefaultBackward
	default:
		return Declared{}, fmt.Errorf("unknown backward handler %q", spec.Backward)
	}

	return Declared{Pattern: spec.Pattern, Tags: spec.Tags, Binding: binding}, nil
}
