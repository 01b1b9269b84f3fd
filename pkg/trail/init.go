// Package trail binds URL patterns to the presentation of screens and keeps
// a history that can be unwound screen by screen.
//
// The package ties together a pattern table (package pattern), the
// presentation and history engine (package router) and a window made of
// surfaces (package surface). Any toolkit whose screens implement the
// surface capability interfaces can be driven; surface.Tree is an in-memory
// toolkit for tests and tooling.
package trail

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/trail/pkg/trail/constants"
	"github.com/BrandonKowalski/trail/pkg/trail/internal"
	"github.com/BrandonKowalski/trail/pkg/trail/surface"
	"github.com/BrandonKowalski/trail/pkg/trail/transition"
)

// Options configures a Navigator.
type Options struct {
	Window surface.Window    // Holds the root surface; required
	Units  *surface.Registry // Liveness registry shared with the toolkit; created when nil
	// Committer wraps presentations; defaults to transition.Immediate, which
	// completes before any animation ends. Animated toolkits pass
	// transition.Transactions or sdlkit.Timed.
	Committer transition.Committer
	// NewStack wraps a unit for InNavigation styles. Without it those styles
	// present the bare unit.
	NewStack func(root surface.Surface) surface.Surface
	Logger   *slog.Logger // Engine logger; defaults to the internal trail logger
	LogPath  string       // Full path for log file including filename (creates parent directories)
	LogLevel string       // Engine log level ("debug", "info", "warn", "error")
}

// configureLogging applies log options. TRAIL_LOG_PATH and TRAIL_LOG_LEVEL
// override the options; development mode turns on debug logging.
func configureLogging(options Options) {
	if path := os.Getenv(constants.LogPathEnvVar); path != "" {
		internal.SetLogPath(path)
	} else if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	switch {
	case os.Getenv(constants.LogLevelEnvVar) != "":
		internal.SetInternalLogLevel(internal.ParseLevel(os.Getenv(constants.LogLevelEnvVar)))
	case constants.IsDevMode():
		internal.SetInternalLogLevel(slog.LevelDebug)
	case options.LogLevel != "":
		internal.SetInternalLogLevel(internal.ParseLevel(options.LogLevel))
	}
}

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before New to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// ParseLogLevel maps a level name to a slog.Level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	return internal.ParseLevel(level)
}

// SetEngineLogLevel sets the minimum level of the navigation engine's own log lines.
func SetEngineLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// Close flushes and closes the log file, if any.
func Close() {
	internal.CloseLogger()
}
