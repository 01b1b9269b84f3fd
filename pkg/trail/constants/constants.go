// Package constants defines shared constants and configuration values used
// throughout trail.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// LogLevelEnvVar overrides the configured log level ("debug", "info", ...).
const LogLevelEnvVar = "TRAIL_LOG_LEVEL"

// LogPathEnvVar overrides the configured log file path.
const LogPathEnvVar = "TRAIL_LOG_PATH"

// BackDeviceEnvVar names the input device the back button is read from.
const BackDeviceEnvVar = "TRAIL_BACK_DEVICE"

// LangEnvVar selects the language of the trail command's messages.
const LangEnvVar = "TRAIL_LANG"

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
// Development mode turns on debug logging for the navigation engine.
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// DefaultTag is attached to routes mapped without tags.
const DefaultTag = "Views"

// DefaultBackDevice is the input device read for back presses when none is configured.
const DefaultBackDevice = "/dev/input/event1"

// BackDebounce is the minimum time between two back presses.
const BackDebounce = 250 * time.Millisecond

// DefaultAnimationDuration is how long timed transitions report as running.
const DefaultAnimationDuration = 300 * time.Millisecond
