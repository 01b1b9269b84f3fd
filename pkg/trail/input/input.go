// Package input turns a hardware back button into GoBack calls.
//
// Handheld devices expose their buttons as evdev input devices. Listen
// reads key presses from one device and invokes a callback, typically
// Navigator.GoBack, for every press of a configured back code.
package input

import (
	"errors"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/trail/pkg/trail/constants"
)

var ErrUnsupported = errors.New("back button input is only supported on linux")

// BackButtonConfig selects the device and key codes treated as "back".
type BackButtonConfig struct {
	DevicePath string         // Defaults to TRAIL_BACK_DEVICE, then /dev/input/event1
	Codes      []evdev.EvCode // Defaults to KEY_BACK and KEY_ESC
	Debounce   time.Duration  // Minimum time between presses; defaults to 250ms
}

func (c BackButtonConfig) withDefaults(env func(string) string) BackButtonConfig {
	if c.DevicePath == "" {
		c.DevicePath = env(constants.BackDeviceEnvVar)
	}
	if c.DevicePath == "" {
		c.DevicePath = constants.DefaultBackDevice
	}
	if len(c.Codes) == 0 {
		c.Codes = []evdev.EvCode{evdev.KEY_BACK, evdev.KEY_ESC}
	}
	if c.Debounce <= 0 {
		c.Debounce = constants.BackDebounce
	}
	return c
}

// backFilter decides which events count as a back press.
type backFilter struct {
	codes    []evdev.EvCode
	debounce time.Duration
	last     time.Time
}

func newBackFilter(c BackButtonConfig) *backFilter {
	return &backFilter{codes: c.Codes, debounce: c.Debounce}
}

// press reports whether ev, seen at now, is a new back press. Only key
// down events count; repeats and releases are ignored.
func (f *backFilter) press(ev evdev.InputEvent, now time.Time) bool {
	if ev.Type != evdev.EV_KEY || ev.Value != 1 {
		return false
	}

	matched := false
	for _, code := range f.codes {
		if ev.Code == code {
			matched = true
			break
		}
	}
	if !matched {
		return false
	}

	if !f.last.IsZero() && now.Sub(f.last) < f.debounce {
		return false
	}
	f.last = now
	return true
}
