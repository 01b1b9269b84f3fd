package input

import (
	"testing"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/trail/pkg/trail/constants"
)

func key(code evdev.EvCode, value int32) evdev.InputEvent {
	return evdev.InputEvent{Type: evdev.EV_KEY, Code: code, Value: value}
}

func TestDefaults(t *testing.T) {
	env := map[string]string{}
	c := BackButtonConfig{}.withDefaults(func(k string) string { return env[k] })
	if c.DevicePath != constants.DefaultBackDevice || c.Debounce != constants.BackDebounce || len(c.Codes) != 2 {
		t.Fatalf("defaults = %+v", c)
	}

	env[constants.BackDeviceEnvVar] = "/dev/input/event7"
	c = BackButtonConfig{}.withDefaults(func(k string) string { return env[k] })
	if c.DevicePath != "/dev/input/event7" {
		t.Fatalf("env device ignored: %s", c.DevicePath)
	}

	c = BackButtonConfig{DevicePath: "/dev/x"}.withDefaults(func(k string) string { return env[k] })
	if c.DevicePath != "/dev/x" {
		t.Fatalf("explicit device overridden: %s", c.DevicePath)
	}
}

func TestBackFilter(t *testing.T) {
	f := newBackFilter(BackButtonConfig{}.withDefaults(func(string) string { return "" }))
	start := time.Unix(1000, 0)

	steps := []struct {
		ev   evdev.InputEvent
		at   time.Duration
		want bool
	}{
		{key(evdev.KEY_BACK, 1), 0, true},
		{key(evdev.KEY_BACK, 0), 10 * time.Millisecond, false},
		{key(evdev.KEY_BACK, 1), 100 * time.Millisecond, false},
		{key(evdev.KEY_BACK, 2), 400 * time.Millisecond, false},
		{key(evdev.KEY_A, 1), 500 * time.Millisecond, false},
		{evdev.InputEvent{Type: evdev.EV_SYN}, 600 * time.Millisecond, false},
		{key(evdev.KEY_ESC, 1), 700 * time.Millisecond, true},
	}

	for i, step := range steps {
		if got := f.press(step.ev, start.Add(step.at)); got != step.want {
			t.Errorf("step %d: press = %v, want %v", i, got, step.want)
		}
	}
}
