//go:build linux

package input

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/trail/pkg/trail/internal"
)

// Listen reads back presses from the configured device until ctx is done,
// calling onBack for each. onBack runs on the listener goroutine; callers
// driving a UI toolkit marshal it onto their UI thread.
func Listen(ctx context.Context, config BackButtonConfig, onBack func()) error {
	config = config.withDefaults(os.Getenv)
	logger := internal.GetInternalLogger()

	dev, err := evdev.Open(config.DevicePath)
	if err != nil {
		return fmt.Errorf("opening back button device %s: %w", config.DevicePath, err)
	}

	stop := context.AfterFunc(ctx, func() {
		dev.Close()
	})
	defer func() {
		if stop() {
			dev.Close()
		}
	}()

	logger.Debug("Listening for back button", "device", config.DevicePath, "codes", config.Codes)

	filter := newBackFilter(config)
	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("reading back button device: %w", err)
		}

		if filter.press(*ev, time.Now()) {
			logger.Debug("Back button pressed", "code", ev.CodeName())
			onBack()
		}
	}
}
