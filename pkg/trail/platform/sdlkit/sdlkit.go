// Package sdlkit runs trail inside an SDL application.
//
// SDL must be driven from the main OS thread. Run starts the application
// on it, OnMain marshals callbacks from other goroutines (timers, the back
// button listener) back onto it, and Timed reports transitions complete
// after a fixed animation time.
package sdlkit

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/trail/pkg/trail/constants"
	"github.com/BrandonKowalski/trail/pkg/trail/internal"
	"github.com/BrandonKowalski/trail/pkg/trail/surface"
	"github.com/BrandonKowalski/trail/pkg/trail/transition"
)

// do runs fn on the SDL main thread and waits for it.
var do = sdl.Do

// Run locks the calling goroutine to the main thread and runs app. Every
// SDL and navigation call must happen inside app or be marshaled with OnMain.
func Run(app func()) {
	sdl.Main(app)
}

// OnMain returns fn wrapped to run on the SDL main thread.
func OnMain(fn func()) func() {
	return func() {
		do(fn)
	}
}

// Timed is a committer for toolkits whose animations run a fixed time. The
// body runs immediately; done runs on the main thread once Duration has
// passed.
type Timed struct {
	Duration time.Duration // Defaults to 300ms
}

func (t Timed) Commit(done, body func()) {
	done = transition.Once(done)
	body()

	d := t.Duration
	if d <= 0 {
		d = constants.DefaultAnimationDuration
	}
	time.AfterFunc(d, OnMain(done))
}

// Window is an SDL window holding the root surface of a navigation
// hierarchy. The window title follows the root's name.
type Window struct {
	Window *sdl.Window
	root   surface.Surface
}

// NewWindow initializes SDL video and opens a window.
func NewWindow(title string, width, height int32) (*Window, error) {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, fmt.Errorf("initializing SDL video: %w", err)
	}

	w, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, width, height, sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("creating window: %w", err)
	}

	return &Window{Window: w}, nil
}

func (w *Window) Root() surface.Surface {
	return w.root
}

func (w *Window) SetRoot(root surface.Surface) {
	w.root = root
	if s, ok := root.(fmt.Stringer); ok && w.Window != nil {
		w.Window.SetTitle(s.String())
	}
	internal.GetInternalLogger().Debug("Window root replaced", "root", fmt.Sprint(root))
}

// Close destroys the window and shuts SDL down.
func (w *Window) Close() {
	if w.Window != nil {
		if err := w.Window.Destroy(); err != nil {
			internal.GetInternalLogger().Error("Failed to destroy window", "error", err)
		}
		w.Window = nil
	}
	sdl.Quit()
}
