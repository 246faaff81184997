// Package app sequences the application lifecycle: platform start-up, window
// creation, GL loading, the frame loop and teardown.
//
// Exit is cooperative. The exit condition is checked once at the top of every
// iteration, so a slow render hook delays shutdown by at most one frame.
package app

import (
	"log"

	"github.com/huskytech/huskytech2/graphics"
	"github.com/huskytech/huskytech2/input"
)

// Platform owns the process-wide windowing subsystem.
type Platform interface {
	Init() error
	CreateWindow() (graphics.Context, error)
	// Terminate releases the subsystem. Called at most once, after the window is gone.
	Terminate()
}

// Loader resolves graphics API entry points for the current context.
type Loader interface {
	Init() error
}

// Renderer is invoked once per running frame.
type Renderer interface {
	Draw(ctx graphics.Context)
}

type Option func(*App)

// WithSwapInterval sets the buffer swap interval applied after the context is made current.
func WithSwapInterval(interval int) Option {
	return func(a *App) {
		a.swapInterval = interval
	}
}

// WithPoller replaces the default Escape-or-close exit poller.
func WithPoller(p *input.Poller) Option {
	return func(a *App) {
		a.poller = p
	}
}

// App owns the window handle and the alive flag for one run.
type App struct {
	platform     Platform
	loader       Loader
	renderer     Renderer
	poller       *input.Poller
	swapInterval int

	window     graphics.Context
	platformUp bool
	alive      bool
	state      State
	frames     int
	ran        bool
}

func New(platform Platform, loader Loader, renderer Renderer, opts ...Option) *App {
	a := &App{
		platform:     platform,
		loader:       loader,
		renderer:     renderer,
		poller:       input.NewPoller(),
		swapInterval: 1,
		state:        Running,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// State returns the current lifecycle state.
func (a *App) State() State { return a.state }

// Frames returns how many times the render hook has run.
func (a *App) Frames() int { return a.frames }

// Run initialises every subsystem, runs the frame loop until exit is
// requested and tears everything down. Each acquired resource is released
// exactly once on every path, including start-up failures.
func (a *App) Run() error {
	if a.ran {
		return ErrAlreadyRun
	}
	a.ran = true

	log.Println("initialising huskyTech2")

	if err := a.platform.Init(); err != nil {
		a.state = Terminated
		return &InitializationError{Err: err}
	}
	a.platformUp = true

	win, err := a.platform.CreateWindow()
	if err != nil {
		a.teardown()
		return &WindowCreationError{Err: err}
	}
	a.window = win

	win.MakeCurrent()
	win.SetSwapInterval(a.swapInterval)

	if err := a.loader.Init(); err != nil {
		a.teardown()
		return &LoaderError{Err: err}
	}
	log.Println("initialised renderer")

	a.alive = true
	for a.alive {
		a.step()
	}

	log.Printf("exiting after %d frames", a.frames)
	return nil
}

func (a *App) step() {
	if a.poller.PollExit(a.window) {
		// No transition leads back to Running.
		a.alive = false
		a.state = Terminating
		a.teardown()
		return
	}

	a.renderer.Draw(a.window)
	a.frames++
	a.window.SwapBuffers()
}

func (a *App) teardown() {
	if a.window != nil {
		a.window.Shutdown()
		a.window = nil
	}
	if a.platformUp {
		a.platform.Terminate()
		a.platformUp = false
	}
	a.state = Terminated
}
