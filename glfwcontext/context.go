package glfwcontext

import (
	"fmt"
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/huskytech/huskytech2/graphics"
	"github.com/huskytech/huskytech2/input"
	options "github.com/huskytech/huskytech2/options"
)

var glfwKeys = map[input.Key]glfw.Key{
	input.KeyEscape: glfw.KeyEscape,
}

// Context owns a single GLFW window and its OpenGL context.
type Context struct {
	window *glfw.Window
}

var _ graphics.Context = (*Context)(nil)

// New creates a window with an OpenGL 3.3 core, forward-compatible context.
// InitGraphics must have succeeded first.
func New(opts *options.AppOptions) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, options.ContextVersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, options.ContextVersionMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.DoubleBuffer, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.Samples, 0)

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, err
	}

	// Key presses stay observable until polled, so a tap between frames is not lost.
	win.SetInputMode(glfw.StickyKeysMode, glfw.True)

	return &Context{window: win}, nil
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

func (c *Context) SetSwapInterval(interval int) {
	glfw.SwapInterval(interval)
}

func (c *Context) PollEvents() {
	glfw.PollEvents()
}

func (c *Context) KeyPressed(key input.Key) bool {
	k, ok := glfwKeys[key]
	if !ok {
		return false
	}
	return c.window.GetKey(k) == glfw.Press
}

func (c *Context) CloseRequested() bool {
	return c.window.ShouldClose()
}

func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

// Shutdown destroys the window. Calling it again is a no-op.
func (c *Context) Shutdown() {
	if c.window == nil {
		return
	}
	c.window.Destroy()
	c.window = nil
}

// Platform exposes the process-wide GLFW lifecycle to the application.
type Platform struct {
	Options *options.AppOptions
}

func (p *Platform) Init() error {
	return InitGraphics()
}

func (p *Platform) CreateWindow() (graphics.Context, error) {
	ctx, err := New(p.Options)
	if err != nil {
		return nil, fmt.Errorf("glfw: %w", err)
	}
	return ctx, nil
}

func (p *Platform) Terminate() {
	TerminateGraphics()
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
