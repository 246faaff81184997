package graphics

import "github.com/huskytech/huskytech2/input"

// Context defines the interface for a window with an attached OpenGL context.
type Context interface {
	input.Source
	MakeCurrent()
	SetSwapInterval(interval int)
	SwapBuffers()
	GetFramebufferSize() (int, int)
	// Shutdown destroys the window. The handle must not be used afterwards.
	Shutdown()
}
