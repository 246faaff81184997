package renderer

import (
	"github.com/huskytech/huskytech2/graphics"
)

// Renderer is the per-frame render hook.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Draw renders one frame into ctx. It performs no work yet. It must not
// destroy ctx or otherwise change the window's lifetime.
func (r *Renderer) Draw(ctx graphics.Context) {}
