package renderer

import (
	"fmt"
	"log"
	"sync"

	gl "github.com/go-gl/gl/v3.3-core/gl"
)

// Ensures gl.Init() resolves the function pointers only once per process.
var glInitOnce sync.Once

// Loader resolves OpenGL entry points. The window's context must be current.
type Loader struct{}

func (l *Loader) Init() error {
	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}

	// A pending error here means the context is unusable even though the
	// entry points resolved.
	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("OpenGL error while initialising render subsystem: 0x%x", code)
	}

	log.Printf("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	log.Printf("OpenGL renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	return nil
}
