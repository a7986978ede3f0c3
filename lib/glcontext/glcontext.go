// Package glcontext creates the process-wide OpenGL context the
// generator introspects shaders with. GLFW has no portable headless mode,
// so the context belongs to a hidden 1x1 window.
//
// Create and Close must be called from the main thread, which must be
// locked with runtime.LockOSThread.
package glcontext

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Cfg struct {
	Major int
	Minor int
	Debug bool
}

type Context struct {
	window *glfw.Window
	log    *slog.Logger

	Vendor   string
	Renderer string
	Version  string
}

func Create(cfg Cfg, log *slog.Logger) (*Context, error) {
	if log == nil {
		log = slog.Default()
	}
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.Visible, glfw.False)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.Major)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.Minor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if cfg.Debug {
		glfw.WindowHint(glfw.OpenGLDebugContext, glfw.True)
	}

	window, err := glfw.CreateWindow(1, 1, "glslbind", nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("could not create OpenGL %d.%d context: %w", cfg.Major, cfg.Minor, err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		window.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("could not initialise OpenGL context: %w", err)
	}

	c := &Context{
		window:   window,
		log:      log,
		Vendor:   gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer: gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:  gl.GoStr(gl.GetString(gl.VERSION)),
	}
	log.Info(fmt.Sprintf("OpenGL version %s / %s / %s", c.Vendor, c.Renderer, c.Version))
	return c, nil
}

// Close releases the context. It is safe to call more than once.
func (c *Context) Close() {
	if c.window == nil {
		return
	}
	glfw.DetachCurrentContext()
	c.window.Destroy()
	c.window = nil
	glfw.Terminate()
}
