// Package glfw provides GLFW windowing for the lifecycle package.
package glfw

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/vkngwrapper/vulkan-window/lifecycle"
)

var (
	_ lifecycle.Windowing = (*Windowing)(nil)
	_ lifecycle.Window    = (*Window)(nil)
)

type Windowing struct{}

func New() *Windowing {
	return &Windowing{}
}

func (w *Windowing) Init() error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize GLFW")
	}
	return nil
}

func (w *Windowing) Terminate() {
	glfw.Terminate()
}

func (w *Windowing) CreateWindow(config lifecycle.WindowConfig) (lifecycle.Window, error) {
	if !glfw.VulkanSupported() {
		return nil, errors.New("failed to create GLFW window: vulkan loader not found")
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	if config.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	window, err := glfw.CreateWindow(config.Width, config.Height, config.Title, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create GLFW window")
	}

	return &Window{window: window}, nil
}

type Window struct {
	window *glfw.Window
}

func (w *Window) RequiredInstanceExtensions() []string {
	return w.window.GetRequiredInstanceExtensions()
}

func (w *Window) ProcAddr() unsafe.Pointer {
	return glfw.GetVulkanGetInstanceProcAddress()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *Window) Destroy() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
}
