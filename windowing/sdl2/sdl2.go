// Package sdl2 provides SDL2 windowing for the lifecycle package.
package sdl2

import (
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"
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
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return errors.Wrap(err, "failed to initialize SDL")
	}
	return nil
}

func (w *Windowing) Terminate() {
	sdl.Quit()
}

func (w *Windowing) CreateWindow(config lifecycle.WindowConfig) (lifecycle.Window, error) {
	var flags uint32 = sdl.WINDOW_SHOWN | sdl.WINDOW_VULKAN
	if config.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}

	window, err := sdl.CreateWindow(config.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(config.Width), int32(config.Height), flags)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SDL window")
	}

	id, err := window.GetID()
	if err != nil {
		window.Destroy()
		return nil, errors.Wrap(err, "failed to read SDL window id")
	}

	return &Window{window: window, id: id}, nil
}

type Window struct {
	window  *sdl.Window
	id      uint32
	closing bool
}

func (w *Window) RequiredInstanceExtensions() []string {
	return w.window.VulkanGetInstanceExtensions()
}

func (w *Window) ProcAddr() unsafe.Pointer {
	return sdl.VulkanGetVkGetInstanceProcAddr()
}

// PollEvents drains the SDL event queue. A quit event, or a close event for this
// window, latches the close request.
func (w *Window) PollEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.closing = true
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_CLOSE && e.WindowID == w.id {
				w.closing = true
			}
		}
	}
}

func (w *Window) ShouldClose() bool {
	return w.closing
}

func (w *Window) Destroy() {
	if w.window != nil {
		w.window.Destroy()
		w.window = nil
	}
}
