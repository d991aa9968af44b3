// Package lifecycletest provides recording doubles for the lifecycle collaborators.
package lifecycletest

import (
	"sync"
	"unsafe"

	"github.com/vkngwrapper/vulkan-window/lifecycle"
)

const (
	WindowingInit      = "windowing.init"
	WindowingTerminate = "windowing.terminate"
	WindowCreate       = "window.create"
	WindowPoll         = "window.poll"
	WindowDestroy      = "window.destroy"
	InstanceCreate     = "instance.create"
	InstanceDestroy    = "instance.destroy"
)

// Recorder keeps every collaborator call in order.
type Recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *Recorder) record(call string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, call)
}

func (r *Recorder) Calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

// Count returns how many times call was recorded.
func (r *Recorder) Count(call string) int {
	n := 0
	for _, c := range r.Calls() {
		if c == call {
			n++
		}
	}
	return n
}

// Calls without the repeated polls, which makes ordering assertions readable.
func (r *Recorder) Lifecycle() []string {
	var out []string
	for _, c := range r.Calls() {
		if c != WindowPoll {
			out = append(out, c)
		}
	}
	return out
}

type Windowing struct {
	Recorder *Recorder

	InitErr   error
	CreateErr error

	// Window is returned from CreateWindow. A default one is made when nil.
	Window *Window
	// LastConfig is the configuration passed to the most recent CreateWindow.
	LastConfig lifecycle.WindowConfig
}

func (w *Windowing) Init() error {
	w.Recorder.record(WindowingInit)
	return w.InitErr
}

func (w *Windowing) Terminate() {
	w.Recorder.record(WindowingTerminate)
}

func (w *Windowing) CreateWindow(config lifecycle.WindowConfig) (lifecycle.Window, error) {
	w.Recorder.record(WindowCreate)
	w.LastConfig = config
	if w.CreateErr != nil {
		return nil, w.CreateErr
	}
	if w.Window == nil {
		w.Window = &Window{CloseAfterPolls: 1}
	}
	w.Window.recorder = w.Recorder
	return w.Window, nil
}

type Window struct {
	recorder *Recorder

	Extensions []string
	// CloseAfterPolls is the poll count after which ShouldClose reports true.
	CloseAfterPolls int

	polls     int
	destroyed bool
}

func (w *Window) RequiredInstanceExtensions() []string {
	return w.Extensions
}

func (w *Window) ProcAddr() unsafe.Pointer {
	return nil
}

func (w *Window) PollEvents() {
	if w.destroyed {
		panic("PollEvents on destroyed window")
	}
	w.recorder.record(WindowPoll)
	w.polls++
}

func (w *Window) ShouldClose() bool {
	return w.polls >= w.CloseAfterPolls
}

func (w *Window) Destroy() {
	if w.destroyed {
		panic("window destroyed twice")
	}
	w.destroyed = true
	w.recorder.record(WindowDestroy)
}

func (w *Window) Polls() int { return w.polls }

type Graphics struct {
	Recorder *Recorder

	CreateErr error

	// LastInfo is the InstanceInfo passed to the most recent CreateInstance.
	LastInfo lifecycle.InstanceInfo
	Instance *Instance
}

func (g *Graphics) CreateInstance(procAddr unsafe.Pointer, info lifecycle.InstanceInfo) (lifecycle.Instance, error) {
	g.Recorder.record(InstanceCreate)
	g.LastInfo = info
	if g.CreateErr != nil {
		return nil, g.CreateErr
	}
	g.Instance = &Instance{recorder: g.Recorder}
	return g.Instance, nil
}

type Instance struct {
	recorder  *Recorder
	destroyed bool
}

func (i *Instance) Destroy() {
	if i.destroyed {
		panic("instance destroyed twice")
	}
	i.destroyed = true
	i.recorder.record(InstanceDestroy)
}

func (i *Instance) Destroyed() bool { return i.destroyed }
