package lifecycle

import "unsafe"

// Windowing is the process-wide windowing subsystem. Init and Terminate bracket every
// other call.
type Windowing interface {
	Init() error
	Terminate()
	CreateWindow(config WindowConfig) (Window, error)
}

type Window interface {
	// RequiredInstanceExtensions lists the instance extensions the graphics API needs to
	// present into this kind of window.
	RequiredInstanceExtensions() []string
	// ProcAddr returns the windowing library's vkGetInstanceProcAddr, or nil to let the
	// graphics layer load the system Vulkan library itself.
	ProcAddr() unsafe.Pointer
	PollEvents()
	ShouldClose() bool
	Destroy()
}

type Graphics interface {
	CreateInstance(procAddr unsafe.Pointer, info InstanceInfo) (Instance, error)
}

type Instance interface {
	Destroy()
}
