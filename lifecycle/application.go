// Package lifecycle runs the window and Vulkan instance bootstrap: create a window,
// create an instance for it, idle until the window asks to close, then release both.
package lifecycle

import (
	"fmt"
	"log"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/loov/hrtime"
)

type Application struct {
	id     uuid.UUID
	config Config
	logger *log.Logger

	windowing Windowing
	graphics  Graphics

	state     State
	window    Window
	instance  Instance
	resources releaseStack
	polls     int
}

// New prepares an Application. Nothing is acquired until Run is called.
func New(windowing Windowing, graphics Graphics, config Config, logger *log.Logger) *Application {
	if logger == nil {
		logger = log.Default()
	}

	id := uuid.New()
	prefix := fmt.Sprintf("[%s] %s", id.String()[:8], logger.Prefix())

	return &Application{
		id:        id,
		config:    config,
		logger:    log.New(logger.Writer(), prefix, logger.Flags()),
		windowing: windowing,
		graphics:  graphics,
		state:     Unstarted,
	}
}

func (app *Application) ID() uuid.UUID      { return app.id }
func (app *Application) State() State       { return app.state }
func (app *Application) Window() Window     { return app.window }
func (app *Application) Instance() Instance { return app.instance }

// Polls is the number of event-poll cycles the main loop has run.
func (app *Application) Polls() int { return app.polls }

// Run creates the window and instance, blocks in the event loop until the window
// requests close, then releases everything it acquired in reverse order. Whatever was
// acquired is released even when a phase fails. An Application runs at most once.
func (app *Application) Run() (err error) {
	if app.state != Unstarted {
		return errors.Wrapf(ErrAlreadyRun, "run %s is %s", app.id, app.state)
	}

	defer func() {
		app.cleanup()
		if err != nil {
			_ = app.transition(Failed)
			return
		}
		err = app.transition(ShutDown)
	}()

	err = app.initWindow()
	if err != nil {
		return err
	}

	err = app.initVulkan()
	if err != nil {
		return err
	}

	return app.mainLoop()
}

func (app *Application) initWindow() error {
	if err := app.windowing.Init(); err != nil {
		return fail(err, ErrWindowingInit, "initWindow")
	}
	app.resources.push("windowing subsystem", app.windowing.Terminate)

	window, err := app.windowing.CreateWindow(app.config.Window)
	if err != nil {
		return fail(err, ErrWindowCreate, "initWindow")
	}
	if window == nil {
		return fail(nil, ErrWindowCreate, "initWindow")
	}
	app.window = window
	app.resources.push("window", func() {
		app.window.Destroy()
		app.window = nil
	})

	return app.transition(WindowReady)
}

func (app *Application) initVulkan() error {
	return app.createInstance()
}

func (app *Application) createInstance() error {
	required := app.window.RequiredInstanceExtensions()
	app.logger.Printf("Required window extensions (%d):", len(required))
	for _, ext := range required {
		app.logger.Printf("\t%s", ext)
	}

	info := app.config.Instance
	info.ExtensionNames = append(append([]string(nil), info.ExtensionNames...), required...)
	info.LayerNames = append([]string(nil), info.LayerNames...)

	start := hrtime.Now()
	instance, err := app.graphics.CreateInstance(app.window.ProcAddr(), info)
	if err != nil {
		return fail(err, ErrInstanceCreate, "createInstance")
	}
	if instance == nil {
		return fail(nil, ErrInstanceCreate, "createInstance")
	}
	app.instance = instance
	app.resources.push("vulkan instance", func() {
		app.instance.Destroy()
		app.instance = nil
	})
	app.logger.Printf("Vulkan instance successfully created in %s.", hrtime.Since(start))

	return app.transition(InstanceReady)
}

func (app *Application) mainLoop() error {
	err := app.transition(Running)
	if err != nil {
		return err
	}

	for {
		app.window.PollEvents()
		app.polls++
		if app.window.ShouldClose() {
			return nil
		}
	}
}

func (app *Application) cleanup() {
	if app.resources.len() == 0 {
		return
	}
	app.resources.unwind(app.logger)
	app.logger.Println("Cleanup complete.")
}
