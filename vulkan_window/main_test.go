package main

import (
	"bytes"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vkngwrapper/vulkan-window/lifecycle"
	"github.com/vkngwrapper/vulkan-window/lifecycle/lifecycletest"
)

type testEnv struct {
	rec       *lifecycletest.Recorder
	windowing *lifecycletest.Windowing
	graphics  *lifecycletest.Graphics
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	chosen    []string
}

func newTestEnv() *testEnv {
	rec := &lifecycletest.Recorder{}
	return &testEnv{
		rec:       rec,
		windowing: &lifecycletest.Windowing{Recorder: rec},
		graphics:  &lifecycletest.Graphics{Recorder: rec},
		stdout:    &bytes.Buffer{},
		stderr:    &bytes.Buffer{},
	}
}

func (e *testEnv) environment() environment {
	backend := func(name string) func() lifecycle.Windowing {
		return func() lifecycle.Windowing {
			e.chosen = append(e.chosen, name)
			return e.windowing
		}
	}
	return environment{
		backends: map[string]func() lifecycle.Windowing{
			backendSDL2: backend(backendSDL2),
			backendGLFW: backend(backendGLFW),
		},
		graphics: e.graphics,
		stdout:   e.stdout,
		stderr:   e.stderr,
	}
}

func TestRunSuccessExitsZero(t *testing.T) {
	e := newTestEnv()

	status := run(nil, e.environment())

	assert.Equal(t, 0, status)
	assert.Equal(t, []string{backendSDL2}, e.chosen)
	assert.Equal(t, []string{
		lifecycletest.WindowingInit,
		lifecycletest.WindowCreate,
		lifecycletest.InstanceCreate,
		lifecycletest.InstanceDestroy,
		lifecycletest.WindowDestroy,
		lifecycletest.WindowingTerminate,
	}, e.rec.Lifecycle())
	assert.Empty(t, e.stderr.String())
	assert.Contains(t, e.stdout.String(), "Cleanup complete.")
}

func TestRunWindowingInitFailureExitsOne(t *testing.T) {
	e := newTestEnv()
	e.windowing.InitErr = errors.New("failed to initialize GLFW")

	status := run(nil, e.environment())

	assert.Equal(t, 1, status)
	assert.Contains(t, e.stderr.String(), "Runtime Error: ")
	assert.Contains(t, e.stderr.String(), "failed to initialize GLFW")
	assert.Zero(t, e.rec.Count(lifecycletest.InstanceCreate))
	assert.Zero(t, e.rec.Count(lifecycletest.InstanceDestroy))
}

func TestRunInstanceFailureExitsOne(t *testing.T) {
	e := newTestEnv()
	e.graphics.CreateErr = errors.New("VK_ERROR_INITIALIZATION_FAILED")

	status := run(nil, e.environment())

	assert.Equal(t, 1, status)
	assert.Contains(t, e.stderr.String(), "VK_ERROR_INITIALIZATION_FAILED")
	assert.Equal(t, 1, e.rec.Count(lifecycletest.WindowDestroy))
	assert.Equal(t, 1, e.rec.Count(lifecycletest.WindowingTerminate))
}

func TestRunSelectsGLFW(t *testing.T) {
	e := newTestEnv()

	status := run([]string{"--glfw"}, e.environment())

	assert.Equal(t, 0, status)
	assert.Equal(t, []string{backendGLFW}, e.chosen)
}

func TestRunHelp(t *testing.T) {
	e := newTestEnv()

	status := run([]string{"-h"}, e.environment())

	assert.Equal(t, 0, status)
	assert.Contains(t, e.stdout.String(), "--glfw")
	assert.Empty(t, e.rec.Calls())
}

func TestRunIgnoresUnrecognizedOption(t *testing.T) {
	e := newTestEnv()

	status := run([]string{"--fullscreen"}, e.environment())

	assert.Equal(t, 0, status)
	assert.Contains(t, e.stderr.String(), "ignoring unrecognized option --fullscreen")
	assert.NotContains(t, e.stderr.String(), "Runtime Error")
	assert.Equal(t, 1, e.rec.Count(lifecycletest.InstanceCreate))
	assert.Equal(t, []string{backendSDL2}, e.chosen)
}

func TestProcessCommandLineArgs(t *testing.T) {
	opts, ignored := processCommandLineArgs([]string{"--glfw", "--sdl2"})
	assert.Equal(t, options{backend: backendSDL2}, opts)
	assert.Empty(t, ignored)

	opts, ignored = processCommandLineArgs([]string{"--bogus", "--glfw", "extra"})
	assert.Equal(t, options{backend: backendGLFW}, opts)
	assert.Equal(t, []string{"--bogus", "extra"}, ignored)
}
