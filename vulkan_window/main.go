package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/vkngwrapper/vulkan-window/graphics/vkng"
	"github.com/vkngwrapper/vulkan-window/lifecycle"
	"github.com/vkngwrapper/vulkan-window/windowing/glfw"
	"github.com/vkngwrapper/vulkan-window/windowing/sdl2"
)

type environment struct {
	backends map[string]func() lifecycle.Windowing
	graphics lifecycle.Graphics
	stdout   io.Writer
	stderr   io.Writer
}

func defaultEnvironment() environment {
	return environment{
		backends: map[string]func() lifecycle.Windowing{
			backendSDL2: func() lifecycle.Windowing { return sdl2.New() },
			backendGLFW: func() lifecycle.Windowing { return glfw.New() },
		},
		graphics: vkng.New(),
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// run returns the process exit status.
func run(args []string, env environment) int {
	opts, ignored := processCommandLineArgs(args)
	for _, arg := range ignored {
		fmt.Fprintf(env.stderr, "ignoring unrecognized option %s (use --help or -h for option list)\n", arg)
	}
	if opts.help {
		printUsage(env.stdout)
		return 0
	}

	newWindowing, ok := env.backends[opts.backend]
	if !ok {
		fmt.Fprintf(env.stderr, "Runtime Error: windowing backend %s not available\n", opts.backend)
		return 1
	}

	app := lifecycle.New(newWindowing(), env.graphics, lifecycle.DefaultConfig(), log.New(env.stdout, "", log.LstdFlags))
	if err := app.Run(); err != nil {
		fmt.Fprintf(env.stderr, "Runtime Error: %v\n", err)
		return 1
	}

	return 0
}

func main() {
	runtime.LockOSThread()
	os.Exit(run(os.Args[1:], defaultEnvironment()))
}
