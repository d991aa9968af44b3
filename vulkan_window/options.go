package main

import (
	"fmt"
	"io"
)

const (
	backendSDL2 = "sdl2"
	backendGLFW = "glfw"
)

type options struct {
	backend string
	help    bool
}

// processCommandLineArgs returns the recognized options and the arguments it ignored.
func processCommandLineArgs(args []string) (options, []string) {
	opts := options{backend: backendSDL2}
	var ignored []string

	for _, arg := range args {
		switch arg {
		case "--sdl2":
			opts.backend = backendSDL2
		case "--glfw":
			opts.backend = backendGLFW
		case "--help", "-h":
			opts.help = true
		default:
			ignored = append(ignored, arg)
		}
	}

	return opts, ignored
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "\nOptions")
	fmt.Fprintln(w, "\t--sdl2")
	fmt.Fprintln(w, "\t\tOpen the window with SDL2 (default)")
	fmt.Fprintln(w, "\t--glfw")
	fmt.Fprintln(w, "\t\tOpen the window with GLFW")
}
