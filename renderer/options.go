package renderer

import "io"

type Options struct {
	// Path to the renderer executable.
	Binary string

	// Arguments placed in front of every frame's arguments.
	ExtraArgs []string

	// Working directory for the renderer; empty means the current one.
	WorkDir string

	// Renderer output sinks. Nil discards the output.
	Stdout io.Writer
	Stderr io.Writer
}
