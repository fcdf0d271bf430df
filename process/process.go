// Package process runs external programs with an explicit argument list.
// Nothing here goes through a shell; every failure, including a non-zero exit
// status, is reported as an error.
package process

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

var (
	ErrNoBinary = errors.New("process: no binary defined")
	ErrLaunch   = errors.New("process: could not launch")
)

// ExitError reports a program that ran but exited with a non-zero status.
type ExitError struct {
	Binary string
	Args   []string
	Code   int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("process: %s exited with status %d", e.Binary, e.Code)
}

// Command line of the failed invocation, quoted for display.
func (e *ExitError) CommandLine() string {
	return CommandLine(e.Binary, e.Args)
}

// Command describes a single program invocation.
type Command struct {
	Binary string
	Args   []string

	// Working directory; empty means the current one.
	Dir string

	// Extra environment entries appended to the inherited environment.
	Env []string

	// Sinks for the program output. Nil discards it.
	Stdout io.Writer
	Stderr io.Writer
}

// Runner executes a command. Run is the only production implementation.
type Runner func(context.Context, Command) error

// Run starts the program and blocks until it exits.
func Run(ctx context.Context, c Command) error {
	if c.Binary == "" {
		return ErrNoBinary
	}

	cmd := exec.CommandContext(ctx, c.Binary, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) != 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("%w %s: %v", ErrLaunch, c.Binary, err)
	}

	err := cmd.Wait()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Binary: c.Binary, Args: c.Args, Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("process: waiting for %s: %w", c.Binary, err)
}

// CommandLine renders a command for logging. Arguments containing
// whitespace or quotes are single-quoted.
func CommandLine(binary string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	for _, v := range append([]string{binary}, args...) {
		if v == "" || strings.ContainsAny(v, " \t\n'\"\\$;&|<>*?") {
			v = "'" + strings.ReplaceAll(v, "'", `'\''`) + "'"
		}
		parts = append(parts, v)
	}
	return strings.Join(parts, " ")
}
