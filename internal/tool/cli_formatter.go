package tool

import (
	"context"
	"io"
	"os/exec"
	"slices"
)

// CLIFormatter is the concrete implementation of Formatter that shells out to
// an external command such as clang-format.
type CLIFormatter struct {
	command string
	args    []string
	stdout  io.Writer
	stderr  io.Writer
}

// NewCLIFormatter creates a CLIFormatter. The child process inherits stdout and stderr.
func NewCLIFormatter(command string, args []string, stdout, stderr io.Writer) *CLIFormatter {
	return &CLIFormatter{
		command: command,
		args:    slices.Clone(args),
		stdout:  stdout,
		stderr:  stderr,
	}
}

// Command returns the executable name or path.
func (f *CLIFormatter) Command() string {
	return f.command
}

// Argv returns the arguments passed to the command for path.
func (f *CLIFormatter) Argv(path string) []string {
	return append(slices.Clone(f.args), path)
}

// Format runs the command on path and blocks until it exits.
func (f *CLIFormatter) Format(ctx context.Context, path string) error {
	//nolint:gosec // the command and its arguments come from the user's own configuration
	cmd := exec.CommandContext(ctx, f.command, f.Argv(path)...)
	cmd.Stdout = f.stdout
	cmd.Stderr = f.stderr

	if err := cmd.Run(); err != nil {
		return &InvocationError{Command: f.command, Path: path, Wrapped: err}
	}
	return nil
}
