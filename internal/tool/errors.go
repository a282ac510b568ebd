package tool

import (
	"errors"
	"fmt"
	"os/exec"
)

// InvocationError reports a formatter run that could not start or exited unsuccessfully.
type InvocationError struct {
	Wrapped error
	Command string
	Path    string
}

func (e *InvocationError) Error() string {
	return fmt.Sprintf("%s failed on %s: %v", e.Command, e.Path, e.Wrapped)
}

func (e *InvocationError) Unwrap() error {
	return e.Wrapped
}

// ExitCode returns the exit status of the formatter, or -1 if it never ran to completion.
func (e *InvocationError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Wrapped, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
