package command

import (
	"errors"
	"fmt"
	"strings"
)

// UnknownCommandError is returned when the user asks for a command name
// that was never registered.
type UnknownCommandError struct {
	// Name is the unrecognized command
	Name string
	// Known lists the registered command names
	Known []string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q (commands: %s)", e.Name, strings.Join(e.Known, ", "))
}

// ExitError carries an explicit exit code from a handler to the process
// outcome. Handlers that return any other non-nil error exit 1.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode maps a dispatch result to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
