// Package errors defines the error types commands use to carry an exit code
// to the process boundary.
package errors

import "fmt"

// Process exit codes.
const (
	ExitOK           = 0
	ExitGeneric      = 1
	ExitInvalidInput = 2
	ExitNotFound     = 3
	ExitUnavailable  = 4
)

// CommandError represents a failed command invocation, storing the exit code
// the process should terminate with.
type CommandError struct {
	ExitCode int
	Err      error
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return e.Err.Error()
}

// Unwrap exposes the underlying error for errors.Is/As.
func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewCommandError creates a new CommandError instance.
func NewCommandError(err error, code int) *CommandError {
	return &CommandError{ExitCode: code, Err: err}
}

// NewCommandErrorf creates a CommandError from a format string.
func NewCommandErrorf(code int, format string, args ...interface{}) *CommandError {
	return &CommandError{ExitCode: code, Err: fmt.Errorf(format, args...)}
}
