package cli

import (
	"errors"

	"github.com/rshade/pagewidget/internal/widget"
)

// Process exit codes.
const (
	ExitCodeFailure      = 1
	ExitCodeInvalidInput = 2
)

// ExitError carries the process exit code for a failed command.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// inputError marks err as a rejected request.
func inputError(err error) error {
	return &ExitError{Code: ExitCodeInvalidInput, Err: err}
}

// ExitCode maps err to a process exit code: 0 for nil, the ExitError code
// when present, 2 for widget validation errors and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	var validationErr *widget.ValidationError
	if errors.As(err, &validationErr) {
		return ExitCodeInvalidInput
	}
	return ExitCodeFailure
}
