package cli

import (
	"errors"
	"fmt"

	ghnerrors "github.com/gh-notifier/gh-notifier/internal/errors"
)

// Exit codes for the gh-notifier CLI
const (
	// ExitSuccess indicates successful command execution
	ExitSuccess = 0

	// ExitFailure covers API, connection, decode and unexpected errors
	ExitFailure = 1

	// ExitMissingCredential indicates GH_NOTIFIER_TOKEN is not set
	ExitMissingCredential = 2

	// ExitConfiguration indicates invalid configuration
	ExitConfiguration = 3

	// ExitPersistence indicates the seen-set could not be written
	ExitPersistence = 4
)

// exitError carries an exit code for an error that was already reported.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// NewExitError creates an error that exits with code. err may be nil.
func NewExitError(code int, err error) error {
	return &exitError{code: code, err: err}
}

// ExitCode returns the process exit code for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var e *exitError
	if errors.As(err, &e) {
		return e.code
	}
	switch ghnerrors.KindOf(err) {
	case ghnerrors.MissingCredential:
		return ExitMissingCredential
	case ghnerrors.Configuration:
		return ExitConfiguration
	case ghnerrors.Persistence:
		return ExitPersistence
	default:
		return ExitFailure
	}
}
