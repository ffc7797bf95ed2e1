// Package errors defines the categorized errors produced by a gh-notifier run.
//
// Every failure that can end a poll is an *Error carrying a Kind, so the CLI can
// choose an exit code and an error notification without string matching.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind classifies an error by the stage of the run that produced it.
type Kind int

const (
	// Unknown is the zero Kind, used for errors that are not *Error.
	Unknown Kind = iota
	// MissingCredential means the token environment variable is unset.
	MissingCredential
	// Connection is a transport-level failure (DNS, connect, TLS).
	Connection
	// API is a non-200 response from the notifications endpoint.
	API
	// Decode means a 200 response body was not the expected JSON shape.
	Decode
	// Persistence is a seen-set file read or write failure.
	Persistence
	// NotificationDispatch means the display collaborator failed to render.
	NotificationDispatch
	// Configuration is an invalid or unreadable configuration.
	Configuration
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case MissingCredential:
		return "Missing Credential"
	case Connection:
		return "Connection Error"
	case API:
		return "API Error"
	case Decode:
		return "Decode Error"
	case Persistence:
		return "Persistence Error"
	case NotificationDispatch:
		return "Notification Dispatch Error"
	case Configuration:
		return "Configuration Error"
	default:
		return "Error"
	}
}

// Error is a categorized gh-notifier error.
type Error struct {
	Kind    Kind
	Message string

	// Variable is the environment variable name for MissingCredential.
	Variable string
	// StatusCode and Body are set for API errors.
	StatusCode int
	Body       string

	// Remediation lists steps the user can take, shown by FormatError.
	Remediation []string

	Err error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Message != "" {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind. It lets callers
// match a kind with errors.Is(err, &Error{Kind: API}).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// NewMissingCredential reports that the named environment variable is unset.
func NewMissingCredential(variable string) *Error {
	return &Error{
		Kind:     MissingCredential,
		Message:  fmt.Sprintf("environment variable %s is not set", variable),
		Variable: variable,
		Remediation: []string{
			fmt.Sprintf("export %s=<personal access token with the notifications scope>", variable),
		},
	}
}

// NewConnectionError wraps a transport failure.
func NewConnectionError(err error) *Error {
	return &Error{
		Kind:    Connection,
		Message: "requesting notifications",
		Err:     err,
	}
}

// NewAPIError reports a non-200 response.
func NewAPIError(statusCode int, body string) *Error {
	e := &Error{
		Kind:       API,
		Message:    fmt.Sprintf("notifications API returned status %d: %s", statusCode, body),
		StatusCode: statusCode,
		Body:       body,
	}
	if statusCode == 401 || statusCode == 403 {
		e.Remediation = []string{"check that the token is valid and has the notifications scope"}
	}
	return e
}

// NewDecodeError wraps a JSON decoding failure.
func NewDecodeError(err error) *Error {
	return &Error{
		Kind:    Decode,
		Message: "decoding notifications response",
		Err:     err,
	}
}

// NewPersistenceError wraps a seen-set file failure on path.
func NewPersistenceError(op, path string, err error) *Error {
	return &Error{
		Kind:    Persistence,
		Message: fmt.Sprintf("%s %s", op, path),
		Err:     err,
	}
}

// NewDispatchError wraps a display collaborator failure.
func NewDispatchError(title string, err error) *Error {
	return &Error{
		Kind:    NotificationDispatch,
		Message: fmt.Sprintf("displaying notification %q", title),
		Err:     err,
	}
}

// NewConfigError wraps a configuration failure.
func NewConfigError(message string, err error) *Error {
	return &Error{
		Kind:    Configuration,
		Message: message,
		Err:     err,
	}
}

// KindOf returns the Kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

// As returns the first *Error in err's chain, or nil.
func As(err error) *Error {
	var e *Error
	if stderrors.As(err, &e) {
		return e
	}
	return nil
}

// IsTerminal reports whether err should end the run with an error notification.
// Persistence and dispatch failures are reported but do not undo delivered work.
func IsTerminal(err error) bool {
	switch KindOf(err) {
	case Persistence, NotificationDispatch:
		return false
	default:
		return err != nil
	}
}
