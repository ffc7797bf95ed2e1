package notify

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/gh-notifier/gh-notifier/internal/process"
	"github.com/rs/zerolog"
)

// ErrNoBackend is returned when no notification backend is available on this host.
var ErrNoBackend = errors.New("no notification backend available")

// Sender displays notifications.
type Sender interface {
	// Send displays n. It returns once the backend has accepted the notification.
	Send(ctx context.Context, n Notification) error

	// Available reports whether the backend can be used on this host.
	Available() bool

	// Name identifies the backend in logs and diagnostics.
	Name() string
}

// NewSender creates the sender for the current operating system.
// External tools are run with runner.
func NewSender(runner process.Runner, logger zerolog.Logger) Sender {
	return newPlatformSender(runner, logger)
}

// Platform returns the current operating system name
func Platform() string {
	return runtime.GOOS
}

// noopSender is a sender that does nothing (for unsupported platforms)
type noopSender struct{}

func (noopSender) Send(context.Context, Notification) error { return nil }
func (noopSender) Available() bool                          { return false }
func (noopSender) Name() string                             { return "none" }

// FallbackSender tries each available sender in order until one succeeds.
type FallbackSender struct {
	senders []Sender
	logger  zerolog.Logger
}

// NewFallbackSender creates a sender that prefers earlier senders.
func NewFallbackSender(logger zerolog.Logger, senders ...Sender) *FallbackSender {
	return &FallbackSender{senders: senders, logger: logger}
}

// Send delivers n with the first sender that succeeds. It returns ErrNoBackend
// when none is available, or the joined errors of every attempt.
func (f *FallbackSender) Send(ctx context.Context, n Notification) error {
	var errs []error
	for _, s := range f.senders {
		if !s.Available() {
			continue
		}
		err := s.Send(ctx, n)
		if err == nil {
			return nil
		}
		f.logger.Debug().Err(err).Str("backend", s.Name()).Msg("notification backend failed")
		errs = append(errs, fmt.Errorf("%s: %w", s.Name(), err))
		if ctx.Err() != nil {
			break
		}
	}
	if len(errs) == 0 {
		return ErrNoBackend
	}
	return errors.Join(errs...)
}

// Available reports whether any wrapped sender is available.
func (f *FallbackSender) Available() bool {
	for _, s := range f.senders {
		if s.Available() {
			return true
		}
	}
	return false
}

// Name returns the name of the first available sender.
func (f *FallbackSender) Name() string {
	for _, s := range f.senders {
		if s.Available() {
			return s.Name()
		}
	}
	return "none"
}

// commandError adds the tool's stderr to a failed run unless err already
// carries it.
func commandError(tool string, res process.Result, err error) error {
	var exitErr *process.ExitError
	if res.Stderr != "" && !errors.As(err, &exitErr) {
		return fmt.Errorf("%s: %w: %s", tool, err, res.Stderr)
	}
	return fmt.Errorf("%s: %w", tool, err)
}
