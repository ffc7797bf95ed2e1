// Package service toggles the OS timer that runs gh-notifier periodically.
//
// gh-notifier has no scheduler of its own. "gh-notifier start" asks the OS to
// begin invoking it on a schedule and "gh-notifier stop" undoes that. Authoring
// the timer unit or launch agent is left to the installer.
package service

import (
	"context"
	"errors"
	"runtime"

	"github.com/gh-notifier/gh-notifier/internal/process"
	"github.com/rs/zerolog"
)

// Action is a service control command given as the first argument.
type Action string

const (
	// ActionStart starts and enables the timer
	ActionStart Action = "start"
	// ActionStop stops and disables the timer
	ActionStop Action = "stop"
)

// ErrUnsupported is returned by togglers on platforms without a timer backend.
var ErrUnsupported = errors.New("service control is not supported on " + runtime.GOOS)

// Toggler starts and stops the periodic invocation.
type Toggler interface {
	// Start begins periodic invocation and makes it persist across logins.
	Start(ctx context.Context) error

	// Stop ends periodic invocation and removes it from login startup.
	Stop(ctx context.Context) error

	// Name identifies the backend in logs and diagnostics.
	Name() string
}

// Options selects what the platform toggler controls.
type Options struct {
	// TimerUnit is the systemd user unit (linux)
	TimerUnit string

	// LaunchAgentPlist is the launchd agent definition (darwin)
	LaunchAgentPlist string
}

// NewToggler returns the toggler for the current operating system.
func NewToggler(runner process.Runner, opts Options, logger zerolog.Logger) Toggler {
	return newPlatformToggler(runner, opts, logger)
}

// Dispatcher recognizes service control arguments.
type Dispatcher struct {
	toggler Toggler
	logger  zerolog.Logger
}

// NewDispatcher creates a dispatcher backed by toggler.
func NewDispatcher(toggler Toggler, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{toggler: toggler, logger: logger}
}

// ParseAction reports whether argv carries a service control command at
// position 1. argv[0] is the program name.
func ParseAction(argv []string) (Action, bool) {
	if len(argv) < 2 {
		return "", false
	}
	switch a := Action(argv[1]); a {
	case ActionStart, ActionStop:
		return a, true
	default:
		return "", false
	}
}

// Dispatch runs the service control command in argv, if any, and reports
// whether the arguments were consumed. Toggler failures are logged and never
// returned: a recognized command is consumed even when it fails.
func (d *Dispatcher) Dispatch(ctx context.Context, argv []string) bool {
	action, ok := ParseAction(argv)
	if !ok {
		return false
	}
	_ = d.run(ctx, action)
	return true
}

// run performs action and logs the outcome.
func (d *Dispatcher) run(ctx context.Context, action Action) error {
	log := d.logger.With().Str("action", string(action)).Str("backend", d.toggler.Name()).Logger()

	var err error
	switch action {
	case ActionStart:
		err = d.toggler.Start(ctx)
	case ActionStop:
		err = d.toggler.Stop(ctx)
	default:
		err = errors.New("unknown service action " + string(action))
	}

	if err != nil {
		log.Error().Err(err).Msg("service control failed")
		return err
	}
	log.Info().Msg("service control succeeded")
	return nil
}
