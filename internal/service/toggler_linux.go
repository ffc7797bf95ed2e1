//go:build linux

package service

import (
	"github.com/gh-notifier/gh-notifier/internal/process"
	"github.com/rs/zerolog"
)

func newPlatformToggler(runner process.Runner, opts Options, logger zerolog.Logger) Toggler {
	return NewSystemdToggler(runner, opts.TimerUnit, logger)
}
