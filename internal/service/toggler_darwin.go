//go:build darwin

package service

import (
	"github.com/gh-notifier/gh-notifier/internal/process"
	"github.com/rs/zerolog"
)

func newPlatformToggler(runner process.Runner, opts Options, _ zerolog.Logger) Toggler {
	return NewLaunchctlToggler(runner, opts.LaunchAgentPlist)
}
