//go:build windows

package notify

import (
	"github.com/gh-notifier/gh-notifier/internal/process"
	"github.com/rs/zerolog"
)

func newPlatformSender(runner process.Runner, logger zerolog.Logger) Sender {
	return NewFallbackSender(logger, NewPowerShellSender(runner))
}
