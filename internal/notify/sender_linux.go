//go:build linux

package notify

import (
	"github.com/gh-notifier/gh-notifier/internal/process"
	"github.com/rs/zerolog"
)

// newPlatformSender prefers the session bus and falls back to notify-send.
func newPlatformSender(runner process.Runner, logger zerolog.Logger) Sender {
	return NewFallbackSender(logger,
		NewDBusSender(),
		NewNotifySendSender(runner),
	)
}
