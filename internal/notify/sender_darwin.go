//go:build darwin

package notify

import (
	"github.com/gh-notifier/gh-notifier/internal/process"
	"github.com/rs/zerolog"
)

// newPlatformSender prefers terminal-notifier, which supports click URLs,
// and falls back to osascript.
func newPlatformSender(runner process.Runner, logger zerolog.Logger) Sender {
	return NewFallbackSender(logger,
		NewTerminalNotifierSender(runner),
		NewOsascriptSender(runner),
	)
}
