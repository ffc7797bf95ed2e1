//go:build !darwin && !linux && !windows

package notify

import (
	"github.com/gh-notifier/gh-notifier/internal/process"
	"github.com/rs/zerolog"
)

func newPlatformSender(_ process.Runner, _ zerolog.Logger) Sender {
	return noopSender{}
}
