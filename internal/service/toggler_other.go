//go:build !linux && !darwin

package service

import (
	"context"

	"github.com/gh-notifier/gh-notifier/internal/process"
	"github.com/rs/zerolog"
)

type unsupportedToggler struct{}

func newPlatformToggler(process.Runner, Options, zerolog.Logger) Toggler {
	return unsupportedToggler{}
}

func (unsupportedToggler) Start(context.Context) error { return ErrUnsupported }
func (unsupportedToggler) Stop(context.Context) error  { return ErrUnsupported }
func (unsupportedToggler) Name() string                { return "unsupported" }
