package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gh-notifier/gh-notifier/internal/process"
)

// SystemctlToggler controls a systemd user unit with the systemctl binary.
type SystemctlToggler struct {
	runner process.Runner
	unit   string
}

// NewSystemctlToggler creates a toggler for unit.
func NewSystemctlToggler(runner process.Runner, unit string) *SystemctlToggler {
	return &SystemctlToggler{runner: runner, unit: unit}
}

func (t *SystemctlToggler) Name() string { return "systemctl" }

// Start runs "systemctl --user start" then "systemctl --user enable".
// Both are attempted even if the first fails.
func (t *SystemctlToggler) Start(ctx context.Context) error {
	return errors.Join(t.systemctl(ctx, "start"), t.systemctl(ctx, "enable"))
}

// Stop runs "systemctl --user stop" then "systemctl --user disable".
func (t *SystemctlToggler) Stop(ctx context.Context) error {
	return errors.Join(t.systemctl(ctx, "stop"), t.systemctl(ctx, "disable"))
}

func (t *SystemctlToggler) systemctl(ctx context.Context, verb string) error {
	res, err := t.runner.Run(ctx, "systemctl", "--user", verb, t.unit)
	if err != nil {
		if res.Stderr != "" {
			return fmt.Errorf("systemctl --user %s %s: %w: %s", verb, t.unit, err, res.Stderr)
		}
		return fmt.Errorf("systemctl --user %s %s: %w", verb, t.unit, err)
	}
	return nil
}
