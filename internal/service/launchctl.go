package service

import (
	"context"
	"fmt"
	"os"

	"github.com/gh-notifier/gh-notifier/internal/process"
)

// LaunchctlToggler loads and unloads a launchd user agent.
type LaunchctlToggler struct {
	runner process.Runner
	plist  string
}

// NewLaunchctlToggler creates a toggler for the agent defined in plist.
func NewLaunchctlToggler(runner process.Runner, plist string) *LaunchctlToggler {
	return &LaunchctlToggler{runner: runner, plist: plist}
}

func (t *LaunchctlToggler) Name() string { return "launchctl" }

// Start loads the agent. The plist must already be installed.
func (t *LaunchctlToggler) Start(ctx context.Context) error {
	if _, err := os.Stat(t.plist); err != nil {
		return fmt.Errorf("launch agent not installed: %w", err)
	}
	return t.launchctl(ctx, "load")
}

// Stop unloads the agent.
func (t *LaunchctlToggler) Stop(ctx context.Context) error {
	return t.launchctl(ctx, "unload")
}

func (t *LaunchctlToggler) launchctl(ctx context.Context, verb string) error {
	res, err := t.runner.Run(ctx, "launchctl", verb, t.plist)
	if err != nil {
		if res.Stderr != "" {
			return fmt.Errorf("launchctl %s %s: %w: %s", verb, t.plist, err, res.Stderr)
		}
		return fmt.Errorf("launchctl %s %s: %w", verb, t.plist, err)
	}
	return nil
}
