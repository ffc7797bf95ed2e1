//go:build linux

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-systemd/v22/dbus"
	"github.com/gh-notifier/gh-notifier/internal/process"
	"github.com/rs/zerolog"
)

// jobDone is the systemd job result for a successful job.
const jobDone = "done"

// unitManager is the subset of the systemd D-Bus API the toggler uses.
type unitManager interface {
	StartUnitContext(ctx context.Context, name, mode string, ch chan<- string) (int, error)
	StopUnitContext(ctx context.Context, name, mode string, ch chan<- string) (int, error)
	EnableUnitFilesContext(ctx context.Context, files []string, runtime, force bool) (bool, []dbus.EnableUnitFileChange, error)
	DisableUnitFilesContext(ctx context.Context, files []string, runtime bool) ([]dbus.DisableUnitFileChange, error)
	ReloadContext(ctx context.Context) error
	Close()
}

// SystemdToggler controls a systemd user unit over the user manager's D-Bus
// API. When the user bus cannot be reached it falls back to systemctl.
type SystemdToggler struct {
	unit     string
	connect  func(ctx context.Context) (unitManager, error)
	fallback Toggler
	logger   zerolog.Logger
}

// NewSystemdToggler creates a toggler for unit.
func NewSystemdToggler(runner process.Runner, unit string, logger zerolog.Logger) *SystemdToggler {
	return &SystemdToggler{
		unit:     unit,
		connect:  connectUserManager,
		fallback: NewSystemctlToggler(runner, unit),
		logger:   logger,
	}
}

func connectUserManager(ctx context.Context) (unitManager, error) {
	conn, err := dbus.NewUserConnectionContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to systemd user manager: %w", err)
	}
	return conn, nil
}

func (t *SystemdToggler) Name() string { return "systemd" }

// Start starts the unit, enables it and reloads the manager.
func (t *SystemdToggler) Start(ctx context.Context) error {
	m, err := t.connect(ctx)
	if err != nil {
		t.logger.Debug().Err(err).Msg("systemd user bus unavailable, using systemctl")
		return t.fallback.Start(ctx)
	}
	defer m.Close()

	startErr := t.waitJob(ctx, "start", func(ch chan<- string) (int, error) {
		return m.StartUnitContext(ctx, t.unit, "replace", ch)
	})
	var enableErr error
	if _, _, err := m.EnableUnitFilesContext(ctx, []string{t.unit}, false, true); err != nil {
		enableErr = fmt.Errorf("enable %s: %w", t.unit, err)
	}
	return errors.Join(startErr, enableErr, reload(ctx, m))
}

// Stop stops the unit, disables it and reloads the manager.
func (t *SystemdToggler) Stop(ctx context.Context) error {
	m, err := t.connect(ctx)
	if err != nil {
		t.logger.Debug().Err(err).Msg("systemd user bus unavailable, using systemctl")
		return t.fallback.Stop(ctx)
	}
	defer m.Close()

	stopErr := t.waitJob(ctx, "stop", func(ch chan<- string) (int, error) {
		return m.StopUnitContext(ctx, t.unit, "replace", ch)
	})
	var disableErr error
	if _, err := m.DisableUnitFilesContext(ctx, []string{t.unit}, false); err != nil {
		disableErr = fmt.Errorf("disable %s: %w", t.unit, err)
	}
	return errors.Join(stopErr, disableErr, reload(ctx, m))
}

func reload(ctx context.Context, m unitManager) error {
	if err := m.ReloadContext(ctx); err != nil {
		return fmt.Errorf("daemon reload: %w", err)
	}
	return nil
}

// waitJob queues a job and waits for systemd to report its result.
func (t *SystemdToggler) waitJob(ctx context.Context, verb string, queue func(chan<- string) (int, error)) error {
	ch := make(chan string, 1)
	if _, err := queue(ch); err != nil {
		return fmt.Errorf("%s %s: %w", verb, t.unit, err)
	}

	select {
	case result := <-ch:
		if result != jobDone {
			return fmt.Errorf("%s %s: job %s", verb, t.unit, result)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%s %s: %w", verb, t.unit, ctx.Err())
	}
}
