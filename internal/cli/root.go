// Package cli provides the Cobra commands of gh-notifier.
//
// Running gh-notifier with no arguments polls GitHub once. A timer installed by
// the user runs it periodically; "start" and "stop" toggle that timer.
package cli

import (
	"context"
	"errors"

	"github.com/gh-notifier/gh-notifier/internal/config"
	ghnerrors "github.com/gh-notifier/gh-notifier/internal/errors"
	"github.com/gh-notifier/gh-notifier/internal/logging"
	"github.com/gh-notifier/gh-notifier/internal/notify"
	"github.com/gh-notifier/gh-notifier/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	// skipConfig marks commands that run without loading configuration.
	skipConfig = "skip-config"
	// serviceControl marks the start and stop commands, which fall back to
	// default configuration when loading fails.
	serviceControl = "service-control"
)

// app is the state shared by all commands of one invocation.
type app struct {
	deps       *Deps
	configPath string
	debug      bool

	cfg    *config.Configuration
	logger zerolog.Logger
}

// NewRootCmd builds the command tree with deps.
func NewRootCmd(deps *Deps) *cobra.Command {
	a := &app{deps: deps, logger: logging.Nop()}

	root := &cobra.Command{
		Use:   "gh-notifier",
		Short: "Desktop notifications for GitHub",
		Long: `gh-notifier polls your GitHub notifications and shows a desktop
notification for each one it has not announced before.

The API token is read from GH_NOTIFIER_TOKEN. Run it periodically with the
systemd user timer (linux) or launch agent (macOS) and toggle that with
"gh-notifier start" and "gh-notifier stop".`,
		Example: `  # Poll once
  gh-notifier

  # Start and enable the periodic timer
  gh-notifier start

  # Stop and disable it
  gh-notifier stop

  # Check the installation
  gh-notifier doctor`,
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[skipConfig] == "true" {
				return nil
			}
			err := a.setup()
			if err != nil && controlsService(cmd, args) {
				a.useDefaults(err)
				return nil
			}
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			argv := append([]string{cmd.Name()}, args...)
			if a.dispatcher().Dispatch(cmd.Context(), argv) {
				return nil
			}
			if len(args) > 0 {
				a.logger.Debug().Strs("args", args).Msg("ignoring unrecognized arguments")
			}
			return a.poll(cmd.Context())
		},
	}

	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(deps.Stdout)
	root.SetErr(deps.Stderr)

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to config file (default ~/.config/gh-notifier/config.json)")
	root.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "Enable debug logging")

	root.AddCommand(
		newServiceCmd(a, service.ActionStart, "Start and enable the periodic timer"),
		newServiceCmd(a, service.ActionStop, "Stop and disable the periodic timer"),
		newVersionCmd(),
		newDoctorCmd(a),
		newConfigCmd(a),
	)

	return root
}

// Execute runs gh-notifier with the process arguments. Errors not already
// reported to the user are printed to stderr.
func Execute(ctx context.Context) error {
	deps := DefaultDeps()
	err := NewRootCmd(deps).ExecuteContext(ctx)
	if err != nil && !reported(err) {
		ghnerrors.PrintError(deps.Stderr, err)
	}
	return err
}

// setup loads configuration and creates the logger.
func (a *app) setup() error {
	cfg, err := config.Load(config.LoadOptions{ConfigPath: a.configPath})
	if err != nil {
		return ghnerrors.NewConfigError("loading configuration", err)
	}
	a.cfg = cfg
	a.logger = logging.New(a.deps.Stderr, logging.Options{Level: cfg.LogLevel, Debug: a.debug})
	return nil
}

// useDefaults replaces a configuration that failed to load with the built-in
// defaults.
func (a *app) useDefaults(loadErr error) {
	a.cfg = config.Defaults()
	a.logger = logging.New(a.deps.Stderr, logging.Options{Level: a.cfg.LogLevel, Debug: a.debug})
	a.logger.Warn().Err(loadErr).Msg("configuration failed to load, using defaults")
}

// controlsService reports whether cmd is start or stop, either as a
// subcommand or as the root's first argument.
func controlsService(cmd *cobra.Command, args []string) bool {
	if cmd.Annotations[serviceControl] == "true" {
		return true
	}
	if cmd != cmd.Root() {
		return false
	}
	_, ok := service.ParseAction(append([]string{cmd.Name()}, args...))
	return ok
}

func (a *app) sender() notify.Sender {
	return a.deps.NewSender(a.deps.Runner, a.logger)
}

func (a *app) handler() *notify.Handler {
	return notify.NewHandler(a.sender(), notify.Options{
		Sound:      a.cfg.Sound,
		ErrorSound: a.cfg.ErrorSound,
		Timeout:    a.cfg.NotifyTimeout,
		Logger:     a.logger,
	})
}

func (a *app) dispatcher() *service.Dispatcher {
	toggler := a.deps.NewToggler(a.deps.Runner, service.Options{
		TimerUnit:        a.cfg.TimerUnit,
		LaunchAgentPlist: a.cfg.LaunchAgentPlist,
	}, a.logger)
	return service.NewDispatcher(toggler, a.logger)
}

// reported reports whether err was already shown to the user.
func reported(err error) bool {
	var e *exitError
	return errors.As(err, &e)
}
