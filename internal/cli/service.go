package cli

import (
	"github.com/gh-notifier/gh-notifier/internal/service"
	"github.com/spf13/cobra"
)

// newServiceCmd builds the start or stop command. Failures are logged and the
// command still exits 0, like the bare "gh-notifier start" form. A config
// file that fails to load is replaced by the defaults.
func newServiceCmd(a *app, action service.Action, short string) *cobra.Command {
	return &cobra.Command{
		Use:   string(action),
		Short: short,
		Long: short + `.

On linux this controls the systemd user unit named by timer_unit; on macOS it
loads or unloads the launch agent at launch_agent_plist. The unit or plist must
already be installed.`,
		Args:        cobra.ArbitraryArgs,
		Annotations: map[string]string{serviceControl: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.dispatcher().Dispatch(cmd.Context(), []string{cmd.Root().Name(), string(action)})
			return nil
		},
	}
}
