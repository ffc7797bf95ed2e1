package cli

import (
	"fmt"

	"github.com/gh-notifier/gh-notifier/internal/health"
	"github.com/spf13/cobra"
)

func newDoctorCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Run health checks for gh-notifier",
		Long: `Run health checks to verify that gh-notifier can poll and notify.

This command checks for:
  - GH_NOTIFIER_TOKEN
  - a desktop notification backend
  - the service manager used by start/stop
  - a writable directory for the state file

Each check will display a ✓ if passed or ✗ with an error message if failed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report := health.RunHealthChecks(health.Inputs{
				Lookup:    a.deps.Lookup,
				Sender:    a.sender(),
				Runner:    a.deps.Runner,
				GOOS:      a.deps.GOOS,
				StateFile: a.cfg.StateFile,
			})

			fmt.Fprint(cmd.OutOrStdout(), health.FormatReport(report))

			if !report.Passed {
				return NewExitError(ExitFailure, nil)
			}
			return nil
		},
	}
}
