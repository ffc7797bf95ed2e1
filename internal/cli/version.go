package cli

import (
	"fmt"
	"runtime"

	"github.com/gh-notifier/gh-notifier/internal/build"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Display version information",
		Long:        "Display version, commit, build date, and Go version information for gh-notifier",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfig: "true"},
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "gh-notifier version %s\n", build.Version)
			fmt.Fprintf(out, "Built from commit: %s\n", build.Commit)
			fmt.Fprintf(out, "Build date: %s\n", build.BuildDate)
			fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
		},
	}
}
