package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gh-notifier/gh-notifier/internal/config"
	ghnerrors "github.com/gh-notifier/gh-notifier/internal/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage gh-notifier configuration",
		Long: `Manage gh-notifier configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Environment variables (GH_NOTIFIER_*)
  2. The file given with --config
  3. User config (~/.config/gh-notifier/config.json)
  4. Built-in defaults

GH_NOTIFIER_TOKEN is a credential and is never part of the configuration.`,
		Example: `  # Show current configuration
  gh-notifier config show

  # Show configuration as JSON
  gh-notifier config show --json

  # Use a quieter alert sound
  gh-notifier config set sound Tink`,
	}

	configCmd.AddCommand(newConfigShowCmd(a), newConfigSetCmd(a), newConfigKeysCmd())
	return configCmd
}

func newConfigShowCmd(a *app) *cobra.Command {
	var useJSON bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current effective configuration",
		Long: `Display the current effective configuration values.

Shows the merged result of defaults, config files and environment variables.
Use --json to print JSON instead of YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeConfig(cmd.OutOrStdout(), a.cfg, useJSON)
		},
	}
	cmd.Flags().BoolVar(&useJSON, "json", false, "Output in JSON format")
	return cmd
}

// configMap converts the configuration to its file representation.
func configMap(cfg *config.Configuration) map[string]interface{} {
	return map[string]interface{}{
		"api_url":            cfg.APIURL,
		"user_agent":         cfg.UserAgent,
		"state_file":         cfg.StateFile,
		"sound":              cfg.Sound,
		"error_sound":        cfg.ErrorSound,
		"notify_timeout":     cfg.NotifyTimeout.String(),
		"timer_unit":         cfg.TimerUnit,
		"launch_agent_plist": cfg.LaunchAgentPlist,
		"log_level":          cfg.LogLevel,
	}
}

func writeConfig(w io.Writer, cfg *config.Configuration, useJSON bool) error {
	values := configMap(cfg)
	if useJSON {
		data, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Fprintln(w, string(data))
		return nil
	}

	data, err := yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}
	fmt.Fprint(w, string(data))
	return nil
}

func newConfigSetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value in the config file.

Writes to the file given with --config, or the user config
(~/.config/gh-notifier/config.json) by default. Other keys in the file are kept.
The value is validated against the key's type.`,
		Example: `  # Change the alert sound
  gh-notifier config set sound Tink

  # Allow slower notification daemons
  gh-notifier config set notify_timeout 10s`,
		Args:        cobra.ExactArgs(2),
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.configPath
			if path == "" {
				userPath, err := config.UserConfigPath()
				if err != nil {
					return ghnerrors.NewConfigError("locating user config", err)
				}
				path = userPath
			}

			if err := config.SetConfigValue(path, args[0], args[1]); err != nil {
				return ghnerrors.NewConfigError("setting "+args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s\n", args[0], args[1], path)
			return nil
		},
	}
}

func newConfigKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "keys",
		Short:       "List all available configuration keys",
		Long:        `Display all valid configuration keys with their types and descriptions.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{skipConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "KEY\tTYPE\tDEFAULT\tDESCRIPTION")
			for _, key := range config.SortedKeys() {
				schema := config.KnownKeys[key]
				fmt.Fprintf(tw, "%s\t%s\t%v\t%s\n", key, schema.Type, schema.Default, schema.Description)
			}
			return tw.Flush()
		},
	}
}
