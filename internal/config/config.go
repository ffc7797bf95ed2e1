// Package config loads gh-notifier configuration.
//
// Values are layered with koanf, highest priority first:
//
//	GH_NOTIFIER_* environment variables (GH_NOTIFIER_TOKEN is never read here)
//	the file given with --config
//	~/.config/gh-notifier/config.json
//	built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gh-notifier/gh-notifier/internal/build"
	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override config keys.
const EnvPrefix = "GH_NOTIFIER_"

// TokenEnvVar holds the API token. It shares EnvPrefix but is a credential, not
// a config key, so the env provider skips it.
const TokenEnvVar = "GH_NOTIFIER_TOKEN"

// Configuration is the effective gh-notifier configuration.
type Configuration struct {
	APIURL           string        `koanf:"api_url" validate:"required,url"`
	UserAgent        string        `koanf:"user_agent"`
	StateFile        string        `koanf:"state_file" validate:"required"`
	Sound            string        `koanf:"sound"`
	ErrorSound       string        `koanf:"error_sound"`
	NotifyTimeout    time.Duration `koanf:"notify_timeout" validate:"min=0"`
	TimerUnit        string        `koanf:"timer_unit" validate:"required"`
	LaunchAgentPlist string        `koanf:"launch_agent_plist" validate:"required"`
	LogLevel         string        `koanf:"log_level" validate:"oneof=trace debug info warn warning error"`
}

// LoadOptions controls Load.
type LoadOptions struct {
	// ConfigPath is an explicit config file (--config). Missing is not an error.
	ConfigPath string
	// SkipUserConfig ignores ~/.config/gh-notifier/config.json.
	SkipUserConfig bool
}

// Load loads configuration from defaults, the user file, ConfigPath and the environment.
func Load(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")

	for key, value := range GetDefaults() {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("setting default %s: %w", key, err)
		}
	}

	if !opts.SkipUserConfig {
		if userPath, err := UserConfigPath(); err == nil {
			if err := loadFileIfExists(k, userPath); err != nil {
				return nil, fmt.Errorf("failed to load user config: %w", err)
			}
		}
	}

	if opts.ConfigPath != "" {
		if err := loadFileIfExists(k, expandHomePath(opts.ConfigPath)); err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", opts.ConfigPath, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = build.UserAgent()
	}
	cfg.StateFile = expandHomePath(cfg.StateFile)
	cfg.LaunchAgentPlist = expandHomePath(cfg.LaunchAgentPlist)

	return &cfg, nil
}

// UserConfigPath returns ~/.config/gh-notifier/config.json, honoring XDG_CONFIG_HOME.
func UserConfigPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "gh-notifier", "config.json"), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "gh-notifier", "config.json"), nil
}

func loadFileIfExists(k *koanf.Koanf, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	return k.Load(file.Provider(path), json.Parser())
}

// envTransform converts environment variable names to config keys.
// Example: GH_NOTIFIER_STATE_FILE -> state_file. Returning "" skips the variable.
func envTransform(s string) string {
	if s == TokenEnvVar {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}
