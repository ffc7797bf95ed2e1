package config

import (
	"time"

	"github.com/gh-notifier/gh-notifier/internal/build"
)

// Default values for configuration keys.
const (
	DefaultAPIURL           = "https://api.github.com/notifications"
	DefaultStateFile        = "~/.gh-notifier-read-notifications"
	DefaultSound            = "default"
	DefaultErrorSound       = "Pop"
	DefaultNotifyTimeout    = "5s"
	DefaultTimerUnit        = "gh-notifier.timer"
	DefaultLaunchAgentPlist = "~/Library/LaunchAgents/com.gh-notifier.plist"
	DefaultLogLevel         = "info"
)

// GetDefaults returns the default configuration values
func GetDefaults() map[string]interface{} {
	return map[string]interface{}{
		"api_url":            DefaultAPIURL,
		"user_agent":         "",
		"state_file":         DefaultStateFile,
		"sound":              DefaultSound,
		"error_sound":        DefaultErrorSound,
		"notify_timeout":     DefaultNotifyTimeout,
		"timer_unit":         DefaultTimerUnit,
		"launch_agent_plist": DefaultLaunchAgentPlist,
		"log_level":          DefaultLogLevel,
	}
}

// Defaults returns the built-in configuration without any file or
// environment layer, with paths expanded.
func Defaults() *Configuration {
	timeout, _ := time.ParseDuration(DefaultNotifyTimeout)
	return &Configuration{
		APIURL:           DefaultAPIURL,
		UserAgent:        build.UserAgent(),
		StateFile:        expandHomePath(DefaultStateFile),
		Sound:            DefaultSound,
		ErrorSound:       DefaultErrorSound,
		NotifyTimeout:    timeout,
		TimerUnit:        DefaultTimerUnit,
		LaunchAgentPlist: expandHomePath(DefaultLaunchAgentPlist),
		LogLevel:         DefaultLogLevel,
	}
}
