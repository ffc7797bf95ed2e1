// Package health implements the doctor checks for a gh-notifier installation.
package health

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/gh-notifier/gh-notifier/internal/notify"
	"github.com/gh-notifier/gh-notifier/internal/process"
	"github.com/gh-notifier/gh-notifier/internal/token"
)

// CheckResult represents the result of a single health check
type CheckResult struct {
	Name    string
	Passed  bool
	Message string
}

// HealthReport contains all health check results
type HealthReport struct {
	Checks []CheckResult
	Passed bool
}

// Inputs are the collaborators the checks inspect.
type Inputs struct {
	// Lookup reads environment variables (os.LookupEnv when nil)
	Lookup token.LookupFunc
	// Sender is the desktop notification backend
	Sender notify.Sender
	// Runner answers PATH lookups
	Runner process.Runner
	// GOOS selects the service manager to look for
	GOOS string
	// StateFile is the seen-set location
	StateFile string
}

// RunHealthChecks runs all health checks and returns a report
func RunHealthChecks(in Inputs) *HealthReport {
	report := &HealthReport{
		Checks: make([]CheckResult, 0, 4),
		Passed: true,
	}

	for _, check := range []CheckResult{
		CheckToken(in.Lookup),
		CheckNotifier(in.Sender),
		CheckServiceManager(in.Runner, in.GOOS),
		CheckStateDir(in.StateFile),
	} {
		report.Checks = append(report.Checks, check)
		if !check.Passed {
			report.Passed = false
		}
	}

	return report
}

// CheckToken checks that the API token is set
func CheckToken(lookup token.LookupFunc) CheckResult {
	if _, err := token.Load(lookup); err != nil {
		return CheckResult{
			Name:    "GitHub token",
			Passed:  false,
			Message: token.EnvVar + " is not set",
		}
	}
	return CheckResult{
		Name:    "GitHub token",
		Passed:  true,
		Message: token.EnvVar + " is set",
	}
}

// CheckNotifier checks that a desktop notification backend is usable
func CheckNotifier(sender notify.Sender) CheckResult {
	if sender == nil || !sender.Available() {
		return CheckResult{
			Name:    "Notifier",
			Passed:  false,
			Message: "no desktop notification backend available",
		}
	}
	return CheckResult{
		Name:    "Notifier",
		Passed:  true,
		Message: "notifications via " + sender.Name(),
	}
}

// serviceManagers maps an OS to the tool that toggles the timer.
var serviceManagers = map[string]string{
	"linux":  "systemctl",
	"darwin": "launchctl",
}

// CheckServiceManager checks that the timer can be started and stopped
func CheckServiceManager(runner process.Runner, goos string) CheckResult {
	tool, ok := serviceManagers[goos]
	if !ok {
		return CheckResult{
			Name:    "Service manager",
			Passed:  false,
			Message: "start/stop is not supported on " + goos,
		}
	}
	if !runner.LookPath(tool) {
		return CheckResult{
			Name:    "Service manager",
			Passed:  false,
			Message: tool + " not found in PATH",
		}
	}
	return CheckResult{
		Name:    "Service manager",
		Passed:  true,
		Message: tool + " found",
	}
}

// CheckStateDir checks that the seen-set file can be written
func CheckStateDir(stateFile string) CheckResult {
	dir := filepath.Dir(stateFile)
	info, err := os.Stat(dir)
	if err != nil {
		return CheckResult{
			Name:    "State directory",
			Passed:  false,
			Message: fmt.Sprintf("cannot access %s: %v", dir, err),
		}
	}
	if !info.IsDir() {
		return CheckResult{
			Name:    "State directory",
			Passed:  false,
			Message: dir + " is not a directory",
		}
	}
	if err := writable(dir); err != nil {
		return CheckResult{
			Name:    "State directory",
			Passed:  false,
			Message: fmt.Sprintf("%s is not writable: %v", dir, err),
		}
	}
	return CheckResult{
		Name:    "State directory",
		Passed:  true,
		Message: dir + " is writable",
	}
}

// FormatReport formats the health report for console output
func FormatReport(report *HealthReport) string {
	var b strings.Builder
	ok := color.New(color.FgGreen).SprintFunc()
	bad := color.New(color.FgRed).SprintFunc()

	for _, check := range report.Checks {
		if check.Passed {
			fmt.Fprintf(&b, "%s %s: %s\n", ok("✓"), check.Name, check.Message)
		} else {
			fmt.Fprintf(&b, "%s %s: %s\n", bad("✗"), check.Name, check.Message)
		}
	}

	return b.String()
}
