package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/gh-notifier/gh-notifier/internal/process"
)

// terminalNotifierUnsafe lists characters terminal-notifier cannot display.
var terminalNotifierUnsafe = strings.NewReplacer("[", "", "]", "")

// TerminalNotifierSender displays notifications with terminal-notifier.
type TerminalNotifierSender struct {
	runner process.Runner
}

// NewTerminalNotifierSender creates a terminal-notifier sender.
func NewTerminalNotifierSender(runner process.Runner) *TerminalNotifierSender {
	return &TerminalNotifierSender{runner: runner}
}

func (s *TerminalNotifierSender) Name() string    { return "terminal-notifier" }
func (s *TerminalNotifierSender) Available() bool { return s.runner.LookPath("terminal-notifier") }

// Send runs terminal-notifier. The click URL is passed with -open when set.
func (s *TerminalNotifierSender) Send(ctx context.Context, n Notification) error {
	res, err := s.runner.Run(ctx, terminalNotifierArgs(n)...)
	if err != nil {
		return commandError(s.Name(), res, err)
	}
	return nil
}

func terminalNotifierArgs(n Notification) []string {
	argv := []string{
		"terminal-notifier",
		"-title", n.Title,
		"-subtitle", n.Subtitle,
		"-message", terminalNotifierUnsafe.Replace(n.Message),
	}
	if n.Sound != "" {
		argv = append(argv, "-sound", n.Sound)
	}
	if n.Open != "" {
		argv = append(argv, "-open", n.Open)
	}
	return argv
}

// OsascriptSender displays notifications with AppleScript. It has no click action.
type OsascriptSender struct {
	runner process.Runner
}

// NewOsascriptSender creates an osascript sender.
func NewOsascriptSender(runner process.Runner) *OsascriptSender {
	return &OsascriptSender{runner: runner}
}

func (s *OsascriptSender) Name() string    { return "osascript" }
func (s *OsascriptSender) Available() bool { return s.runner.LookPath("osascript") }

// Send runs a display notification script.
func (s *OsascriptSender) Send(ctx context.Context, n Notification) error {
	res, err := s.runner.Run(ctx, "osascript", "-e", appleScript(n))
	if err != nil {
		return commandError(s.Name(), res, err)
	}
	return nil
}

func appleScript(n Notification) string {
	script := fmt.Sprintf("display notification %s with title %s",
		appleScriptString(n.Message), appleScriptString(n.Title))
	if n.Subtitle != "" {
		script += " subtitle " + appleScriptString(n.Subtitle)
	}
	if n.Sound != "" && n.Sound != "default" {
		script += " sound name " + appleScriptString(n.Sound)
	}
	return script
}

// appleScriptString quotes s as an AppleScript string literal.
func appleScriptString(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	return `"` + s + `"`
}
