package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/gh-notifier/gh-notifier/internal/process"
)

// PowerShellSender shows a Windows toast notification through PowerShell.
type PowerShellSender struct {
	runner process.Runner
}

// NewPowerShellSender creates a PowerShell toast sender.
func NewPowerShellSender(runner process.Runner) *PowerShellSender {
	return &PowerShellSender{runner: runner}
}

func (s *PowerShellSender) Name() string    { return "powershell" }
func (s *PowerShellSender) Available() bool { return s.runner.LookPath("powershell") }

func (s *PowerShellSender) Send(ctx context.Context, n Notification) error {
	res, err := s.runner.Run(ctx, "powershell", "-ExecutionPolicy", "Bypass", "-NoProfile", "-Command", toastScript(n))
	if err != nil {
		return commandError(s.Name(), res, err)
	}
	return nil
}

// toastScript builds a ToastText04 toast (title plus two lines). A click URL
// is attached as protocol activation.
func toastScript(n Notification) string {
	var b strings.Builder
	b.WriteString("[Windows.UI.Notifications.ToastNotificationManager, Windows.UI.Notifications, ContentType = WindowsRuntime] | Out-Null\n")
	b.WriteString("$template = [Windows.UI.Notifications.ToastNotificationManager]::GetTemplateContent([Windows.UI.Notifications.ToastTemplateType]::ToastText04)\n")
	b.WriteString("$textNodes = $template.GetElementsByTagName('text')\n")
	for i, line := range []string{n.Title, n.Subtitle, n.Message} {
		fmt.Fprintf(&b, "$textNodes.Item(%d).AppendChild($template.CreateTextNode(%s)) | Out-Null\n", i, powerShellString(line))
	}
	if n.Open != "" {
		b.WriteString("$template.DocumentElement.SetAttribute('activationType', 'protocol')\n")
		fmt.Fprintf(&b, "$template.DocumentElement.SetAttribute('launch', %s)\n", powerShellString(n.Open))
	}
	b.WriteString("$toast = [Windows.UI.Notifications.ToastNotification]::new($template)\n")
	fmt.Fprintf(&b, "[Windows.UI.Notifications.ToastNotificationManager]::CreateToastNotifier(%s).Show($toast)\n", powerShellString(AppName))
	return b.String()
}

// powerShellString quotes s as a single-quoted PowerShell literal. Single-quoted
// strings are not expanded, so only the quote itself needs doubling.
func powerShellString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}
