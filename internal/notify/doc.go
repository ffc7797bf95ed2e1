// Package notify turns GitHub notifications into desktop notifications.
//
// Formatting is platform independent: a fetched item becomes a Notification
// with a fixed title, the humanized reason as subtitle, the subject title as
// message and a clickable github.com URL rebuilt from the API URL.
//
// Display goes through a Sender. The platform sender is chosen at startup:
//
//   - macOS: terminal-notifier when installed, otherwise osascript
//   - Linux: org.freedesktop.Notifications over the session D-Bus, otherwise notify-send
//   - Windows: PowerShell toast
//   - anything else: a no-op sender
//
// External tools are always run with an argv, never through a shell, so
// notification text cannot be interpreted as shell syntax.
//
// # Usage
//
//	sender := notify.NewSender(process.NewExecRunner(), logger)
//	handler := notify.NewHandler(sender, notify.Options{Sound: "default"})
//	if err := handler.NotifyNew(ctx, item); err != nil {
//		// err is a NotificationDispatch error
//	}
package notify
