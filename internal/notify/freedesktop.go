package notify

import (
	"context"
	"os"
	"path/filepath"

	"github.com/gh-notifier/gh-notifier/internal/process"
	"github.com/godbus/dbus/v5"
)

const (
	notificationsService = "org.freedesktop.Notifications"
	notificationsPath    = dbus.ObjectPath("/org/freedesktop/Notifications")
	notifyMethod         = notificationsService + ".Notify"

	// AppName identifies gh-notifier to the notification server.
	AppName = "gh-notifier"
)

// Urgency levels of the freedesktop notification protocol.
const (
	urgencyNormal   byte = 1
	urgencyCritical byte = 2
)

// notificationBus is the part of the session bus the sender needs.
type notificationBus interface {
	Notify(ctx context.Context, summary, body string, hints map[string]dbus.Variant) (uint32, error)
	Close() error
}

// sessionBus calls the notification server over a private session bus connection.
type sessionBus struct {
	conn *dbus.Conn
}

func dialSessionBus(ctx context.Context) (notificationBus, error) {
	conn, err := dbus.ConnectSessionBus(dbus.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return &sessionBus{conn: conn}, nil
}

func (b *sessionBus) Notify(ctx context.Context, summary, body string, hints map[string]dbus.Variant) (uint32, error) {
	var id uint32
	err := b.conn.Object(notificationsService, notificationsPath).CallWithContext(ctx, notifyMethod, 0,
		AppName,    // app_name
		uint32(0),  // replaces_id
		"",         // app_icon
		summary,    // summary
		body,       // body
		[]string{}, // actions
		hints,      // hints
		int32(-1),  // expire_timeout: server default
	).Store(&id)
	return id, err
}

func (b *sessionBus) Close() error {
	return b.conn.Close()
}

// DBusSender displays notifications through org.freedesktop.Notifications.
// Sound and click URLs are not supported.
type DBusSender struct {
	dial      func(ctx context.Context) (notificationBus, error)
	available func() bool
}

// NewDBusSender creates a sender that talks to the user's session bus.
func NewDBusSender() *DBusSender {
	return &DBusSender{dial: dialSessionBus, available: sessionBusConfigured}
}

func (s *DBusSender) Name() string    { return "dbus" }
func (s *DBusSender) Available() bool { return s.available() }

// Send opens a session bus connection, calls Notify and closes the connection.
func (s *DBusSender) Send(ctx context.Context, n Notification) error {
	bus, err := s.dial(ctx)
	if err != nil {
		return err
	}
	defer bus.Close()

	hints := map[string]dbus.Variant{
		"urgency": dbus.MakeVariant(urgencyFor(n)),
	}
	_, err = bus.Notify(ctx, linuxSummary(n), n.Message, hints)
	return err
}

func urgencyFor(n Notification) byte {
	if n.NotificationType == TypeFailure {
		return urgencyCritical
	}
	return urgencyNormal
}

// linuxSummary folds the subtitle into the summary: "title (subtitle)".
func linuxSummary(n Notification) string {
	if n.Subtitle == "" {
		return n.Title
	}
	return n.Title + " (" + n.Subtitle + ")"
}

// sessionBusConfigured reports whether a session bus address can be found.
func sessionBusConfigured() bool {
	if os.Getenv("DBUS_SESSION_BUS_ADDRESS") != "" {
		return true
	}
	runtimeDir := os.Getenv("XDG_RUNTIME_DIR")
	if runtimeDir == "" {
		return false
	}
	_, err := os.Stat(filepath.Join(runtimeDir, "bus"))
	return err == nil
}

// NotifySendSender displays notifications with notify-send.
// Sound and click URLs are not supported.
type NotifySendSender struct {
	runner     process.Runner
	hasDisplay func() bool
}

// NewNotifySendSender creates a notify-send sender.
func NewNotifySendSender(runner process.Runner) *NotifySendSender {
	return &NotifySendSender{runner: runner, hasDisplay: hasDisplay}
}

func (s *NotifySendSender) Name() string { return "notify-send" }

// Available requires notify-send on PATH and a graphical session.
func (s *NotifySendSender) Available() bool {
	return s.runner.LookPath("notify-send") && s.hasDisplay()
}

func (s *NotifySendSender) Send(ctx context.Context, n Notification) error {
	res, err := s.runner.Run(ctx, notifySendArgs(n)...)
	if err != nil {
		return commandError(s.Name(), res, err)
	}
	return nil
}

func notifySendArgs(n Notification) []string {
	urgency := "normal"
	if n.NotificationType == TypeFailure {
		urgency = "critical"
	}
	return []string{"notify-send", "-u", urgency, "-a", AppName, "--", linuxSummary(n), n.Message}
}

// hasDisplay checks if a display environment is available
func hasDisplay() bool {
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}
