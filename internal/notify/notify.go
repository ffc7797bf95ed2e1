package notify

// NotificationType represents the kind of notification being displayed
type NotificationType string

const (
	// TypeInfo is a newly discovered GitHub notification
	TypeInfo NotificationType = "info"
	// TypeFailure is a run failure reported to the user
	TypeFailure NotificationType = "failure"
)

const (
	// NewTitle is the title of every GitHub notification.
	NewTitle = "New Github Notification"

	// ErrorTitle and ErrorSubtitle label run failures.
	ErrorTitle    = "Github Notifier"
	ErrorSubtitle = "Error"
)

// Notification is the display contract handed to a Sender.
type Notification struct {
	// Title is the notification title
	Title string

	// Subtitle is shown under the title where the platform supports it
	Subtitle string

	// Message is the notification body text
	Message string

	// Sound is a platform sound name; empty means silent
	Sound string

	// Open is the URL opened on click; empty means no click action
	Open string

	// NotificationType indicates the event type: info or failure
	NotificationType NotificationType
}
