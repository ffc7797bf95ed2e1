package notify

import (
	"slices"
	"strings"

	"github.com/gh-notifier/gh-notifier/internal/github"
)

// WebBaseURL is the root of rebuilt click URLs.
const WebBaseURL = "https://github.com"

// FormatSubtitle humanizes a notification reason: "review_requested" becomes
// "review requested".
func FormatSubtitle(reason string) string {
	return strings.ReplaceAll(reason, "_", " ")
}

// BuildOpenURL rebuilds the github.com page URL from a subject API URL.
//
//	https://api.github.com/repos/acme/widgets/issues/77 -> https://github.com/acme/widgets/issues/77
//	https://api.github.com/repos/acme/widgets/pulls/5   -> https://github.com/acme/widgets/pull/5
//
// The kind is "issues" when any path segment equals "issues", otherwise "pull".
// Owner, repo and number come from the 4th-from-last, 3rd-from-last and last
// segments. An empty URL yields "". With fewer than four segments the missing
// parts stay empty, and if owner or repo is missing the result is "".
func BuildOpenURL(apiURL string) string {
	if apiURL == "" {
		return ""
	}

	parts := strings.Split(apiURL, "/")
	kind := "pull"
	if slices.Contains(parts, "issues") {
		kind = "issues"
	}

	owner := segmentFromEnd(parts, 4)
	repo := segmentFromEnd(parts, 3)
	number := segmentFromEnd(parts, 1)
	if owner == "" || repo == "" {
		return ""
	}

	return strings.Join([]string{WebBaseURL, owner, repo, kind, number}, "/")
}

// segmentFromEnd returns the n-th segment counted from the end (1 is the last),
// or "" when there are not enough segments.
func segmentFromEnd(parts []string, n int) string {
	if n > len(parts) {
		return ""
	}
	return parts[len(parts)-n]
}

// FromGitHub formats a fetched item for display.
func FromGitHub(item github.Notification, sound string) Notification {
	return Notification{
		Title:            NewTitle,
		Subtitle:         FormatSubtitle(item.Reason),
		Message:          item.Subject.Title,
		Sound:            sound,
		Open:             BuildOpenURL(item.SubjectURL()),
		NotificationType: TypeInfo,
	}
}

// ForError formats a run failure for display.
func ForError(err error, sound string) Notification {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	return Notification{
		Title:            ErrorTitle,
		Subtitle:         ErrorSubtitle,
		Message:          msg,
		Sound:            sound,
		NotificationType: TypeFailure,
	}
}
