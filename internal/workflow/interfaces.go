// Package workflow runs one poll: fetch, deduplicate, notify, persist.
// Related: internal/github (fetch), internal/seen (dedup, persistence), internal/notify (display)
// Tags: workflow, orchestrator, poll, dependency-injection
package workflow

import (
	"context"

	"github.com/gh-notifier/gh-notifier/internal/github"
	"github.com/gh-notifier/gh-notifier/internal/seen"
)

// Fetcher retrieves the authenticated user's notifications.
//
// Primary implementation: github.Client
type Fetcher interface {
	Notifications(ctx context.Context, token string) ([]github.Notification, error)
}

// SeenStore reads and replaces the seen-set.
//
// Primary implementation: seen.Store
type SeenStore interface {
	Load() (seen.Set, error)
	Save(ids []string) error
}

// Notifier displays one new notification.
//
// Primary implementation: notify.Handler
type Notifier interface {
	NotifyNew(ctx context.Context, item github.Notification) error
}

// Compile-time interface verification
var (
	_ Fetcher   = (*github.Client)(nil)
	_ SeenStore = (*seen.Store)(nil)
)
