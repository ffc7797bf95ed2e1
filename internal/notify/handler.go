package notify

import (
	"context"
	"time"

	ghnerrors "github.com/gh-notifier/gh-notifier/internal/errors"
	"github.com/gh-notifier/gh-notifier/internal/github"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single notification when Options.Timeout is zero.
const DefaultTimeout = 5 * time.Second

// Options configures a Handler.
type Options struct {
	// Sound is played for new GitHub notifications
	Sound string

	// ErrorSound is played for error notifications
	ErrorSound string

	// Timeout bounds each Send call
	Timeout time.Duration

	Logger zerolog.Logger
}

// Handler formats notifications and dispatches them through a Sender.
type Handler struct {
	sender Sender
	opts   Options
}

// NewHandler creates a handler that displays through sender.
func NewHandler(sender Sender, opts Options) *Handler {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Handler{sender: sender, opts: opts}
}

// Sender returns the underlying sender.
func (h *Handler) Sender() Sender {
	return h.sender
}

// NotifyNew displays one new GitHub notification. Failures are returned as
// NotificationDispatch errors.
func (h *Handler) NotifyNew(ctx context.Context, item github.Notification) error {
	n := FromGitHub(item, h.opts.Sound)
	if err := h.dispatch(ctx, n); err != nil {
		return ghnerrors.NewDispatchError(n.Message, err)
	}
	h.opts.Logger.Debug().
		Str("id", item.ID).
		Str("reason", item.Reason).
		Str("open", n.Open).
		Msg("notification displayed")
	return nil
}

// NotifyError displays a run failure.
func (h *Handler) NotifyError(ctx context.Context, runErr error) error {
	n := ForError(runErr, h.opts.ErrorSound)
	if err := h.dispatch(ctx, n); err != nil {
		return ghnerrors.NewDispatchError(n.Title, err)
	}
	return nil
}

// dispatch sends n and waits at most the configured timeout.
//
// Concurrency pattern: goroutine + done channel + select with timeout.
// Senders that ignore ctx cannot block the poll past the timeout.
func (h *Handler) dispatch(ctx context.Context, n Notification) error {
	ctx, cancel := context.WithTimeout(ctx, h.opts.Timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- h.sender.Send(ctx, n)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
