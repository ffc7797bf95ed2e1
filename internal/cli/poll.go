package cli

import (
	"context"

	ghnerrors "github.com/gh-notifier/gh-notifier/internal/errors"
	"github.com/gh-notifier/gh-notifier/internal/github"
	"github.com/gh-notifier/gh-notifier/internal/seen"
	"github.com/gh-notifier/gh-notifier/internal/token"
	"github.com/gh-notifier/gh-notifier/internal/workflow"
)

// poll runs one fetch, notify and persist cycle.
func (a *app) poll(ctx context.Context) error {
	tok, err := token.Load(a.deps.Lookup)
	if err != nil {
		return a.fail(ctx, err)
	}

	client := github.NewClient(a.cfg.APIURL, a.cfg.UserAgent)
	if a.deps.HTTPClient != nil {
		client.SetHTTPClient(a.deps.HTTPClient)
	}
	store := seen.NewStore(a.cfg.StateFile)
	handler := a.handler()

	a.logger.Debug().
		Str("api_url", client.APIURL()).
		Str("state_file", store.Path()).
		Str("backend", handler.Sender().Name()).
		Msg("polling notifications")

	if _, err := workflow.NewOrchestrator(client, store, handler, a.logger).Run(ctx, tok); err != nil {
		return a.failWith(ctx, err, handler)
	}
	return nil
}

// fail reports a run failure on stderr, in the log and as a desktop
// notification, and returns it with its exit code attached.
func (a *app) fail(ctx context.Context, err error) error {
	return a.failWith(ctx, err, a.handler())
}

func (a *app) failWith(ctx context.Context, err error, handler errorNotifier) error {
	ghnerrors.PrintError(a.deps.Stderr, err)
	a.logger.Error().Err(err).Str("kind", ghnerrors.KindOf(err).String()).Msg("poll failed")

	if nerr := handler.NotifyError(ctx, err); nerr != nil {
		a.logger.Warn().Err(nerr).Msg("could not display error notification")
	}
	return NewExitError(ExitCode(err), err)
}

// errorNotifier displays run failures.
type errorNotifier interface {
	NotifyError(ctx context.Context, err error) error
}
