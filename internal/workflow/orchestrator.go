package workflow

import (
	"context"
	"errors"

	"github.com/gh-notifier/gh-notifier/internal/notify"
	"github.com/gh-notifier/gh-notifier/internal/seen"
	"github.com/rs/zerolog"
)

// Summary counts what happened during one poll.
type Summary struct {
	// Fetched is the number of notifications returned by the API
	Fetched int
	// New is the number not present in the seen-set
	New int
	// Delivered is the number of new notifications displayed
	Delivered int
	// Failed is the number of new notifications whose display failed
	Failed int
}

// Orchestrator coordinates a single poll. It holds no state between runs.
type Orchestrator struct {
	fetcher  Fetcher
	store    SeenStore
	notifier Notifier
	logger   zerolog.Logger
}

// NewOrchestrator wires the poll collaborators.
func NewOrchestrator(fetcher Fetcher, store SeenStore, notifier Notifier, logger zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		fetcher:  fetcher,
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// Run performs one poll with token.
//
// Steps:
//  1. fetch; any error is returned and nothing is written
//  2. load the seen-set; a read failure is logged and treated as empty
//  3. partition into new and seen items
//  4. display each new item in fetch order; failures are logged and counted
//  5. replace the seen-set with this run's identifiers
//
// Identifiers of items whose display failed are left out of the saved set so
// they are announced again on the next run. When no display backend exists at
// all, that is logged once as a warning instead of once per item. A save failure is returned after
// notifications were displayed; they are not rolled back.
func (o *Orchestrator) Run(ctx context.Context, token string) (Summary, error) {
	var summary Summary

	items, err := o.fetcher.Notifications(ctx, token)
	if err != nil {
		return summary, err
	}
	summary.Fetched = len(items)

	set, err := o.store.Load()
	if err != nil {
		o.logger.Warn().Err(err).Msg("could not read seen notifications, treating all as new")
		set = seen.Set{}
	}

	fresh, ids := seen.Partition(items, set)
	summary.New = len(fresh)

	failed := make(map[string]struct{})
	warnedNoBackend := false
	for _, item := range fresh {
		if err := o.notifier.NotifyNew(ctx, item); err != nil {
			switch {
			case !errors.Is(err, notify.ErrNoBackend):
				o.logger.Error().Err(err).Str("id", item.ID).Msg("failed to display notification")
			case !warnedNoBackend:
				o.logger.Warn().Err(err).Int("new", len(fresh)).
					Msg("no notification backend available, new notifications will be retried on the next run")
				warnedNoBackend = true
			default:
				o.logger.Debug().Str("id", item.ID).Msg("no notification backend available")
			}
			failed[item.Identifier()] = struct{}{}
			summary.Failed++
			continue
		}
		summary.Delivered++
	}

	if err := o.store.Save(withoutFailed(ids, failed)); err != nil {
		return summary, err
	}

	o.logger.Info().
		Int("fetched", summary.Fetched).
		Int("new", summary.New).
		Int("delivered", summary.Delivered).
		Int("failed", summary.Failed).
		Msg("poll complete")
	return summary, nil
}

func withoutFailed(ids []string, failed map[string]struct{}) []string {
	if len(failed) == 0 {
		return ids
	}
	kept := make([]string, 0, len(ids)-len(failed))
	for _, id := range ids {
		if _, ok := failed[id]; ok {
			continue
		}
		kept = append(kept, id)
	}
	return kept
}
