// Mock implementations of the poll collaborators.
// Related: internal/workflow/interfaces.go
// Tags: workflow, mocks, testing

package workflow

import (
	"context"
	"errors"

	"github.com/gh-notifier/gh-notifier/internal/github"
	"github.com/gh-notifier/gh-notifier/internal/seen"
)

// MockFetcher returns a fixed batch or error.
type MockFetcher struct {
	Items []github.Notification
	Err   error

	Tokens []string
}

func (m *MockFetcher) Notifications(_ context.Context, token string) ([]github.Notification, error) {
	m.Tokens = append(m.Tokens, token)
	return m.Items, m.Err
}

// MockStore keeps the seen-set in memory.
type MockStore struct {
	Contents string
	LoadErr  error
	SaveErr  error

	Saved     [][]string
	LoadCalls int
}

func (m *MockStore) Load() (seen.Set, error) {
	m.LoadCalls++
	if m.LoadErr != nil {
		return seen.Set{}, m.LoadErr
	}
	return seen.Parse(m.Contents), nil
}

func (m *MockStore) Save(ids []string) error {
	m.Saved = append(m.Saved, ids)
	return m.SaveErr
}

// MockNotifier records displayed notifications. IDs listed in FailIDs fail
// with Err, or errMockDisplay when Err is nil.
type MockNotifier struct {
	FailIDs map[string]bool
	Err     error

	Shown []github.Notification
}

func (m *MockNotifier) NotifyNew(_ context.Context, item github.Notification) error {
	if m.FailIDs[item.ID] {
		if m.Err != nil {
			return m.Err
		}
		return errMockDisplay
	}
	m.Shown = append(m.Shown, item)
	return nil
}

var errMockDisplay = errors.New("mock display error")

func item(id, updatedAt, title string) github.Notification {
	return github.Notification{
		ID:        id,
		UpdatedAt: updatedAt,
		Reason:    "mention",
		Subject:   github.Subject{Title: title},
	}
}
