package notify

import (
	"context"
	"errors"
	"sync"

	"github.com/gh-notifier/gh-notifier/internal/process"
)

// MockSender is a mock implementation of Sender for testing.
// It records all calls and allows configuring return values and errors.
type MockSender struct {
	mu sync.Mutex

	// Configuration
	SendError error
	SendFunc  func(context.Context, Notification) error
	available bool
	name      string

	// Call tracking
	Calls []Notification
}

// NewMockSender creates a new mock sender with default behavior (available, no errors)
func NewMockSender(name string) *MockSender {
	return &MockSender{available: true, name: name}
}

// WithError configures the mock to return an error on Send
func (m *MockSender) WithError(err error) *MockSender {
	m.SendError = err
	return m
}

// WithAvailable configures whether the backend is available
func (m *MockSender) WithAvailable(available bool) *MockSender {
	m.available = available
	return m
}

// WithFunc configures a custom send function
func (m *MockSender) WithFunc(fn func(context.Context, Notification) error) *MockSender {
	m.SendFunc = fn
	return m
}

func (m *MockSender) Send(ctx context.Context, n Notification) error {
	m.mu.Lock()
	m.Calls = append(m.Calls, n)
	fn, err := m.SendFunc, m.SendError
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, n)
	}
	return err
}

func (m *MockSender) Available() bool { return m.available }
func (m *MockSender) Name() string    { return m.name }

// CallCount returns the number of Send calls
func (m *MockSender) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

// fakeRunner records commands instead of running them.
type fakeRunner struct {
	mu       sync.Mutex
	onPath   map[string]bool
	result   process.Result
	err      error
	commands [][]string
}

func newFakeRunner(onPath ...string) *fakeRunner {
	r := &fakeRunner{onPath: map[string]bool{}}
	for _, name := range onPath {
		r.onPath[name] = true
	}
	return r
}

func (r *fakeRunner) Run(_ context.Context, argv ...string) (process.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commands = append(r.commands, argv)
	return r.result, r.err
}

func (r *fakeRunner) LookPath(name string) bool {
	return r.onPath[name]
}

func (r *fakeRunner) lastCommand() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.commands) == 0 {
		return nil
	}
	return r.commands[len(r.commands)-1]
}

// Common test errors
var (
	errMockSend = errors.New("mock send error")
)
