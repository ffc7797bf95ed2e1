package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/gh-notifier/gh-notifier/internal/notify"
	"github.com/gh-notifier/gh-notifier/internal/process"
	"github.com/gh-notifier/gh-notifier/internal/service"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// recordingSender captures displayed notifications.
type recordingSender struct {
	mu    sync.Mutex
	shown []notify.Notification
	err   error
}

func (s *recordingSender) Send(_ context.Context, n notify.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shown = append(s.shown, n)
	return s.err
}

func (s *recordingSender) Available() bool { return true }
func (s *recordingSender) Name() string    { return "recording" }

func (s *recordingSender) titles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.shown))
	for _, n := range s.shown {
		out = append(out, n.Title)
	}
	return out
}

// recordingToggler captures service actions.
type recordingToggler struct {
	calls []string
	opts  service.Options
	err   error
}

func (t *recordingToggler) Start(context.Context) error {
	t.calls = append(t.calls, "start")
	return t.err
}

func (t *recordingToggler) Stop(context.Context) error {
	t.calls = append(t.calls, "stop")
	return t.err
}

func (t *recordingToggler) Name() string { return "recording" }

type stubRunner struct{}

func (stubRunner) Run(context.Context, ...string) (process.Result, error) { return process.Result{}, nil }
func (stubRunner) LookPath(string) bool                                   { return true }

// testEnv is an isolated gh-notifier invocation.
type testEnv struct {
	t       *testing.T
	home    string
	env     map[string]string
	stdout  *bytes.Buffer
	stderr  *bytes.Buffer
	sender  *recordingSender
	toggler *recordingToggler
}

// newTestEnv isolates HOME and the user config directory. Tests using it
// cannot run in parallel because they modify the process environment.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "GH_NOTIFIER_") {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}
	}

	return &testEnv{
		t:       t,
		home:    home,
		env:     map[string]string{},
		stdout:  &bytes.Buffer{},
		stderr:  &bytes.Buffer{},
		sender:  &recordingSender{},
		toggler: &recordingToggler{},
	}
}

func (e *testEnv) deps() *Deps {
	return &Deps{
		Stdout: e.stdout,
		Stderr: e.stderr,
		Lookup: func(key string) (string, bool) {
			v, ok := e.env[key]
			return v, ok
		},
		Runner: stubRunner{},
		NewSender: func(process.Runner, zerolog.Logger) notify.Sender {
			return e.sender
		},
		NewToggler: func(_ process.Runner, opts service.Options, _ zerolog.Logger) service.Toggler {
			e.toggler.opts = opts
			return e.toggler
		},
		GOOS: "linux",
	}
}

// writeConfig writes a config file and returns its path.
func (e *testEnv) writeConfig(values map[string]interface{}) string {
	e.t.Helper()

	data, err := json.Marshal(values)
	require.NoError(e.t, err)
	path := filepath.Join(e.home, "test-config.json")
	require.NoError(e.t, os.WriteFile(path, data, 0o644))
	return path
}

// run executes gh-notifier with args.
func (e *testEnv) run(args ...string) error {
	root := NewRootCmd(e.deps())
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}
