package cli

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/fatih/color"
	"github.com/gh-notifier/gh-notifier/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const notificationsBody = `[
	{"id":"1","updated_at":"2024-05-01T10:00:00Z","reason":"review_requested",
	 "subject":{"title":"Add cache","url":"https://api.github.com/repos/acme/widgets/pulls/5","type":"PullRequest"}},
	{"id":"2","updated_at":"2024-05-01T11:00:00Z","reason":"mention",
	 "subject":{"title":"Crash on start","url":"https://api.github.com/repos/acme/widgets/issues/77","type":"Issue"}}
]`

// apiServer serves a fixed response and counts requests.
func apiServer(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()

	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestPoll_Success(t *testing.T) {
	env := newTestEnv(t)
	srv, _ := apiServer(t, http.StatusOK, notificationsBody)
	env.env["GH_NOTIFIER_TOKEN"] = "ghp_test"
	stateFile := filepath.Join(env.home, "ids")
	cfg := env.writeConfig(map[string]interface{}{"api_url": srv.URL, "state_file": stateFile})

	require.NoError(t, env.run("--config", cfg))

	require.Len(t, env.sender.shown, 2)
	assert.Equal(t, "Add cache", env.sender.shown[0].Message)
	assert.Equal(t, "review requested", env.sender.shown[0].Subtitle)
	assert.Equal(t, "https://github.com/acme/widgets/pull/5", env.sender.shown[0].Open)
	assert.Equal(t, "https://github.com/acme/widgets/issues/77", env.sender.shown[1].Open)

	data, err := os.ReadFile(stateFile)
	require.NoError(t, err)
	assert.Equal(t, "12024-05-01T10:00:00Z,22024-05-01T11:00:00Z", string(data))

	// Second run with the same batch announces nothing.
	require.NoError(t, env.run("--config", cfg))
	assert.Len(t, env.sender.shown, 2)
}

func TestPoll_UnknownArgumentStillPolls(t *testing.T) {
	env := newTestEnv(t)
	srv, hits := apiServer(t, http.StatusOK, `[]`)
	env.env["GH_NOTIFIER_TOKEN"] = "ghp_test"
	cfg := env.writeConfig(map[string]interface{}{"api_url": srv.URL, "state_file": filepath.Join(env.home, "ids")})

	require.NoError(t, env.run("--config", cfg, "status"))
	assert.Equal(t, int32(1), atomic.LoadInt32(hits))
	assert.Empty(t, env.toggler.calls)
}

func TestPoll_UnknownFlagStillPolls(t *testing.T) {
	tests := map[string]struct {
		args []string
	}{
		"long flag":           {args: []string{"--now"}},
		"shorthand flag":      {args: []string{"-x"}},
		"flag with value":     {args: []string{"--interval=5m"}},
		"completion is plain": {args: []string{"completion"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t)
			srv, hits := apiServer(t, http.StatusOK, notificationsBody)
			env.env["GH_NOTIFIER_TOKEN"] = "ghp_test"
			cfg := env.writeConfig(map[string]interface{}{"api_url": srv.URL, "state_file": filepath.Join(env.home, "ids")})

			require.NoError(t, env.run(append([]string{"--config", cfg}, tt.args...)...))
			assert.Equal(t, int32(1), atomic.LoadInt32(hits))
			assert.Len(t, env.sender.shown, 2)
			assert.Empty(t, env.toggler.calls)
		})
	}
}

func TestPoll_Unauthorized(t *testing.T) {
	color.NoColor = true

	env := newTestEnv(t)
	srv, _ := apiServer(t, http.StatusUnauthorized, `{"message":"Bad credentials"}`)
	env.env["GH_NOTIFIER_TOKEN"] = "ghp_bad"
	stateFile := filepath.Join(env.home, "ids")
	require.NoError(t, os.WriteFile(stateFile, []byte("1t1"), 0o644))
	cfg := env.writeConfig(map[string]interface{}{"api_url": srv.URL, "state_file": stateFile})

	err := env.run("--config", cfg)

	require.Error(t, err)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.True(t, reported(err))
	assert.Contains(t, env.stderr.String(), "API Error:")
	assert.Equal(t, []string{"Github Notifier"}, env.sender.titles(), "only the error notification is shown")
	assert.Equal(t, "Error", env.sender.shown[0].Subtitle)
	assert.Equal(t, "Pop", env.sender.shown[0].Sound)

	data, err := os.ReadFile(stateFile)
	require.NoError(t, err)
	assert.Equal(t, "1t1", string(data))
}

func TestPoll_MissingToken(t *testing.T) {
	env := newTestEnv(t)
	srv, hits := apiServer(t, http.StatusOK, `[]`)
	cfg := env.writeConfig(map[string]interface{}{"api_url": srv.URL, "state_file": filepath.Join(env.home, "ids")})

	err := env.run("--config", cfg)

	require.Error(t, err)
	assert.Equal(t, ExitMissingCredential, ExitCode(err))
	assert.Contains(t, env.stderr.String(), "GH_NOTIFIER_TOKEN")
	assert.Zero(t, atomic.LoadInt32(hits))
	assert.Equal(t, []string{"Github Notifier"}, env.sender.titles())
}

func TestPoll_PersistenceFailure(t *testing.T) {
	env := newTestEnv(t)
	srv, _ := apiServer(t, http.StatusOK, notificationsBody)
	env.env["GH_NOTIFIER_TOKEN"] = "ghp_test"

	blocker := filepath.Join(env.home, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	cfg := env.writeConfig(map[string]interface{}{"api_url": srv.URL, "state_file": filepath.Join(blocker, "ids")})

	err := env.run("--config", cfg)

	require.Error(t, err)
	assert.Equal(t, ExitPersistence, ExitCode(err))
	// Both notifications were shown before the write failed, then the error.
	assert.Equal(t, []string{"New Github Notification", "New Github Notification", "Github Notifier"}, env.sender.titles())
}

func TestPoll_ErrorNotificationFailureIsNotFatal(t *testing.T) {
	env := newTestEnv(t)
	env.sender.err = errors.New("no display")
	cfg := env.writeConfig(map[string]interface{}{"state_file": filepath.Join(env.home, "ids")})

	err := env.run("--config", cfg)

	require.Error(t, err)
	assert.Equal(t, ExitMissingCredential, ExitCode(err))
}

func TestInvalidConfiguration(t *testing.T) {
	env := newTestEnv(t)
	cfg := env.writeConfig(map[string]interface{}{"log_level": "loud"})

	err := env.run("--config", cfg)

	require.Error(t, err)
	assert.Equal(t, ExitConfiguration, ExitCode(err))
	assert.False(t, reported(err))
	assert.Empty(t, env.sender.shown)
}

func TestServiceCommands(t *testing.T) {
	tests := map[string]struct {
		args       []string
		togglerErr error
		wantCalls  []string
	}{
		"start":             {args: []string{"start"}, wantCalls: []string{"start"}},
		"stop":              {args: []string{"stop"}, wantCalls: []string{"stop"}},
		"start with extras": {args: []string{"start", "now"}, wantCalls: []string{"start"}},
		"failure exits 0":   {args: []string{"stop"}, togglerErr: errors.New("unit not found"), wantCalls: []string{"stop"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t)
			env.toggler.err = tt.togglerErr
			srv, hits := apiServer(t, http.StatusOK, `[]`)
			cfg := env.writeConfig(map[string]interface{}{"api_url": srv.URL, "timer_unit": "custom.timer"})

			require.NoError(t, env.run(append([]string{"--config", cfg}, tt.args...)...))

			assert.Equal(t, tt.wantCalls, env.toggler.calls)
			assert.Equal(t, "custom.timer", env.toggler.opts.TimerUnit)
			assert.Zero(t, atomic.LoadInt32(hits), "service commands never poll")
			assert.Empty(t, env.sender.shown)
		})
	}
}

func TestServiceCommands_BrokenConfigUsesDefaults(t *testing.T) {
	tests := map[string]struct {
		contents  string
		args      []string
		wantCalls []string
	}{
		"invalid value":   {contents: `{"log_level":"loud"}`, args: []string{"start"}, wantCalls: []string{"start"}},
		"unparsable file": {contents: `{not json`, args: []string{"stop"}, wantCalls: []string{"stop"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t)
			cfg := filepath.Join(env.home, "broken.json")
			require.NoError(t, os.WriteFile(cfg, []byte(tt.contents), 0o644))

			require.NoError(t, env.run(append([]string{"--config", cfg}, tt.args...)...))

			assert.Equal(t, tt.wantCalls, env.toggler.calls)
			assert.Equal(t, config.DefaultTimerUnit, env.toggler.opts.TimerUnit)
			assert.Contains(t, env.stderr.String(), "using defaults")
		})
	}
}

func TestVersionCommand(t *testing.T) {
	env := newTestEnv(t)
	// Broken config does not affect version.
	cfg := env.writeConfig(map[string]interface{}{"log_level": "loud"})

	require.NoError(t, env.run("--config", cfg, "version"))
	assert.Contains(t, env.stdout.String(), "gh-notifier version dev")
	assert.Contains(t, env.stdout.String(), "Go version:")
}

func TestDoctorCommand(t *testing.T) {
	color.NoColor = true

	env := newTestEnv(t)
	env.env["GH_NOTIFIER_TOKEN"] = "ghp_test"
	cfg := env.writeConfig(map[string]interface{}{"state_file": filepath.Join(env.home, "ids")})

	require.NoError(t, env.run("--config", cfg, "doctor"))
	out := env.stdout.String()
	assert.Contains(t, out, "✓ GitHub token")
	assert.Contains(t, out, "✓ Notifier: notifications via recording")
	assert.Contains(t, out, "✓ Service manager: systemctl found")
	assert.Contains(t, out, "✓ State directory")
}

func TestDoctorCommand_Failure(t *testing.T) {
	color.NoColor = true

	env := newTestEnv(t)
	cfg := env.writeConfig(map[string]interface{}{"state_file": filepath.Join(env.home, "ids")})

	err := env.run("--config", cfg, "doctor")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, ExitCode(err))
	assert.Contains(t, env.stdout.String(), "✗ GitHub token")
}
