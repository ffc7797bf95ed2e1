package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/gh-notifier/gh-notifier/internal/process"
)

// fakeToggler records calls and returns a configured error.
type fakeToggler struct {
	err   error
	calls []string
}

func (f *fakeToggler) Start(context.Context) error {
	f.calls = append(f.calls, "start")
	return f.err
}

func (f *fakeToggler) Stop(context.Context) error {
	f.calls = append(f.calls, "stop")
	return f.err
}

func (f *fakeToggler) Name() string { return "fake" }

// fakeRunner records commands. Commands listed in fail exit non-zero.
type fakeRunner struct {
	mu       sync.Mutex
	fail     map[string]bool
	commands []string
}

func newFakeRunner(fail ...string) *fakeRunner {
	r := &fakeRunner{fail: map[string]bool{}}
	for _, c := range fail {
		r.fail[c] = true
	}
	return r
}

func (r *fakeRunner) Run(_ context.Context, argv ...string) (process.Result, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cmd := strings.Join(argv, " ")
	r.commands = append(r.commands, cmd)
	if r.fail[cmd] {
		res := process.Result{ExitStatus: 1, Stderr: "unit not found"}
		return res, &process.ExitError{Argv: argv, Result: res}
	}
	return process.Result{}, nil
}

func (r *fakeRunner) LookPath(string) bool { return true }

var errToggle = errors.New("toggle failed")
