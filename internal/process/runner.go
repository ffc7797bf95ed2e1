// Package process runs external commands for the service toggler and the
// notification backends. Commands are executed directly from an argv slice;
// nothing is passed through a shell.
package process

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Result is the outcome of a finished command.
type Result struct {
	ExitStatus int
	Stderr     string
}

// Success reports whether the command exited with status 0.
func (r Result) Success() bool {
	return r.ExitStatus == 0
}

// Runner executes external commands.
type Runner interface {
	// Run executes argv[0] with argv[1:] and waits for it to finish.
	// A non-zero exit status is returned as an error along with the Result.
	Run(ctx context.Context, argv ...string) (Result, error)

	// LookPath reports whether the named command is available in PATH.
	LookPath(name string) bool
}

// ExecRunner implements Runner with os/exec.
type ExecRunner struct{}

// Compile-time interface verification
var _ Runner = (*ExecRunner)(nil)

// NewExecRunner creates a runner backed by os/exec.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run executes the command and captures its stderr.
func (r *ExecRunner) Run(ctx context.Context, argv ...string) (Result, error) {
	if len(argv) == 0 {
		return Result{ExitStatus: -1}, fmt.Errorf("empty command")
	}

	var stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stderr: strings.TrimSpace(stderr.String())}
	if err == nil {
		return res, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitStatus = exitErr.ExitCode()
		return res, &ExitError{Argv: argv, Result: res}
	}

	res.ExitStatus = -1
	return res, fmt.Errorf("running %s: %w", argv[0], err)
}

// LookPath checks PATH for name.
func (r *ExecRunner) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// ExitError reports a command that ran but exited non-zero.
type ExitError struct {
	Argv   []string
	Result Result
}

func (e *ExitError) Error() string {
	msg := fmt.Sprintf("%s exited with status %d", strings.Join(e.Argv, " "), e.Result.ExitStatus)
	if e.Result.Stderr != "" {
		msg += ": " + e.Result.Stderr
	}
	return msg
}
