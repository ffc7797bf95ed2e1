package cli

import (
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/gh-notifier/gh-notifier/internal/notify"
	"github.com/gh-notifier/gh-notifier/internal/process"
	"github.com/gh-notifier/gh-notifier/internal/service"
	"github.com/gh-notifier/gh-notifier/internal/token"
	"github.com/rs/zerolog"
)

// Deps are the process-level collaborators of the commands. Tests replace them.
type Deps struct {
	Stdout io.Writer
	Stderr io.Writer

	// Lookup reads environment variables
	Lookup token.LookupFunc

	// Runner executes external tools
	Runner process.Runner

	// HTTPClient overrides the API client's transport when set
	HTTPClient *http.Client

	NewSender  func(process.Runner, zerolog.Logger) notify.Sender
	NewToggler func(process.Runner, service.Options, zerolog.Logger) service.Toggler

	// GOOS is the operating system reported by doctor
	GOOS string
}

// DefaultDeps returns the collaborators of a real invocation.
func DefaultDeps() *Deps {
	return &Deps{
		Stdout:     os.Stdout,
		Stderr:     os.Stderr,
		Lookup:     os.LookupEnv,
		Runner:     process.NewExecRunner(),
		NewSender:  notify.NewSender,
		NewToggler: service.NewToggler,
		GOOS:       runtime.GOOS,
	}
}
