// Package token loads the GitHub access token used to poll notifications.
package token

import (
	"os"

	ghnerrors "github.com/gh-notifier/gh-notifier/internal/errors"
)

// EnvVar is the environment variable holding the bearer token.
const EnvVar = "GH_NOTIFIER_TOKEN"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load reads the token from the environment.
// An unset or empty variable yields a MissingCredential error. The token's
// format and scopes are not checked; the API reports those.
func Load(lookup LookupFunc) (string, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	value, ok := lookup(EnvVar)
	if !ok || value == "" {
		return "", ghnerrors.NewMissingCredential(EnvVar)
	}
	return value, nil
}

// FromEnv is Load(os.LookupEnv).
func FromEnv() (string, error) {
	return Load(os.LookupEnv)
}
