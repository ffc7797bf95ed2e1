// Package seen persists the identifiers of notifications that were already
// announced and splits a fetched batch into new and already-seen items.
//
// The file holds identifiers joined by commas, with no trailing delimiter and no
// header. It is replaced in full on every run.
package seen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ghnerrors "github.com/gh-notifier/gh-notifier/internal/errors"
)

// Separator joins identifiers in the file.
const Separator = ","

// Set is the set of identifiers read from the file.
type Set map[string]struct{}

// NewSet builds a Set from identifiers.
func NewSet(ids ...string) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is in the set. Matching is exact.
func (s Set) Contains(id string) bool {
	_, ok := s[id]
	return ok
}

// Parse splits file contents into a Set. Empty contents give an empty set.
func Parse(contents string) Set {
	if contents == "" {
		return Set{}
	}
	return NewSet(strings.Split(contents, Separator)...)
}

// Store reads and writes the seen-set file at a fixed path.
type Store struct {
	path string
}

// NewStore creates a store for path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the seen-set. A missing file is an empty set, not an error.
// Other read failures are Persistence errors.
func (s *Store) Load() (Set, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Set{}, nil
		}
		return Set{}, ghnerrors.NewPersistenceError("reading", s.path, err)
	}
	return Parse(string(data)), nil
}

// Save replaces the file with ids joined by Separator. Zero ids write an empty
// file. Uses atomic write pattern: write to a temp file, then rename.
func (s *Store) Save(ids []string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ghnerrors.NewPersistenceError("creating directory for", s.path, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+"-*.tmp")
	if err != nil {
		return ghnerrors.NewPersistenceError("writing", s.path, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.WriteString(strings.Join(ids, Separator)); err != nil {
		tmp.Close()
		return ghnerrors.NewPersistenceError("writing", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		return ghnerrors.NewPersistenceError("writing", s.path, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return ghnerrors.NewPersistenceError("writing", s.path, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return ghnerrors.NewPersistenceError("writing", s.path, fmt.Errorf("renaming temp file: %w", err))
	}
	tmpPath = ""
	return nil
}
