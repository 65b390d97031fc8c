// Package storage owns the working directory that holds every persisted
// entity file. It exposes raw read/write/append primitives; the records
// package gives the bytes their meaning.
//
// The store is built for single-process, single-writer use. Callers
// serialize their own read-modify-write sequences; each call here is one
// complete, self-contained file operation with no locking across calls.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/gobwas/glob"

	"github.com/mochihq/mochi/pkg/logging"
)

// DefaultDirName is the base directory used when none is configured,
// resolved under the user's home directory.
const DefaultDirName = ".mochi"

// Fixed entity file paths, relative to the base directory.
const (
	PathConfig    = "config.md"
	PathTasks     = "state/current.md"
	PathGoals     = "state/goals.md"
	PathProgress  = "state/mochi.md"
	PathMeetings  = "state/meetings.md"
	PathInventory = "inventory/items.md"
)

// ErrOutsideBase is returned when a relative path escapes the base
// directory.
var ErrOutsideBase = errors.New("storage: path escapes base directory")

// Store provides file access under a single base directory. Construct one
// at startup and pass it to the components that need it.
type Store struct {
	base string
	log  *logging.Logger
}

// New opens the store rooted at baseDir, creating the expected subtree and
// default files on first use. An empty baseDir resolves to ~/.mochi.
// Existing files are never overwritten; bootstrap is idempotent.
func New(baseDir string) (*Store, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: resolve home directory: %w", err)
		}
		baseDir = filepath.Join(home, DefaultDirName)
	}
	abs, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve base directory: %w", err)
	}

	// NewLogger falls back to stderr on error; the store stays usable.
	log, _ := logging.NewLogger("storage")

	s := &Store{base: abs, log: log}
	if err := s.bootstrap(); err != nil {
		return nil, err
	}
	return s, nil
}

// BaseDir returns the absolute base directory of the store.
func (s *Store) BaseDir() string {
	return s.base
}

// resolve turns a relative path into an absolute one confined to the base
// directory.
func (s *Store) resolve(rel string) (string, error) {
	path := filepath.Join(s.base, rel)
	if path != s.base && !strings.HasPrefix(path, s.base+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideBase, rel)
	}
	return path, nil
}

// Read returns the content of a file, or ("", false) when the file does
// not exist or cannot be read. Absence is not an error at this layer; the
// caller substitutes defaults.
func (s *Store) Read(rel string) (string, bool) {
	path, err := s.resolve(rel)
	if err != nil {
		s.log.Warnf("read %s rejected: %v", rel, err)
		return "", false
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warnf("read %s: %v", rel, err)
		}
		return "", false
	}
	return string(b), true
}

// Write replaces the file content wholesale, creating intermediate
// directories as needed. The write goes through a temporary file and a
// rename so readers never observe a partially written file.
func (s *Store) Write(rel, text string) error {
	path, err := s.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("storage: create directory for %s: %w", rel, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(text), 0o600); err != nil {
		return fmt.Errorf("storage: write temp file for %s: %w", rel, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp) // best-effort cleanup
		s.log.Errorf("write %s: %v", rel, err)
		return fmt.Errorf("storage: atomic rename %s: %w", rel, err)
	}
	return nil
}

// Append adds text to the end of the file, creating it (and intermediate
// directories) when it does not exist yet.
func (s *Store) Append(rel, text string) error {
	path, err := s.resolve(rel)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("storage: create directory for %s: %w", rel, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		s.log.Errorf("append %s: %v", rel, err)
		return fmt.Errorf("storage: open %s for append: %w", rel, err)
	}
	defer f.Close()
	if _, err := f.WriteString(text); err != nil {
		s.log.Errorf("append %s: %v", rel, err)
		return fmt.Errorf("storage: append to %s: %w", rel, err)
	}
	return nil
}

// List returns the sorted file names directly under a relative directory.
// Subdirectories are skipped.
func (s *Store) List(relDir string) ([]string, error) {
	path, err := s.resolve(relDir)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("storage: list %s: %w", relDir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Glob returns the sorted file names under a relative directory that match
// the given glob pattern.
func (s *Store) Glob(relDir, pattern string) ([]string, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("storage: compile pattern %q: %w", pattern, err)
	}
	names, err := s.List(relDir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, n := range names {
		if g.Match(n) {
			out = append(out, n)
		}
	}
	return out, nil
}

// AppendSession appends an entry to the day's chat transcript under
// sessions/. Transcripts are append-only, one file per day.
func (s *Store) AppendSession(day time.Time, entry string) error {
	rel := filepath.Join("sessions", day.Format("2006-01-02")+".md")
	return s.Append(rel, entry)
}
