// Package history persists REPL history under the user cache directory as a
// msgpack payload, rewritten atomically on every append.
package history

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when the payload format changes.
const schemaVersion uint16 = 1

// maxEntries caps the persisted history; the oldest entries are trimmed.
const maxEntries = 500

// Entry is one evaluated REPL line.
type Entry struct {
	Expr   string
	Result int64
	Err    string
	When   time.Time
}

type payload struct {
	Schema  uint16
	Entries []Entry
}

// Store reads and writes the history file. Safe for concurrent use.
type Store struct {
	mu   sync.Mutex
	path string
}

// DefaultDir resolves the standard cache location for the app.
func DefaultDir(app string) (string, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".cache")
	}
	return filepath.Join(base, app), nil
}

// Open initializes a store rooted at dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{path: filepath.Join(dir, "history.mp")}, nil
}

// load reads the payload; a missing file or a schema mismatch yields an
// empty history rather than an error.
func (s *Store) load() (payload, error) {
	var p payload
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return payload{Schema: schemaVersion}, nil
		}
		return p, err
	}
	defer f.Close() //nolint:errcheck // read-only handle
	if err := msgpack.NewDecoder(f).Decode(&p); err != nil {
		return payload{}, err
	}
	if p.Schema != schemaVersion {
		return payload{Schema: schemaVersion}, nil
	}
	return p, nil
}

// save writes the payload through a temp file and an atomic rename.
func (s *Store) save(p payload) error {
	f, err := os.CreateTemp(filepath.Dir(s.path), "tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name()) //nolint:errcheck // gone after the rename
	if err := msgpack.NewEncoder(f).Encode(&p); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), s.path)
}

// Append adds one entry, trimming the oldest past the cap.
func (s *Store) Append(e Entry) error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load()
	if err != nil {
		return err
	}
	p.Schema = schemaVersion
	p.Entries = append(p.Entries, e)
	if len(p.Entries) > maxEntries {
		p.Entries = p.Entries[len(p.Entries)-maxEntries:]
	}
	return s.save(p)
}

// List returns the stored entries, oldest first.
func (s *Store) List() ([]Entry, error) {
	if s == nil {
		return nil, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load()
	if err != nil {
		return nil, err
	}
	return p.Entries, nil
}

// Clear removes the history file.
func (s *Store) Clear() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
