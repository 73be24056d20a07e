package history

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when the payload format changes.
const schemaVersion uint16 = 1

// Entry is one successfully evaluated expression.
type Entry struct {
	Expression  string
	Value       float64
	EvaluatedAt time.Time
}

type payload struct {
	Schema  uint16
	Entries []Entry
}

// Store persists evaluation history on disk as msgpack.
// Thread-safe for concurrent access within one process.
type Store struct {
	mu   sync.Mutex
	path string
}

// Open initialises a store at the standard cache location for app.
func Open(app string) (*Store, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{path: filepath.Join(dir, "history.mp")}, nil
}

// OpenAt initialises a store backed by an explicit file path.
func OpenAt(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Append adds an entry and rewrites the file atomically.
func (s *Store) Append(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load()
	if err != nil {
		return err
	}
	p.Entries = append(p.Entries, e)
	return s.write(p)
}

// List returns up to limit most recent entries, newest last.
// A limit of 0 returns everything.
func (s *Store) List(limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := s.load()
	if err != nil {
		return nil, err
	}
	entries := p.Entries
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

// Clear removes the history file.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *Store) load() (payload, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return payload{Schema: schemaVersion}, nil
	}
	if err != nil {
		return payload{}, err
	}

	var p payload
	if err := msgpack.Unmarshal(raw, &p); err != nil || p.Schema != schemaVersion {
		// Unreadable or stale schema: start over rather than fail.
		return payload{Schema: schemaVersion}, nil
	}
	return p, nil
}

func (s *Store) write(p payload) error {
	raw, err := msgpack.Marshal(&p)
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(raw); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, s.path)
}
