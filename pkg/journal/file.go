package journal

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lukaswerner/daygrid/pkg/errors"
	"github.com/lukaswerner/daygrid/pkg/observability"
)

// FileStore persists entries as one JSON object in a single file.
// This is the default backend: a single-user journal on one machine.
type FileStore struct {
	mu   sync.RWMutex
	path string
}

// NewFileStore creates a file-backed store at path. If path is empty the
// XDG data directory is used (~/.local/share/daygrid/entries.json).
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		dir, err := DataDir()
		if err != nil {
			return nil, fmt.Errorf("resolve data dir: %w", err)
		}
		path = filepath.Join(dir, "entries.json")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{path: path}, nil
}

// DataDir returns the entry data directory using the XDG convention.
func DataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return filepath.Join(dataHome, "daygrid"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "daygrid"), nil
}

// Load reads the entry file. A missing file, unparseable content or a
// non-object document all yield an empty set; non-string values inside an
// otherwise valid object are dropped.
func (s *FileStore) Load(ctx context.Context) (Entries, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadLocked(ctx)
}

func (s *FileStore) loadLocked(ctx context.Context) (Entries, error) {
	start := time.Now()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		observability.Store().OnLoad(ctx, s.Backend(), 0, time.Since(start), nil)
		return Entries{}, nil
	}
	if err != nil {
		werr := errors.Wrap(errors.ErrCodeStore, err, "read %s", s.path)
		observability.Store().OnLoad(ctx, s.Backend(), 0, time.Since(start), werr)
		return nil, werr
	}

	entries := decodeEntries(data)
	observability.Store().OnLoad(ctx, s.Backend(), len(entries), time.Since(start), nil)
	return entries, nil
}

// Save rewrites the entry file in full.
func (s *FileStore) Save(ctx context.Context, entries Entries) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(ctx, entries)
}

func (s *FileStore) saveLocked(ctx context.Context, entries Entries) error {
	start := time.Now()

	data, err := encodeEntries(entries)
	if err != nil {
		observability.Store().OnSave(ctx, s.Backend(), len(entries), time.Since(start), err)
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		werr := errors.Wrap(errors.ErrCodeStore, err, "write %s", s.path)
		observability.Store().OnSave(ctx, s.Backend(), len(entries), time.Since(start), werr)
		return werr
	}

	observability.Store().OnSave(ctx, s.Backend(), len(entries), time.Since(start), nil)
	return nil
}

// Submit appends text for key if the key has no entry yet. The read and
// write happen under one lock, so a concurrent submit in the same process
// cannot double-write a day.
func (s *FileStore) Submit(ctx context.Context, key DateKey, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.loadLocked(ctx)
	if err != nil {
		observability.Store().OnSubmit(ctx, s.Backend(), string(key), err)
		return err
	}
	if _, ok := entries[key]; ok {
		lerr := errors.New(errors.ErrCodeDayLocked, "day %s already has an entry", key)
		observability.Store().OnSubmit(ctx, s.Backend(), string(key), lerr)
		return lerr
	}

	entries[key] = text
	err = s.saveLocked(ctx, entries)
	observability.Store().OnSubmit(ctx, s.Backend(), string(key), err)
	return err
}

// Backend returns "file".
func (s *FileStore) Backend() string { return "file" }

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

// Path returns the entries file location.
func (s *FileStore) Path() string { return s.path }

var _ Store = (*FileStore)(nil)
