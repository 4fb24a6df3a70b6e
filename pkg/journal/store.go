package journal

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/lukaswerner/daygrid/pkg/errors"
)

// Entries maps date keys to submitted entry text.
type Entries map[DateKey]string

// Clone returns a shallow copy of the entry set.
func (e Entries) Clone() Entries {
	out := make(Entries, len(e))
	for k, v := range e {
		out[k] = v
	}
	return out
}

// Store is a persistence backend for journal entries.
//
// All backends share the fail-soft load contract: missing, corrupt or
// wrong-shaped persisted state yields an empty entry set, never an error.
// Only genuine backend failures (I/O, network) are surfaced.
type Store interface {
	// Load returns all persisted entries.
	Load(ctx context.Context) (Entries, error)

	// Save rewrites the full entry set, replacing whatever was stored.
	// Callers must load before their first save; saving an unread store
	// would destroy persisted entries.
	Save(ctx context.Context, entries Entries) error

	// Submit stores text for key only if the key has no entry yet.
	// Returns ErrCodeDayLocked if an entry already exists. This is the
	// compare-and-set that keeps "submit once" true even when a backend
	// is shared between clients.
	Submit(ctx context.Context, key DateKey, text string) error

	// Backend names the backend for logs and hooks.
	Backend() string

	// Close releases backend resources.
	Close() error
}

// decodeEntries parses persisted JSON into an entry set. Corruption is
// swallowed: non-JSON data or a non-object document decodes to an empty set,
// and values of any type other than string are dropped.
func decodeEntries(data []byte) Entries {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Entries{}
	}
	entries := make(Entries, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			entries[DateKey(k)] = s
		}
	}
	return entries
}

// encodeEntries serializes the entry set as one JSON object with string
// keys and string values.
func encodeEntries(entries Entries) ([]byte, error) {
	out := make(map[string]string, len(entries))
	for k, v := range entries {
		out[string(k)] = v
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode entries")
	}
	return data, nil
}

// MemoryStore keeps entries in process memory. Used by tests and the
// "memory" backend for throwaway runs.
type MemoryStore struct {
	mu      sync.RWMutex
	entries Entries
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: Entries{}}
}

// Load returns a copy of the stored entries.
func (s *MemoryStore) Load(ctx context.Context) (Entries, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries.Clone(), nil
}

// Save replaces the stored entries.
func (s *MemoryStore) Save(ctx context.Context, entries Entries) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries.Clone()
	return nil
}

// Submit stores text for key unless the key already has an entry.
func (s *MemoryStore) Submit(ctx context.Context, key DateKey, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.entries[key]; ok {
		return errors.New(errors.ErrCodeDayLocked, "day %s already has an entry", key)
	}
	s.entries[key] = text
	return nil
}

// Backend returns "memory".
func (s *MemoryStore) Backend() string { return "memory" }

// Close does nothing.
func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
