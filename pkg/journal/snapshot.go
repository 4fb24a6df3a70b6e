package journal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/lukaswerner/daygrid/pkg/errors"
)

// Snapshot is a portable export of the journal: every entry plus metadata
// identifying the export itself.
type Snapshot struct {
	ID         string            `json:"id"`
	ExportedAt time.Time         `json:"exported_at"`
	Entries    map[string]string `json:"entries"`
}

// ExportSnapshot reads the store and packages all entries.
func ExportSnapshot(ctx context.Context, store Store, clock Clock) (*Snapshot, error) {
	if clock == nil {
		clock = SystemClock()
	}
	entries, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string, len(entries))
	for k, v := range entries {
		out[string(k)] = v
	}
	return &Snapshot{
		ID:         uuid.NewString(),
		ExportedAt: clock.Now().UTC(),
		Entries:    out,
	}, nil
}

// Marshal serializes the snapshot as indented JSON.
func (s *Snapshot) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode snapshot")
	}
	return data, nil
}

// ParseSnapshot decodes an exported snapshot. Unlike store loads this is
// strict: an import of unreadable data should fail loudly, not silently
// produce an empty journal.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse snapshot")
	}
	if s.Entries == nil {
		s.Entries = map[string]string{}
	}
	return &s, nil
}

// ImportSnapshot merges snapshot entries into the store. Days that already
// have an entry are left untouched — submitted days are immutable, and an
// import must not rewrite history. Days with an invalid key are skipped.
// Returns the number of days imported.
func ImportSnapshot(ctx context.Context, store Store, snap *Snapshot) (int, error) {
	existing, err := store.Load(ctx)
	if err != nil {
		return 0, err
	}

	merged := existing.Clone()
	imported := 0
	for k, v := range snap.Entries {
		key := DateKey(k)
		if _, err := ParseKey(key); err != nil {
			continue
		}
		if _, ok := merged[key]; ok {
			continue
		}
		merged[key] = v
		imported++
	}

	if imported == 0 {
		return 0, nil
	}
	if err := store.Save(ctx, merged); err != nil {
		return 0, err
	}
	return imported, nil
}
