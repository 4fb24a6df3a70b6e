package journal

import (
	"context"
	"testing"
	"time"
)

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Save(ctx, Entries{"2024-01-01": "a", "2024-01-02": ""}); err != nil {
		t.Fatal(err)
	}

	clock := FixedClock{T: time.Date(2024, 1, 3, 12, 0, 0, 0, time.UTC)}
	snap, err := ExportSnapshot(ctx, store, clock)
	if err != nil {
		t.Fatalf("ExportSnapshot error: %v", err)
	}
	if snap.ID == "" {
		t.Error("snapshot should carry an id")
	}
	if !snap.ExportedAt.Equal(clock.T) {
		t.Errorf("ExportedAt = %v, want %v", snap.ExportedAt, clock.T)
	}
	if len(snap.Entries) != 2 {
		t.Fatalf("snapshot has %d entries, want 2", len(snap.Entries))
	}

	data, err := snap.Marshal()
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	parsed, err := ParseSnapshot(data)
	if err != nil {
		t.Fatalf("ParseSnapshot error: %v", err)
	}
	if parsed.ID != snap.ID || len(parsed.Entries) != 2 {
		t.Errorf("parsed snapshot differs: %+v", parsed)
	}
}

func TestParseSnapshotRejectsGarbage(t *testing.T) {
	if _, err := ParseSnapshot([]byte("not json")); err == nil {
		t.Error("ParseSnapshot should fail on garbage")
	}
}

func TestImportSnapshotMergesOnlyNewDays(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	if err := store.Save(ctx, Entries{"2024-01-01": "original"}); err != nil {
		t.Fatal(err)
	}

	snap := &Snapshot{
		Entries: map[string]string{
			"2024-01-01": "overwrite attempt",
			"2024-01-02": "new day",
			"bad-key":    "skipped",
		},
	}
	imported, err := ImportSnapshot(ctx, store, snap)
	if err != nil {
		t.Fatalf("ImportSnapshot error: %v", err)
	}
	if imported != 1 {
		t.Errorf("imported = %d, want 1", imported)
	}

	entries, _ := store.Load(ctx)
	if entries["2024-01-01"] != "original" {
		t.Error("import must not overwrite an existing day")
	}
	if entries["2024-01-02"] != "new day" {
		t.Error("import should add the new day")
	}
	if _, ok := entries["bad-key"]; ok {
		t.Error("import should skip invalid date keys")
	}
}

func TestImportSnapshotEmpty(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	imported, err := ImportSnapshot(ctx, store, &Snapshot{Entries: map[string]string{}})
	if err != nil {
		t.Fatalf("ImportSnapshot error: %v", err)
	}
	if imported != 0 {
		t.Errorf("imported = %d, want 0", imported)
	}
}
