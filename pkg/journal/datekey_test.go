package journal

import (
	"testing"
	"time"

	"github.com/lukaswerner/daygrid/pkg/errors"
)

func TestKeyFor(t *testing.T) {
	k := KeyFor(time.Date(2024, 3, 7, 15, 4, 5, 0, time.Local))
	if k != "2024-03-07" {
		t.Errorf("KeyFor() = %q, want 2024-03-07", k)
	}
}

func TestParseKey(t *testing.T) {
	valid := []DateKey{"2024-01-01", "2024-02-29", "1999-12-31"}
	for _, k := range valid {
		if _, err := ParseKey(k); err != nil {
			t.Errorf("ParseKey(%q) error: %v", k, err)
		}
	}

	invalid := []DateKey{"", "2024-1-1", "2024/01/01", "2023-02-29", "2024-13-01", "not-a-day"}
	for _, k := range invalid {
		if _, err := ParseKey(k); err == nil {
			t.Errorf("ParseKey(%q) should fail", k)
		} else if !errors.Is(err, errors.ErrCodeInvalidDate) {
			t.Errorf("ParseKey(%q) code = %v, want INVALID_DATE", k, errors.GetCode(err))
		}
	}
}

func TestNextPrevInverse(t *testing.T) {
	// Next then Prev must return to the original day, including across
	// month, year and leap boundaries.
	keys := []DateKey{
		"2024-02-29", // leap day
		"2024-02-28",
		"2023-12-31", // year boundary
		"2024-01-31", // month boundary
		"2024-06-15",
	}
	for _, k := range keys {
		if got := k.Next().Prev(); got != k {
			t.Errorf("%s.Next().Prev() = %s, want %s", k, got, k)
		}
		if got := k.Prev().Next(); got != k {
			t.Errorf("%s.Prev().Next() = %s, want %s", k, got, k)
		}
	}
}

func TestNextPrevBoundaries(t *testing.T) {
	tests := []struct {
		key  DateKey
		next DateKey
		prev DateKey
	}{
		{"2024-02-29", "2024-03-01", "2024-02-28"},
		{"2023-12-31", "2024-01-01", "2023-12-30"},
		{"2024-01-01", "2024-01-02", "2023-12-31"},
		{"2023-02-28", "2023-03-01", "2023-02-27"},
	}
	for _, tt := range tests {
		if got := tt.key.Next(); got != tt.next {
			t.Errorf("%s.Next() = %s, want %s", tt.key, got, tt.next)
		}
		if got := tt.key.Prev(); got != tt.prev {
			t.Errorf("%s.Prev() = %s, want %s", tt.key, got, tt.prev)
		}
	}
}

func TestNextPrevWalkYear(t *testing.T) {
	// Walking a whole year forward and back lands exactly on the start.
	start := DateKey("2024-01-01")
	k := start
	for i := 0; i < 366; i++ {
		k = k.Next()
	}
	if k != "2025-01-01" {
		t.Fatalf("366 days after %s = %s, want 2025-01-01", start, k)
	}
	for i := 0; i < 366; i++ {
		k = k.Prev()
	}
	if k != start {
		t.Errorf("round trip ended at %s, want %s", k, start)
	}
}
