package cli

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/lukaswerner/daygrid/pkg/errors"
	"github.com/lukaswerner/daygrid/pkg/journal"
)

func testCLI(t *testing.T) *CLI {
	t.Helper()
	c := New(os.Stderr, LogInfo)
	c.clock = journal.FixedClock{T: time.Date(2024, time.March, 15, 10, 0, 0, 0, time.UTC)}
	return c
}

func TestResolveDateDefaultsToToday(t *testing.T) {
	c := testCLI(t)

	key, err := c.resolveDate(nil)
	if err != nil {
		t.Fatalf("resolveDate() error = %v", err)
	}
	if key != "2024-03-15" {
		t.Errorf("resolveDate() = %q, want %q", key, "2024-03-15")
	}
}

func TestResolveDateExplicit(t *testing.T) {
	c := testCLI(t)

	key, err := c.resolveDate([]string{"2023-12-31"})
	if err != nil {
		t.Fatalf("resolveDate() error = %v", err)
	}
	if key != "2023-12-31" {
		t.Errorf("resolveDate() = %q, want %q", key, "2023-12-31")
	}
}

func TestResolveDateInvalid(t *testing.T) {
	c := testCLI(t)

	for _, arg := range []string{"yesterday", "2024/03/15", "2024-13-01"} {
		if _, err := c.resolveDate([]string{arg}); err == nil {
			t.Errorf("resolveDate(%q) should fail", arg)
		}
	}
}

func TestEntryTextFromArg(t *testing.T) {
	text, err := entryText(strings.NewReader("ignored"), []string{"a good day"})
	if err != nil {
		t.Fatalf("entryText() error = %v", err)
	}
	if text != "a good day" {
		t.Errorf("entryText() = %q", text)
	}
}

func TestEntryTextFromStdin(t *testing.T) {
	text, err := entryText(strings.NewReader("piped thought\n"), nil)
	if err != nil {
		t.Fatalf("entryText() error = %v", err)
	}
	// A single trailing newline is shell noise, not content.
	if text != "piped thought" {
		t.Errorf("entryText() = %q", text)
	}
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"", []string{"ansi"}},
		{"svg", []string{"svg"}},
		{"SVG, png", []string{"svg", "png"}},
		{"svg,,png", []string{"svg", "png"}},
	}
	for _, tt := range tests {
		got := parseFormats(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := validateFormats([]string{"ansi", "svg", "png"}); err != nil {
		t.Errorf("validateFormats() error = %v", err)
	}

	err := validateFormats([]string{"pdf"})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("validateFormats(pdf) error = %v, want INVALID_FORMAT", err)
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("one\ntwo"); !strings.HasPrefix(got, "one") {
		t.Errorf("firstLine() = %q, want first line only", got)
	}
	long := strings.Repeat("x", 200)
	if got := firstLine(long); len(got) >= 200 {
		t.Errorf("firstLine() did not truncate, len = %d", len(got))
	}
}
