package journal

import (
	"context"

	"github.com/lukaswerner/daygrid/pkg/errors"
)

// Session is the day policy state for one run of the application: the fixed
// "today", the user-navigable selected day, and the loaded entries. It is
// the single owner of the store for the session — entries are loaded once
// at construction and written back on every accepted submission.
//
// Session is not safe for concurrent use; the CLI and TUI drive it from a
// single goroutine. Shared-backend races are handled by the store's
// compare-and-set Submit, not by the session.
type Session struct {
	store    Store
	today    DateKey
	selected DateKey
	entries  Entries
}

// NewSession loads the store and positions the cursor on today. Today is
// captured from clock exactly once; a session spanning midnight keeps its
// original today until restarted.
func NewSession(ctx context.Context, store Store, clock Clock) (*Session, error) {
	if clock == nil {
		clock = SystemClock()
	}
	entries, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}
	today := KeyFor(clock.Now())
	return &Session{
		store:    store,
		today:    today,
		selected: today,
		entries:  entries,
	}, nil
}

// Today returns the session's fixed current day.
func (s *Session) Today() DateKey { return s.today }

// Selected returns the day the cursor is on.
func (s *Session) Selected() DateKey { return s.selected }

// GoToPreviousDay moves the cursor back one calendar day.
func (s *Session) GoToPreviousDay() { s.selected = s.selected.Prev() }

// GoToNextDay moves the cursor forward one calendar day.
func (s *Session) GoToNextDay() { s.selected = s.selected.Next() }

// GoToToday resets the cursor to today.
func (s *Session) GoToToday() { s.selected = s.today }

// Select moves the cursor to an arbitrary valid day.
func (s *Session) Select(key DateKey) error {
	if _, err := ParseKey(key); err != nil {
		return err
	}
	s.selected = key
	return nil
}

// IsTodaySelected reports whether the cursor is on today.
func (s *Session) IsTodaySelected() bool { return s.selected == s.today }

// HasSubmitted reports whether day has an entry. This is a presence test,
// not a truthiness test: an explicitly empty submitted string counts.
func (s *Session) HasSubmitted(day DateKey) bool {
	_, ok := s.entries[day]
	return ok
}

// Entry returns the stored text for day and whether one exists.
func (s *Session) Entry(day DateKey) (string, bool) {
	text, ok := s.entries[day]
	return text, ok
}

// Entries returns a copy of all loaded entries.
func (s *Session) Entries() Entries { return s.entries.Clone() }

// IsEditable reports whether the selected day accepts a submission: it must
// be today, and today must not have an entry yet.
func (s *Session) IsEditable() bool {
	return s.IsTodaySelected() && !s.HasSubmitted(s.today)
}

// Submit records draft as today's entry. Once accepted the day is locked
// for the rest of the session and, being persisted, for every future one.
//
// Rejections by code:
//   - UNCHANGED_TEXT: draft equals the already stored text for the day
//   - NOT_TODAY: the cursor is on a different day
//   - DAY_LOCKED: today already has an entry
func (s *Session) Submit(ctx context.Context, draft string) error {
	if err := errors.ValidateEntryText(draft); err != nil {
		return err
	}
	if stored, ok := s.entries[s.selected]; ok && stored == draft {
		return errors.New(errors.ErrCodeUnchanged, "entry for %s is unchanged", s.selected)
	}
	if !s.IsTodaySelected() {
		return errors.New(errors.ErrCodeNotToday, "only today (%s) accepts entries", s.today)
	}
	if s.HasSubmitted(s.today) {
		return errors.New(errors.ErrCodeDayLocked, "day %s already has an entry", s.today)
	}

	if err := s.store.Submit(ctx, s.today, draft); err != nil {
		return err
	}
	s.entries[s.today] = draft
	return nil
}
