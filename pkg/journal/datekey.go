// Package journal holds the entry store and the day policy: which calendar
// day is selected, whether it is still editable, and how submitted text is
// persisted. One entry per day; once a day has an entry it is locked for
// good.
package journal

import (
	"time"

	"github.com/lukaswerner/daygrid/pkg/errors"
)

// keyLayout is the canonical DateKey format.
const keyLayout = "2006-01-02"

// DateKey identifies one calendar day in local time, formatted YYYY-MM-DD.
// It is the sole identity for entries and the seed for the day's glyph.
type DateKey string

// KeyFor returns the DateKey for the calendar day containing t.
func KeyFor(t time.Time) DateKey {
	return DateKey(t.Format(keyLayout))
}

// ParseKey validates key and resolves it to midnight local time.
func ParseKey(key DateKey) (time.Time, error) {
	if err := errors.ValidateDateKeyFormat(string(key)); err != nil {
		return time.Time{}, err
	}
	t, err := time.ParseInLocation(keyLayout, string(key), time.Local)
	if err != nil {
		return time.Time{}, errors.Wrap(errors.ErrCodeInvalidDate, err, "not a calendar day: %q", key)
	}
	return t, nil
}

// Next returns the following calendar day. Calendar arithmetic, not
// timestamp arithmetic: month, year and DST boundaries roll correctly.
// Invalid keys are returned unchanged; session navigation only ever holds
// valid keys.
func (k DateKey) Next() DateKey {
	return k.shift(1)
}

// Prev returns the preceding calendar day. Inverse of Next.
func (k DateKey) Prev() DateKey {
	return k.shift(-1)
}

func (k DateKey) shift(days int) DateKey {
	t, err := ParseKey(k)
	if err != nil {
		return k
	}
	return KeyFor(t.AddDate(0, 0, days))
}
