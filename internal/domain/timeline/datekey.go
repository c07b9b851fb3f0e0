package timeline

import (
	"fmt"
	"strings"
	"time"
)

// dateKeyLayout is the calendar-day key format. Lexicographic order on keys
// matches chronological order, which the grouping engine relies on.
const dateKeyLayout = "2006-01-02"

// DateKey is a timezone-safe calendar-day key in YYYY-MM-DD form.
type DateKey string

// KeyUndated is the bucket key for items whose dates could not be resolved
// upstream (zero effective date). It is the zero time's key, which sorts
// after every real date under the date-descending group order.
const KeyUndated DateKey = "0001-01-01"

// KeyFor derives the calendar-day key from a time using its own wall-clock
// components, never UTC-shifted fields.
func KeyFor(t time.Time) DateKey {
	return DateKey(t.Format(dateKeyLayout))
}

// Label returns the display string for the key, e.g. "FEB 8, 2026". The
// undated key renders as "Undated". Labels are derived purely from the key
// and are independent of locale-sensitive formatting.
func (k DateKey) Label() string {
	if k == KeyUndated {
		return "Undated"
	}
	t, err := time.Parse(dateKeyLayout, string(k))
	if err != nil {
		return string(k)
	}
	return fmt.Sprintf("%s %d, %d", strings.ToUpper(t.Format("Jan")), t.Day(), t.Year())
}

// ParseLocalDate parses a downstream date representation into a local time.
//
// A pure YYYY-MM-DD string is interpreted as that calendar day in the local
// zone, so the day never shifts with the runtime's timezone offset. A full
// RFC 3339 timestamp is converted to its local representation, giving the
// local year/month/day of the instant.
func ParseLocalDate(value string) (time.Time, error) {
	if len(value) == len(dateKeyLayout) {
		t, err := time.ParseInLocation(dateKeyLayout, value, time.Local)
		if err != nil {
			return time.Time{}, fmt.Errorf("parsing date %q: %w", value, err)
		}
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing timestamp %q: %w", value, err)
	}
	return t.Local(), nil
}
