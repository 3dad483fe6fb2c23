// Package domain defines the calendar domain model: date keys, entries,
// category stores and the snapshot that persists them.
package domain

import (
	"errors"
	"time"
)

// DateKeyLayout is the canonical YYYY-MM-DD form. Lexical order of keys
// equals calendar order.
const DateKeyLayout = "2006-01-02"

// ErrInvalidDateKey reports a string or (y,m,d) triple that is not a valid
// proleptic Gregorian calendar date.
var ErrInvalidDateKey = errors.New("invalid calendar date")

// DateKey is the canonical sortable string form of a calendar date.
type DateKey string

// NewDateKey builds a DateKey from a calendar date, rejecting impossible
// dates such as February 30.
func NewDateKey(year int, month time.Month, day int) (DateKey, error) {
	if year < 1 || year > 9999 {
		return "", ErrInvalidDateKey
	}
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || t.Month() != month || t.Day() != day {
		return "", ErrInvalidDateKey
	}
	return DateKey(t.Format(DateKeyLayout)), nil
}

// ParseDateKey validates a YYYY-MM-DD string and returns it as a DateKey.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(DateKeyLayout, s)
	if err != nil {
		return "", ErrInvalidDateKey
	}
	// time.Parse accepts e.g. "2025-3-10" variants only for other layouts,
	// but re-format to reject any non canonical spelling that slips through
	if t.Format(DateKeyLayout) != s {
		return "", ErrInvalidDateKey
	}
	return DateKey(s), nil
}

// Time returns the date at midnight UTC.
func (k DateKey) Time() time.Time {
	t, _ := time.Parse(DateKeyLayout, string(k))
	return t
}

func (k DateKey) String() string {
	return string(k)
}
