// Package clock produces the identifiers and ISO-8601 strings persisted by
// the record store. Every date or timestamp the service writes goes through
// one of the two layouts below, so lexicographic comparison of stored values
// is also chronological comparison.
package clock

import (
	"time"

	"github.com/google/uuid"
)

const (
	// DateLayout is used for date-only fields (due dates, expiry dates).
	DateLayout = "2006-01-02"
	// TimestampLayout is RFC 3339 with fixed millisecond precision in UTC.
	TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

func NewID() string {
	return uuid.NewString()
}

func Timestamp() string {
	return FormatTimestamp(time.Now())
}

func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func Today() string {
	return FormatDate(time.Now())
}

func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// DaysFromNow returns the date n days in the future as a date-only string.
func DaysFromNow(n int) string {
	return FormatDate(time.Now().AddDate(0, 0, n))
}

// CurrentMonth returns the current calendar month as "YYYY-MM".
func CurrentMonth() string {
	return time.Now().UTC().Format("2006-01")
}

// ParseDate validates a date-only string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// ParseTimestamp accepts any RFC 3339 timestamp.
func ParseTimestamp(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}
