package timeutil

import (
	"fmt"
	"regexp"
	"time"
)

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// UpstreamLayout is the exact timestamp shape emitted by the ESPN API (UTC, minute precision).
const UpstreamLayout = "2006-01-02T15:04Z"

// CanonicalLayout is the flat record timestamp shape: two-digit year, seconds pinned to 00.
const CanonicalLayout = "06-01-02 15:04:00"

// DateKeyLayout renders a date as YYYYMMDD for use in `dates` query parameters.
const DateKeyLayout = "20060102"

var dateKeyPattern = regexp.MustCompile(`^\d{8}$`)

// FormatError reports a date/time string that does not match the expected wire pattern.
type FormatError struct {
	Value  string
	Layout string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("timeutil: value %q does not match layout %q", e.Value, e.Layout)
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ToCanonicalDateTime re-renders an upstream UTC timestamp as the canonical
// flat-record form. No timezone conversion happens; the output is UTC wall clock.
func ToCanonicalDateTime(raw string) (string, error) {
	t, err := time.Parse(UpstreamLayout, raw)
	if err != nil {
		return "", &FormatError{Value: raw, Layout: UpstreamLayout}
	}
	return t.Format(CanonicalLayout), nil
}

// ParseUpstream parses an upstream UTC timestamp into a time value.
func ParseUpstream(raw string) (time.Time, error) {
	t, err := time.Parse(UpstreamLayout, raw)
	if err != nil {
		return time.Time{}, &FormatError{Value: raw, Layout: UpstreamLayout}
	}
	return t, nil
}

// DateKey renders a time as a YYYYMMDD query key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// NormalizeDateKey accepts a pre-formatted YYYYMMDD key or a YYYY-MM-DD date
// string and returns the YYYYMMDD form.
func NormalizeDateKey(value string) (string, error) {
	if dateKeyPattern.MatchString(value) {
		return value, nil
	}
	if t, err := time.Parse(DateLayout, value); err == nil {
		return DateKey(t), nil
	}
	return "", &FormatError{Value: value, Layout: DateKeyLayout}
}

// DateKeyRange renders a start/end pair as "{startKey}-{endKey}".
func DateKeyRange(start, end string) string {
	return start + "-" + end
}
