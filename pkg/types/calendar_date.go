package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// CalendarDateFormat zero-padded YYYY-MM-DD
	CalendarDateFormat = "2006-01-02"

	invalidDateLiteral = "invalid"
)

// ErrInvalidCalendarDate is returned by Validate for the invalid sentinel
var ErrInvalidCalendarDate = errors.New("invalid calendar date")

// parseLayouts are tried in order on the raw input before any suffix retries.
var parseLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	CalendarDateFormat,
}

// CalendarDate is a whole day with time-of-day and zone stripped.
//
// The zero value means "unset". A failed parse produces the invalid sentinel,
// which is neither unset nor a real date.
type CalendarDate struct {
	year    int
	month   time.Month
	day     int
	invalid bool
}

// InvalidCalendarDate returns the sentinel for unparseable input
func InvalidCalendarDate() CalendarDate {
	return CalendarDate{invalid: true}
}

// NewCalendarDate builds a date, normalizing overflow the same way time.Date does
// (e.g. June 31 becomes July 1).
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	y, m, d := t.Date()
	return CalendarDate{year: y, month: m, day: d}
}

// CalendarDateFromTime keeps the date of t as seen in t's own location.
func CalendarDateFromTime(t time.Time) CalendarDate {
	if t.IsZero() {
		return CalendarDate{}
	}
	y, m, d := t.Date()
	return CalendarDate{year: y, month: m, day: d}
}

// ParseCalendarDate accepts an ISO date or date-time.
// If the direct parse fails it retries with "T00:00:00" and then
// "T00:00:00.000Z" appended. Empty input is unset; anything else that cannot
// be parsed is the invalid sentinel.
func ParseCalendarDate(s string) CalendarDate {
	s = strings.TrimSpace(s)
	if s == "" {
		return CalendarDate{}
	}

	if d, ok := parseAny(s); ok {
		return d
	}
	if d, ok := parseAny(s + "T00:00:00"); ok {
		return d
	}
	if d, ok := parseAny(s + "T00:00:00.000Z"); ok {
		return d
	}

	return InvalidCalendarDate()
}

func parseAny(s string) (CalendarDate, bool) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return CalendarDateFromTime(t), true
		}
	}
	return CalendarDate{}, false
}

// IsZero returns true if the date is unset
func (d CalendarDate) IsZero() bool {
	return !d.invalid && d.year == 0 && d.month == 0 && d.day == 0
}

// IsInvalid returns true for the parse-failure sentinel
func (d CalendarDate) IsInvalid() bool {
	return d.invalid
}

// IsValid returns true if the date holds a real calendar day
func (d CalendarDate) IsValid() bool {
	return !d.invalid && !d.IsZero()
}

// Validate returns an error unless the date is a real calendar day
func (d CalendarDate) Validate() error {
	if !d.IsValid() {
		return ErrInvalidCalendarDate
	}
	return nil
}

func (d CalendarDate) Year() int { return d.year }

func (d CalendarDate) Month() time.Month { return d.month }

func (d CalendarDate) Day() int { return d.day }

func (d CalendarDate) Weekday() time.Weekday { return d.Time(time.UTC).Weekday() }

// Time returns midnight of the date in loc
func (d CalendarDate) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// AddDays shifts the date by n calendar days. Unset and invalid dates are returned as is.
func (d CalendarDate) AddDays(n int) CalendarDate {
	if !d.IsValid() {
		return d
	}
	return NewCalendarDate(d.year, d.month, d.day+n)
}

// FirstOfMonth returns the first day of the date's month
func (d CalendarDate) FirstOfMonth() CalendarDate {
	if !d.IsValid() {
		return d
	}
	return CalendarDate{year: d.year, month: d.month, day: 1}
}

// AddMonths shifts the date to the first day of the month n months away
func (d CalendarDate) AddMonths(n int) CalendarDate {
	if !d.IsValid() {
		return d
	}
	return NewCalendarDate(d.year, d.month+time.Month(n), 1)
}

// DaysInMonth returns the number of days in the date's month
func (d CalendarDate) DaysInMonth() int {
	return NewCalendarDate(d.year, d.month+1, 1).AddDays(-1).day
}

// Compare returns -1, 0 or 1. Callers must check validity first.
func (d CalendarDate) Compare(other CalendarDate) int {
	switch {
	case d.year != other.year:
		return sign(d.year - other.year)
	case d.month != other.month:
		return sign(int(d.month) - int(other.month))
	default:
		return sign(d.day - other.day)
	}
}

// Before reports whether both dates are valid and d is strictly earlier
func (d CalendarDate) Before(other CalendarDate) bool {
	return d.IsValid() && other.IsValid() && d.Compare(other) < 0
}

// After reports whether both dates are valid and d is strictly later
func (d CalendarDate) After(other CalendarDate) bool {
	return d.IsValid() && other.IsValid() && d.Compare(other) > 0
}

// Equal reports whether both dates are valid and the same day
func (d CalendarDate) Equal(other CalendarDate) bool {
	return d.IsValid() && other.IsValid() && d.Compare(other) == 0
}

// DaysUntil returns the signed number of days from d to other.
// Both dates must be valid.
func (d CalendarDate) DaysUntil(other CalendarDate) float64 {
	return other.Time(time.UTC).Sub(d.Time(time.UTC)).Hours() / 24
}

// String returns YYYY-MM-DD, "" for unset and "invalid" for the sentinel
func (d CalendarDate) String() string {
	if d.invalid {
		return invalidDateLiteral
	}
	if d.IsZero() {
		return ""
	}
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

// MarshalJSON implements json.Marshaler
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON implements json.Unmarshaler. Unparseable strings and
// non-string values become the invalid sentinel instead of failing the decode.
func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*d = CalendarDate{}
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = InvalidCalendarDate()
		return nil
	}

	*d = ParseCalendarDate(s)
	return nil
}

// Scan implements sql.Scanner
func (d *CalendarDate) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*d = CalendarDate{}
	case time.Time:
		*d = CalendarDateFromTime(v)
	case string:
		*d = ParseCalendarDate(v)
	case []byte:
		*d = ParseCalendarDate(string(v))
	default:
		return fmt.Errorf("cannot scan %T into CalendarDate", value)
	}
	return nil
}

// Value implements driver.Valuer
func (d CalendarDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	if d.invalid {
		return nil, ErrInvalidCalendarDate
	}
	return d.String(), nil
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
