package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendarDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain date", input: "2024-06-15", want: "2024-06-15"},
		{name: "utc midnight", input: "2024-06-15T00:00:00.000Z", want: "2024-06-15"},
		{name: "date-time without zone", input: "2024-06-15T18:30:00", want: "2024-06-15"},
		{name: "offset behind utc keeps written date", input: "2024-06-15T23:30:00-05:00", want: "2024-06-15"},
		{name: "offset ahead of utc keeps written date", input: "2024-06-15T00:30:00+03:00", want: "2024-06-15"},
		{name: "surrounding spaces", input: "  2024-06-15 ", want: "2024-06-15"},
		{name: "garbage", input: "not-a-date", want: "invalid"},
		{name: "impossible day", input: "2024-02-30", want: "invalid"},
		{name: "empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCalendarDate(tt.input).String())
		})
	}
}

func TestCalendarDate_States(t *testing.T) {
	var unset CalendarDate
	assert.True(t, unset.IsZero())
	assert.False(t, unset.IsValid())
	assert.False(t, unset.IsInvalid())

	invalid := InvalidCalendarDate()
	assert.False(t, invalid.IsZero())
	assert.False(t, invalid.IsValid())
	assert.True(t, invalid.IsInvalid())
	assert.ErrorIs(t, invalid.Validate(), ErrInvalidCalendarDate)

	valid := NewCalendarDate(2024, time.June, 15)
	assert.True(t, valid.IsValid())
	assert.NoError(t, valid.Validate())
}

func TestCalendarDate_ComparisonsRequireValidDates(t *testing.T) {
	d := NewCalendarDate(2024, time.June, 15)

	assert.True(t, d.Before(d.AddDays(1)))
	assert.True(t, d.After(d.AddDays(-1)))
	assert.True(t, d.Equal(NewCalendarDate(2024, time.June, 15)))

	assert.False(t, d.Before(InvalidCalendarDate()))
	assert.False(t, d.After(CalendarDate{}))
	assert.False(t, InvalidCalendarDate().Equal(InvalidCalendarDate()))
}

func TestCalendarDate_Arithmetic(t *testing.T) {
	d := NewCalendarDate(2024, time.February, 28)

	assert.Equal(t, "2024-02-29", d.AddDays(1).String())
	assert.Equal(t, "2024-03-01", d.AddDays(2).String())
	assert.Equal(t, "2023-12-31", NewCalendarDate(2024, time.January, 1).AddDays(-1).String())
	assert.Equal(t, "2025-01-01", NewCalendarDate(2024, time.December, 10).AddMonths(1).String())
	assert.Equal(t, "2023-12-01", NewCalendarDate(2024, time.January, 10).AddMonths(-1).String())
	assert.Equal(t, 29, d.DaysInMonth())
	assert.Equal(t, 3.0, NewCalendarDate(2024, time.July, 1).DaysUntil(NewCalendarDate(2024, time.July, 4)))

	// DST transitions must not produce fractional days
	assert.Equal(t, 1.0, NewCalendarDate(2024, time.March, 9).DaysUntil(NewCalendarDate(2024, time.March, 10)))

	assert.True(t, InvalidCalendarDate().AddDays(3).IsInvalid())
	assert.True(t, CalendarDate{}.AddDays(3).IsZero())
}

func TestCalendarDateFromTime_UsesOwnLocation(t *testing.T) {
	loc := time.FixedZone("UTC-7", -7*60*60)
	utcMidnight := time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2024-06-15", CalendarDateFromTime(utcMidnight).String())
	assert.Equal(t, "2024-06-14", CalendarDateFromTime(utcMidnight.In(loc)).String())
	assert.True(t, CalendarDateFromTime(time.Time{}).IsZero())
}

func TestCalendarDate_JSON(t *testing.T) {
	type payload struct {
		Start CalendarDate `json:"start"`
		End   CalendarDate `json:"end"`
		Other CalendarDate `json:"other"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"start":"2024-06-10T00:00:00.000Z","end":null,"other":42}`), &p))

	assert.Equal(t, "2024-06-10", p.Start.String())
	assert.True(t, p.End.IsZero())
	assert.True(t, p.Other.IsInvalid())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"start":"2024-06-10","end":null,"other":"invalid"}`, string(out))

	var back payload
	require.NoError(t, json.Unmarshal(out, &back))
	assert.Equal(t, p, back)
}

func TestCalendarDate_SQL(t *testing.T) {
	var d CalendarDate
	require.NoError(t, d.Scan(time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-06-10", d.String())

	require.NoError(t, d.Scan([]byte("2024-06-11")))
	assert.Equal(t, "2024-06-11", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))

	v, err := NewCalendarDate(2024, time.June, 12).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-12", v)

	_, err = InvalidCalendarDate().Value()
	assert.ErrorIs(t, err, ErrInvalidCalendarDate)
}
