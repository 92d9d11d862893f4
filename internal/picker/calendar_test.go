package picker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthView_DerivesCellState(t *testing.T) {
	p := newTestPicker(date("2024-06-20"), nil)
	m := p.Cells()

	require.Len(t, m.Days, 30)
	assert.Equal(t, "2024-06-01", m.Month.String())
	assert.Equal(t, 6, m.LeadingBlanks, "June 1 2024 is a Saturday, week starts Sunday")

	byDay := func(day int) Cell { return m.Days[day-1] }

	assert.True(t, byDay(4).Disabled, "before today")
	assert.False(t, byDay(5).Disabled)
	assert.True(t, byDay(5).Today)
	assert.True(t, byDay(10).Disabled)
	assert.True(t, byDay(15).Disabled)
	assert.False(t, byDay(16).Disabled)
	assert.True(t, byDay(20).Selected)
	assert.False(t, byDay(21).Selected)
	assert.Equal(t, "20", byDay(20).Label)

	// 30 days - 4 past - 6 blocked
	assert.Equal(t, 20, m.SelectableCount())
}

func TestMonthView_WeekStart(t *testing.T) {
	p := New(Config{
		Clock:     fixedClock{now: time.Date(2024, time.June, 5, 0, 0, 0, 0, time.UTC)},
		Location:  time.UTC,
		WeekStart: time.Monday,
	}, date("2024-07-01"))

	assert.Equal(t, 0, p.Cells().LeadingBlanks, "July 1 2024 is a Monday")
	assert.Equal(t, 5, p.MonthView(date("2024-06-10")).LeadingBlanks)
}

func TestMonthView_DoesNotMoveDisplayedMonth(t *testing.T) {
	p := newTestPicker(date("2024-06-20"), nil)
	_ = p.MonthView(date("2025-01-01"))
	assert.Equal(t, "2024-06-01", p.DisplayedMonth().String())
}
