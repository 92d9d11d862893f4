package picker

import (
	"strconv"
	"time"

	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

// Cell is one day of the calendar grid
type Cell struct {
	Date     types.CalendarDate
	Label    string
	Disabled bool
	Selected bool
	Today    bool
}

// Month is a rendered calendar page
type Month struct {
	Month         types.CalendarDate // first day of the month
	WeekStart     time.Weekday
	LeadingBlanks int // empty cells before the first day
	Days          []Cell
}

// MonthView derives the cells of any month from the current value, today and
// the blocked ranges. The picker state is not changed.
func (p *Picker) MonthView(month types.CalendarDate) Month {
	first := month.FirstOfMonth()
	today := p.Today()
	minDate := p.MinDate()

	days := make([]Cell, first.DaysInMonth())
	for i := range days {
		d := first.AddDays(i)
		days[i] = Cell{
			Date:     d,
			Label:    strconv.Itoa(d.Day()),
			Disabled: p.engine.IsDateBlocked(d, minDate, p.ranges),
			Selected: d.Equal(p.value),
			Today:    d.Equal(today),
		}
	}

	return Month{
		Month:         first,
		WeekStart:     p.weekStart,
		LeadingBlanks: (int(first.Weekday()) - int(p.weekStart) + 7) % 7,
		Days:          days,
	}
}

// SelectableCount returns the number of enabled days
func (m Month) SelectableCount() int {
	count := 0
	for _, c := range m.Days {
		if !c.Disabled {
			count++
		}
	}
	return count
}
