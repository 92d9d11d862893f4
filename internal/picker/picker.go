// Package picker is the state machine behind a single date field of the
// booking form: a calendar that opens, navigates months and emits a day.
package picker

import (
	"time"

	"github.com/m04kA/StayFinder-BookingService/internal/availability"
	"github.com/m04kA/StayFinder-BookingService/internal/domain"
	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

// State of the calendar popup
type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Config wires a picker to its environment
type Config struct {
	Engine        *availability.Engine
	Clock         TimeProvider
	Location      *time.Location // zone the emitted date is computed in
	WeekStart     time.Weekday
	MinDate       types.CalendarDate // unset = today
	BlockedRanges []domain.DateRange
	OnChange      func(value string)
}

// Picker holds the open/closed state, the selected value and the displayed month.
// Cell states are never stored, they are derived on every call to Cells.
type Picker struct {
	engine    *availability.Engine
	clock     TimeProvider
	loc       *time.Location
	weekStart time.Weekday
	minDate   types.CalendarDate
	ranges    []domain.DateRange
	onChange  func(value string)

	state     State
	value     types.CalendarDate
	displayed types.CalendarDate
}

// New creates a closed picker holding value (may be unset)
func New(cfg Config, value types.CalendarDate) *Picker {
	p := &Picker{
		engine:    cfg.Engine,
		clock:     cfg.Clock,
		loc:       cfg.Location,
		weekStart: cfg.WeekStart,
		minDate:   cfg.MinDate,
		ranges:    cfg.BlockedRanges,
		onChange:  cfg.OnChange,
		state:     Closed,
		value:     value,
	}
	if p.engine == nil {
		p.engine = availability.NewEngine(availability.DefaultPolicy)
	}
	if p.clock == nil {
		p.clock = &RealTimeProvider{}
	}
	if p.loc == nil {
		p.loc = time.Local
	}
	p.displayed = p.initialMonth()
	return p
}

// State returns whether the calendar is open
func (p *Picker) State() State {
	return p.state
}

// Value returns the selected day, unset if nothing was picked
func (p *Picker) Value() types.CalendarDate {
	return p.value
}

// DisplayedMonth returns the first day of the month on screen
func (p *Picker) DisplayedMonth() types.CalendarDate {
	return p.displayed
}

// Today returns the current calendar day in the picker's location
func (p *Picker) Today() types.CalendarDate {
	return types.CalendarDateFromTime(p.clock.Now().In(p.loc))
}

// MinDate returns the earliest selectable day: the configured minimum or today
func (p *Picker) MinDate() types.CalendarDate {
	if p.minDate.IsZero() {
		return p.Today()
	}
	return p.minDate
}

// SetMinDate changes the earliest selectable day. Unset means today.
func (p *Picker) SetMinDate(d types.CalendarDate) {
	p.minDate = d
}

// SetValue replaces the value from outside without emitting a change
func (p *Picker) SetValue(d types.CalendarDate) {
	p.value = d
}

// IsBlocked reports whether a day cell is disabled
func (p *Picker) IsBlocked(d types.CalendarDate) bool {
	return p.engine.IsDateBlocked(d, p.MinDate(), p.ranges)
}

// Toggle opens a closed calendar on the value's month (or today's) and closes an open one.
func (p *Picker) Toggle() {
	if p.state == Open {
		p.state = Closed
		return
	}
	p.state = Open
	p.displayed = p.initialMonth()
}

// ClickOutside closes an open calendar without touching the value
func (p *Picker) ClickOutside() {
	p.state = Closed
}

// SelectDay picks d if the calendar is open and d is not blocked. On success
// the value is emitted as YYYY-MM-DD and the calendar closes.
func (p *Picker) SelectDay(d types.CalendarDate) bool {
	if p.state != Open || p.IsBlocked(d) {
		return false
	}

	p.value = d
	p.state = Closed
	if p.onChange != nil {
		p.onChange(FormatLocal(d.Time(p.loc), p.loc))
	}
	return true
}

// PrevMonth shows the previous month while open
func (p *Picker) PrevMonth() {
	if p.state == Open {
		p.displayed = p.displayed.AddMonths(-1)
	}
}

// NextMonth shows the next month while open
func (p *Picker) NextMonth() {
	if p.state == Open {
		p.displayed = p.displayed.AddMonths(1)
	}
}

// Cells returns the grid for the displayed month
func (p *Picker) Cells() Month {
	return p.MonthView(p.displayed)
}

func (p *Picker) initialMonth() types.CalendarDate {
	if p.value.IsValid() {
		return p.value.FirstOfMonth()
	}
	return p.Today().FirstOfMonth()
}

// FormatLocal renders t as YYYY-MM-DD in loc. Using UTC here would shift the
// day for instants built from local midnight in zones ahead of UTC.
func FormatLocal(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(domain.DateFormat)
}
