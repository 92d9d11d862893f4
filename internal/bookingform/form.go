// Package bookingform wires a check-in and a check-out picker to the
// availability engine and gates booking submission.
package bookingform

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/StayFinder-BookingService/internal/availability"
	"github.com/m04kA/StayFinder-BookingService/internal/domain"
	"github.com/m04kA/StayFinder-BookingService/internal/picker"
	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

// BookingCreator is the external booking-creation API
type BookingCreator interface {
	CreateBooking(ctx context.Context, sub Submission) (*domain.Booking, error)
}

// Submission is what the form hands to the BookingCreator
type Submission struct {
	PropertyID string
	CheckIn    types.CalendarDate
	CheckOut   types.CalendarDate
	Guests     int
	Nights     int
	TotalPrice float64
	Currency   string
}

// Snapshot is the derived state recomputed after every change
type Snapshot struct {
	CheckIn     types.CalendarDate
	CheckOut    types.CalendarDate
	Guests      int
	Quote       availability.Quote
	Available   bool
	CanSubmit   bool
	MinCheckout types.CalendarDate
	Conflict    *domain.DateRange
}

// Config holds the collaborators shared by both pickers
type Config struct {
	Engine    *availability.Engine
	Clock     picker.TimeProvider
	Location  *time.Location
	WeekStart time.Weekday
}

// Form is the server-side booking form of one property
type Form struct {
	engine   *availability.Engine
	property *domain.Property
	checkIn  *picker.Picker
	checkOut *picker.Picker
	guests   int
	snapshot Snapshot
}

// New creates an empty form for property with one guest
func New(cfg Config, property *domain.Property) *Form {
	if cfg.Engine == nil {
		cfg.Engine = availability.NewEngine(availability.DefaultPolicy)
	}
	if cfg.Clock == nil {
		cfg.Clock = &picker.RealTimeProvider{}
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}

	f := &Form{
		engine:   cfg.Engine,
		property: property,
		guests:   domain.MinGuests,
	}

	base := picker.Config{
		Engine:        cfg.Engine,
		Clock:         cfg.Clock,
		Location:      cfg.Location,
		WeekStart:     cfg.WeekStart,
		BlockedRanges: property.BlockedRanges,
	}

	checkInCfg := base
	checkInCfg.OnChange = func(value string) { f.SetCheckIn(value) }
	f.checkIn = picker.New(checkInCfg, types.CalendarDate{})

	checkOutCfg := base
	checkOutCfg.OnChange = func(value string) { f.SetCheckOut(value) }
	f.checkOut = picker.New(checkOutCfg, types.CalendarDate{})

	f.recompute()
	return f
}

// CheckInPicker returns the check-in picker
func (f *Form) CheckInPicker() *picker.Picker {
	return f.checkIn
}

// CheckOutPicker returns the check-out picker. Its minimum date follows the check-in.
func (f *Form) CheckOutPicker() *picker.Picker {
	return f.checkOut
}

// Property returns the property the form books
func (f *Form) Property() *domain.Property {
	return f.property
}

// SetCheckIn accepts any ISO date or date-time; empty clears the value
func (f *Form) SetCheckIn(value string) {
	f.checkIn.SetValue(availability.Normalize(value))
	f.recompute()
}

// SetCheckOut accepts any ISO date or date-time; empty clears the value
func (f *Form) SetCheckOut(value string) {
	f.checkOut.SetValue(availability.Normalize(value))
	f.recompute()
}

// SetGuests sets the number of guests
func (f *Form) SetGuests(n int) {
	f.guests = n
	f.recompute()
}

// Snapshot returns the state derived after the last change
func (f *Form) Snapshot() Snapshot {
	return f.snapshot
}

// CanSubmit is false when nights <= 0, the range is unavailable or a date is unset
func (f *Form) CanSubmit() bool {
	return f.snapshot.CanSubmit
}

func (f *Form) recompute() {
	in, out := f.checkIn.Value(), f.checkOut.Value()

	minCheckout := availability.MinCheckoutDate(in, f.checkIn.Today())
	f.checkOut.SetMinDate(minCheckout)

	quote := availability.ComputeQuote(in, out, f.property.PricePerNight)
	available := f.engine.IsRangeAvailable(in, out, f.property.BlockedRanges)

	var conflict *domain.DateRange
	if in.IsValid() && out.IsValid() {
		if r, ok := f.engine.FirstConflict(in, out, f.property.BlockedRanges); ok {
			conflict = &r
		}
	}

	f.snapshot = Snapshot{
		CheckIn:     in,
		CheckOut:    out,
		Guests:      f.guests,
		Quote:       quote,
		Available:   available,
		CanSubmit:   !in.IsZero() && !out.IsZero() && quote.Nights > 0 && available,
		MinCheckout: minCheckout,
		Conflict:    conflict,
	}
}

// Validate repeats every check the UI gate makes, plus guests and the
// non-past check-in rule. The first failure is returned.
func (f *Form) Validate() error {
	in, out := f.checkIn.Value(), f.checkOut.Value()

	if in.IsZero() {
		return ErrCheckInRequired
	}
	if out.IsZero() {
		return ErrCheckOutRequired
	}
	if in.IsInvalid() || out.IsInvalid() {
		return ErrInvalidDate
	}

	if in.Before(f.checkIn.Today()) {
		return ErrCheckInInPast
	}
	if !out.After(in) {
		return ErrCheckOutNotAfterCheckIn
	}

	if f.guests < domain.MinGuests {
		return ErrInvalidGuests
	}
	if f.guests > domain.MaxGuests || (f.property.HasGuestLimit() && f.guests > f.property.MaxGuests) {
		return ErrTooManyGuests
	}

	if r, ok := f.engine.FirstConflict(in, out, f.property.BlockedRanges); ok {
		return fmt.Errorf("%w: overlaps %s..%s", ErrDatesUnavailable, r.StartDate, r.EndDate)
	}

	return nil
}

// Submission builds the payload for the booking API from the current values
func (f *Form) Submission() Submission {
	in, out := f.checkIn.Value(), f.checkOut.Value()
	quote := availability.ComputeQuote(in, out, f.property.PricePerNight)

	currency := f.property.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	return Submission{
		PropertyID: f.property.ID,
		CheckIn:    in,
		CheckOut:   out,
		Guests:     f.guests,
		Nights:     quote.Nights,
		TotalPrice: quote.TotalAmount,
		Currency:   currency,
	}
}

// Submit validates and hands the booking to creator once. A failed call is
// not retried and leaves the form values in place.
func (f *Form) Submit(ctx context.Context, creator BookingCreator) (*domain.Booking, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	booking, err := creator.CreateBooking(ctx, f.Submission())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSubmitFailed, err)
	}

	return booking, nil
}
