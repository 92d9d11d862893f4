package domain

import "github.com/m04kA/StayFinder-BookingService/pkg/types"

// BlockedRangeSource tells where a blocked range came from
type BlockedRangeSource string

const (
	SourceHostBlock BlockedRangeSource = "host_block"
	SourceBooking   BlockedRangeSource = "booking"
)

// DateRange is a closed interval of calendar days during which a property
// cannot be booked. Bounds may be unset or invalid when the upstream record
// is malformed; the availability engine decides how to treat those.
type DateRange struct {
	StartDate types.CalendarDate
	EndDate   types.CalendarDate
	Source    BlockedRangeSource
}

// IsMalformed returns true if either bound is missing or unparseable
func (r DateRange) IsMalformed() bool {
	return !r.StartDate.IsValid() || !r.EndDate.IsValid()
}

// Property is the subset of a listing the booking flow needs
type Property struct {
	ID            string
	Title         string
	HostID        string
	PricePerNight float64
	Currency      string // display label only
	MaxGuests     int    // 0 = no limit
	BlockedRanges []DateRange
}

// HasGuestLimit returns true if the property limits the number of guests
func (p *Property) HasGuestLimit() bool {
	return p.MaxGuests > 0
}
