package domain

// Business validation constants
const (
	MinGuests           = 1
	MaxGuests           = 50
	MaxPropertyIDLength = 64
	MaxBookingIDLength  = 64
	MaxMessageLength    = 500
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// Currency shown when the property record has none
const DefaultCurrency = "USD"

// BlockingStatuses list of booking statuses that occupy calendar dates.
// Used when composing blocked ranges from the bookings of a property.
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
