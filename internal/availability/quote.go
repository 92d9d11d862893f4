package availability

import (
	"math"

	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

// Quote is the derived nights and total for a candidate range. Never stored.
type Quote struct {
	Nights      int
	TotalAmount float64
}

// ComputeNights returns ceil(checkOut - checkIn) in days, clamped at zero.
// Unset or invalid endpoints give zero.
func ComputeNights(checkIn, checkOut types.CalendarDate) int {
	if !checkIn.IsValid() || !checkOut.IsValid() {
		return 0
	}

	nights := int(math.Ceil(checkIn.DaysUntil(checkOut)))
	if nights < 0 {
		return 0
	}
	return nights
}

// ComputeQuote multiplies nights by pricePerNight. The amount is not rounded;
// formatting to two decimals is left to the display layer.
func ComputeQuote(checkIn, checkOut types.CalendarDate, pricePerNight float64) Quote {
	nights := ComputeNights(checkIn, checkOut)
	return Quote{
		Nights:      nights,
		TotalAmount: float64(nights) * pricePerNight,
	}
}

// MinCheckoutDate returns the earliest legal check-out: the day after checkIn,
// or today when no valid check-in is chosen.
func MinCheckoutDate(checkIn, today types.CalendarDate) types.CalendarDate {
	if checkIn.IsValid() {
		return checkIn.AddDays(1)
	}
	return today
}
