package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

func TestComputeNights(t *testing.T) {
	assert.Equal(t, 4, ComputeNights(date("2024-06-16"), date("2024-06-20")))
	assert.Equal(t, 0, ComputeNights(date("2024-06-16"), date("2024-06-16")))
	assert.Equal(t, 0, ComputeNights(date("2024-06-20"), date("2024-06-16")))
	assert.Equal(t, 0, ComputeNights(types.CalendarDate{}, date("2024-06-16")))
	assert.Equal(t, 0, ComputeNights(date("2024-06-16"), types.InvalidCalendarDate()))
	assert.Equal(t, 1, ComputeNights(date("2024-12-31"), date("2025-01-01")))
}

func TestComputeNights_MonotonicInCheckout(t *testing.T) {
	checkIn := date("2024-06-10")
	prev := 0
	for offset := -5; offset <= 40; offset++ {
		nights := ComputeNights(checkIn, checkIn.AddDays(offset))
		assert.GreaterOrEqual(t, nights, prev, "offset %d", offset)
		prev = nights
	}
}

func TestComputeQuote(t *testing.T) {
	q := ComputeQuote(date("2024-07-01"), date("2024-07-04"), 100)
	assert.Equal(t, Quote{Nights: 3, TotalAmount: 300}, q)

	q = ComputeQuote(date("2024-07-01"), date("2024-07-04"), 99.995)
	assert.InDelta(t, 299.985, q.TotalAmount, 1e-9, "amount is not rounded")

	q = ComputeQuote(date("2024-07-04"), date("2024-07-01"), 100)
	assert.Equal(t, Quote{}, q)
}

func TestMinCheckoutDate(t *testing.T) {
	today := date("2024-06-01")

	assert.Equal(t, "2024-07-02", MinCheckoutDate(date("2024-07-01"), today).String())
	assert.Equal(t, "2024-06-01", MinCheckoutDate(types.CalendarDate{}, today).String())
	assert.Equal(t, "2024-06-01", MinCheckoutDate(types.InvalidCalendarDate(), today).String())
	assert.Equal(t, "2024-03-01", MinCheckoutDate(date("2024-02-29"), today).String())
}
