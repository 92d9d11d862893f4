package domain

import (
	"time"

	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

// BookingStatus represents the status of a stay booking on the StayFinder API
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	StatusRejected  BookingStatus = "rejected"
)

// Booking represents a stay booking accepted by the StayFinder API
type Booking struct {
	ID         string
	PropertyID string
	GuestID    string
	CheckIn    types.CalendarDate
	CheckOut   types.CalendarDate
	Guests     int
	Nights     int
	TotalPrice float64
	Currency   string
	Status     BookingStatus
	CreatedAt  time.Time
}

// BlocksDates returns true if the booking occupies its dates on the calendar
func (s BookingStatus) BlocksDates() bool {
	for _, blocking := range BlockingStatuses {
		if s == blocking {
			return true
		}
	}
	return false
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}
