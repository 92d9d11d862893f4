package models

import (
	"time"

	"github.com/m04kA/StayFinder-BookingService/internal/domain"
	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CancellationReason string
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         string             `json:"id"`
	PropertyID string             `json:"propertyId"`
	GuestID    string             `json:"guestId,omitempty"`
	CheckIn    types.CalendarDate `json:"checkIn"`
	CheckOut   types.CalendarDate `json:"checkOut"`
	Guests     int                `json:"guests"`
	Nights     int                `json:"nights"`
	TotalPrice float64            `json:"totalPrice"`
	Currency   string             `json:"currency"`
	Status     string             `json:"status"`
	CreatedAt  *time.Time         `json:"createdAt,omitempty"`
}

// FromDomainBooking конвертирует domain.Booking в BookingResponse
func FromDomainBooking(booking *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:         booking.ID,
		PropertyID: booking.PropertyID,
		GuestID:    booking.GuestID,
		CheckIn:    booking.CheckIn,
		CheckOut:   booking.CheckOut,
		Guests:     booking.Guests,
		Nights:     booking.Nights,
		TotalPrice: booking.TotalPrice,
		Currency:   booking.Currency,
		Status:     string(booking.Status),
	}

	if !booking.CreatedAt.IsZero() {
		createdAt := booking.CreatedAt
		resp.CreatedAt = &createdAt
	}

	return resp
}
