package create_booking

import (
	"time"

	"github.com/go-playground/validator/v10"

	createBooking "github.com/m04kA/StayFinder-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

var validate = validator.New()

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	PropertyID string `json:"propertyId" validate:"required,max=64"`
	CheckIn    string `json:"checkIn" validate:"required,max=40"`
	CheckOut   string `json:"checkOut" validate:"required,max=40"`
	Guests     int    `json:"guests" validate:"gte=1,lte=50"`
}

// Validate проверяет формат полей запроса
func (r *CreateBookingRequest) Validate() error {
	return validate.Struct(r)
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		PropertyID: r.PropertyID,
		CheckIn:    r.CheckIn,
		CheckOut:   r.CheckOut,
		Guests:     r.Guests,
	}
}

// BookingResponse HTTP response model
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

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:         resp.ID,
		PropertyID: resp.PropertyID,
		GuestID:    resp.GuestID,
		CheckIn:    resp.CheckIn,
		CheckOut:   resp.CheckOut,
		Guests:     resp.Guests,
		Nights:     resp.Nights,
		TotalPrice: resp.TotalPrice,
		Currency:   resp.Currency,
		Status:     resp.Status,
	}
	if !resp.CreatedAt.IsZero() {
		createdAt := resp.CreatedAt
		out.CreatedAt = &createdAt
	}
	return out
}
