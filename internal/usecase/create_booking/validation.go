package create_booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/StayFinder-BookingService/internal/bookingform"
	"github.com/m04kA/StayFinder-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.PropertyID) == "" {
		return fmt.Errorf("%w: propertyID is required", ErrInvalidInput)
	}

	if len(req.PropertyID) > domain.MaxPropertyIDLength {
		return fmt.Errorf("%w: propertyID is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.CheckIn) == "" || strings.TrimSpace(req.CheckOut) == "" {
		return fmt.Errorf("%w: checkIn and checkOut are required", ErrInvalidDates)
	}

	if req.Guests < domain.MinGuests || req.Guests > domain.MaxGuests {
		return fmt.Errorf("%w: guests must be between %d and %d", ErrInvalidGuests, domain.MinGuests, domain.MaxGuests)
	}

	return nil
}

// mapFormError переводит ошибку проверки формы в ошибку usecase
func mapFormError(err error) error {
	switch {
	case errors.Is(err, bookingform.ErrCheckInRequired),
		errors.Is(err, bookingform.ErrCheckOutRequired),
		errors.Is(err, bookingform.ErrInvalidDate),
		errors.Is(err, bookingform.ErrCheckOutNotAfterCheckIn):
		return fmt.Errorf("%w: %v", ErrInvalidDates, err)
	case errors.Is(err, bookingform.ErrCheckInInPast):
		return ErrCheckInInPast
	case errors.Is(err, bookingform.ErrInvalidGuests), errors.Is(err, bookingform.ErrTooManyGuests):
		return fmt.Errorf("%w: %v", ErrInvalidGuests, err)
	case errors.Is(err, bookingform.ErrDatesUnavailable):
		return fmt.Errorf("%w: %v", ErrDatesUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
