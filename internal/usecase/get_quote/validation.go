package get_quote

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

	if req.Guests < 0 || req.Guests > domain.MaxGuests {
		return fmt.Errorf("%w: guests must be between 0 and %d", ErrInvalidInput, domain.MaxGuests)
	}

	return nil
}

// reasonFor переводит ошибку проверки формы в код причины
func reasonFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, bookingform.ErrCheckInRequired):
		return ReasonCheckInRequired
	case errors.Is(err, bookingform.ErrCheckOutRequired):
		return ReasonCheckOutRequired
	case errors.Is(err, bookingform.ErrInvalidDate):
		return ReasonInvalidDate
	case errors.Is(err, bookingform.ErrCheckInInPast):
		return ReasonCheckInInPast
	case errors.Is(err, bookingform.ErrCheckOutNotAfterCheckIn):
		return ReasonCheckOutNotAfterIn
	case errors.Is(err, bookingform.ErrInvalidGuests):
		return ReasonInvalidGuests
	case errors.Is(err, bookingform.ErrTooManyGuests):
		return ReasonTooManyGuests
	default:
		return ReasonDatesUnavailable
	}
}
