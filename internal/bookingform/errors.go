package bookingform

import "errors"

var (
	ErrCheckInRequired         = errors.New("bookingform: check-in date is required")
	ErrCheckOutRequired        = errors.New("bookingform: check-out date is required")
	ErrInvalidDate             = errors.New("bookingform: invalid date")
	ErrCheckInInPast           = errors.New("bookingform: check-in date is in the past")
	ErrCheckOutNotAfterCheckIn = errors.New("bookingform: check-out must be after check-in")
	ErrInvalidGuests           = errors.New("bookingform: guests must be at least 1")
	ErrTooManyGuests           = errors.New("bookingform: too many guests for this property")
	ErrDatesUnavailable        = errors.New("bookingform: selected dates are not available")

	// ErrSubmitFailed оборачивает ошибку внешнего API, значения формы при этом сохраняются
	ErrSubmitFailed = errors.New("bookingform: booking submission failed")
)
