package create_booking

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("create_booking: property not found")

	// ErrInvalidDates возвращается, когда даты не заданы, не разбираются или выезд не позже заезда
	ErrInvalidDates = errors.New("create_booking: invalid dates")

	// ErrCheckInInPast возвращается, когда дата заезда в прошлом
	ErrCheckInInPast = errors.New("create_booking: check-in date is in the past")

	// ErrInvalidGuests возвращается при недопустимом количестве гостей
	ErrInvalidGuests = errors.New("create_booking: invalid number of guests")

	// ErrDatesUnavailable возвращается, когда выбранные даты пересекаются с заблокированными
	ErrDatesUnavailable = errors.New("create_booking: dates are not available")

	// ErrRejected возвращается, когда StayFinder API отклонил бронирование
	ErrRejected = errors.New("create_booking: booking rejected")

	// ErrUnauthorized возвращается, когда токен гостя не принят
	ErrUnauthorized = errors.New("create_booking: unauthorized")

	// ErrServiceUnavailable возвращается, когда StayFinder API временно недоступен
	ErrServiceUnavailable = errors.New("create_booking: booking service unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
