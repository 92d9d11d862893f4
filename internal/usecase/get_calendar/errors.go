package get_calendar

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("get_calendar: property not found")

	// ErrServiceUnavailable возвращается, когда источник данных временно недоступен
	ErrServiceUnavailable = errors.New("get_calendar: property source unavailable")

	// ErrInvalidField возвращается, когда поле календаря не checkin и не checkout
	ErrInvalidField = errors.New("get_calendar: invalid field")

	// ErrInvalidMonth возвращается при некорректном месяце (ожидается YYYY-MM)
	ErrInvalidMonth = errors.New("get_calendar: invalid month")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_calendar: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_calendar: internal error")
)
