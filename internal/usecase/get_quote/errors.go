package get_quote

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("get_quote: property not found")

	// ErrServiceUnavailable возвращается, когда источник данных временно недоступен
	ErrServiceUnavailable = errors.New("get_quote: property source unavailable")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_quote: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_quote: internal error")
)
