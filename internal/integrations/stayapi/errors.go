package stayapi

import "errors"

var (
	// ErrPropertyNotFound возвращается, когда объект размещения не найден
	ErrPropertyNotFound = errors.New("stayapi client: property not found")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("stayapi client: booking not found")

	// ErrDatesUnavailable возвращается, когда API отклонил бронирование из-за пересечения дат
	ErrDatesUnavailable = errors.New("stayapi client: dates are no longer available")

	// ErrRejected возвращается, когда API отклонил запрос как некорректный (400, 422)
	ErrRejected = errors.New("stayapi client: request rejected")

	// ErrUnauthorized возвращается при отсутствии или недействительности токена гостя
	ErrUnauthorized = errors.New("stayapi client: unauthorized")

	// ErrServiceUnavailable возвращается, когда circuit breaker разомкнут
	ErrServiceUnavailable = errors.New("stayapi client: service unavailable")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, таймаут)
	ErrInternal = errors.New("stayapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("stayapi client: invalid response")
)
