package create_booking

import (
	"time"

	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

// Результаты попытки бронирования для метрик
const (
	resultCreated     = "created"
	resultInvalid     = "invalid"
	resultConflict    = "conflict"
	resultRejected    = "rejected"
	resultUnavailable = "unavailable"
	resultFailed      = "failed"
)

// Request модель запроса на создание бронирования.
// Токен гостя передается через контекст.
type Request struct {
	PropertyID string // ID объекта размещения
	CheckIn    string // дата заезда, YYYY-MM-DD или ISO дата-время
	CheckOut   string // дата выезда
	Guests     int    // количество гостей
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         string
	PropertyID string
	GuestID    string
	CheckIn    types.CalendarDate
	CheckOut   types.CalendarDate
	Guests     int
	Nights     int
	TotalPrice float64
	Currency   string
	Status     string
	CreatedAt  time.Time
}
