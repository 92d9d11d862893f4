package get_quote

import (
	"github.com/m04kA/StayFinder-BookingService/internal/domain"
	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

// Причины, по которым отправка формы недоступна
const (
	ReasonCheckInRequired    = "check_in_required"
	ReasonCheckOutRequired   = "check_out_required"
	ReasonInvalidDate        = "invalid_date"
	ReasonCheckInInPast      = "check_in_in_past"
	ReasonCheckOutNotAfterIn = "check_out_not_after_check_in"
	ReasonInvalidGuests      = "invalid_guests"
	ReasonTooManyGuests      = "too_many_guests"
	ReasonDatesUnavailable   = "dates_unavailable"
)

// Request модель запроса расчета стоимости
type Request struct {
	PropertyID string // ID объекта размещения
	CheckIn    string // ISO дата или дата-время, может быть пустой
	CheckOut   string // ISO дата или дата-время, может быть пустой
	Guests     int    // 0 = один гость
}

// Response модель ответа с вердиктом доступности и стоимостью
type Response struct {
	PropertyID    string
	CheckIn       types.CalendarDate
	CheckOut      types.CalendarDate
	Guests        int
	Nights        int
	PricePerNight float64
	TotalAmount   float64 // не округляется
	Currency      string
	Available     bool
	CanSubmit     bool
	Reason        string // пусто, если бронирование можно отправить
	MinCheckout   types.CalendarDate
	Conflict      *domain.DateRange
}
