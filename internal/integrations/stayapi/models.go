package stayapi

// Границы диапазонов приходят как строки, null или что угодно еще,
// поэтому декодируются в any и нормализуются один раз на границе.

// PropertyResponse модель объекта размещения из StayFinder API
type PropertyResponse struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	HostID        string            `json:"hostId"`
	PricePerNight float64           `json:"pricePerNight"`
	Currency      string            `json:"currency"`
	MaxGuests     int               `json:"maxGuests"`
	BlockedDates  []BlockedDateDTO  `json:"blockedDates"`
	Bookings      []PropertyBooking `json:"bookings"`
}

// BlockedDateDTO блокировка дат, заданная хозяином
type BlockedDateDTO struct {
	StartDate any `json:"startDate"`
	EndDate   any `json:"endDate"`
}

// PropertyBooking бронирование объекта в ответе API
type PropertyBooking struct {
	ID       string `json:"id"`
	CheckIn  any    `json:"checkIn"`
	CheckOut any    `json:"checkOut"`
	Status   string `json:"status"`
}

// CreateBookingRequest тело запроса POST /api/bookings
type CreateBookingRequest struct {
	PropertyID string  `json:"propertyId"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	Guests     int     `json:"guests"`
	TotalPrice float64 `json:"totalPrice"`
	Currency   string  `json:"currency"`
}

// CancelBookingRequest тело запроса PATCH /api/bookings/{id}/cancel
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// BookingResponse бронирование в ответе API
type BookingResponse struct {
	ID         string  `json:"id"`
	PropertyID string  `json:"propertyId"`
	GuestID    string  `json:"guestId"`
	CheckIn    string  `json:"checkIn"`
	CheckOut   string  `json:"checkOut"`
	Guests     int     `json:"guests"`
	TotalPrice float64 `json:"totalPrice"`
	Currency   string  `json:"currency"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
}

// ErrorResponse модель ошибки от StayFinder API
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error"`
}
