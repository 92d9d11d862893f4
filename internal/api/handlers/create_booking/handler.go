package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/StayFinder-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/StayFinder-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDates       = "даты заезда и выезда обязательны, выезд должен быть позже заезда"
	msgCheckInInPast      = "дата заезда не может быть в прошлом"
	msgInvalidGuests      = "некорректное количество гостей"
	msgPropertyNotFound   = "объект размещения не найден"
	msgDatesUnavailable   = "выбранные даты недоступны"
	msgRejected           = "бронирование отклонено"
	msgUnauthorized       = "требуется авторизация"
	msgServiceUnavailable = "сервис бронирования временно недоступен"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := req.Validate(); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidDates):
			h.logger.Warn("POST /bookings - Invalid dates: property_id=%s", req.PropertyID)
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, createBooking.ErrCheckInInPast):
			h.logger.Warn("POST /bookings - Check-in in past: property_id=%s", req.PropertyID)
			handlers.RespondBadRequest(w, msgCheckInInPast)

		case errors.Is(err, createBooking.ErrInvalidGuests):
			h.logger.Warn("POST /bookings - Invalid guests: property_id=%s, guests=%d", req.PropertyID, req.Guests)
			handlers.RespondBadRequest(w, msgInvalidGuests)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrPropertyNotFound):
			h.logger.Warn("POST /bookings - Property not found: property_id=%s", req.PropertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, createBooking.ErrDatesUnavailable):
			h.logger.Warn("POST /bookings - Dates unavailable: property_id=%s", req.PropertyID)
			handlers.RespondConflict(w, msgDatesUnavailable)

		case errors.Is(err, createBooking.ErrRejected):
			h.logger.Warn("POST /bookings - Rejected by upstream: property_id=%s, error=%v", req.PropertyID, err)
			handlers.RespondUnprocessable(w, msgRejected)

		case errors.Is(err, createBooking.ErrUnauthorized):
			h.logger.Warn("POST /bookings - Unauthorized: property_id=%s", req.PropertyID)
			handlers.RespondUnauthorized(w, msgUnauthorized)

		case errors.Is(err, createBooking.ErrServiceUnavailable):
			h.logger.Error("POST /bookings - Upstream unavailable: property_id=%s, error=%v", req.PropertyID, err)
			handlers.RespondServiceUnavailable(w, msgServiceUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: property_id=%s, error=%v", req.PropertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, property_id=%s, nights=%d",
		result.ID, result.PropertyID, result.Nights)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
