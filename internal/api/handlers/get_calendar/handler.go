package get_calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/StayFinder-BookingService/internal/api/handlers"
	getCalendar "github.com/m04kA/StayFinder-BookingService/internal/usecase/get_calendar"
)

const (
	msgInvalidInput       = "некорректные параметры запроса"
	msgInvalidField       = "поле должно быть checkin или checkout"
	msgInvalidMonth       = "некорректный формат месяца, ожидается YYYY-MM"
	msgPropertyNotFound   = "объект размещения не найден"
	msgServiceUnavailable = "сервис объектов размещения временно недоступен"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/calendar
// Query params: month (YYYY-MM), field (checkin|checkout), value, checkIn
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["propertyId"]
	query := r.URL.Query()

	useCaseReq := ToUseCaseRequest(
		propertyID,
		query.Get("month"),
		query.Get("field"),
		query.Get("value"),
		query.Get("checkIn"),
	)

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidField):
			h.logger.Warn("GET /properties/{id}/calendar - Invalid field: %v", err)
			handlers.RespondBadRequest(w, msgInvalidField)

		case errors.Is(err, getCalendar.ErrInvalidMonth):
			h.logger.Warn("GET /properties/{id}/calendar - Invalid month: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getCalendar.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/calendar - Property not found: property_id=%s", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, getCalendar.ErrServiceUnavailable):
			h.logger.Error("GET /properties/{id}/calendar - Source unavailable: property_id=%s, error=%v", propertyID, err)
			handlers.RespondServiceUnavailable(w, msgServiceUnavailable)

		default:
			h.logger.Error("GET /properties/{id}/calendar - Failed to build calendar: property_id=%s, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/calendar - Calendar built: property_id=%s, field=%s, month=%s",
		propertyID, result.Field, result.Month.Month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
