package get_quote

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/StayFinder-BookingService/internal/api/handlers"
	getQuote "github.com/m04kA/StayFinder-BookingService/internal/usecase/get_quote"
)

const (
	msgInvalidGuests      = "некорректное количество гостей"
	msgInvalidInput       = "некорректные параметры запроса"
	msgPropertyNotFound   = "объект размещения не найден"
	msgServiceUnavailable = "сервис объектов размещения временно недоступен"
)

type Handler struct {
	useCase GetQuoteUseCase
	logger  Logger
}

func NewHandler(useCase GetQuoteUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/quote
// Query params: checkIn, checkOut (optional, ISO date), guests (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID := mux.Vars(r)["propertyId"]
	query := r.URL.Query()

	useCaseReq, err := ToUseCaseRequest(propertyID, query.Get("checkIn"), query.Get("checkOut"), query.Get("guests"))
	if err != nil {
		h.logger.Warn("GET /properties/{id}/quote - Invalid guests: %v", err)
		handlers.RespondBadRequest(w, msgInvalidGuests)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getQuote.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/quote - Invalid input: property_id=%s: %v", propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getQuote.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/quote - Property not found: property_id=%s", propertyID)
			handlers.RespondNotFound(w, msgPropertyNotFound)

		case errors.Is(err, getQuote.ErrServiceUnavailable):
			h.logger.Error("GET /properties/{id}/quote - Source unavailable: property_id=%s, error=%v", propertyID, err)
			handlers.RespondServiceUnavailable(w, msgServiceUnavailable)

		default:
			h.logger.Error("GET /properties/{id}/quote - Failed to compute quote: property_id=%s, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /properties/{id}/quote - Quote computed: property_id=%s, nights=%d, available=%t",
		propertyID, result.Nights, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
