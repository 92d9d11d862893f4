package get_calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/StayFinder-BookingService/internal/domain"
	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса и подставляет поле по умолчанию
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.PropertyID) == "" {
		return fmt.Errorf("%w: propertyID is required", ErrInvalidInput)
	}

	if len(req.PropertyID) > domain.MaxPropertyIDLength {
		return fmt.Errorf("%w: propertyID is too long", ErrInvalidInput)
	}

	req.Field = Field(strings.ToLower(strings.TrimSpace(string(req.Field))))
	switch req.Field {
	case "":
		req.Field = FieldCheckIn
	case FieldCheckIn, FieldCheckOut:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidField, req.Field)
	}

	return nil
}

// parseMonth разбирает YYYY-MM в первый день месяца. Пустая строка - не задано.
func parseMonth(s string) (types.CalendarDate, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return types.CalendarDate{}, nil
	}

	t, err := time.Parse(domain.MonthFormat, s)
	if err != nil {
		return types.CalendarDate{}, fmt.Errorf("%w: %q", ErrInvalidMonth, s)
	}

	return types.CalendarDateFromTime(t), nil
}
