package availability

import (
	"time"

	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

// Normalize converts a date value or an ISO date/date-time string into a
// calendar date. It never fails: unsupported or unparseable input yields the
// invalid sentinel, nil and empty strings yield an unset date.
func Normalize(input any) types.CalendarDate {
	switch v := input.(type) {
	case nil:
		return types.CalendarDate{}
	case types.CalendarDate:
		return v
	case *types.CalendarDate:
		if v == nil {
			return types.CalendarDate{}
		}
		return *v
	case string:
		return types.ParseCalendarDate(v)
	case *string:
		if v == nil {
			return types.CalendarDate{}
		}
		return types.ParseCalendarDate(*v)
	case time.Time:
		return types.CalendarDateFromTime(v)
	case *time.Time:
		if v == nil {
			return types.CalendarDate{}
		}
		return types.CalendarDateFromTime(*v)
	default:
		return types.InvalidCalendarDate()
	}
}
