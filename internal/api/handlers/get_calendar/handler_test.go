package get_calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/StayFinder-BookingService/internal/picker"
	getCalendar "github.com/m04kA/StayFinder-BookingService/internal/usecase/get_calendar"
	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeUseCase struct {
	got  *getCalendar.Request
	resp *getCalendar.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getCalendar.Request) (*getCalendar.Response, error) {
	f.got = req
	return f.resp, f.err
}

func serve(uc *fakeUseCase, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/properties/{propertyId}/calendar", NewHandler(uc, nopLogger{}).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_OK(t *testing.T) {
	first := types.ParseCalendarDate("2024-06-01")
	uc := &fakeUseCase{resp: &getCalendar.Response{
		PropertyID: "p-1",
		Field:      getCalendar.FieldCheckOut,
		Today:      types.ParseCalendarDate("2024-06-05"),
		MinDate:    types.ParseCalendarDate("2024-06-21"),
		Value:      types.CalendarDate{},
		Month: picker.Month{
			Month:         first,
			WeekStart:     time.Monday,
			LeadingBlanks: 5,
			Days: []picker.Cell{
				{Date: first, Label: "1", Disabled: true},
				{Date: first.AddDays(1), Label: "2", Disabled: true},
			},
		},
	}}

	rec := serve(uc, "/api/v1/properties/p-1/calendar?month=2024-06&field=checkout&checkIn=2024-06-20")
	require.Equal(t, http.StatusOK, rec.Code)

	assert.Equal(t, &getCalendar.Request{
		PropertyID: "p-1",
		Month:      "2024-06",
		Field:      getCalendar.FieldCheckOut,
		CheckIn:    "2024-06-20",
	}, uc.got)

	var body CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2024-06", body.Month)
	assert.Equal(t, "monday", body.WeekStart)
	assert.Equal(t, 5, body.LeadingBlanks)
	assert.Equal(t, 0, body.Selectable)
	assert.Equal(t, "2024-06-21", body.MinDate.String())
	assert.True(t, body.Value.IsZero())
	require.Len(t, body.Days, 2)
	assert.Equal(t, "2024-06-02", body.Days[1].Date.String())
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "field", err: getCalendar.ErrInvalidField, wantStatus: http.StatusBadRequest},
		{name: "month", err: getCalendar.ErrInvalidMonth, wantStatus: http.StatusBadRequest},
		{name: "input", err: getCalendar.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "not found", err: getCalendar.ErrPropertyNotFound, wantStatus: http.StatusNotFound},
		{name: "unavailable", err: getCalendar.ErrServiceUnavailable, wantStatus: http.StatusServiceUnavailable},
		{name: "internal", err: getCalendar.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, "/api/v1/properties/p-1/calendar")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
