package stayapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/StayFinder-BookingService/internal/bookingform"
	"github.com/m04kA/StayFinder-BookingService/internal/domain"
	"github.com/m04kA/StayFinder-BookingService/pkg/reqctx"
	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testBreaker = BreakerSettings{
	MaxRequests:  1,
	Interval:     time.Minute,
	Timeout:      time.Minute,
	FailureRatio: 0.5,
	MinRequests:  2,
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second, testBreaker, nil, nopLogger{})
}

func TestClient_GetProperty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/properties/p-1", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "p-1",
			"title": "Cabin",
			"hostId": "h-1",
			"pricePerNight": 120.5,
			"currency": "EUR",
			"maxGuests": 3,
			"blockedDates": [
				{"startDate": "2024-06-10", "endDate": "2024-06-15T00:00:00.000Z"},
				{"startDate": null, "endDate": "2024-06-15"}
			],
			"bookings": [
				{"id": "b-1", "checkIn": "2024-07-01T14:00:00+02:00", "checkOut": "2024-07-04", "status": "confirmed"},
				{"id": "b-2", "checkIn": "2024-07-10", "checkOut": "2024-07-12", "status": "cancelled"},
				{"id": "b-3", "checkIn": "2024-08-01", "checkOut": "2024-08-02", "status": "PENDING"}
			]
		}`))
	})

	property, err := client.GetProperty(context.Background(), "p-1")
	require.NoError(t, err)

	assert.Equal(t, "p-1", property.ID)
	assert.Equal(t, 120.5, property.PricePerNight)
	assert.Equal(t, "EUR", property.Currency)
	assert.Equal(t, 3, property.MaxGuests)
	require.Len(t, property.BlockedRanges, 4)

	assert.Equal(t, "2024-06-10", property.BlockedRanges[0].StartDate.String())
	assert.Equal(t, "2024-06-15", property.BlockedRanges[0].EndDate.String())
	assert.Equal(t, domain.SourceHostBlock, property.BlockedRanges[0].Source)

	assert.True(t, property.BlockedRanges[1].IsMalformed())

	assert.Equal(t, "2024-07-01", property.BlockedRanges[2].StartDate.String())
	assert.Equal(t, domain.SourceBooking, property.BlockedRanges[2].Source)
	assert.Equal(t, "2024-08-01", property.BlockedRanges[3].StartDate.String())
}

func TestClient_GetPropertyStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "not found", status: http.StatusNotFound, wantErr: ErrPropertyNotFound},
		{name: "unauthorized", status: http.StatusUnauthorized, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrUnauthorized},
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrRejected},
		{name: "server error", status: http.StatusBadGateway, wantErr: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(`{"message":"nope"}`))
			})

			_, err := client.GetProperty(context.Background(), "p-1")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestClient_GetPropertyBadJSON(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	})

	_, err := client.GetProperty(context.Background(), "p-1")
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestClient_CreateBooking(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bookings", r.URL.Path)
		assert.Equal(t, "Bearer guest-token", r.Header.Get("Authorization"))
		assert.Equal(t, "req-42", r.Header.Get("X-Request-ID"))

		var body CreateBookingRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, CreateBookingRequest{
			PropertyID: "p-1",
			CheckIn:    "2024-07-01",
			CheckOut:   "2024-07-04",
			Guests:     2,
			TotalPrice: 300,
			Currency:   "USD",
		}, body)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"b-9","guestId":"g-1","status":"pending","createdAt":"2024-06-05T10:00:00Z"}`))
	})

	ctx := reqctx.WithToken(context.Background(), "guest-token")
	ctx = reqctx.WithRequestID(ctx, "req-42")

	booking, err := client.CreateBooking(ctx, bookingform.Submission{
		PropertyID: "p-1",
		CheckIn:    types.ParseCalendarDate("2024-07-01"),
		CheckOut:   types.ParseCalendarDate("2024-07-04"),
		Guests:     2,
		Nights:     3,
		TotalPrice: 300,
		Currency:   "USD",
	})
	require.NoError(t, err)

	assert.Equal(t, "b-9", booking.ID)
	assert.Equal(t, "p-1", booking.PropertyID)
	assert.Equal(t, "g-1", booking.GuestID)
	assert.Equal(t, 3, booking.Nights)
	assert.Equal(t, 300.0, booking.TotalPrice)
	assert.Equal(t, domain.StatusPending, booking.Status)
	assert.Equal(t, 2024, booking.CreatedAt.Year())
}

func TestClient_CreateBookingConflictIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"code":409,"message":"dates taken"}`))
	})

	_, err := client.CreateBooking(context.Background(), bookingform.Submission{PropertyID: "p-1"})
	assert.ErrorIs(t, err, ErrDatesUnavailable)
	assert.Contains(t, err.Error(), "dates taken")
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_BreakerOpensOnServerErrorsOnly(t *testing.T) {
	var status, calls atomic.Int32
	status.Store(http.StatusNotFound)
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(int(status.Load()))
	})

	// 4xx не размыкают breaker
	for i := 0; i < 3; i++ {
		_, err := client.GetProperty(context.Background(), "p-1")
		assert.ErrorIs(t, err, ErrPropertyNotFound)
	}

	status.Store(http.StatusInternalServerError)
	for i := 0; i < 4; i++ {
		_, _ = client.GetProperty(context.Background(), "p-1")
	}

	callsBefore := calls.Load()
	_, err := client.GetProperty(context.Background(), "p-1")
	assert.ErrorIs(t, err, ErrServiceUnavailable)
	assert.Equal(t, callsBefore, calls.Load(), "open breaker must not reach the server")
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := NewClient(srv.URL, time.Second, testBreaker, nil, nopLogger{})
	_, err := client.GetProperty(context.Background(), "p-1")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestClient_CanceledContextDoesNotOpenBreaker(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"id":"p-1","pricePerNight":100}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 4; i++ {
		_, err := client.GetProperty(ctx, "p-1")
		assert.ErrorIs(t, err, context.Canceled)
		assert.NotErrorIs(t, err, ErrServiceUnavailable)
	}

	_, err := client.GetProperty(context.Background(), "p-1")
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestTruncate_KeepsRunesWhole(t *testing.T) {
	msg := "a" + strings.Repeat("я", domain.MaxMessageLength)

	got := truncate(msg)
	assert.True(t, utf8.ValidString(got))
	assert.LessOrEqual(t, len(got), domain.MaxMessageLength)
	assert.Equal(t, domain.MaxMessageLength-1, len(got))

	assert.Equal(t, "short", truncate("short"))
}

func TestClient_GetBookingWithoutStatusIsPending(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"b-1","propertyId":"p-1","checkIn":"2030-06-10","checkOut":"2030-06-12"}`))
	})

	booking, err := client.GetBooking(context.Background(), "b-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, booking.Status)
	assert.True(t, booking.CanBeCancelled())
}

func TestClient_GetBooking(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/bookings/b-1", r.URL.Path)
		assert.Equal(t, "Bearer guest-token", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"id":"b-1","propertyId":"p-1","checkIn":"2024-07-01","checkOut":"2024-07-04","guests":2,"totalPrice":300,"currency":"USD","status":"Confirmed"}`))
	})

	ctx := reqctx.WithToken(context.Background(), "guest-token")
	booking, err := client.GetBooking(ctx, "b-1")
	require.NoError(t, err)

	assert.Equal(t, "p-1", booking.PropertyID)
	assert.Equal(t, 3, booking.Nights)
	assert.Equal(t, domain.StatusConfirmed, booking.Status)
	assert.True(t, booking.CreatedAt.IsZero())
}

func TestClient_GetBookingNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetBooking(context.Background(), "b-404")
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NotErrorIs(t, err, ErrPropertyNotFound)
}

func TestClient_CancelBooking(t *testing.T) {
	t.Run("with body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/api/bookings/b-1/cancel", r.URL.Path)

			var body CancelBookingRequest
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "plans changed", body.Reason)

			_, _ = w.Write([]byte(`{"id":"b-1","propertyId":"p-1","status":"cancelled"}`))
		})

		booking, err := client.CancelBooking(context.Background(), "b-1", "plans changed")
		require.NoError(t, err)
		require.NotNil(t, booking)
		assert.Equal(t, domain.StatusCancelled, booking.Status)
		assert.Equal(t, "p-1", booking.PropertyID)
	})

	t.Run("no content", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})

		booking, err := client.CancelBooking(context.Background(), "b-1", "")
		require.NoError(t, err)
		assert.Nil(t, booking)
	})

	t.Run("rejected", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"error":"already completed"}`))
		})

		_, err := client.CancelBooking(context.Background(), "b-1", "")
		assert.ErrorIs(t, err, ErrRejected)
		assert.Contains(t, err.Error(), "already completed")
	})
}
