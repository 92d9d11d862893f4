package stayapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sony/gobreaker"

	"github.com/m04kA/StayFinder-BookingService/internal/availability"
	"github.com/m04kA/StayFinder-BookingService/internal/bookingform"
	"github.com/m04kA/StayFinder-BookingService/internal/domain"
	"github.com/m04kA/StayFinder-BookingService/pkg/metrics"
	"github.com/m04kA/StayFinder-BookingService/pkg/reqctx"
	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

const breakerName = "stay-api"

// BreakerSettings настройки circuit breaker
type BreakerSettings struct {
	MaxRequests  uint32
	Interval     time.Duration
	Timeout      time.Duration
	FailureRatio float64
	MinRequests  uint32
}

// Client клиент для работы с StayFinder API
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
	metrics    *metrics.Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента StayFinder API.
// metrics может быть nil.
func NewClient(baseURL string, timeout time.Duration, settings BreakerSettings, m *metrics.Metrics, log Logger) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: m,
		log:     log,
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: settings.MaxRequests,
		Interval:    settings.Interval,
		Timeout:     settings.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < settings.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= settings.FailureRatio
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			c.log.Warn("Circuit breaker '%s' changed from '%s' to '%s'", name, from, to)
			c.metrics.SetBreakerState(name, int(to))
		},
		// Ответы 4xx - это бизнес-ошибки, а не сбой сервиса
		IsSuccessful: func(err error) bool {
			if err == nil || errors.Is(err, context.Canceled) {
				return true
			}
			return !(errors.Is(err, ErrInternal) || errors.Is(err, ErrInvalidResponse))
		},
	})

	return c
}

// GetProperty получает объект размещения с нормализованными заблокированными диапазонами
func (c *Client) GetProperty(ctx context.Context, propertyID string) (*domain.Property, error) {
	endpoint := fmt.Sprintf("%s/api/properties/%s", c.baseURL, url.PathEscape(propertyID))

	result, err := c.execute("GetProperty", func() (interface{}, error) {
		req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to execute request: %w", ErrInternal, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, statusError(resp, ErrPropertyNotFound)
		}

		var property PropertyResponse
		if err := json.NewDecoder(resp.Body).Decode(&property); err != nil {
			return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}

		return &property, nil
	})
	if err != nil {
		return nil, err
	}

	return toDomainProperty(propertyID, result.(*PropertyResponse)), nil
}

// CreateBooking передает бронирование в StayFinder API.
// Токен гостя и X-Request-ID берутся из контекста. Повторов нет.
func (c *Client) CreateBooking(ctx context.Context, sub bookingform.Submission) (*domain.Booking, error) {
	endpoint := c.baseURL + "/api/bookings"

	body, err := json.Marshal(CreateBookingRequest{
		PropertyID: sub.PropertyID,
		CheckIn:    sub.CheckIn.String(),
		CheckOut:   sub.CheckOut.String(),
		Guests:     sub.Guests,
		TotalPrice: sub.TotalPrice,
		Currency:   sub.Currency,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	result, err := c.execute("CreateBooking", func() (interface{}, error) {
		req, err := c.newRequest(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to execute request: %w", ErrInternal, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
			return nil, statusError(resp, ErrPropertyNotFound)
		}

		var booking BookingResponse
		if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
			return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}

		return &booking, nil
	})
	if err != nil {
		return nil, err
	}

	return withSubmission(toDomainBooking(result.(*BookingResponse)), sub), nil
}

// GetBooking получает бронирование по ID от имени гостя из контекста
func (c *Client) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	endpoint := fmt.Sprintf("%s/api/bookings/%s", c.baseURL, url.PathEscape(bookingID))

	result, err := c.execute("GetBooking", func() (interface{}, error) {
		req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to execute request: %w", ErrInternal, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, statusError(resp, ErrBookingNotFound)
		}

		var booking BookingResponse
		if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
			return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}

		return &booking, nil
	})
	if err != nil {
		return nil, err
	}

	booking := toDomainBooking(result.(*BookingResponse))
	if booking.ID == "" {
		booking.ID = bookingID
	}
	return booking, nil
}

// CancelBooking отменяет бронирование. Ответ 204 без тела дает (nil, nil).
func (c *Client) CancelBooking(ctx context.Context, bookingID, reason string) (*domain.Booking, error) {
	endpoint := fmt.Sprintf("%s/api/bookings/%s/cancel", c.baseURL, url.PathEscape(bookingID))

	body, err := json.Marshal(CancelBookingRequest{Reason: reason})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	result, err := c.execute("CancelBooking", func() (interface{}, error) {
		req, err := c.newRequest(ctx, http.MethodPatch, endpoint, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to execute request: %w", ErrInternal, err)
		}
		defer resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusNoContent:
			return (*BookingResponse)(nil), nil
		case http.StatusOK:
		default:
			return nil, statusError(resp, ErrBookingNotFound)
		}

		var booking BookingResponse
		if err := json.NewDecoder(resp.Body).Decode(&booking); err != nil {
			return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
		}

		return &booking, nil
	})
	if err != nil {
		return nil, err
	}

	resp := result.(*BookingResponse)
	if resp == nil {
		return nil, nil
	}
	return toDomainBooking(resp), nil
}

// execute выполняет запрос через circuit breaker и учитывает результат в метриках
func (c *Client) execute(operation string, fn func() (interface{}, error)) (interface{}, error) {
	result, err := c.breaker.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.log.Error("StayAPI %s: circuit breaker rejected request: %v", operation, err)
			c.metrics.RecordUpstreamRequest(operation, "breaker_open")
			return nil, fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
		}
		c.metrics.RecordUpstreamRequest(operation, outcome(err))
		return nil, err
	}

	c.metrics.RecordUpstreamRequest(operation, "ok")
	return result, nil
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if token, ok := reqctx.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID := reqctx.RequestID(ctx); requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	return req, nil
}

// statusError переводит код ответа в ошибку клиента.
// notFound - ошибка для 404 у конкретного ресурса.
func statusError(resp *http.Response, notFound error) error {
	message := readErrorMessage(resp.Body)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return notFound
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrDatesUnavailable, message)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrRejected, message)
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	default:
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, message)
	}
}

func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, domain.MaxMessageLength*4))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil {
		if errResp.Message != "" {
			return truncate(errResp.Message)
		}
		if errResp.Error != "" {
			return truncate(errResp.Error)
		}
	}

	return truncate(strings.TrimSpace(string(raw)))
}

// truncate обрезает сообщение по границе руны
func truncate(s string) string {
	if len(s) <= domain.MaxMessageLength {
		return s
	}
	cut := domain.MaxMessageLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func outcome(err error) string {
	switch {
	case errors.Is(err, ErrPropertyNotFound), errors.Is(err, ErrBookingNotFound):
		return "not_found"
	case errors.Is(err, ErrDatesUnavailable):
		return "conflict"
	case errors.Is(err, ErrRejected):
		return "rejected"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, ErrInternal):
		return "transport_error"
	default:
		return "invalid_response"
	}
}

func toDomainProperty(requestedID string, resp *PropertyResponse) *domain.Property {
	id := resp.ID
	if id == "" {
		id = requestedID
	}

	ranges := make([]domain.DateRange, 0, len(resp.BlockedDates)+len(resp.Bookings))
	for _, b := range resp.BlockedDates {
		ranges = append(ranges, domain.DateRange{
			StartDate: availability.Normalize(b.StartDate),
			EndDate:   availability.Normalize(b.EndDate),
			Source:    domain.SourceHostBlock,
		})
	}

	for _, b := range resp.Bookings {
		if !bookingBlocks(b.Status) {
			continue
		}
		ranges = append(ranges, domain.DateRange{
			StartDate: availability.Normalize(b.CheckIn),
			EndDate:   availability.Normalize(b.CheckOut),
			Source:    domain.SourceBooking,
		})
	}

	return &domain.Property{
		ID:            id,
		Title:         resp.Title,
		HostID:        resp.HostID,
		PricePerNight: resp.PricePerNight,
		Currency:      resp.Currency,
		MaxGuests:     resp.MaxGuests,
		BlockedRanges: ranges,
	}
}

// normalizeStatus считает бронирование без статуса ожидающим подтверждения
func normalizeStatus(status string) domain.BookingStatus {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		return domain.StatusPending
	}
	return domain.BookingStatus(status)
}

func bookingBlocks(status string) bool {
	return normalizeStatus(status).BlocksDates()
}

func toDomainBooking(resp *BookingResponse) *domain.Booking {
	booking := &domain.Booking{
		ID:         resp.ID,
		PropertyID: resp.PropertyID,
		GuestID:    resp.GuestID,
		CheckIn:    types.ParseCalendarDate(resp.CheckIn),
		CheckOut:   types.ParseCalendarDate(resp.CheckOut),
		Guests:     resp.Guests,
		TotalPrice: resp.TotalPrice,
		Currency:   resp.Currency,
		Status:     normalizeStatus(resp.Status),
	}
	booking.Nights = availability.ComputeNights(booking.CheckIn, booking.CheckOut)

	if createdAt, err := time.Parse(time.RFC3339, resp.CreatedAt); err == nil {
		booking.CreatedAt = createdAt
	}

	return booking
}

// withSubmission дополняет сокращенный ответ API данными отправленной заявки
func withSubmission(booking *domain.Booking, sub bookingform.Submission) *domain.Booking {
	if booking.PropertyID == "" {
		booking.PropertyID = sub.PropertyID
	}
	if booking.CheckIn.IsZero() {
		booking.CheckIn = sub.CheckIn
	}
	if booking.CheckOut.IsZero() {
		booking.CheckOut = sub.CheckOut
	}
	if booking.Guests == 0 {
		booking.Guests = sub.Guests
	}
	if booking.TotalPrice == 0 {
		booking.TotalPrice = sub.TotalPrice
	}
	if booking.Currency == "" {
		booking.Currency = sub.Currency
	}
	booking.Nights = availability.ComputeNights(booking.CheckIn, booking.CheckOut)

	return booking
}
