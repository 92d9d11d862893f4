package get_calendar

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/StayFinder-BookingService/internal/availability"
	"github.com/m04kA/StayFinder-BookingService/internal/domain"
	calendarRepo "github.com/m04kA/StayFinder-BookingService/internal/infra/storage/calendar"
	stayClient "github.com/m04kA/StayFinder-BookingService/internal/integrations/stayapi"
	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type fakeProperties struct {
	property *domain.Property
	err      error
}

func (f *fakeProperties) GetProperty(_ context.Context, _ string) (*domain.Property, error) {
	return f.property, f.err
}

func newUseCase(props *fakeProperties, weekStart time.Weekday) *UseCase {
	uc := NewUseCase(props, availability.NewEngine(availability.PolicySkip), time.UTC, weekStart, nopLogger{})
	uc.timeProvider = &fixedTime{now: time.Date(2024, 6, 5, 9, 0, 0, 0, time.UTC)}
	return uc
}

func sampleProperty() *domain.Property {
	return &domain.Property{
		ID:            "p-1",
		PricePerNight: 100,
		BlockedRanges: []domain.DateRange{
			{StartDate: types.ParseCalendarDate("2024-06-10"), EndDate: types.ParseCalendarDate("2024-06-15")},
		},
	}
}

func TestUseCase_CheckInCurrentMonth(t *testing.T) {
	uc := newUseCase(&fakeProperties{property: sampleProperty()}, time.Sunday)

	resp, err := uc.Execute(context.Background(), &Request{PropertyID: "p-1"})
	require.NoError(t, err)

	assert.Equal(t, FieldCheckIn, resp.Field)
	assert.Equal(t, "2024-06-01", resp.Month.Month.String())
	assert.Equal(t, "2024-06-05", resp.Today.String())
	assert.Equal(t, "2024-06-05", resp.MinDate.String())
	assert.Equal(t, 6, resp.Month.LeadingBlanks)
	require.Len(t, resp.Month.Days, 30)

	// 1-4 в прошлом, 10-15 заблокированы
	assert.Equal(t, 20, resp.Month.SelectableCount())
	assert.True(t, resp.Month.Days[4].Today)
	assert.True(t, resp.Month.Days[9].Disabled)
	assert.False(t, resp.Month.Days[15].Disabled)
}

func TestUseCase_CheckOutFollowsCheckIn(t *testing.T) {
	uc := newUseCase(&fakeProperties{property: sampleProperty()}, time.Monday)

	resp, err := uc.Execute(context.Background(), &Request{
		PropertyID: "p-1",
		Field:      "CheckOut",
		CheckIn:    "2024-06-20",
		Value:      "2024-06-25",
	})
	require.NoError(t, err)

	assert.Equal(t, FieldCheckOut, resp.Field)
	assert.Equal(t, "2024-06-21", resp.MinDate.String())
	assert.Equal(t, "2024-06-25", resp.Value.String())
	assert.Equal(t, 5, resp.Month.LeadingBlanks)
	assert.True(t, resp.Month.Days[19].Disabled, "check-in day is before min checkout")
	assert.False(t, resp.Month.Days[20].Disabled)
	assert.True(t, resp.Month.Days[24].Selected)
}

func TestUseCase_MonthFromValueAndExplicitMonth(t *testing.T) {
	uc := newUseCase(&fakeProperties{property: sampleProperty()}, time.Sunday)

	resp, err := uc.Execute(context.Background(), &Request{PropertyID: "p-1", Value: "2024-08-12"})
	require.NoError(t, err)
	assert.Equal(t, "2024-08-01", resp.Month.Month.String())
	assert.Equal(t, 31, resp.Month.SelectableCount())

	resp, err = uc.Execute(context.Background(), &Request{PropertyID: "p-1", Month: "2024-05"})
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", resp.Month.Month.String())
	assert.Equal(t, 0, resp.Month.SelectableCount(), "past month is fully disabled")
}

func TestUseCase_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		props   *fakeProperties
		wantErr error
	}{
		{name: "no property", req: &Request{}, props: &fakeProperties{}, wantErr: ErrInvalidInput},
		{name: "bad field", req: &Request{PropertyID: "p-1", Field: "guests"}, props: &fakeProperties{}, wantErr: ErrInvalidField},
		{name: "bad month", req: &Request{PropertyID: "p-1", Month: "2024-13"}, props: &fakeProperties{}, wantErr: ErrInvalidMonth},
		{name: "not found", req: &Request{PropertyID: "p-1"}, props: &fakeProperties{err: stayClient.ErrPropertyNotFound}, wantErr: ErrPropertyNotFound},
		{name: "unavailable", req: &Request{PropertyID: "p-1"}, props: &fakeProperties{err: stayClient.ErrServiceUnavailable}, wantErr: ErrServiceUnavailable},
		{name: "postgres down", req: &Request{PropertyID: "p-1"}, props: &fakeProperties{err: fmt.Errorf("%w: GetProperty - execute query: dial tcp: connection refused", calendarRepo.ErrExecQuery)}, wantErr: ErrServiceUnavailable},
		{name: "internal", req: &Request{PropertyID: "p-1"}, props: &fakeProperties{err: errors.New("boom")}, wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newUseCase(tt.props, time.Sunday).Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
