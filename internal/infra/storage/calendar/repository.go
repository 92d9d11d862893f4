package calendar

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/StayFinder-BookingService/internal/domain"
	"github.com/m04kA/StayFinder-BookingService/pkg/dbmetrics"
	"github.com/m04kA/StayFinder-BookingService/pkg/psqlbuilder"
	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

// Repository read-модель календаря объектов размещения.
// Только чтение: бронирования создает StayFinder API.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetProperty получает объект размещения вместе с заблокированными диапазонами:
// блокировками хозяина и активными (pending, confirmed) бронированиями
func (r *Repository) GetProperty(ctx context.Context, propertyID string) (*domain.Property, error) {
	ctx = dbmetrics.WithOperation(ctx, "GetProperty")

	property, err := r.getProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	blocks, err := r.getRanges(ctx, "GetProperty - blocked dates", blockedDatesQuery(propertyID), domain.SourceHostBlock)
	if err != nil {
		return nil, err
	}

	bookings, err := r.getRanges(ctx, "GetProperty - bookings", activeBookingsQuery(propertyID), domain.SourceBooking)
	if err != nil {
		return nil, err
	}

	property.BlockedRanges = append(blocks, bookings...)
	return property, nil
}

func (r *Repository) getProperty(ctx context.Context, propertyID string) (*domain.Property, error) {
	query, args, err := propertyQuery(propertyID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetProperty - build select query: %v", ErrBuildQuery, err)
	}

	var (
		property  domain.Property
		title     sql.NullString
		hostID    sql.NullString
		currency  sql.NullString
		maxGuests sql.NullInt64
	)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetProperty - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%w: GetProperty - rows error: %v", ErrExecQuery, err)
		}
		return nil, ErrPropertyNotFound
	}

	err = rows.Scan(
		&property.ID,
		&title,
		&hostID,
		&property.PricePerNight,
		&currency,
		&maxGuests,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: GetProperty - scan property: %v", ErrScanRow, err)
	}

	property.Title = title.String
	property.HostID = hostID.String
	property.Currency = currency.String
	property.MaxGuests = int(maxGuests.Int64)

	return &property, nil
}

// getRanges читает пары дат; NULL и некорректные значения остаются
// как есть, их обработку решает движок доступности
func (r *Repository) getRanges(
	ctx context.Context,
	op string,
	builder squirrel.SelectBuilder,
	source domain.BlockedRangeSource,
) ([]domain.DateRange, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	ranges := make([]domain.DateRange, 0)
	for rows.Next() {
		var start, end types.CalendarDate
		if err := rows.Scan(&start, &end); err != nil {
			return nil, fmt.Errorf("%w: %s - scan range: %v", ErrScanRow, op, err)
		}
		ranges = append(ranges, domain.DateRange{StartDate: start, EndDate: end, Source: source})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return ranges, nil
}

func propertyQuery(propertyID string) squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"title",
		"host_id",
		"price_per_night",
		"currency",
		"max_guests",
	).
		From("properties").
		Where(squirrel.Eq{"id": propertyID})
}

func blockedDatesQuery(propertyID string) squirrel.SelectBuilder {
	return psqlbuilder.Select("start_date", "end_date").
		From("property_blocked_dates").
		Where(squirrel.Eq{"property_id": propertyID}).
		OrderBy("start_date ASC")
}

func activeBookingsQuery(propertyID string) squirrel.SelectBuilder {
	statuses := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		statuses[i] = string(s)
	}

	return psqlbuilder.Select("check_in", "check_out").
		From("bookings").
		Where(squirrel.Eq{"property_id": propertyID}).
		Where(squirrel.Eq{"status": statuses}).
		OrderBy("check_in ASC")
}
