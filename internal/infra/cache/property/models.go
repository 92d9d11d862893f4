package property

import (
	"github.com/m04kA/StayFinder-BookingService/internal/domain"
	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

// cachedProperty JSON представление объекта в redis.
// Незаданные и некорректные границы сохраняются как null и "invalid".
type cachedProperty struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	HostID        string        `json:"hostId"`
	PricePerNight float64       `json:"pricePerNight"`
	Currency      string        `json:"currency"`
	MaxGuests     int           `json:"maxGuests"`
	BlockedRanges []cachedRange `json:"blockedRanges"`
}

type cachedRange struct {
	StartDate types.CalendarDate `json:"startDate"`
	EndDate   types.CalendarDate `json:"endDate"`
	Source    string             `json:"source"`
}

func fromDomain(p *domain.Property) cachedProperty {
	ranges := make([]cachedRange, len(p.BlockedRanges))
	for i, r := range p.BlockedRanges {
		ranges[i] = cachedRange{StartDate: r.StartDate, EndDate: r.EndDate, Source: string(r.Source)}
	}

	return cachedProperty{
		ID:            p.ID,
		Title:         p.Title,
		HostID:        p.HostID,
		PricePerNight: p.PricePerNight,
		Currency:      p.Currency,
		MaxGuests:     p.MaxGuests,
		BlockedRanges: ranges,
	}
}

func (c cachedProperty) toDomain() *domain.Property {
	ranges := make([]domain.DateRange, len(c.BlockedRanges))
	for i, r := range c.BlockedRanges {
		ranges[i] = domain.DateRange{
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
			Source:    domain.BlockedRangeSource(r.Source),
		}
	}

	return &domain.Property{
		ID:            c.ID,
		Title:         c.Title,
		HostID:        c.HostID,
		PricePerNight: c.PricePerNight,
		Currency:      c.Currency,
		MaxGuests:     c.MaxGuests,
		BlockedRanges: ranges,
	}
}
