package get_quote

import (
	"strconv"

	getQuote "github.com/m04kA/StayFinder-BookingService/internal/usecase/get_quote"
	"github.com/m04kA/StayFinder-BookingService/pkg/types"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	PropertyID           string             `json:"propertyId"`
	CheckIn              types.CalendarDate `json:"checkIn"`
	CheckOut             types.CalendarDate `json:"checkOut"`
	Guests               int                `json:"guests"`
	Nights               int                `json:"nights"`
	PricePerNight        float64            `json:"pricePerNight"`
	TotalAmount          float64            `json:"totalAmount"`
	TotalAmountFormatted string             `json:"totalAmountFormatted"` // "300.00"
	Currency             string             `json:"currency"`
	Available            bool               `json:"available"`
	CanSubmit            bool               `json:"canSubmit"`
	Reason               string             `json:"reason,omitempty"`
	MinCheckoutDate      types.CalendarDate `json:"minCheckoutDate"`
	Conflict             *ConflictResponse  `json:"conflict,omitempty"`
}

// ConflictResponse первый заблокированный диапазон, пересекающий выбранные даты
type ConflictResponse struct {
	StartDate types.CalendarDate `json:"startDate"`
	EndDate   types.CalendarDate `json:"endDate"`
	Source    string             `json:"source,omitempty"`
}

// ToUseCaseRequest создает запрос use case из параметров пути и query
func ToUseCaseRequest(propertyID, checkIn, checkOut, guests string) (*getQuote.Request, error) {
	req := &getQuote.Request{
		PropertyID: propertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	}

	if guests != "" {
		n, err := strconv.Atoi(guests)
		if err != nil {
			return nil, err
		}
		req.Guests = n
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getQuote.Response) *QuoteResponse {
	out := &QuoteResponse{
		PropertyID:           resp.PropertyID,
		CheckIn:              resp.CheckIn,
		CheckOut:             resp.CheckOut,
		Guests:               resp.Guests,
		Nights:               resp.Nights,
		PricePerNight:        resp.PricePerNight,
		TotalAmount:          resp.TotalAmount,
		TotalAmountFormatted: strconv.FormatFloat(resp.TotalAmount, 'f', 2, 64),
		Currency:             resp.Currency,
		Available:            resp.Available,
		CanSubmit:            resp.CanSubmit,
		Reason:               resp.Reason,
		MinCheckoutDate:      resp.MinCheckout,
	}

	if resp.Conflict != nil {
		out.Conflict = &ConflictResponse{
			StartDate: resp.Conflict.StartDate,
			EndDate:   resp.Conflict.EndDate,
			Source:    string(resp.Conflict.Source),
		}
	}

	return out
}
