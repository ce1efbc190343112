package response

import (
	"property_quote/internal/domain/entities"
	"time"
)

// TimestampLayout matches the millisecond ISO-8601 form clients parse.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

type AddressResponse struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
}

type PropertyResponse struct {
	Address    *AddressResponse `json:"address,omitempty"`
	SquareFeet float64          `json:"squareFeet"`
	Coverage   float64          `json:"coverage"`
}

type BreakdownResponse struct {
	BaseRate           float64 `json:"baseRate"`
	RiskMultiplier     float64 `json:"riskMultiplier"`
	CoverageMultiplier float64 `json:"coverageMultiplier"`
	Subtotal           float64 `json:"subtotal"`
	Total              float64 `json:"total"`
}

type ContactInfoResponse struct {
	Message string `json:"message"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type QuoteResponse struct {
	ID          string               `json:"id"`
	Property    PropertyResponse     `json:"property"`
	Amount      float64              `json:"amount"`
	IsHighValue bool                 `json:"isHighValue"`
	Status      string               `json:"status" enums:"standard,contact_required"`
	Breakdown   BreakdownResponse    `json:"breakdown"`
	Timestamp   string               `json:"timestamp"`
	ContactInfo *ContactInfoResponse `json:"contactInfo,omitempty"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	res := QuoteResponse{
		ID: q.ID,
		Property: PropertyResponse{
			SquareFeet: q.Property.SquareFeet,
			Coverage:   q.Property.Coverage,
		},
		Amount:      q.Amount,
		IsHighValue: q.IsHighValue,
		Status:      string(q.Status),
		Breakdown: BreakdownResponse{
			BaseRate:           q.Breakdown.BaseRate,
			RiskMultiplier:     q.Breakdown.RiskMultiplier,
			CoverageMultiplier: q.Breakdown.CoverageMultiplier,
			Subtotal:           q.Breakdown.Subtotal,
			Total:              q.Breakdown.Total,
		},
		Timestamp: q.Timestamp.UTC().Format(TimestampLayout),
	}
	if a := q.Property.Address; a != nil {
		res.Property.Address = &AddressResponse{Street: a.Street, City: a.City, State: a.State, ZipCode: a.ZipCode}
	}
	if c := q.ContactInfo; c != nil {
		res.ContactInfo = &ContactInfoResponse{Message: c.Message, Phone: c.Phone, Email: c.Email}
	}
	return res
}

type HealthResponse struct {
	Status    string `json:"status" example:"ok"`
	Timestamp string `json:"timestamp"`
}

func NewHealthResponse(now time.Time) HealthResponse {
	return HealthResponse{Status: "ok", Timestamp: now.UTC().Format(TimestampLayout)}
}
