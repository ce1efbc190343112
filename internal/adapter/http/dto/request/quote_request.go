package request

import (
	"encoding/json"
	"math"
	"property_quote/internal/domain/entities"
)

type AddressRequest struct {
	Street  string `json:"street" example:"123 Main St"`
	City    string `json:"city" example:"Austin"`
	State   string `json:"state" example:"TX"`
	ZipCode string `json:"zipCode" example:"78701"`
}

// QuoteRequest is the body of POST /api/quote and POST /api/quote/pdf.
//
// SquareFeet and Coverage are decoded loosely: anything that is not a JSON
// number (a string, null, a missing key) becomes NaN so the validator reports
// the field's own message instead of a generic payload error. Address fields
// are passed through as sent; length rules count the raw characters.
type QuoteRequest struct {
	Address    *AddressRequest `json:"address"`
	SquareFeet any             `json:"squareFeet" swaggertype:"number" example:"2000"`
	Coverage   any             `json:"coverage" swaggertype:"number" example:"300000"`
}

func (r QuoteRequest) ToProperty() entities.Property {
	p := entities.Property{
		SquareFeet: numberOrNaN(r.SquareFeet),
		Coverage:   numberOrNaN(r.Coverage),
	}
	if r.Address != nil {
		p.Address = &entities.Address{
			Street:  r.Address.Street,
			City:    r.Address.City,
			State:   r.Address.State,
			ZipCode: r.Address.ZipCode,
		}
	}
	return p
}

func numberOrNaN(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f
		}
	}
	return math.NaN()
}
