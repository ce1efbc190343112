package entities

import "time"

// QuoteStatus routes a quote either to an instant price or to manual contact.
type QuoteStatus string

const (
	QuoteStatusStandard        QuoteStatus = "standard"
	QuoteStatusContactRequired QuoteStatus = "contact_required"
)

// Breakdown itemizes how a quote amount was reached.
//
// Subtotal is the coverage-adjusted cost before the risk multiplier;
// Total always equals Quote.Amount.
type Breakdown struct {
	BaseRate           float64 `json:"baseRate"`
	RiskMultiplier     float64 `json:"riskMultiplier"`
	CoverageMultiplier float64 `json:"coverageMultiplier"`
	Subtotal           float64 `json:"subtotal"`
	Total              float64 `json:"total"`
}

// Quote is a priced property. Quotes are never persisted.
//
// Monetary representation:
//   - Amount, Subtotal and Total are rounded to cents.
//   - ContactInfo is set iff IsHighValue.
type Quote struct {
	ID          string       `json:"id"`
	Property    Property     `json:"property"`
	Amount      float64      `json:"amount"`
	IsHighValue bool         `json:"isHighValue"`
	Status      QuoteStatus  `json:"status"`
	Breakdown   Breakdown    `json:"breakdown"`
	Timestamp   time.Time    `json:"timestamp"`
	ContactInfo *ContactInfo `json:"contactInfo,omitempty"`
}
