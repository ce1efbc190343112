package quoting

import (
	"property_quote/internal/domain/entities"
	"time"

	"github.com/shopspring/decimal"
)

// Price computes a quote for an already validated property.
//
//	baseCost     = squareFeet * baseRatePerSqFt
//	adjustedCost = baseCost * coverageMultiplier
//	finalAmount  = adjustedCost * riskMultiplier
//
// High value is decided on the unrounded final amount and is strict: an
// amount equal to the threshold stays standard. Subtotal and total are
// rounded to cents independently. Apart from Timestamp the result depends
// only on the inputs.
func Price(p entities.Property, risk entities.RiskDescriptor, rates entities.RateTable) entities.Quote {
	return priceAt(p, risk, rates, time.Now())
}

func priceAt(p entities.Property, risk entities.RiskDescriptor, rates entities.RateTable, now time.Time) entities.Quote {
	coverageMultiplier := rates.CoverageMultiplier(p.Coverage)

	baseCost := decimal.NewFromFloat(p.SquareFeet).Mul(decimal.NewFromFloat(rates.BaseRatePerSqFt))
	adjustedCost := baseCost.Mul(decimal.NewFromFloat(coverageMultiplier))
	finalAmount := adjustedCost.Mul(decimal.NewFromFloat(risk.Multiplier))

	isHighValue := finalAmount.GreaterThan(decimal.NewFromFloat(rates.HighValueThreshold))
	status := entities.QuoteStatusStandard
	if isHighValue {
		status = entities.QuoteStatusContactRequired
	}

	total := RoundCents(finalAmount)
	return entities.Quote{
		Property:    copyProperty(p),
		Amount:      total,
		IsHighValue: isHighValue,
		Status:      status,
		Breakdown: entities.Breakdown{
			BaseRate:           rates.BaseRatePerSqFt,
			RiskMultiplier:     risk.Multiplier,
			CoverageMultiplier: coverageMultiplier,
			Subtotal:           RoundCents(adjustedCost),
			Total:              total,
		},
		Timestamp: now.UTC(),
	}
}

// RoundCents rounds half away from zero to two decimal places.
func RoundCents(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

func copyProperty(p entities.Property) entities.Property {
	if p.Address != nil {
		addr := *p.Address
		p.Address = &addr
	}
	return p
}
