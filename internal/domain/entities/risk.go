package entities

import "math"

// RiskDescriptor is the location-derived pricing factor for a zip code.
type RiskDescriptor struct {
	Risk        string  `json:"risk" yaml:"risk"`
	Multiplier  float64 `json:"multiplier" yaml:"multiplier"`
	Description string  `json:"description" yaml:"description"`
}

// RiskTable maps zip codes to risk descriptors with one default for
// unmapped codes. It is read-only once loaded.
type RiskTable struct {
	ByZipCode map[string]RiskDescriptor
	Default   RiskDescriptor
}

// Lookup returns the descriptor for zipCode, or the default when the zip code
// is not mapped. An unmapped zip code is not an error.
func (t RiskTable) Lookup(zipCode string) RiskDescriptor {
	if d, ok := t.ByZipCode[zipCode]; ok {
		return d
	}
	return t.Default
}

// Validate reports descriptors that cannot be used for pricing.
func (t RiskTable) Validate() error {
	if !positiveFinite(t.Default.Multiplier) {
		return invalidDataf("default risk multiplier must be positive, got %v", t.Default.Multiplier)
	}
	for zip, d := range t.ByZipCode {
		if !positiveFinite(d.Multiplier) {
			return invalidDataf("risk multiplier for zip %s must be positive, got %v", zip, d.Multiplier)
		}
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
