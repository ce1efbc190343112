package entities

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// CoverageTier is a closed coverage range [LowerBound, UpperBound] with its
// pricing multiplier.
type CoverageTier struct {
	LowerBound float64 `json:"lowerBound" yaml:"lowerBound"`
	UpperBound float64 `json:"upperBound" yaml:"upperBound"`
	Multiplier float64 `json:"multiplier" yaml:"multiplier"`
}

// Contains reports whether coverage falls inside the tier, both ends inclusive.
func (t CoverageTier) Contains(coverage float64) bool {
	return coverage >= t.LowerBound && coverage <= t.UpperBound
}

// Key renders the tier in the "lower-upper" form used by rate documents.
func (t CoverageTier) Key() string {
	return strconv.FormatFloat(t.LowerBound, 'f', -1, 64) + "-" + strconv.FormatFloat(t.UpperBound, 'f', -1, 64)
}

// ContactInfo is shown to the customer when a quote needs manual handling.
type ContactInfo struct {
	Message string `json:"message" yaml:"message"`
	Phone   string `json:"phone" yaml:"phone"`
	Email   string `json:"email" yaml:"email"`
}

// RateTable holds the pricing rules. It is read-only once loaded.
//
// CoverageTiers is ordered by LowerBound and partitions the valid coverage
// range without gaps or overlaps (see Validate).
type RateTable struct {
	BaseRatePerSqFt    float64        `json:"baseRatePerSqFt"`
	CoverageTiers      []CoverageTier `json:"coverageTiers"`
	HighValueThreshold float64        `json:"highValueThreshold"`
	ContactInfo        ContactInfo    `json:"contactInfo"`
}

// FallbackTierLower and FallbackTierUpper identify the tier used when no tier
// contains the requested coverage.
const (
	FallbackTierLower = 100001
	FallbackTierUpper = 500000
)

// CoverageMultiplier returns the multiplier of the tier containing coverage.
// When no tier matches it falls back to the 100001-500000 tier, or 1.0 when
// that tier is absent too.
func (r RateTable) CoverageMultiplier(coverage float64) float64 {
	for _, t := range r.CoverageTiers {
		if t.Contains(coverage) {
			return t.Multiplier
		}
	}
	for _, t := range r.CoverageTiers {
		if t.LowerBound == FallbackTierLower && t.UpperBound == FallbackTierUpper {
			return t.Multiplier
		}
	}
	return 1.0
}

// Validate checks the load-time invariants of the rate table.
func (r RateTable) Validate() error {
	if !positiveFinite(r.BaseRatePerSqFt) {
		return invalidDataf("base rate per sq ft must be positive, got %v", r.BaseRatePerSqFt)
	}
	if !positiveFinite(r.HighValueThreshold) {
		return invalidDataf("high value threshold must be positive, got %v", r.HighValueThreshold)
	}
	if len(r.CoverageTiers) == 0 {
		return invalidDataf("no coverage tiers")
	}

	for i, t := range r.CoverageTiers {
		if !finite(t.LowerBound) || !finite(t.UpperBound) {
			return invalidDataf("tier %s: bounds must be finite", t.Key())
		}
		if t.LowerBound > t.UpperBound {
			return invalidDataf("tier %s: lower bound above upper bound", t.Key())
		}
		if !positiveFinite(t.Multiplier) {
			return invalidDataf("tier %s: multiplier must be positive, got %v", t.Key(), t.Multiplier)
		}
		if i == 0 {
			continue
		}
		prev := r.CoverageTiers[i-1]
		switch {
		case t.LowerBound <= prev.UpperBound:
			return invalidDataf("tier %s overlaps tier %s", t.Key(), prev.Key())
		case t.LowerBound != prev.UpperBound+1:
			return invalidDataf("gap between tier %s and tier %s", prev.Key(), t.Key())
		}
	}

	first, last := r.CoverageTiers[0], r.CoverageTiers[len(r.CoverageTiers)-1]
	if first.LowerBound > MinCoverage || last.UpperBound < MaxCoverage {
		return invalidDataf("tiers cover %s..%s, want at least %d..%d",
			first.Key(), last.Key(), MinCoverage, MaxCoverage)
	}
	return nil
}

// ParseTierKey parses a "lower-upper" tier key such as "100001-500000".
func ParseTierKey(key string) (lower, upper float64, err error) {
	lo, hi, ok := strings.Cut(strings.TrimSpace(key), "-")
	if !ok {
		return 0, 0, invalidDataf("tier key %q: want lower-upper", key)
	}
	lower, err = strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil || math.IsNaN(lower) || math.IsInf(lower, 0) {
		return 0, 0, invalidDataf("tier key %q: bad lower bound", key)
	}
	upper, err = strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil || math.IsNaN(upper) || math.IsInf(upper, 0) {
		return 0, 0, invalidDataf("tier key %q: bad upper bound", key)
	}
	return lower, upper, nil
}

// TiersFromKeys converts a textual tier mapping into an ordered tier list.
func TiersFromKeys(multipliers map[string]float64) ([]CoverageTier, error) {
	tiers := make([]CoverageTier, 0, len(multipliers))
	for key, m := range multipliers {
		lower, upper, err := ParseTierKey(key)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, CoverageTier{LowerBound: lower, UpperBound: upper, Multiplier: m})
	}
	SortTiers(tiers)
	return tiers, nil
}

// SortTiers orders tiers by lower bound.
func SortTiers(tiers []CoverageTier) {
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].LowerBound < tiers[j].LowerBound
	})
}

func (t CoverageTier) String() string {
	return fmt.Sprintf("%s x%v", t.Key(), t.Multiplier)
}
