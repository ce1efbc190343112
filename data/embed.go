// Package data ships the default risk and pricing documents inside the binary.
package data

import "embed"

const (
	RiskFactorsFile = "location-risk-factors.json"
	QuoteRulesFile  = "quote-rules.json"
)

//go:embed location-risk-factors.json quote-rules.json
var FS embed.FS
