package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"property_quote/data"
	"property_quote/internal/domain/entities"
	"property_quote/internal/usecase/interfaces"
	"strings"

	"gopkg.in/yaml.v3"
)

// riskDocument is the on-disk shape of the location risk document.
type riskDocument struct {
	ZipCodeRiskFactors map[string]entities.RiskDescriptor `json:"zipCodeRiskFactors" yaml:"zipCodeRiskFactors"`
	DefaultRisk        *entities.RiskDescriptor           `json:"defaultRisk" yaml:"defaultRisk"`
}

// rulesDocument is the on-disk shape of the pricing rules document. Tier keys
// are textual "lower-upper" ranges.
type rulesDocument struct {
	BaseRatePerSqFt     float64              `json:"baseRatePerSqFt" yaml:"baseRatePerSqFt"`
	CoverageMultipliers map[string]float64   `json:"coverageMultipliers" yaml:"coverageMultipliers"`
	HighValueThreshold  float64              `json:"highValueThreshold" yaml:"highValueThreshold"`
	ContactInfo         entities.ContactInfo `json:"contactInfo" yaml:"contactInfo"`
}

// FileSource reads the risk and pricing documents from disk, or from the
// documents embedded in the binary when a path is empty.
//
// Files ending in .yaml or .yml are decoded as YAML, anything else as JSON.

type FileSource struct {
	riskPath  string
	rulesPath string
	embedded  fs.FS
}

var (
	_ interfaces.IRiskTableSource = (*FileSource)(nil)
	_ interfaces.IRateTableSource = (*FileSource)(nil)
)

func NewFileSource(riskPath, rulesPath string) *FileSource {
	return &FileSource{
		riskPath:  strings.TrimSpace(riskPath),
		rulesPath: strings.TrimSpace(rulesPath),
		embedded:  data.FS,
	}
}

func (s *FileSource) LoadRiskTable(ctx context.Context) (entities.RiskTable, error) {
	var doc riskDocument
	if err := s.decode(ctx, s.riskPath, data.RiskFactorsFile, &doc); err != nil {
		return entities.RiskTable{}, err
	}
	if doc.DefaultRisk == nil {
		return entities.RiskTable{}, fmt.Errorf("%w: risk document has no defaultRisk", entities.ErrInvalidData)
	}
	byZip := doc.ZipCodeRiskFactors
	if byZip == nil {
		byZip = map[string]entities.RiskDescriptor{}
	}
	return entities.RiskTable{ByZipCode: byZip, Default: *doc.DefaultRisk}, nil
}

func (s *FileSource) LoadRateTable(ctx context.Context) (entities.RateTable, error) {
	var doc rulesDocument
	if err := s.decode(ctx, s.rulesPath, data.QuoteRulesFile, &doc); err != nil {
		return entities.RateTable{}, err
	}
	tiers, err := entities.TiersFromKeys(doc.CoverageMultipliers)
	if err != nil {
		return entities.RateTable{}, err
	}
	return entities.RateTable{
		BaseRatePerSqFt:    doc.BaseRatePerSqFt,
		CoverageTiers:      tiers,
		HighValueThreshold: doc.HighValueThreshold,
		ContactInfo:        doc.ContactInfo,
	}, nil
}

func (s *FileSource) decode(ctx context.Context, path, embeddedName string, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := path
	var raw []byte
	var err error
	if path == "" {
		name = embeddedName
		raw, err = fs.ReadFile(s.embedded, embeddedName)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return fmt.Errorf("%w: read %s: %w", entities.ErrDataUnavailable, name, err)
	}

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, out)
	default:
		err = json.Unmarshal(raw, out)
	}
	if err != nil {
		return fmt.Errorf("%w: parse %s: %w", entities.ErrDataUnavailable, name, err)
	}
	return nil
}
