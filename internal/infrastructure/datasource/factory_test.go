package datasource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"property_quote/internal/domain/entities"
	"property_quote/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_FileEmbedded(t *testing.T) {
	repos, err := Open(context.Background(), config.Config{DataSource: config.DataSourceFile}, nil)
	require.NoError(t, err)
	defer repos.Close()

	assert.Equal(t, config.DataSourceFile, repos.Source)

	zips, tiers, err := repos.Preload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, zips)
	assert.Equal(t, 4, tiers)

	risk, err := repos.Risks.RiskFor(context.Background(), "33139")
	require.NoError(t, err)
	assert.Equal(t, 1.8, risk.Multiplier)
}

func TestOpen_FileMissingFailsPreload(t *testing.T) {
	cfg := config.Config{
		DataSource:      config.DataSourceFile,
		RiskFactorsPath: filepath.Join(t.TempDir(), "missing.json"),
	}
	repos, err := Open(context.Background(), cfg, nil)
	require.NoError(t, err)

	_, _, err = repos.Preload(context.Background())
	require.ErrorIs(t, err, entities.ErrDataUnavailable)
}

func TestOpen_FileInvalidRulesFailsPreload(t *testing.T) {
	rules := filepath.Join(t.TempDir(), "rules.yaml")
	doc := `baseRatePerSqFt: 0.5
highValueThreshold: 5000
coverageMultipliers:
  "50000-100000": 0.8
  "200000-2000000": 1.0
`
	require.NoError(t, os.WriteFile(rules, []byte(doc), 0o600))

	repos, err := Open(context.Background(), config.Config{DataSource: config.DataSourceFile, QuoteRulesPath: rules}, nil)
	require.NoError(t, err)

	_, _, err = repos.Preload(context.Background())
	require.ErrorIs(t, err, entities.ErrDataUnavailable)
	require.ErrorIs(t, err, entities.ErrInvalidData)
}

func TestOpen_UnknownSource(t *testing.T) {
	_, err := Open(context.Background(), config.Config{DataSource: "redis"}, nil)
	require.Error(t, err)
}
