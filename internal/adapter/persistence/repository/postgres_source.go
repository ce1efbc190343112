package repository

import (
	"context"
	"errors"
	"fmt"
	"property_quote/internal/domain/entities"
	"property_quote/internal/usecase/interfaces"

	"github.com/jackc/pgx/v5"
)

const (
	selectRiskFactorsSQL = `SELECT zip_code, COALESCE(risk, ''), multiplier, COALESCE(description, '')
FROM location_risk_factors`

	selectQuoteRulesSQL = `SELECT base_rate_per_sq_ft, high_value_threshold,
       COALESCE(contact_message, ''), COALESCE(contact_phone, ''), COALESCE(contact_email, '')
FROM quote_rules
WHERE id = $1`

	selectCoverageTiersSQL = `SELECT lower_bound, upper_bound, multiplier
FROM coverage_tiers
ORDER BY lower_bound`
)

// PgxQuerier is the subset of pgxpool.Pool used by PostgresSource.
type PgxQuerier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresSource reads the risk and pricing documents from PostgreSQL.
//
// Schema:
//   - location_risk_factors(zip_code PK, risk, multiplier, description);
//     the "default" row is the fallback descriptor.
//   - quote_rules(id PK, base_rate_per_sq_ft, high_value_threshold,
//     contact_message, contact_phone, contact_email); id "current" is used.
//   - coverage_tiers(lower_bound, upper_bound, multiplier).

type PostgresSource struct {
	db PgxQuerier
}

var (
	_ interfaces.IRiskTableSource = (*PostgresSource)(nil)
	_ interfaces.IRateTableSource = (*PostgresSource)(nil)
)

func NewPostgresSource(db PgxQuerier) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) LoadRiskTable(ctx context.Context) (entities.RiskTable, error) {
	rows, err := s.db.Query(ctx, selectRiskFactorsSQL)
	if err != nil {
		return entities.RiskTable{}, fmt.Errorf("%w: query location_risk_factors: %w", entities.ErrDataUnavailable, err)
	}
	items, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (riskItem, error) {
		var it riskItem
		err := row.Scan(&it.ZipCode, &it.Risk, &it.Multiplier, &it.Description)
		return it, err
	})
	if err != nil {
		return entities.RiskTable{}, fmt.Errorf("%w: scan location_risk_factors: %w", entities.ErrDataUnavailable, err)
	}
	return riskTableFromItems(items)
}

func (s *PostgresSource) LoadRateTable(ctx context.Context) (entities.RateTable, error) {
	var it rulesItem
	err := s.db.QueryRow(ctx, selectQuoteRulesSQL, currentRulesID).Scan(
		&it.BaseRatePerSqFt,
		&it.HighValueThreshold,
		&it.ContactMessage,
		&it.ContactPhone,
		&it.ContactEmail,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return entities.RateTable{}, fmt.Errorf("%w: quote_rules has no %q row", entities.ErrDataUnavailable, currentRulesID)
	}
	if err != nil {
		return entities.RateTable{}, fmt.Errorf("%w: query quote_rules: %w", entities.ErrDataUnavailable, err)
	}

	rows, err := s.db.Query(ctx, selectCoverageTiersSQL)
	if err != nil {
		return entities.RateTable{}, fmt.Errorf("%w: query coverage_tiers: %w", entities.ErrDataUnavailable, err)
	}
	it.CoverageTiers, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (tierItem, error) {
		var ti tierItem
		err := row.Scan(&ti.LowerBound, &ti.UpperBound, &ti.Multiplier)
		return ti, err
	})
	if err != nil {
		return entities.RateTable{}, fmt.Errorf("%w: scan coverage_tiers: %w", entities.ErrDataUnavailable, err)
	}
	return fromRulesItem(it), nil
}
