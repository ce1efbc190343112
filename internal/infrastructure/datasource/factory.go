package datasource

import (
	"context"
	"fmt"
	"property_quote/internal/adapter/persistence/repository"
	"property_quote/internal/infrastructure/config"
	"property_quote/internal/infrastructure/database"
	"property_quote/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Repositories bundles the cached repositories built over the configured
// source. Close releases the underlying connection, if any.
type Repositories struct {
	Source string
	Risks  *repository.RiskRepository
	Rates  *repository.RateTableRepository
	Close  func()
}

// Open builds the repositories for cfg.DataSource.
func Open(ctx context.Context, cfg config.Config, log *zap.Logger) (*Repositories, error) {
	if log == nil {
		log = zap.NewNop()
	}

	switch cfg.DataSource {
	case config.DataSourceFile, "":
		src := repository.NewFileSource(cfg.RiskFactorsPath, cfg.QuoteRulesPath)
		log.Info("[quote][datasource] using file source",
			zap.String("risk_factors_path", orEmbedded(cfg.RiskFactorsPath)),
			zap.String("quote_rules_path", orEmbedded(cfg.QuoteRulesPath)),
		)
		return newRepositories(config.DataSourceFile, src, src, func() {}), nil

	case config.DataSourceDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		src := repository.NewDynamoSource(ddb, cfg.DynamoDB.RiskTable, cfg.DynamoDB.RulesTable)
		log.Info("[quote][datasource] using dynamodb source",
			zap.String("region", cfg.DynamoDB.Region),
			zap.String("endpoint", cfg.DynamoDB.Endpoint),
			zap.String("risk_table", cfg.DynamoDB.RiskTable),
			zap.String("rules_table", cfg.DynamoDB.RulesTable),
		)
		return newRepositories(config.DataSourceDynamoDB, src, src, func() {}), nil

	case config.DataSourcePostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.Postgres.URL)
		if err != nil {
			return nil, err
		}
		src := repository.NewPostgresSource(pool)
		log.Info("[quote][datasource] using postgres source")
		return newRepositories(config.DataSourcePostgres, src, src, pool.Close), nil

	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.DataSource)
	}
}

func newRepositories(name string, risks interfaces.IRiskTableSource, rates interfaces.IRateTableSource, closeFn func()) *Repositories {
	return &Repositories{
		Source: name,
		Risks:  repository.NewRiskRepository(risks),
		Rates:  repository.NewRateTableRepository(rates),
		Close:  closeFn,
	}
}

// Preload loads both documents so a broken data source fails at startup
// rather than on the first request.
func (r *Repositories) Preload(ctx context.Context) (riskZips, tiers int, err error) {
	risks, err := r.Risks.Table(ctx)
	if err != nil {
		return 0, 0, err
	}
	rates, err := r.Rates.Rates(ctx)
	if err != nil {
		return 0, 0, err
	}
	return len(risks.ByZipCode), len(rates.CoverageTiers), nil
}

func orEmbedded(path string) string {
	if path == "" {
		return "(embedded)"
	}
	return path
}
