package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Data source names accepted by QUOTE_DATA_SOURCE.
const (
	DataSourceFile     = "file"
	DataSourceDynamoDB = "dynamodb"
	DataSourcePostgres = "postgres"
)

type Config struct {
	Port    int    `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"release"`

	Log LogConfig

	DataSource      string `env:"QUOTE_DATA_SOURCE" envDefault:"file"`
	RiskFactorsPath string `env:"RISK_FACTORS_PATH"`
	QuoteRulesPath  string `env:"QUOTE_RULES_PATH"`

	DynamoDB DynamoDBConfig
	Postgres PostgresConfig
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// DynamoDBConfig mirrors the local-friendly defaults used with dynamodb-local:
// the emulator does not check credentials but the SDK requires some.
type DynamoDBConfig struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`
	RiskTable       string `env:"RISK_FACTORS_TABLE" envDefault:"location_risk_factors"`
	RulesTable      string `env:"QUOTE_RULES_TABLE" envDefault:"quote_rules"`
}

type PostgresConfig struct {
	URL string `env:"DATABASE_URL"`
}

// Load reads the configuration from the process environment.
func Load() (Config, error) {
	return LoadFrom(nil)
}

// LoadFrom reads the configuration from the given environment map. A nil map
// means the process environment.
func LoadFrom(environ map[string]string) (Config, error) {
	var cfg Config
	opts := env.Options{}
	if environ != nil {
		opts.Environment = environ
	}
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.DataSource = strings.ToLower(strings.TrimSpace(cfg.DataSource))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.DataSource {
	case DataSourceFile, DataSourceDynamoDB:
	case DataSourcePostgres:
		if strings.TrimSpace(c.Postgres.URL) == "" {
			return fmt.Errorf("DATABASE_URL is required when QUOTE_DATA_SOURCE=%s", DataSourcePostgres)
		}
	default:
		return fmt.Errorf("unknown QUOTE_DATA_SOURCE %q (want file, dynamodb or postgres)", c.DataSource)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	return nil
}
