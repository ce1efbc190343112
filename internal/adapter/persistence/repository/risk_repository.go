package repository

import (
	"context"
	"property_quote/internal/adapter/persistence/cache"
	"property_quote/internal/domain/entities"
	"property_quote/internal/usecase/interfaces"
)

// RiskRepository serves zip code lookups from a risk table read once from
// its source and kept for the life of the process.

type RiskRepository struct {
	table *cache.Memo[entities.RiskTable]
}

var _ interfaces.IRiskRepository = (*RiskRepository)(nil)

func NewRiskRepository(src interfaces.IRiskTableSource) *RiskRepository {
	return &RiskRepository{
		table: cache.NewMemo(func(ctx context.Context) (entities.RiskTable, error) {
			t, err := src.LoadRiskTable(ctx)
			if err != nil {
				return entities.RiskTable{}, unavailable("risk table", err)
			}
			if err := t.Validate(); err != nil {
				return entities.RiskTable{}, unavailable("risk table", err)
			}
			return t, nil
		}),
	}
}

func (r *RiskRepository) RiskFor(ctx context.Context, zipCode string) (entities.RiskDescriptor, error) {
	t, err := r.table.Get(ctx)
	if err != nil {
		return entities.RiskDescriptor{}, err
	}
	return t.Lookup(zipCode), nil
}

// Table returns the loaded risk table.
func (r *RiskRepository) Table(ctx context.Context) (entities.RiskTable, error) {
	return r.table.Get(ctx)
}
