package repository

import (
	"context"
	"property_quote/internal/adapter/persistence/cache"
	"property_quote/internal/domain/entities"
	"property_quote/internal/usecase/interfaces"
)

// RateTableRepository serves the rate table read once from its source.

type RateTableRepository struct {
	rates *cache.Memo[entities.RateTable]
}

var _ interfaces.IRateTableRepository = (*RateTableRepository)(nil)

func NewRateTableRepository(src interfaces.IRateTableSource) *RateTableRepository {
	return &RateTableRepository{
		rates: cache.NewMemo(func(ctx context.Context) (entities.RateTable, error) {
			r, err := src.LoadRateTable(ctx)
			if err != nil {
				return entities.RateTable{}, unavailable("rate table", err)
			}
			entities.SortTiers(r.CoverageTiers)
			if err := r.Validate(); err != nil {
				return entities.RateTable{}, unavailable("rate table", err)
			}
			return r, nil
		}),
	}
}

func (r *RateTableRepository) Rates(ctx context.Context) (entities.RateTable, error) {
	return r.rates.Get(ctx)
}
