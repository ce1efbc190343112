package interfaces

import (
	"context"
	"property_quote/internal/domain/entities"
)

// IRateTableSource reads the pricing rules document from a backing store.

type IRateTableSource interface {
	LoadRateTable(ctx context.Context) (entities.RateTable, error)
}

// IRateTableRepository returns the cached rate table.

type IRateTableRepository interface {
	Rates(ctx context.Context) (entities.RateTable, error)
}
