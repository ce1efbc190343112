package interfaces

import (
	"context"
	"property_quote/internal/domain/entities"
)

// IRiskTableSource reads the location risk document from a backing store
// (embedded/file, DynamoDB, PostgreSQL). Each call performs a full read.

type IRiskTableSource interface {
	LoadRiskTable(ctx context.Context) (entities.RiskTable, error)
}

// IRiskRepository resolves the risk descriptor for a zip code.
//
// Unmapped zip codes resolve to the default descriptor; an error means the
// backing store could not be read.

type IRiskRepository interface {
	RiskFor(ctx context.Context, zipCode string) (entities.RiskDescriptor, error)
}
