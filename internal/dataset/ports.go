package dataset

import (
	"context"

	"contratos/internal/core"
)

// Source supplies the three fixed record collections. Implementations are
// read-only: the collections are loaded once and never refreshed, and
// accessors must return copies so callers cannot mutate the loaded data.
type Source interface {
	// Contracts returns the general contracts dataset.
	Contracts(ctx context.Context) ([]core.ContractRecord, error)

	// ImageUsageContracts returns the image-usage contract subset.
	ImageUsageContracts(ctx context.Context) ([]core.ContractRecord, error)

	// ImageUsageValues returns the per-natureza monthly value series.
	ImageUsageValues(ctx context.Context) ([]core.ValueRecord, error)
}
