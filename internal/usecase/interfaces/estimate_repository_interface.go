package interfaces

import (
	"context"

	"stonecraft/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// Lookup methods return a zero-value Estimate (ID == 0) when nothing
// matches; errors are reserved for storage failures. Replace follows the
// same convention when the id does not exist.
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	List(ctx context.Context) ([]entities.Estimate, error)
	GetByID(ctx context.Context, id int64) (entities.Estimate, error)
	Replace(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
