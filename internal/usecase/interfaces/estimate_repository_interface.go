package interfaces

import (
	"context"

	"kalakruti_api/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for submitted estimates.
//
// Records are append-only:
//   - Create stores a new record and fails if the id already exists
//   - List returns records of one kind, newest first, skipping offset records
//   - Count returns the number of records of one kind
type IEstimateRepository interface {
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
	List(ctx context.Context, kind entities.EstimateKind, offset, limit int) ([]entities.Estimate, error)
	Count(ctx context.Context, kind entities.EstimateKind) (int, error)
}
