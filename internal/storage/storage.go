package storage

import (
	"context"

	"positionScope/internal/model"
)

// Sink persists rendered descriptor records.
type Sink interface {
	PutDescriptorBatch(ctx context.Context, records []model.DescriptorRecord) error
}
