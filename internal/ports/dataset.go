package ports

import (
	"context"

	"github.com/baditaflorin/go_text_preprocessing/internal/core/domain"
)

// DatasetSource loads a named dataset (for example "train" or "test").
type DatasetSource interface {
	Load(ctx context.Context, name string) (*domain.Dataset, error)
}

// DatasetSink stages processed datasets and publishes them together.
// Nothing is visible at the destination until Commit succeeds.
type DatasetSink interface {
	Stage(ctx context.Context, name string, ds *domain.Dataset) error
	Commit() error
	Discard() error
}
