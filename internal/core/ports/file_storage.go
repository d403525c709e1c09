package ports

import (
	"context"
	"io"

	"github.com/weblibrary/library-system/internal/core/domain"
)

// FileStore persists upload payloads on disk (or equivalent). The returned
// name is the stored filename, unique within the store.
type FileStore interface {
	Save(ctx context.Context, original string, r io.Reader) (name string, size int64, err error)
	Remove(ctx context.Context, name string) error
}

// FileRepository persists upload metadata records.
type FileRepository interface {
	Create(ctx context.Context, f *domain.StoredFile) (*domain.StoredFile, error)
	FindByID(ctx context.Context, id string) (*domain.StoredFile, error)
	Delete(ctx context.Context, id string) error
}
