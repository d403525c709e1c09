package ports

import (
	"context"

	"github.com/weblibrary/library-system/internal/core/domain"
)

// AuthorInput carries the writable author fields.
type AuthorInput struct {
	FirstName string
	LastName  string
}

// ListAuthorsResult mirrors the original list envelope.
type ListAuthorsResult struct {
	Limit   int
	Page    int
	Authors []domain.Author
	Count   int64
}

type AuthorService interface {
	Create(ctx context.Context, input AuthorInput) (*domain.Author, error)
	List(ctx context.Context, filter ListFilter) (*ListAuthorsResult, error)
	Update(ctx context.Context, id string, input AuthorInput) (*domain.Author, error)
	Delete(ctx context.Context, id string) error
	Autocomplete(ctx context.Context, query string) ([]AutocompleteItem, error)
}

type AuthorRepository interface {
	Create(ctx context.Context, a *domain.Author) (*domain.Author, error)
	FindByID(ctx context.Context, id string) (*domain.Author, error)
	Update(ctx context.Context, a *domain.Author) (*domain.Author, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Author, int64, error)
}
