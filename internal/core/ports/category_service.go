package ports

import (
	"context"

	"github.com/weblibrary/library-system/internal/core/domain"
)

// CategoryInput carries the writable category fields.
type CategoryInput struct {
	Title            string
	ShortDescription string
	Description      string
	ParentID         string
}

// ListFilter carries pagination and search parameters shared by the catalog
// list endpoints (categories, authors, books).
type ListFilter struct {
	Query string
	Page  int
	Limit int
}

// ListCategoriesResult mirrors the original list envelope.
type ListCategoriesResult struct {
	Limit      int
	Page       int
	Categories []domain.Category
	Count      int64
}

// AutocompleteItem is a label/value pair for typeahead endpoints.
type AutocompleteItem struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type CategoryService interface {
	Create(ctx context.Context, createdBy string, input CategoryInput) (*domain.Category, error)
	List(ctx context.Context, filter ListFilter) (*ListCategoriesResult, error)
	Update(ctx context.Context, id string, input CategoryInput) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	Autocomplete(ctx context.Context, query string) ([]AutocompleteItem, error)
}

// CategoryRepository defines persistence for categories. Title carries a
// unique index; violations surface as domain.ErrDuplicateTitle.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindByID(ctx context.Context, id string) (*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Category, int64, error)
}
