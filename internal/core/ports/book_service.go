package ports

import (
	"context"
	"io"

	"github.com/weblibrary/library-system/internal/core/domain"
)

// BookInput carries the writable book fields. The upload itself arrives
// separately as a multipart part.
type BookInput struct {
	Title            string
	ShortDescription string
	City             string
	Year             int
	PublishingHouse  string
	Edition          string
	Series           string
	CategoryID       string
	AuthorIDs        []string
}

// BookUpload describes the multipart file attached to a book.
type BookUpload struct {
	Original string
	Mimetype string
	Reader   io.Reader
}

// ListBooksResult mirrors the original list envelope.
type ListBooksResult struct {
	Limit int
	Page  int
	Books []domain.Book
	Count int64
}

type BookService interface {
	// Create stores the upload, records its metadata, and inserts the book.
	Create(ctx context.Context, createdBy string, input BookInput, upload BookUpload) (*domain.Book, error)
	List(ctx context.Context, filter ListFilter) (*ListBooksResult, error)
	// Delete removes the book together with its stored file.
	Delete(ctx context.Context, id string) error
}

type BookRepository interface {
	Create(ctx context.Context, b *domain.Book) (*domain.Book, error)
	FindByID(ctx context.Context, id string) (*domain.Book, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]domain.Book, int64, error)
}
