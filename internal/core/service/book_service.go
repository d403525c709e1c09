package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/weblibrary/library-system/internal/core/domain"
	"github.com/weblibrary/library-system/internal/core/ports"
)

type BookService struct {
	books  ports.BookRepository
	files  ports.FileRepository
	store  ports.FileStore
	logger zerolog.Logger
}

func NewBookService(books ports.BookRepository, files ports.FileRepository, store ports.FileStore, logger zerolog.Logger) *BookService {
	return &BookService{books: books, files: files, store: store, logger: logger}
}

// Create stores the uploaded payload first, then the metadata record, then
// the book itself; failures roll the earlier steps back best effort.
func (s *BookService) Create(ctx context.Context, createdBy string, input ports.BookInput, upload ports.BookUpload) (*domain.Book, error) {
	if input.Title == "" {
		return nil, domain.ErrMissingTitle
	}
	if upload.Reader == nil {
		return nil, domain.ErrFileMissing
	}

	name, size, err := s.store.Save(ctx, upload.Original, upload.Reader)
	if err != nil {
		return nil, err
	}

	file, err := s.files.Create(ctx, &domain.StoredFile{
		Filename:  name,
		Original:  upload.Original,
		Size:      size,
		Mimetype:  upload.Mimetype,
		CreatedBy: createdBy,
	})
	if err != nil {
		_ = s.store.Remove(ctx, name)
		return nil, err
	}

	book, err := s.books.Create(ctx, &domain.Book{
		Title:            input.Title,
		ShortDescription: input.ShortDescription,
		City:             input.City,
		Year:             input.Year,
		PublishingHouse:  input.PublishingHouse,
		Edition:          input.Edition,
		Series:           input.Series,
		CategoryID:       input.CategoryID,
		AuthorIDs:        input.AuthorIDs,
		FileID:           file.ID,
		CreatedBy:        createdBy,
	})
	if err != nil {
		_ = s.files.Delete(ctx, file.ID)
		_ = s.store.Remove(ctx, name)
		return nil, err
	}

	s.logger.Info().Str("book_id", book.ID).Str("title", book.Title).Msg("book created")
	return book, nil
}

func (s *BookService) List(ctx context.Context, filter ports.ListFilter) (*ports.ListBooksResult, error) {
	filter = normalizeFilter(filter)
	books, count, err := s.books.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.ListBooksResult{
		Limit: filter.Limit,
		Page:  filter.Page,
		Books: books,
		Count: count,
	}, nil
}

func (s *BookService) Delete(ctx context.Context, id string) error {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.books.Delete(ctx, id); err != nil {
		return err
	}

	if book.FileID != "" {
		file, err := s.files.FindByID(ctx, book.FileID)
		if err != nil {
			if !errors.Is(err, domain.ErrFileNotFound) {
				s.logger.Error().Err(err).Str("file_id", book.FileID).Msg("book file lookup failed")
			}
		} else {
			_ = s.files.Delete(ctx, book.FileID)
			if err := s.store.Remove(ctx, file.Filename); err != nil {
				s.logger.Error().Err(err).Str("filename", file.Filename).Msg("book file delete failed")
			}
		}
	}

	s.logger.Info().Str("book_id", id).Msg("book deleted")
	return nil
}
