package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/weblibrary/library-system/internal/core/domain"
	"github.com/weblibrary/library-system/internal/core/ports"
)

type AuthorService struct {
	authors ports.AuthorRepository
	logger  zerolog.Logger
}

func NewAuthorService(authors ports.AuthorRepository, logger zerolog.Logger) *AuthorService {
	return &AuthorService{authors: authors, logger: logger}
}

func (s *AuthorService) Create(ctx context.Context, input ports.AuthorInput) (*domain.Author, error) {
	if input.FirstName == "" {
		return nil, domain.ErrMissingFields
	}

	author, err := s.authors.Create(ctx, &domain.Author{
		FirstName: input.FirstName,
		LastName:  input.LastName,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("author_id", author.ID).Msg("author created")
	return author, nil
}

func (s *AuthorService) List(ctx context.Context, filter ports.ListFilter) (*ports.ListAuthorsResult, error) {
	filter = normalizeFilter(filter)
	authors, count, err := s.authors.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.ListAuthorsResult{
		Limit:   filter.Limit,
		Page:    filter.Page,
		Authors: authors,
		Count:   count,
	}, nil
}

func (s *AuthorService) Update(ctx context.Context, id string, input ports.AuthorInput) (*domain.Author, error) {
	if input.FirstName == "" {
		return nil, domain.ErrMissingFields
	}

	author, err := s.authors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	author.FirstName = input.FirstName
	author.LastName = input.LastName

	return s.authors.Update(ctx, author)
}

func (s *AuthorService) Delete(ctx context.Context, id string) error {
	if err := s.authors.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("author_id", id).Msg("author deleted")
	return nil
}

func (s *AuthorService) Autocomplete(ctx context.Context, query string) ([]ports.AutocompleteItem, error) {
	authors, _, err := s.authors.List(ctx, ports.ListFilter{Query: query, Limit: autocompleteLimit})
	if err != nil {
		return nil, err
	}
	items := make([]ports.AutocompleteItem, 0, len(authors))
	for _, a := range authors {
		items = append(items, ports.AutocompleteItem{Label: a.FirstName + " " + a.LastName, Value: a.ID})
	}
	return items, nil
}
