package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/weblibrary/library-system/internal/core/domain"
	"github.com/weblibrary/library-system/internal/core/ports"
)

const autocompleteLimit = 10

type CategoryService struct {
	categories ports.CategoryRepository
	users      ports.UserRepository
	logger     zerolog.Logger
}

func NewCategoryService(categories ports.CategoryRepository, users ports.UserRepository, logger zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, users: users, logger: logger}
}

func (s *CategoryService) Create(ctx context.Context, createdBy string, input ports.CategoryInput) (*domain.Category, error) {
	if input.Title == "" {
		return nil, domain.ErrMissingTitle
	}

	category, err := s.categories.Create(ctx, &domain.Category{
		Title:            input.Title,
		ShortDescription: input.ShortDescription,
		Description:      input.Description,
		ParentID:         input.ParentID,
		CreatedBy:        createdBy,
	})
	if err != nil {
		return nil, err
	}

	s.attachCreator(ctx, category)
	s.logger.Info().Str("category_id", category.ID).Str("title", category.Title).Msg("category created")
	return category, nil
}

func (s *CategoryService) List(ctx context.Context, filter ports.ListFilter) (*ports.ListCategoriesResult, error) {
	filter = normalizeFilter(filter)
	categories, count, err := s.categories.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &ports.ListCategoriesResult{
		Limit:      filter.Limit,
		Page:       filter.Page,
		Categories: categories,
		Count:      count,
	}, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, input ports.CategoryInput) (*domain.Category, error) {
	if input.Title == "" {
		return nil, domain.ErrMissingTitle
	}

	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Title = input.Title
	category.ShortDescription = input.ShortDescription
	category.Description = input.Description
	category.ParentID = input.ParentID

	updated, err := s.categories.Update(ctx, category)
	if err != nil {
		return nil, err
	}

	s.attachCreator(ctx, updated)
	return updated, nil
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("category_id", id).Msg("category deleted")
	return nil
}

func (s *CategoryService) Autocomplete(ctx context.Context, query string) ([]ports.AutocompleteItem, error) {
	categories, _, err := s.categories.List(ctx, ports.ListFilter{Query: query, Limit: autocompleteLimit})
	if err != nil {
		return nil, err
	}
	items := make([]ports.AutocompleteItem, 0, len(categories))
	for _, c := range categories {
		items = append(items, ports.AutocompleteItem{Label: c.Title, Value: c.ID})
	}
	return items, nil
}

func (s *CategoryService) attachCreator(ctx context.Context, c *domain.Category) {
	if c.CreatedBy == "" {
		return
	}
	creator, err := s.users.FindByID(ctx, c.CreatedBy)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Error().Err(err).Str("user_id", c.CreatedBy).Msg("creator lookup failed")
		}
		return
	}
	c.Creator = &domain.Creator{FirstName: creator.FirstName, LastName: creator.LastName}
}

func normalizeFilter(filter ports.ListFilter) ports.ListFilter {
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Page < 0 {
		filter.Page = 0
	}
	return filter
}
