package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/weblibrary/library-system/internal/core/domain"
	"github.com/weblibrary/library-system/internal/core/ports"
)

// UserService implements account management. The designated super-admin
// account is immutable through this service.
type UserService struct {
	users   ports.UserRepository
	files   ports.FileRepository
	store   ports.FileStore
	revoker ports.TokenRevoker
	logger  zerolog.Logger
}

func NewUserService(users ports.UserRepository, files ports.FileRepository, store ports.FileStore, revoker ports.TokenRevoker, logger zerolog.Logger) *UserService {
	return &UserService{
		users:   users,
		files:   files,
		store:   store,
		revoker: revoker,
		logger:  logger,
	}
}

func (s *UserService) List(ctx context.Context, filter ports.ListUsersFilter) (*ports.ListUsersResult, error) {
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Page < 0 {
		filter.Page = 0
	}

	users, count, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	views := make([]domain.PublicUser, 0, len(users))
	for _, u := range users {
		views = append(views, u.Public())
	}
	return &ports.ListUsersResult{
		Limit: filter.Limit,
		Page:  filter.Page,
		Users: views,
		Count: count,
	}, nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.PublicUser, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := user.Public()
	return &view, nil
}

func (s *UserService) Update(ctx context.Context, id string, update ports.UserUpdate) (*domain.PublicUser, error) {
	if update.Username == "" || update.FirstName == "" || update.LastName == "" || update.Email == "" || update.Type == 0 {
		return nil, domain.ErrMissingFields
	}
	if _, err := domain.RoleForType(update.Type); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.IsSuperAdmin() {
		return nil, domain.ErrSuperAdminImmutable
	}

	user.Username = update.Username
	user.FirstName = update.FirstName
	user.LastName = update.LastName
	user.Email = update.Email
	user.Type = update.Type
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}

	view := updated.Public()
	return &view, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.IsSuperAdmin() {
		return domain.ErrSuperAdminImmutable
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	// Outstanding tokens for the deleted account must stop working now, not
	// when they expire.
	if err := s.revoker.Revoke(ctx, id); err != nil {
		s.logger.Error().Err(err).Str("user_id", id).Msg("token revocation failed")
	}

	if user.AvatarFileID != "" {
		s.removeStoredFile(ctx, user.AvatarFileID)
	}

	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *UserService) SetAvatar(ctx context.Context, id, original, mimetype string, r io.Reader) (*domain.PublicUser, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name, size, err := s.store.Save(ctx, original, r)
	if err != nil {
		return nil, err
	}

	file, err := s.files.Create(ctx, &domain.StoredFile{
		Filename:  name,
		Original:  original,
		Size:      size,
		Mimetype:  mimetype,
		CreatedBy: id,
	})
	if err != nil {
		_ = s.store.Remove(ctx, name)
		return nil, err
	}

	previous := user.AvatarFileID
	user.AvatarFileID = file.ID
	user.UpdatedAt = time.Now().UTC()

	updated, err := s.users.Update(ctx, user)
	if err != nil {
		return nil, err
	}
	if previous != "" {
		s.removeStoredFile(ctx, previous)
	}

	view := updated.Public()
	return &view, nil
}

// removeStoredFile deletes a file record and its payload, best effort.
func (s *UserService) removeStoredFile(ctx context.Context, fileID string) {
	file, err := s.files.FindByID(ctx, fileID)
	if err != nil {
		if !errors.Is(err, domain.ErrFileNotFound) {
			s.logger.Error().Err(err).Str("file_id", fileID).Msg("stored file lookup failed")
		}
		return
	}
	if err := s.files.Delete(ctx, fileID); err != nil {
		s.logger.Error().Err(err).Str("file_id", fileID).Msg("file record delete failed")
		return
	}
	if err := s.store.Remove(ctx, file.Filename); err != nil {
		s.logger.Error().Err(err).Str("filename", file.Filename).Msg("file payload delete failed")
	}
}
