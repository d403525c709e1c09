package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/weblibrary/library-system/internal/core/domain"
	"github.com/weblibrary/library-system/internal/core/ports"
)

// SuperAdminSeed carries the credentials for the designated super-admin
// account provisioned at startup.
type SuperAdminSeed struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// EnsureSuperAdmin provisions the super-admin account if it does not exist
// yet. The call is idempotent: an existing account with the configured
// username is left untouched, so restarts never reset its password. Seeding
// is skipped entirely when no username or password is configured.
func EnsureSuperAdmin(ctx context.Context, users ports.UserRepository, hasher *PasswordHasher, logger zerolog.Logger, seed SuperAdminSeed) error {
	if seed.Username == "" || seed.Password == "" {
		logger.Debug().Msg("super admin seeding skipped, not configured")
		return nil
	}

	existing, err := users.FindByUsername(ctx, seed.Username)
	if err == nil {
		if !existing.IsSuperAdmin() {
			logger.Warn().Str("username", seed.Username).Msg("configured super admin username belongs to a non super-admin account")
		}
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := hasher.Hash(seed.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	created, err := users.Create(ctx, &domain.User{
		Username:     seed.Username,
		FirstName:    seed.FirstName,
		LastName:     seed.LastName,
		Email:        seed.Email,
		PasswordHash: hash,
		HashCost:     hasher.Cost(),
		Type:         domain.TypeSuperAdmin,
		Status:       domain.StatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return err
	}

	logger.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("super admin account created")
	return nil
}
