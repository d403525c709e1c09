package ports

import (
	"context"
	"io"

	"github.com/weblibrary/library-system/internal/core/domain"
)

// ListUsersResult mirrors the original list envelope.
type ListUsersResult struct {
	Limit int
	Page  int
	Users []domain.PublicUser
	Count int64
}

// UserService defines account management use cases. All views returned are
// sanitized; the designated super-admin account rejects update and delete.
type UserService interface {
	List(ctx context.Context, filter ListUsersFilter) (*ListUsersResult, error)
	Get(ctx context.Context, id string) (*domain.PublicUser, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.PublicUser, error)
	Delete(ctx context.Context, id string) error
	// SetAvatar stores the uploaded image and attaches it to the account.
	SetAvatar(ctx context.Context, id, original, mimetype string, r io.Reader) (*domain.PublicUser, error)
}
