package ports

import (
	"context"

	"github.com/weblibrary/library-system/internal/core/domain"
)

// ListUsersFilter carries pagination and search parameters for user listing.
type ListUsersFilter struct {
	Query string // optional: substring match on username
	Page  int    // 0-based, matching the original API contract
	Limit int
}

// UserUpdate carries the mutable profile fields for an account update,
// including the role type. Zero-value fields are still written; callers
// validate presence upstream.
type UserUpdate struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Type      int
}

// UserRepository defines persistence for user accounts. Lookups return
// domain.ErrUserNotFound when no record matches; unique-index violations
// surface as domain.ErrDuplicateUsername / domain.ErrDuplicateEmail.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListUsersFilter) ([]*domain.User, int64, error)
}
