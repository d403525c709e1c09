package ports

import (
	"context"

	"github.com/weblibrary/library-system/internal/core/domain"
)

// SignupInput carries all fields required to create an account.
type SignupInput struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AuthResult is returned by operations that establish a session: the
// sanitized account plus a signed bearer token.
type AuthResult struct {
	UserData domain.PublicUser
	Token    string
}

// AuthService defines the authentication use cases: signup, activation,
// signin, and the forgot/reset password pair.
type AuthService interface {
	// Signup creates a pending account and mails an activation link.
	// No token is issued: the account is not active yet.
	Signup(ctx context.Context, input SignupInput) error
	// Activate flips a pending account to active when the code matches,
	// consuming the activation code.
	Activate(ctx context.Context, userID, code string) (*AuthResult, error)
	Signin(ctx context.Context, username, password string) (*AuthResult, error)
	// ForgotPassword mails a reset link carrying the account's current
	// restore code. Repeat calls resend the same code.
	ForgotPassword(ctx context.Context, email string) error
	// ResetPassword sets a new password when the restore code matches and
	// rotates the code, invalidating the one just used.
	ResetPassword(ctx context.Context, userID, code, newPassword string) error
}
