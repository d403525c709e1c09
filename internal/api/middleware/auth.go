// Package middleware provides the authentication gate and the permission
// checks applied to protected route groups.
package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/weblibrary/library-system/internal/api/metrics"
	"github.com/weblibrary/library-system/internal/core/domain"
	"github.com/weblibrary/library-system/internal/core/ports"
)

// Context keys set by Auth for downstream handlers and middleware.
const (
	ContextKeyUserID   = "auth_user_id"
	ContextKeyUsername = "auth_username"
	ContextKeyUserType = "auth_user_type"
)

// Auth verifies the bearer token, checks the revocation list, and confirms
// the account still exists before letting the request through. On success the
// account's id, username, and type are stored on the request context.
func Auth(tokens ports.TokenService, users ports.UserRepository, revoker ports.TokenRevoker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return domain.ErrUnauthenticated
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return domain.ErrInvalidToken
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return err
			}

			revoked, err := revoker.IsRevoked(c.Request().Context(), claims.UserID, claims.IssuedAt)
			if err != nil {
				return err
			}
			if revoked {
				metrics.AuthFailuresTotal.WithLabelValues("revoked").Inc()
				return domain.ErrInvalidToken
			}

			// The account behind the token must still exist; a valid token
			// for a deleted account is worthless.
			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					metrics.AuthFailuresTotal.WithLabelValues("user_not_found").Inc()
				}
				return err
			}

			c.Set(ContextKeyUserID, user.ID)
			c.Set(ContextKeyUsername, user.Username)
			c.Set(ContextKeyUserType, user.Type)

			return next(c)
		}
	}
}
