package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/weblibrary/library-system/internal/api/metrics"
	"github.com/weblibrary/library-system/internal/core/domain"
)

// Permission authorizes the authenticated account for one action on one
// module. It must run after Auth, which stores the account type on the
// context. Super admins pass unconditionally; everyone else is checked
// against the static role catalog. Unknown types and unknown modules deny.
func Permission(module domain.Module, action domain.Action) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userType, ok := c.Get(ContextKeyUserType).(int)
			if !ok {
				return domain.ErrUnauthenticated
			}

			role, err := domain.RoleForType(userType)
			if err != nil {
				metrics.AuthzDeniedTotal.WithLabelValues(string(module), string(action)).Inc()
				return domain.ErrForbidden
			}

			if role == domain.RoleSuperAdmin {
				return next(c)
			}

			if !domain.AccessFor(role, module, action) {
				metrics.AuthzDeniedTotal.WithLabelValues(string(module), string(action)).Inc()
				return domain.ErrForbidden
			}

			return next(c)
		}
	}
}
