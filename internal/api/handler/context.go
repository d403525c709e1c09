package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/weblibrary/library-system/internal/api/middleware"
	"github.com/weblibrary/library-system/internal/core/domain"
)

// requesterID returns the authenticated account's id stored on the context by
// the auth middleware.
func requesterID(c echo.Context) (string, error) {
	id, ok := c.Get(middleware.ContextKeyUserID).(string)
	if !ok || id == "" {
		return "", domain.ErrUnauthenticated
	}
	return id, nil
}
