package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/weblibrary/library-system/internal/api/metrics"
	"github.com/weblibrary/library-system/internal/core/domain"
	"github.com/weblibrary/library-system/internal/core/ports"
)

type updateUserRequest struct {
	Username  string `json:"username" validate:"required"`
	FirstName string `json:"firstname" validate:"required"`
	LastName  string `json:"lastname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Type      int    `json:"type" validate:"required"`
}

type userEnvelope struct {
	User domain.PublicUser `json:"user"`
}

type userListEnvelope struct {
	Limit int                 `json:"limit"`
	Page  int                 `json:"page"`
	Users []domain.PublicUser `json:"users"`
	Count int64               `json:"count"`
}

type UserHandler struct {
	users  ports.UserService
	logger zerolog.Logger
}

func NewUserHandler(users ports.UserService, logger zerolog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger}
}

// List returns a paginated page of sanitized accounts, optionally filtered by
// a username substring.
func (h *UserHandler) List(c echo.Context) error {
	query, page, limit := pageParams(c)

	result, err := h.users.List(c.Request().Context(), ports.ListUsersFilter{
		Query: query,
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userListEnvelope{
		Limit: result.Limit,
		Page:  result.Page,
		Users: result.Users,
		Count: result.Count,
	})
}

func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userEnvelope{User: *user})
}

// Update replaces the mutable profile fields of an account, including the
// role type. All fields are required; the designated super admin rejects
// updates.
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Update(c.Request().Context(), c.Param("id"), ports.UserUpdate{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Type:      req.Type,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, userEnvelope{User: *user})
}

// Delete removes an account, revokes its outstanding tokens, and cleans up
// its avatar.
func (h *UserHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.users.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"user": id})
}

// Avatar stores the uploaded image and attaches it to the account.
func (h *UserHandler) Avatar(c echo.Context) error {
	fh, err := c.FormFile("avatar")
	if err != nil {
		return domain.ErrFileMissing
	}

	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	mimetype := fh.Header.Get("Content-Type")
	user, err := h.users.SetAvatar(c.Request().Context(), c.Param("id"), fh.Filename, mimetype, src)
	if err != nil {
		return err
	}

	metrics.UploadsTotal.WithLabelValues("avatar").Inc()
	return c.JSON(http.StatusOK, userEnvelope{User: *user})
}
