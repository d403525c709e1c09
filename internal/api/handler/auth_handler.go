// Package handler holds the HTTP handlers of the library API. Handlers bind
// and validate requests, delegate to core services, and render envelopes;
// error translation lives in the central error handler.
package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/weblibrary/library-system/internal/api/metrics"
	"github.com/weblibrary/library-system/internal/core/domain"
	"github.com/weblibrary/library-system/internal/core/ports"
)

type AuthHandler struct {
	auth   ports.AuthService
	logger zerolog.Logger
}

func NewAuthHandler(auth ports.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Signup creates a pending account and mails the activation link. The
// response never reveals whether delivery succeeded.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.auth.Signup(c.Request().Context(), ports.SignupInput{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername), errors.Is(err, domain.ErrDuplicateEmail):
			metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
		case errors.Is(err, domain.ErrMissingFields):
			metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		default:
			metrics.SignupsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusOK, successResponse{Success: "Check your email address"})
}

// Signin exchanges credentials for a sanitized account view plus a token.
func (h *AuthHandler) Signin(c echo.Context) error {
	var req signinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.auth.Signin(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			metrics.SigninsTotal.WithLabelValues("invalid_credentials").Inc()
		case errors.Is(err, domain.ErrAccountNotActive):
			metrics.SigninsTotal.WithLabelValues("not_active").Inc()
		default:
			metrics.SigninsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.SigninsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{UserData: result.UserData, Token: result.Token})
}

// Activate confirms a pending account with its emailed code and signs the
// account in immediately.
func (h *AuthHandler) Activate(c echo.Context) error {
	var req activateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.auth.Activate(c.Request().Context(), req.ID, req.Code)
	if err != nil {
		metrics.ActivationsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.ActivationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, authResponse{UserData: result.UserData, Token: result.Token})
}

// ForgotPassword mails a reset link to the account behind the email address.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.auth.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: "Check your email address"})
}

// ResetPassword sets a new password when the emailed restore code matches.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.auth.ResetPassword(c.Request().Context(), req.ID, req.Code, req.Password); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: "Your password was reset successfully"})
}
