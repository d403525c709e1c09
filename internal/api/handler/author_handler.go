package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/weblibrary/library-system/internal/core/domain"
	"github.com/weblibrary/library-system/internal/core/ports"
)

type authorRequest struct {
	FirstName string `json:"firstname" validate:"required"`
	LastName  string `json:"lastname"`
}

type authorEnvelope struct {
	Author domain.Author `json:"author"`
}

type authorListEnvelope struct {
	Limit   int             `json:"limit"`
	Page    int             `json:"page"`
	Authors []domain.Author `json:"authors"`
	Count   int64           `json:"count"`
}

type AuthorHandler struct {
	authors ports.AuthorService
	logger  zerolog.Logger
}

func NewAuthorHandler(authors ports.AuthorService, logger zerolog.Logger) *AuthorHandler {
	return &AuthorHandler{authors: authors, logger: logger}
}

func (h *AuthorHandler) Create(c echo.Context) error {
	var req authorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	author, err := h.authors.Create(c.Request().Context(), ports.AuthorInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authorEnvelope{Author: *author})
}

// List returns a paginated page of authors with their book titles attached,
// optionally filtered by a name substring.
func (h *AuthorHandler) List(c echo.Context) error {
	query, page, limit := pageParams(c)

	result, err := h.authors.List(c.Request().Context(), ports.ListFilter{
		Query: query,
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authorListEnvelope{
		Limit:   result.Limit,
		Page:    result.Page,
		Authors: result.Authors,
		Count:   result.Count,
	})
}

func (h *AuthorHandler) Update(c echo.Context) error {
	var req authorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	author, err := h.authors.Update(c.Request().Context(), c.Param("id"), ports.AuthorInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authorEnvelope{Author: *author})
}

func (h *AuthorHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.authors.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"author": id})
}

func (h *AuthorHandler) Autocomplete(c echo.Context) error {
	items, err := h.authors.Autocomplete(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, autocompleteEnvelope{Autocomplete: items})
}
