package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/weblibrary/library-system/internal/core/domain"
	"github.com/weblibrary/library-system/internal/core/ports"
)

type categoryRequest struct {
	Title            string `json:"title" validate:"required"`
	ShortDescription string `json:"short_description"`
	Description      string `json:"description"`
	ParentID         string `json:"parent_id"`
}

type categoryEnvelope struct {
	Category domain.Category `json:"category"`
}

type categoryListEnvelope struct {
	Limit      int               `json:"limit"`
	Page       int               `json:"page"`
	Categories []domain.Category `json:"categories"`
	Count      int64             `json:"count"`
}

type autocompleteEnvelope struct {
	Autocomplete []ports.AutocompleteItem `json:"autocomplete"`
}

type CategoryHandler struct {
	categories ports.CategoryService
	logger     zerolog.Logger
}

func NewCategoryHandler(categories ports.CategoryService, logger zerolog.Logger) *CategoryHandler {
	return &CategoryHandler{categories: categories, logger: logger}
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	creator, err := requesterID(c)
	if err != nil {
		return err
	}

	category, err := h.categories.Create(c.Request().Context(), creator, ports.CategoryInput{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		ParentID:         req.ParentID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoryEnvelope{Category: *category})
}

// List returns a paginated page of categories with creator names attached,
// optionally filtered by a title substring.
func (h *CategoryHandler) List(c echo.Context) error {
	query, page, limit := pageParams(c)

	result, err := h.categories.List(c.Request().Context(), ports.ListFilter{
		Query: query,
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, categoryListEnvelope{
		Limit:      result.Limit,
		Page:       result.Page,
		Categories: result.Categories,
		Count:      result.Count,
	})
}

func (h *CategoryHandler) Update(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	category, err := h.categories.Update(c.Request().Context(), c.Param("id"), ports.CategoryInput{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
		ParentID:         req.ParentID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoryEnvelope{Category: *category})
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.categories.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"category": id})
}

// Autocomplete returns label/value pairs for typeahead pickers, capped at a
// small fixed limit.
func (h *CategoryHandler) Autocomplete(c echo.Context) error {
	items, err := h.categories.Autocomplete(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, autocompleteEnvelope{Autocomplete: items})
}
