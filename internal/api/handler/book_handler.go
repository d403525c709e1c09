package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/weblibrary/library-system/internal/api/metrics"
	"github.com/weblibrary/library-system/internal/core/domain"
	"github.com/weblibrary/library-system/internal/core/ports"
)

type bookEnvelope struct {
	Book domain.Book `json:"book"`
}

type bookListEnvelope struct {
	Limit int           `json:"limit"`
	Page  int           `json:"page"`
	Books []domain.Book `json:"books"`
	Count int64         `json:"count"`
}

type BookHandler struct {
	books  ports.BookService
	logger zerolog.Logger
}

func NewBookHandler(books ports.BookService, logger zerolog.Logger) *BookHandler {
	return &BookHandler{books: books, logger: logger}
}

// Create accepts a multipart form: the book fields as form values, the
// payload under the "file" part. Repeated "author_ids" values link authors.
func (h *BookHandler) Create(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return domain.ErrFileMissing
	}

	year, _ := strconv.Atoi(c.FormValue("year"))
	input := ports.BookInput{
		Title:            c.FormValue("title"),
		ShortDescription: c.FormValue("short_description"),
		City:             c.FormValue("city"),
		Year:             year,
		PublishingHouse:  c.FormValue("publishing_house"),
		Edition:          c.FormValue("edition"),
		Series:           c.FormValue("series"),
		CategoryID:       c.FormValue("category_id"),
	}
	if form, err := c.FormParams(); err == nil {
		input.AuthorIDs = form["author_ids"]
	}

	creator, err := requesterID(c)
	if err != nil {
		return err
	}

	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	book, err := h.books.Create(c.Request().Context(), creator, input, ports.BookUpload{
		Original: fh.Filename,
		Mimetype: fh.Header.Get("Content-Type"),
		Reader:   src,
	})
	if err != nil {
		return err
	}

	metrics.UploadsTotal.WithLabelValues("book").Inc()
	return c.JSON(http.StatusOK, bookEnvelope{Book: *book})
}

// List returns a paginated page of books with category title, filename, and
// author names attached, optionally filtered by a title substring.
func (h *BookHandler) List(c echo.Context) error {
	query, page, limit := pageParams(c)

	result, err := h.books.List(c.Request().Context(), ports.ListFilter{
		Query: query,
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, bookListEnvelope{
		Limit: result.Limit,
		Page:  result.Page,
		Books: result.Books,
		Count: result.Count,
	})
}

// Delete removes the book together with its stored file.
func (h *BookHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if err := h.books.Delete(c.Request().Context(), id); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"book": id})
}
