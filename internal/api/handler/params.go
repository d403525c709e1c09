package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// pageParams reads the shared list query parameters. Absent or malformed
// values fall back to zero; services apply their own defaults for limit.
func pageParams(c echo.Context) (query string, page, limit int) {
	query = c.QueryParam("q")
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if page < 0 {
		page = 0
	}
	if limit < 0 {
		limit = 0
	}
	return query, page, limit
}
