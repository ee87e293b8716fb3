package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/event-management-api/internal/api/middleware"
	"github.com/eventhub/event-management-api/pkg/pagination"
)

// requireIdentity extracts the identity injected by the auth middleware.
// Its absence on a protected route means the route was miswired; fail closed.
func requireIdentity(c echo.Context) (middleware.Identity, error) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		return middleware.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}

// paginationOptions picks the pagination parameters off the query string.
// Invalid numbers degrade to the defaults applied by pagination.Normalize.
func paginationOptions(c echo.Context) pagination.Options {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	return pagination.Options{
		Page:      page,
		Limit:     limit,
		SortBy:    c.QueryParam("sortBy"),
		SortOrder: c.QueryParam("sortOrder"),
	}
}
