package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/vidhive/accounts-api/internal/core/ports"
)

const (
	defaultListCount = 15
	maxListCount     = 100
	defaultUsersSort = "-createdAt"
)

// usersSortable is the closed set of columns the listing may sort on.
var usersSortable = map[string]struct{}{
	"id":        {},
	"username":  {},
	"createdAt": {},
}

// PaginationValidator checks the start/count query values when present and
// stashes the parsed ints. Defaults are applied later by ResolvePagination.
func PaginationValidator() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if raw := c.QueryParam("start"); raw != "" {
				start, err := strconv.Atoi(raw)
				if err != nil || start < 0 {
					return echo.NewHTTPError(http.StatusBadRequest, "start must be a non-negative integer")
				}
				c.Set("list_start", start)
			}

			if raw := c.QueryParam("count"); raw != "" {
				count, err := strconv.Atoi(raw)
				if err != nil || count < 1 || count > maxListCount {
					return echo.NewHTTPError(http.StatusBadRequest, "count must be an integer between 1 and 100")
				}
				c.Set("list_count", count)
			}

			return next(c)
		}
	}
}

// SortValidator checks the sort query value against the sortable columns. A
// leading '-' selects descending order.
func SortValidator() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.QueryParam("sort")
			if raw == "" {
				return next(c)
			}
			if _, ok := usersSortable[strings.TrimPrefix(raw, "-")]; !ok {
				return echo.NewHTTPError(http.StatusBadRequest, "sort must be one of id, username, createdAt, optionally prefixed with -")
			}
			c.Set("list_sort", raw)
			return next(c)
		}
	}
}

// ResolveUsersSort fills in the default sort when the query carried none.
func ResolveUsersSort() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := c.Get("list_sort").(string); !ok {
				c.Set("list_sort", defaultUsersSort)
			}
			return next(c)
		}
	}
}

// ResolvePagination assembles the final ports.ListQuery from the validated
// values plus defaults and stashes it under "list_query". It runs last in the
// listing gate chain; resolving the same request twice yields the same query.
func ResolvePagination() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			q := ports.ListQuery{Count: defaultListCount, Sort: defaultUsersSort}
			if start, ok := c.Get("list_start").(int); ok {
				q.Start = start
			}
			if count, ok := c.Get("list_count").(int); ok {
				q.Count = count
			}
			if sort, ok := c.Get("list_sort").(string); ok {
				q.Sort = sort
			}
			c.Set("list_query", q)
			return next(c)
		}
	}
}
