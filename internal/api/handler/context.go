package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxPrincipal extracts the principal injected by the Auth middleware and
// performs a fast-fail check before any service call: both the id and the
// username must be present, since every self-scoped operation needs them. An
// empty value means the middleware never ran or the token lacked the claim —
// reject with 401 either way.
func ctxPrincipal(c echo.Context) (userID, username string, err error) {
	userID, _ = c.Get("user_id").(string)
	username, _ = c.Get("username").(string)
	if userID == "" || username == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, username, nil
}
