package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// signupDisabledBody is a fixed plain-text body; clients match it literally,
// so it must not be wrapped in the JSON error envelope.
const signupDisabledBody = "User registration is not enabled."

// Signup gates the self-registration route on the process-wide signup flag.
// The flag is injected at construction so both states are testable without a
// restart.
func Signup(enabled bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !enabled {
				return c.String(http.StatusBadRequest, signupDisabledBody)
			}
			return next(c)
		}
	}
}
