package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidhive/accounts-api/internal/api/metrics"
	"github.com/vidhive/accounts-api/internal/core/ports"
)

type tokenRequest struct {
	GrantType    string `json:"grant_type" form:"grant_type"`
	Username     string `json:"username" form:"username"`
	Password     string `json:"password" form:"password"`
	RefreshToken string `json:"refresh_token" form:"refresh_token"`
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	RefreshToken string `json:"refresh_token"`
}

// TokenGrant performs the credential exchange and writes the token response
// itself; the terminal handler behind it only closes out requests the grant
// already answered. Grant failures are returned unwritten so the central error
// handler renders them.
func TokenGrant(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var req tokenRequest
			if err := c.Bind(&req); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
			}

			pair, err := tokens.Grant(c.Request().Context(), ports.TokenRequest{
				GrantType:    req.GrantType,
				Username:     req.Username,
				Password:     req.Password,
				RefreshToken: req.RefreshToken,
			})
			if err != nil {
				return err
			}

			metrics.TokensIssuedTotal.WithLabelValues(req.GrantType).Inc()

			if err := c.JSON(http.StatusOK, tokenResponse{
				AccessToken:  pair.AccessToken,
				TokenType:    pair.TokenType,
				ExpiresIn:    pair.ExpiresIn,
				RefreshToken: pair.RefreshToken,
			}); err != nil {
				return err
			}
			return next(c)
		}
	}
}
