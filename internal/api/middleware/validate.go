package middleware

import (
	"net/http"
	"regexp"

	"github.com/labstack/echo/v4"

	"github.com/vidhive/accounts-api/internal/core/ports"
)

// objectIDHex matches the 24-character hex ids issued by the user store.
var objectIDHex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

type addUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=20,alphanum"`
	// The upper bound matches bcrypt's 72-byte input cap.
	Password string `json:"password" validate:"required,min=6,max=72"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"omitempty,oneof=user admin"`
}

// updateUserRequest uses pointers so an omitted key is distinguishable from an
// explicit zero value: nil means "leave the stored value alone".
type updateUserRequest struct {
	Password    *string `json:"password"`
	DisplayNSFW *bool   `json:"displayNSFW"`
}

// AddUserValidator binds and validates the create-user payload and stashes the
// service input under "add_user_input". Controllers must not re-bind the body.
func AddUserValidator() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var req addUserRequest
			if err := c.Bind(&req); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
			}
			if err := c.Validate(&req); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, err.Error())
			}

			c.Set("add_user_input", ports.CreateUserInput{
				Username: req.Username,
				Password: req.Password,
				Email:    req.Email,
				Role:     req.Role,
			})
			return next(c)
		}
	}
}

// UpdateUserValidator checks the path id and the user-mutable body fields and
// stashes the service input under "update_user_input". A password key that is
// present but outside the length bounds (the empty string included) is
// rejected here rather than silently skipped.
func UpdateUserValidator() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !objectIDHex.MatchString(c.Param("id")) {
				return echo.NewHTTPError(http.StatusBadRequest, "id must be a valid account id")
			}

			var req updateUserRequest
			if err := c.Bind(&req); err != nil {
				return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
			}
			if req.Password != nil && (len(*req.Password) < 6 || len(*req.Password) > 72) {
				return echo.NewHTTPError(http.StatusBadRequest, "password must be between 6 and 72 characters")
			}

			c.Set("update_user_input", ports.UpdateUserInput{
				Password:    req.Password,
				DisplayNSFW: req.DisplayNSFW,
			})
			return next(c)
		}
	}
}

// RemoveUserValidator checks the path id of the delete route. Whether the
// account exists is the controller's problem; only the shape is checked here.
func RemoveUserValidator() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !objectIDHex.MatchString(c.Param("id")) {
				return echo.NewHTTPError(http.StatusBadRequest, "id must be a valid account id")
			}
			return next(c)
		}
	}
}

// VideoRatingValidator checks the videoId path parameter of the rating lookup.
func VideoRatingValidator() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !objectIDHex.MatchString(c.Param("videoId")) {
				return echo.NewHTTPError(http.StatusBadRequest, "videoId must be a valid video id")
			}
			return next(c)
		}
	}
}
