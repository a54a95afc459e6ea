package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vidhive/accounts-api/internal/api/metrics"
	"github.com/vidhive/accounts-api/internal/core/ports"
)

// UserHandler handles HTTP requests for account operations. Every method runs
// behind its route's gate chain: payloads arrive pre-validated in context and
// errors are returned raw for the central handler to render.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// GetMe returns the authenticated principal's own account.
//
// @Summary      Get own account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/me [get]
func (h *UserHandler) GetMe(c echo.Context) error {
	_, username, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetByUsername(c.Request().Context(), username)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// GetVideoRating reports the rating the principal gave a video; accounts that
// never rated the video get the literal rating "none".
//
// @Summary      Get own rating of a video
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        videoId  path      string  true  "Video id"
// @Success      200      {object}  videoRatingResponse
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Router       /users/me/videos/{videoId}/rating [get]
func (h *UserHandler) GetVideoRating(c echo.Context) error {
	userID, _, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	rating, err := h.users.GetVideoRating(c.Request().Context(), userID, c.Param("videoId"))
	if err != nil {
		return err
	}

	metrics.RatingLookupsTotal.WithLabelValues(rating.Rating).Inc()

	return c.JSON(http.StatusOK, videoRatingResponse{
		VideoID: rating.VideoID,
		Rating:  rating.Rating,
	})
}

// List returns one page of accounts inside the {data, total} envelope.
//
// @Summary      List accounts
// @Tags         users
// @Produce      json
// @Param        start  query     int     false  "Offset of the first account"  default(0)
// @Param        count  query     int     false  "Page size"                    default(15)
// @Param        sort   query     string  false  "Sort column, '-' for descending"  default(-createdAt)
// @Success      200    {object}  listUsersResponse
// @Failure      400    {object}  map[string]string
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	q, ok := c.Get("list_query").(ports.ListQuery)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "missing list parameters")
	}

	page, err := h.users.List(c.Request().Context(), q)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListUsersResponse(page.Users, page.Total))
}

// Create provisions an account through the admin path.
//
// @Summary      Create an account
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        body  body  object  true  "username, password, email, optional role"
// @Success      204   "created"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	in, ok := c.Get("add_user_input").(ports.CreateUserInput)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "missing account payload")
	}

	if err := h.users.Create(c.Request().Context(), in); err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues("admin").Inc()

	return c.NoContent(http.StatusNoContent)
}

// Register provisions an account through self-registration. Role and NSFW
// preference in the body carry no weight on this path.
//
// @Summary      Register an account
// @Tags         users
// @Accept       json
// @Param        body  body  object  true  "username, password, email"
// @Success      204   "registered"
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users/register [post]
func (h *UserHandler) Register(c echo.Context) error {
	in, ok := c.Get("add_user_input").(ports.CreateUserInput)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "missing account payload")
	}

	if err := h.users.Register(c.Request().Context(), in); err != nil {
		return err
	}

	metrics.UsersCreatedTotal.WithLabelValues("register").Inc()

	return c.NoContent(http.StatusNoContent)
}

// Update applies the user-mutable fields to the principal's own account.
//
// @Summary      Update own account
// @Tags         users
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string  true   "Account id"
// @Param        body  body  object  true   "optional password, optional displayNSFW"
// @Success      204   "updated"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	_, username, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	in, ok := c.Get("update_user_input").(ports.UpdateUserInput)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "missing account payload")
	}

	if err := h.users.Update(c.Request().Context(), username, in); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// Remove destroys the account behind the path id.
//
// @Summary      Remove an account
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "Account id"
// @Success      204  "removed"
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id} [delete]
func (h *UserHandler) Remove(c echo.Context) error {
	if err := h.users.Remove(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.UsersRemovedTotal.Inc()

	return c.NoContent(http.StatusNoContent)
}

// TokenSuccess terminates the token route. The grant middleware in front of it
// writes the token response; this only closes out a request nothing answered.
//
// @Summary      Exchange credentials for tokens
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  object  true  "grant_type plus username/password or refresh_token"
// @Success      200   {object}  map[string]interface{}
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /users/token [post]
func TokenSuccess(c echo.Context) error {
	if c.Response().Committed {
		return nil
	}
	return c.NoContent(http.StatusOK)
}
