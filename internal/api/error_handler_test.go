package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vidhive/accounts-api/internal/core/domain"
)

func newHandlerContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return resp["error"]
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := map[string]struct {
		err  error
		code int
		msg  string
	}{
		"user not found":  {domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
		"user exists":     {domain.ErrUserExists, http.StatusConflict, "user already exists"},
		"rating missing":  {domain.ErrRatingNotFound, http.StatusNotFound, "rating not found"},
		"bad credentials": {domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		"bad token":       {domain.ErrInvalidToken, http.StatusUnauthorized, "invalid token"},
		"bad grant":       {domain.ErrUnsupportedGrant, http.StatusBadRequest, "unsupported grant type"},
	}

	handle := NewHTTPErrorHandler(zerolog.Nop())
	for name, tc := range cases {
		c, rec := newHandlerContext()
		handle(tc.err, c)

		if rec.Code != tc.code {
			t.Errorf("%s: expected %d, got %d", name, tc.code, rec.Code)
		}
		if got := decodeError(t, rec); got != tc.msg {
			t.Errorf("%s: expected message %q, got %q", name, tc.msg, got)
		}
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	handle := NewHTTPErrorHandler(zerolog.Nop())
	c, rec := newHandlerContext()

	handle(fmt.Errorf("load account: %w", domain.ErrUserNotFound), c)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_EchoErrorPassthrough(t *testing.T) {
	handle := NewHTTPErrorHandler(zerolog.Nop())
	c, rec := newHandlerContext()

	handle(echo.NewHTTPError(http.StatusForbidden, "insufficient role"), c)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if got := decodeError(t, rec); got != "insufficient role" {
		t.Fatalf("expected gate message, got %q", got)
	}
}

func TestHTTPErrorHandler_UnexpectedErrorIsMasked(t *testing.T) {
	handle := NewHTTPErrorHandler(zerolog.Nop())
	c, rec := newHandlerContext()

	handle(errors.New("mongo: socket was unexpectedly closed"), c)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if got := decodeError(t, rec); got != "internal server error" {
		t.Fatalf("expected generic message, got %q", got)
	}
	if strings.Contains(rec.Body.String(), "socket") {
		t.Fatalf("internal detail leaked: %s", rec.Body.String())
	}
}

func TestHTTPErrorHandler_CommittedResponseUntouched(t *testing.T) {
	handle := NewHTTPErrorHandler(zerolog.Nop())
	c, rec := newHandlerContext()

	if err := c.String(http.StatusBadRequest, "User registration is not enabled."); err != nil {
		t.Fatalf("prime response: %v", err)
	}
	before := rec.Body.String()

	handle(errors.New("late failure"), c)

	if rec.Body.String() != before {
		t.Fatalf("handler rewrote a committed response")
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected original 400, got %d", rec.Code)
	}
}
