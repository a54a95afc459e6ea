package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/vidhive/accounts-api/internal/api/handler"
	"github.com/vidhive/accounts-api/internal/core/ports"
)

const validID = "64f1c0ffee0000000000a001"

func newValidationContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder, *echo.Echo) {
	t.Helper()
	e := echo.New()
	e.Validator = handler.NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec, e
}

// ---------------------------------------------------------------------------
// AddUserValidator
// ---------------------------------------------------------------------------

func TestAddUserValidator_StashesInput(t *testing.T) {
	c, _, _ := newValidationContext(t, http.MethodPost, "/",
		`{"username":"alice","password":"s3cretpass","email":"alice@example.com","role":"admin"}`)

	called := false
	handler := AddUserValidator()(func(c echo.Context) error {
		called = true
		in, ok := c.Get("add_user_input").(ports.CreateUserInput)
		if !ok {
			t.Fatalf("input not stashed")
		}
		if in.Username != "alice" || in.Password != "s3cretpass" || in.Email != "alice@example.com" || in.Role != "admin" {
			t.Fatalf("unexpected input: %+v", in)
		}
		return c.NoContent(http.StatusNoContent)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAddUserValidator_RejectsBadFields(t *testing.T) {
	cases := map[string]string{
		"missing username":   `{"password":"s3cretpass","email":"a@example.com"}`,
		"username too short": `{"username":"al","password":"s3cretpass","email":"a@example.com"}`,
		"username not alnum": `{"username":"al ice!","password":"s3cretpass","email":"a@example.com"}`,
		"password too short": `{"username":"alice","password":"short","email":"a@example.com"}`,
		"password too long":  fmt.Sprintf(`{"username":"alice","password":%q,"email":"a@example.com"}`, strings.Repeat("a", 73)),
		"missing email":      `{"username":"alice","password":"s3cretpass"}`,
		"malformed email":    `{"username":"alice","password":"s3cretpass","email":"nope"}`,
		"role outside enum":  `{"username":"alice","password":"s3cretpass","email":"a@example.com","role":"root"}`,
		"payload not json":   `not-json`,
	}

	for name, body := range cases {
		c, rec, e := newValidationContext(t, http.MethodPost, "/", body)

		handler := AddUserValidator()(func(c echo.Context) error {
			t.Fatalf("%s: should not reach next", name)
			return nil
		})

		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}

// ---------------------------------------------------------------------------
// UpdateUserValidator
// ---------------------------------------------------------------------------

func TestUpdateUserValidator_PresenceOfKey(t *testing.T) {
	c, _, _ := newValidationContext(t, http.MethodPut, "/"+validID, `{"displayNSFW":false}`)
	c.SetParamNames("id")
	c.SetParamValues(validID)

	handler := UpdateUserValidator()(func(c echo.Context) error {
		in, ok := c.Get("update_user_input").(ports.UpdateUserInput)
		if !ok {
			t.Fatalf("input not stashed")
		}
		if in.Password != nil {
			t.Errorf("password pointer must be nil when the key is absent")
		}
		if in.DisplayNSFW == nil {
			t.Fatalf("displayNSFW pointer must be set for an explicit false")
		}
		if *in.DisplayNSFW {
			t.Errorf("expected explicit false to survive binding")
		}
		return c.NoContent(http.StatusNoContent)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestUpdateUserValidator_EmptyBodyLeavesBothNil(t *testing.T) {
	c, _, _ := newValidationContext(t, http.MethodPut, "/"+validID, `{}`)
	c.SetParamNames("id")
	c.SetParamValues(validID)

	handler := UpdateUserValidator()(func(c echo.Context) error {
		in := c.Get("update_user_input").(ports.UpdateUserInput)
		if in.Password != nil || in.DisplayNSFW != nil {
			t.Fatalf("expected both fields nil, got %+v", in)
		}
		return c.NoContent(http.StatusNoContent)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestUpdateUserValidator_RejectsBadPasswordLength(t *testing.T) {
	// The empty string counts as supplied-and-too-short, not as omitted, and
	// anything past the 72-byte hash cap is refused before it reaches the
	// service.
	for name, body := range map[string]string{
		"empty password":    `{"password":""}`,
		"short password":    `{"password":"abc"}`,
		"overlong password": fmt.Sprintf(`{"password":%q}`, strings.Repeat("a", 73)),
	} {
		c, rec, e := newValidationContext(t, http.MethodPut, "/"+validID, body)
		c.SetParamNames("id")
		c.SetParamValues(validID)

		handler := UpdateUserValidator()(func(c echo.Context) error {
			t.Fatalf("%s: should not reach next", name)
			return nil
		})

		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}

func TestUpdateUserValidator_RejectsMalformedID(t *testing.T) {
	c, rec, e := newValidationContext(t, http.MethodPut, "/not-an-id", `{"displayNSFW":true}`)
	c.SetParamNames("id")
	c.SetParamValues("not-an-id")

	handler := UpdateUserValidator()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// ---------------------------------------------------------------------------
// RemoveUserValidator / VideoRatingValidator
// ---------------------------------------------------------------------------

func TestRemoveUserValidator(t *testing.T) {
	for name, tc := range map[string]struct {
		id string
		ok bool
	}{
		"valid object id": {validID, true},
		"too short":       {"123", false},
		"not hex":         {"zzzzzzzzzzzzzzzzzzzzzzzz", false},
	} {
		c, rec, e := newValidationContext(t, http.MethodDelete, "/"+tc.id, "")
		c.SetParamNames("id")
		c.SetParamValues(tc.id)

		called := false
		handler := RemoveUserValidator()(func(c echo.Context) error {
			called = true
			return c.NoContent(http.StatusNoContent)
		})

		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}

		if tc.ok && !called {
			t.Errorf("%s: next not called", name)
		}
		if !tc.ok && rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}

func TestVideoRatingValidator(t *testing.T) {
	for name, tc := range map[string]struct {
		videoID string
		ok      bool
	}{
		"valid video id": {validID, true},
		"malformed":      {"vid-1", false},
	} {
		c, rec, e := newValidationContext(t, http.MethodGet, "/me/videos/"+tc.videoID+"/rating", "")
		c.SetParamNames("videoId")
		c.SetParamValues(tc.videoID)

		called := false
		handler := VideoRatingValidator()(func(c echo.Context) error {
			called = true
			return c.NoContent(http.StatusOK)
		})

		if err := handler(c); err != nil {
			e.HTTPErrorHandler(err, c)
		}

		if tc.ok && !called {
			t.Errorf("%s: next not called", name)
		}
		if !tc.ok && rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}
