package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/event-management-api/internal/api/middleware"
	"github.com/eventhub/event-management-api/internal/core/domain"
	"github.com/eventhub/event-management-api/internal/core/ports"
)

type stubAuthService struct {
	signupFn         func(ctx context.Context, email, password string, role domain.Role) (*domain.User, error)
	loginFn          func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	refreshFn        func(ctx context.Context, refreshToken string) (string, error)
	changePasswordFn func(ctx context.Context, userID, currentPassword, newPassword string) error
}

func (s *stubAuthService) Signup(ctx context.Context, email, password string, role domain.Role) (*domain.User, error) {
	return s.signupFn(ctx, email, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return s.refreshFn(ctx, refreshToken)
}

func (s *stubAuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	return s.changePasswordFn(ctx, userID, currentPassword, newPassword)
}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, email, password string, role domain.Role) (*domain.User, error) {
			if email != "alice@example.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.User{ID: "u1", Email: email, PasswordHash: "hashed", Role: domain.RoleUser}, nil
		},
	}
	h := NewAuthHandler(stub, false, time.Hour)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/signup", `{"email":"alice@example.com","password":"secret1"}`)
	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "hashed") {
		t.Fatalf("password hash leaked into response: %s", rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] != "Signed up successfully! Please login" {
		t.Fatalf("unexpected message: %v", resp["message"])
	}
	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data in response")
	}
	if data["email"] != "alice@example.com" || data["role"] != "user" {
		t.Fatalf("unexpected user payload: %+v", data)
	}
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, email, password string, role domain.Role) (*domain.User, error) {
			return nil, domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(stub, false, time.Hour)

	c, _ := newAuthContext(t, http.MethodPost, "/auth/signup", `{"email":"bob@example.com","password":"secret1"}`)
	err := h.Signup(c)
	if !errors.Is(err, domain.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthHandler_Signup_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, email, password string, role domain.Role) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, false, time.Hour)

	c, _ := newAuthContext(t, http.MethodPost, "/auth/signup", "not-json")
	err := h.Signup(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Signup_SuperAdminRoleRejected(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, email, password string, role domain.Role) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, false, time.Hour)

	// Signup is unauthenticated; the elevated role must never reach the service.
	c, _ := newAuthContext(t, http.MethodPost, "/auth/signup", `{"email":"mallory@example.com","password":"secret1","role":"super_admin"}`)
	err := h.Signup(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestAuthHandler_Signup_ValidationFailure(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, email, password string, role domain.Role) (*domain.User, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewAuthHandler(stub, false, time.Hour)

	// Password below the six character minimum.
	c, _ := newAuthContext(t, http.MethodPost, "/auth/signup", `{"email":"bob@example.com","password":"abc"}`)
	err := h.Signup(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			return &ports.LoginResult{AccessToken: "access123", RefreshToken: "refresh456", UserID: "u1"}, nil
		},
	}
	h := NewAuthHandler(stub, false, time.Hour)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"secret1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "refresh456") {
		t.Fatalf("refresh token leaked into body: %s", rec.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data := resp["data"].(map[string]any)
	if data["accessToken"] != "access123" || data["userId"] != "u1" {
		t.Fatalf("unexpected login payload: %+v", data)
	}

	var refresh *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "refreshToken" {
			refresh = cookie
		}
	}
	if refresh == nil {
		t.Fatalf("expected refreshToken cookie to be set")
	}
	if refresh.Value != "refresh456" || !refresh.HttpOnly {
		t.Fatalf("unexpected cookie: %+v", refresh)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub, false, time.Hour)

	c, _ := newAuthContext(t, http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"wrong1"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Refresh_FromCookie(t *testing.T) {
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, refreshToken string) (string, error) {
			if refreshToken != "refresh456" {
				t.Fatalf("unexpected refresh token: %s", refreshToken)
			}
			return "access789", nil
		},
	}
	h := NewAuthHandler(stub, false, time.Hour)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/refresh-token", "")
	c.Request().AddCookie(&http.Cookie{Name: "refreshToken", Value: "refresh456"})

	if err := h.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	data := resp["data"].(map[string]any)
	if data["accessToken"] != "access789" {
		t.Fatalf("unexpected refresh payload: %+v", data)
	}
}

func TestAuthHandler_Refresh_MissingCookie(t *testing.T) {
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, refreshToken string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewAuthHandler(stub, false, time.Hour)

	c, _ := newAuthContext(t, http.MethodPost, "/auth/refresh-token", "")
	err := h.Refresh(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if httpErr.Message != "Refresh token is required" {
		t.Fatalf("unexpected message: %v", httpErr.Message)
	}
}

func TestAuthHandler_ChangePassword_Success(t *testing.T) {
	stub := &stubAuthService{
		changePasswordFn: func(ctx context.Context, userID, currentPassword, newPassword string) error {
			if userID != "u1" || currentPassword != "old123" || newPassword != "new123" {
				t.Fatalf("unexpected args: %s %s %s", userID, currentPassword, newPassword)
			}
			return nil
		},
	}
	h := NewAuthHandler(stub, false, time.Hour)

	c, rec := newAuthContext(t, http.MethodPatch, "/auth/change-password", `{"currentPassword":"old123","newPassword":"new123"}`)
	c.Set("auth.identity", middleware.Identity{UserID: "u1", Role: domain.RoleUser})

	if err := h.ChangePassword(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_ChangePassword_MissingIdentity(t *testing.T) {
	stub := &stubAuthService{
		changePasswordFn: func(ctx context.Context, userID, currentPassword, newPassword string) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewAuthHandler(stub, false, time.Hour)

	c, _ := newAuthContext(t, http.MethodPatch, "/auth/change-password", `{"currentPassword":"old123","newPassword":"new123"}`)
	err := h.ChangePassword(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, false, time.Hour)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/logout", "")
	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var refresh *http.Cookie
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "refreshToken" {
			refresh = cookie
		}
	}
	if refresh == nil {
		t.Fatalf("expected refreshToken cookie to be cleared")
	}
	if refresh.Value != "" || refresh.MaxAge >= 0 {
		t.Fatalf("cookie not cleared: %+v", refresh)
	}
}
