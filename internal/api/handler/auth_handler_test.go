package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/picode11/user-admin-api/internal/api/middleware"
	"github.com/picode11/user-admin-api/internal/core/domain"
)

type stubAuthService struct {
	loginFn  func(ctx context.Context, username, password string) (string, *domain.User, error)
	logoutFn func(ctx context.Context, token string) error
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) CurrentUser(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrSessionNotFound
}

func (s *stubAuthService) Logout(ctx context.Context, token string) error {
	if s.logoutFn != nil {
		return s.logoutFn(ctx, token)
	}
	return nil
}

func newLoginContext(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == middleware.SessionCookie {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Login_Success(t *testing.T) {
	admin := &domain.User{ID: "u1", Username: "admin", Email: "admin@example.com", Role: domain.RoleAdmin}
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(_ context.Context, username, password string) (string, *domain.User, error) {
			if username != "admin" || password != "admin123" {
				return "", nil, domain.ErrInvalidCredentials
			}
			return "signed-token", admin, nil
		},
	}, false)

	c, rec := newLoginContext(t, "/auth/login", `{"username":"admin","password":"admin123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := sessionCookie(rec)
	if cookie == nil || cookie.Value != "signed-token" {
		t.Fatalf("session cookie not set: %+v", cookie)
	}
	if !cookie.HttpOnly {
		t.Fatalf("session cookie must be http-only")
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Next != "/admin/dashboard" {
		t.Fatalf("expected admin home, got %s", resp.Next)
	}
	if resp.User == nil || resp.User.Username != "admin" {
		t.Fatalf("unexpected user in response: %+v", resp.User)
	}
}

func TestAuthHandler_Login_RegularUserHome(t *testing.T) {
	user := &domain.User{ID: "u2", Username: "bob", Role: domain.RoleUser}
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "tok", user, nil
		},
	}, false)

	c, rec := newLoginContext(t, "/auth/login", `{"username":"bob","password":"user123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login handler error: %v", err)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Next != "/me" {
		t.Fatalf("expected /me, got %s", resp.Next)
	}
}

func TestAuthHandler_Login_ResumesDeepLink(t *testing.T) {
	user := &domain.User{ID: "u2", Username: "bob", Role: domain.RoleUser}
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "tok", user, nil
		},
	}, false)

	c, rec := newLoginContext(t, "/auth/login?next=%2Fme%2Fphoto", `{"username":"bob","password":"user123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login handler error: %v", err)
	}

	var resp loginResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Next != "/me/photo" {
		t.Fatalf("deep link not resumed: %s", resp.Next)
	}
}

func TestAuthHandler_Login_RejectsExternalNext(t *testing.T) {
	user := &domain.User{ID: "u2", Username: "bob", Role: domain.RoleUser}
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "tok", user, nil
		},
	}, false)

	for _, next := range []string{"https%3A%2F%2Fevil.example", "%2F%2Fevil.example"} {
		c, rec := newLoginContext(t, "/auth/login?next="+next, `{"username":"bob","password":"user123"}`)
		if err := h.Login(c); err != nil {
			t.Fatalf("login handler error: %v", err)
		}
		var resp loginResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if resp.Next != "/me" {
			t.Fatalf("external next not rejected: %s", resp.Next)
		}
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			return "", nil, domain.ErrInvalidCredentials
		},
	}, false)

	c, rec := newLoginContext(t, "/auth/login", `{"username":"admin","password":"wrong"}`)
	err := h.Login(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if cookie := sessionCookie(rec); cookie != nil {
		t.Fatalf("no cookie must be set on failed login")
	}
}

func TestAuthHandler_Login_ShortUsernameSameError(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		loginFn: func(context.Context, string, string) (string, *domain.User, error) {
			t.Fatalf("service must not be called for malformed credentials")
			return "", nil, nil
		},
	}, false)

	c, _ := newLoginContext(t, "/auth/login", `{"username":"ab","password":"x"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	loggedOut := ""
	h := NewAuthHandler(&stubAuthService{
		logoutFn: func(_ context.Context, token string) error {
			loggedOut = token
			return nil
		},
	}, false)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "tok"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Logout(c); err != nil {
		t.Fatalf("logout handler error: %v", err)
	}
	if loggedOut != "tok" {
		t.Fatalf("session not invalidated, got %q", loggedOut)
	}

	cookie := sessionCookie(rec)
	if cookie == nil || cookie.MaxAge != -1 || cookie.Value != "" {
		t.Fatalf("cookie not cleared: %+v", cookie)
	}
}
