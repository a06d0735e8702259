package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/picode11/user-admin-api/internal/core/domain"
)

type stubAuthService struct {
	users map[string]*domain.User
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	return "", nil, domain.ErrInvalidCredentials
}

func (s *stubAuthService) CurrentUser(_ context.Context, token string) (*domain.User, error) {
	user, ok := s.users[token]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return user, nil
}

func (s *stubAuthService) Logout(context.Context, string) error {
	return nil
}

func TestSession_ValidCookie(t *testing.T) {
	e := echo.New()
	auth := &stubAuthService{users: map[string]*domain.User{
		"good-token": {ID: "u1", Username: "alice", Role: domain.RoleAdmin},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "good-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Session(auth)(func(c echo.Context) error {
		called = true
		principal := Principal(c)
		if principal == nil || principal.Username != "alice" {
			t.Fatalf("principal not injected: %+v", principal)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestSession_BearerFallback(t *testing.T) {
	e := echo.New()
	auth := &stubAuthService{users: map[string]*domain.User{
		"bearer-token": {ID: "u1", Username: "bob", Role: domain.RoleUser},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer bearer-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Session(auth)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestSession_MissingToken(t *testing.T) {
	e := echo.New()
	auth := &stubAuthService{users: map[string]*domain.User{}}

	req := httptest.NewRequest(http.MethodGet, "/admin/users?page=2", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(auth)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	// The denial must preserve the originally requested destination.
	var resp unauthorizedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.HasPrefix(resp.Login, "/auth/login?next=") {
		t.Fatalf("login link missing next: %s", resp.Login)
	}
	if !strings.Contains(resp.Login, "%2Fadmin%2Fusers") {
		t.Fatalf("original path not preserved: %s", resp.Login)
	}
}

func TestSession_InvalidToken(t *testing.T) {
	e := echo.New()
	auth := &stubAuthService{users: map[string]*domain.User{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "stale-token"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Session(auth)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
