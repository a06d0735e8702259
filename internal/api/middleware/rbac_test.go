package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/picode11/user-admin-api/internal/core/domain"
)

func newRoleContext(e *echo.Echo, principal *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if principal != nil {
		c.Set(principalKey, principal)
	}
	return c, rec
}

func TestRequireRole_AllowsAdmin(t *testing.T) {
	e := echo.New()
	c, rec := newRoleContext(e, &domain.User{Username: "root", Role: domain.RoleAdmin})

	called := false
	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole_SoftDeniesRegularUser(t *testing.T) {
	e := echo.New()
	c, rec := newRoleContext(e, &domain.User{Username: "bob", Role: domain.RoleUser})

	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	// Denial sends the user back to their profile with a notice.
	var resp deniedResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Redirect != "/me" {
		t.Fatalf("expected redirect to /me, got %s", resp.Redirect)
	}
	if resp.Error == "" {
		t.Fatalf("expected a user-visible notice")
	}
}

func TestRequireRole_DeniesMissingPrincipal(t *testing.T) {
	e := echo.New()
	c, rec := newRoleContext(e, nil)

	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRequireRole_UserLevelAllowsAnyPrincipal(t *testing.T) {
	e := echo.New()
	c, rec := newRoleContext(e, &domain.User{Username: "bob", Role: domain.RoleUser})

	called := false
	handler := RequireRole(domain.RoleUser)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called || rec.Code != http.StatusOK {
		t.Fatalf("expected pass-through for self-level operations, got %d", rec.Code)
	}
}
