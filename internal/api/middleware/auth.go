package middleware

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/picode11/user-admin-api/internal/core/domain"
	"github.com/picode11/user-admin-api/internal/core/ports"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "session"

const principalKey = "principal"

// unauthorizedResponse tells an unauthenticated caller where to log in. The
// login URL preserves the originally requested path so the client can resume
// it after a successful login.
type unauthorizedResponse struct {
	Error string `json:"error"`
	Login string `json:"login"`
}

// Session resolves the current principal from the session cookie (or a
// bearer token) and injects it into the request context. Requests without a
// valid session get a 401 pointing at the login endpoint.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := TokenFromRequest(c)
			if token == "" {
				return unauthorized(c)
			}

			user, err := auth.CurrentUser(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrSessionNotFound) {
					return unauthorized(c)
				}
				return err
			}

			SetPrincipal(c, user)
			return next(c)
		}
	}
}

// TokenFromRequest extracts the session token from the session cookie,
// falling back to an Authorization bearer header.
func TokenFromRequest(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

// SetPrincipal stores the authenticated user on the request context.
func SetPrincipal(c echo.Context, user *domain.User) {
	c.Set(principalKey, user)
}

// Principal returns the authenticated user injected by Session, or nil.
func Principal(c echo.Context) *domain.User {
	user, _ := c.Get(principalKey).(*domain.User)
	return user
}

func unauthorized(c echo.Context) error {
	next := c.Request().URL.RequestURI()
	return c.JSON(http.StatusUnauthorized, unauthorizedResponse{
		Error: "Please log in to access this page.",
		Login: "/auth/login?next=" + url.QueryEscape(next),
	})
}
