package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/picode11/user-admin-api/internal/core/domain"
)

// deniedResponse is the soft-deny shape: a human-readable notice plus the
// page the client should land on instead of the denied one.
type deniedResponse struct {
	Error    string `json:"error"`
	Redirect string `json:"redirect"`
}

// RequireRole enforces the authorization gate for the given role. Denied
// principals are sent back to their profile with a notice rather than a bare
// forbidden page. Must run after Session.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !domain.Authorize(Principal(c), role) {
				return c.JSON(http.StatusForbidden, deniedResponse{
					Error:    "Access denied. Admin privileges required.",
					Redirect: "/me",
				})
			}
			return next(c)
		}
	}
}
