package ports

import (
	"context"

	"github.com/picode11/user-admin-api/internal/core/domain"
)

// AuthService owns the session lifecycle: establishing an authenticated
// identity, resolving the current principal from a token, and tearing the
// session down again.
type AuthService interface {
	// Login verifies the credentials and returns a signed session token for
	// the user. An unknown username and a wrong password both yield
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// CurrentUser resolves a token to the live user record, or
	// domain.ErrSessionNotFound for anonymous or invalid sessions.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
	// Logout invalidates the session bound to token. Safe to call twice.
	Logout(ctx context.Context, token string) error
}
