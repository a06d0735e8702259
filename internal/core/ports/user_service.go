package ports

import (
	"context"

	"github.com/picode11/user-admin-api/internal/core/domain"
)

// CreateUserInput carries all data needed to create a new user.
type CreateUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// EditUserInput carries the fields an administrator may change on an existing
// user. Password is re-hashed only when non-empty; Photo is the already-stored
// filename of a newly uploaded picture and replaces the current one when
// non-empty.
type EditUserInput struct {
	Username string
	Email    string
	Password string
	Role     string
	Photo    string
}

// UserStats is the dashboard overview: total accounts and the per-role split.
type UserStats struct {
	Total  int64 `json:"total"`
	Admins int64 `json:"admins"`
	Users  int64 `json:"users"`
}

// UserService defines the user lifecycle use cases.
type UserService interface {
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	Edit(ctx context.Context, id string, input EditUserInput) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Stats(ctx context.Context) (*UserStats, error)
	// SetProfileImage lets an account owner replace their own picture.
	SetProfileImage(ctx context.Context, id, filename string) (*domain.User, error)
	// Seed provisions the default admin and regular user when the store is
	// empty. Safe to call on every startup.
	Seed(ctx context.Context) error
}
