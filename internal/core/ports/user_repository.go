package ports

import (
	"context"

	"github.com/picode11/user-admin-api/internal/core/domain"
)

// UserRepository defines persistence operations for user records. The backing
// store's unique constraints on username and email are the final arbiter of
// uniqueness: Create and Update must return domain.ErrDuplicateUsername or
// domain.ErrDuplicateEmail when a constraint is violated, so that races past
// the application-level pre-check still surface as validation failures.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	// Delete removes the record permanently. Deleting an unknown id returns
	// domain.ErrUserNotFound, never a silent no-op.
	Delete(ctx context.Context, id string) error
	// List returns all users ordered by creation time, most recent first.
	List(ctx context.Context) ([]*domain.User, error)
	Count(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}
