package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/picode11/user-admin-api/internal/core/domain"
	"github.com/picode11/user-admin-api/internal/core/ports"
)

const (
	duplicateUsernameMsg = "Username already exists. Please choose a different one."
	duplicateEmailMsg    = "Email already registered. Please use a different email."
)

// UserService implements the user record lifecycle: create, edit, delete,
// list, plus dashboard stats and first-run seeding.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if fe := validateCreate(input); fe != nil {
		return nil, fe
	}
	if fe, err := s.checkUnique(ctx, input.Username, input.Email, nil); err != nil {
		return nil, err
	} else if fe != nil {
		return nil, fe
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		// The store's unique index is the final arbiter; a race past the
		// pre-check above still comes back as a field error.
		if fe := duplicateFieldErrors(err); fe != nil {
			return nil, fe
		}
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", created.Role).Msg("user created")
	return created, nil
}

func (s *UserService) Edit(ctx context.Context, id string, input ports.EditUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if fe := validateEdit(input); fe != nil {
		return nil, fe
	}
	// Uniqueness checks exclude the target's own current values: keeping the
	// same username or email must not self-collide.
	if fe, err := s.checkUnique(ctx, input.Username, input.Email, user); err != nil {
		return nil, err
	} else if fe != nil {
		return nil, fe
	}

	user.Username = input.Username
	user.Email = input.Email
	user.Role = input.Role
	if input.Password != "" {
		hash, err := HashPassword(input.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash
	}
	if input.Photo != "" {
		user.ProfileImage = input.Photo
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		if fe := duplicateFieldErrors(err); fe != nil {
			return nil, fe
		}
		return nil, err
	}

	s.logger.Info().Str("id", user.ID).Str("username", user.Username).Msg("user updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("id", id).Msg("user deleted")
	return nil
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

func (s *UserService) Stats(ctx context.Context) (*ports.UserStats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	admins, err := s.repo.CountByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	users, err := s.repo.CountByRole(ctx, domain.RoleUser)
	if err != nil {
		return nil, err
	}
	return &ports.UserStats{Total: total, Admins: admins, Users: users}, nil
}

func (s *UserService) SetProfileImage(ctx context.Context, id, filename string) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.ProfileImage = filename
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Seed provisions a default admin and a default regular user when the store
// is empty.
func (s *UserService) Seed(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	defaults := []ports.CreateUserInput{
		{Username: "admin", Email: "admin@example.com", Password: "admin123", Role: domain.RoleAdmin},
		{Username: "user", Email: "user@example.com", Password: "user123", Role: domain.RoleUser},
	}
	for _, input := range defaults {
		if _, err := s.Create(ctx, input); err != nil {
			return fmt.Errorf("seed %s: %w", input.Username, err)
		}
	}

	s.logger.Info().Msg("database seeded with default admin and user accounts")
	return nil
}

// checkUnique pre-validates username and email uniqueness. current, when
// non-nil, is the record being edited; its own values are allowed.
func (s *UserService) checkUnique(ctx context.Context, username, email string, current *domain.User) (domain.FieldErrors, error) {
	fe := domain.FieldErrors{}

	if current == nil || username != current.Username {
		_, err := s.repo.FindByUsername(ctx, username)
		switch {
		case err == nil:
			fe["username"] = duplicateUsernameMsg
		case !errors.Is(err, domain.ErrUserNotFound):
			return nil, err
		}
	}
	if current == nil || email != current.Email {
		_, err := s.repo.FindByEmail(ctx, email)
		switch {
		case err == nil:
			fe["email"] = duplicateEmailMsg
		case !errors.Is(err, domain.ErrUserNotFound):
			return nil, err
		}
	}

	if len(fe) == 0 {
		return nil, nil
	}
	return fe, nil
}

// duplicateFieldErrors translates store-level unique constraint violations
// into the same field-error shape as the pre-check.
func duplicateFieldErrors(err error) domain.FieldErrors {
	switch {
	case errors.Is(err, domain.ErrDuplicateUsername):
		return domain.FieldErrors{"username": duplicateUsernameMsg}
	case errors.Is(err, domain.ErrDuplicateEmail):
		return domain.FieldErrors{"email": duplicateEmailMsg}
	}
	return nil
}
