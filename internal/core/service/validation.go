package service

import (
	"github.com/go-playground/validator/v10"

	"github.com/picode11/user-admin-api/internal/core/domain"
	"github.com/picode11/user-admin-api/internal/core/ports"
)

// validate backs the per-operation validation functions. Field rules mirror
// the persisted column constraints.
var validate = validator.New()

const (
	usernameRules = "required,min=3,max=80"
	emailRules    = "required,email,max=120"
	passwordRules = "required,min=6,max=128"
)

// validateCreate checks a create request and returns one message per failing
// field. All fields are required for a new user.
func validateCreate(input ports.CreateUserInput) domain.FieldErrors {
	fe := domain.FieldErrors{}

	if err := validate.Var(input.Username, usernameRules); err != nil {
		fe["username"] = "username must be between 3 and 80 characters"
	}
	if err := validate.Var(input.Email, emailRules); err != nil {
		fe["email"] = "a valid email address of at most 120 characters is required"
	}
	if err := validate.Var(input.Password, passwordRules); err != nil {
		fe["password"] = "password must be between 6 and 128 characters"
	}
	if !domain.ValidRole(input.Role) {
		fe["role"] = "role must be admin or user"
	}

	if len(fe) == 0 {
		return nil
	}
	return fe
}

// validateEdit checks an edit request. The password is optional: empty means
// keep the current hash.
func validateEdit(input ports.EditUserInput) domain.FieldErrors {
	fe := domain.FieldErrors{}

	if err := validate.Var(input.Username, usernameRules); err != nil {
		fe["username"] = "username must be between 3 and 80 characters"
	}
	if err := validate.Var(input.Email, emailRules); err != nil {
		fe["email"] = "a valid email address of at most 120 characters is required"
	}
	if input.Password != "" {
		if err := validate.Var(input.Password, passwordRules); err != nil {
			fe["password"] = "password must be between 6 and 128 characters"
		}
	}
	if !domain.ValidRole(input.Role) {
		fe["role"] = "role must be admin or user"
	}

	if len(fe) == 0 {
		return nil
	}
	return fe
}
