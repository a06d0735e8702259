package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models an account in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	ProfileImage string    `json:"profile_image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ValidRole reports whether role is one of the known role values.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleUser
}

// Authorize is the single authorization decision point. Any authenticated
// principal passes a RoleUser requirement; RoleAdmin requires the admin role.
// A nil principal is always denied.
func Authorize(principal *User, requiredRole string) bool {
	if principal == nil {
		return false
	}
	if requiredRole == RoleAdmin {
		return principal.IsAdmin()
	}
	return true
}
