package handler

import (
	"time"

	"github.com/picode11/user-admin-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type loginRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=80"`
	Password string `json:"password" form:"password" validate:"required"`
}

type loginResponse struct {
	User *userResponse `json:"user"`
	// Next is where the client should navigate after login: the preserved
	// deep link when one was requested, otherwise the role-based home.
	Next string `json:"next"`
}

type createUserRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email" form:"email" validate:"required,email,max=120"`
	Password string `json:"password" form:"password" validate:"required,min=6,max=128"`
	Role     string `json:"role" form:"role" validate:"required,oneof=admin user"`
}

// editUserRequest mirrors createUserRequest except the password is optional:
// blank keeps the current one. The profile picture travels as a separate
// multipart file part, not as a schema field.
type editUserRequest struct {
	Username string `json:"username" form:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email" form:"email" validate:"required,email,max=120"`
	Password string `json:"password" form:"password" validate:"omitempty,min=6,max=128"`
	Role     string `json:"role" form:"role" validate:"required,oneof=admin user"`
}

type userResponse struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	ProfileImage string    `json:"profile_image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type userListResponse struct {
	Users []*userResponse `json:"users"`
	Total int             `json:"total"`
}

// defaultProfileImage is served when a user never uploaded a picture.
const defaultProfileImage = "default.jpg"

func toUserResponse(u *domain.User) *userResponse {
	image := u.ProfileImage
	if image == "" {
		image = defaultProfileImage
	}
	return &userResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Role:         u.Role,
		ProfileImage: image,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func toUserListResponse(users []*domain.User) userListResponse {
	out := make([]*userResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return userListResponse{Users: out, Total: len(out)}
}
