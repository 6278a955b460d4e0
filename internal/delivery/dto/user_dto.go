package dto

import (
	"time"
)

type UserResponse struct {
	ID        int64            `json:"id"`
	Username  string           `json:"username"`
	Email     string           `json:"email"`
	Role      string           `json:"role"`
	Profile   *ProfileResponse `json:"profile,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Total int            `json:"total"`
}

// UpdateUserRequest carries a directory update for a patient or doctor:
// account fields plus an optional nested profile patch.
type UpdateUserRequest struct {
	Username string                `json:"username" validate:"omitempty,min=3,max=100"`
	Email    string                `json:"email" validate:"omitempty,email"`
	Profile  *UpdateProfileRequest `json:"profile" validate:"omitempty"`
}
