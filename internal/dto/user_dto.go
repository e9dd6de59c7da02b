package dto

import (
	"time"

	"github.com/google/uuid"
)

type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type TokenResponse struct {
	Success bool `json:"success"`
}

type RegisterUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required"`
	PhotoURL string `json:"photo_url" validate:"omitempty,url"`
}

type RegisterUserResponse struct {
	Created bool                `json:"created"`
	User    UserProfileResponse `json:"user"`
}

type UserProfileResponse struct {
	Id          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	PhotoURL    string     `json:"photo_url,omitempty"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

type UserStatusResponse struct {
	Email  string `json:"email"`
	Status string `json:"status"`
}

type CheckAdminResponse struct {
	Admin bool `json:"admin"`
}
