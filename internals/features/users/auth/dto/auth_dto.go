package dto

import (
	"time"

	"github.com/google/uuid"

	"kostku_backend/internals/features/users/auth/model"
)

type RegisterRequest struct {
	UserName     string `json:"user_name" validate:"required,min=3,max=100"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	UserIsActive  bool      `json:"user_is_active"`
	UserCreatedAt time.Time `json:"user_created_at"`
}

func ToUserResponse(m model.UserModel) UserResponse {
	return UserResponse{
		UserID:        m.UserID,
		UserName:      m.UserName,
		UserEmail:     m.UserEmail,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt,
	}
}
