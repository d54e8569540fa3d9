package dto

import (
	"time"

	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
)

// UserResponse is the DTO for a user.
type UserResponse struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	Email                  string          `json:"email"`
	Role                   string          `json:"role"`
	IsActive               bool            `json:"isActive"`
	HasCompletedAssessment bool            `json:"hasCompletedAssessment"`
	Profile                *entity.Profile `json:"profile,omitempty"`
	AvatarURL              *string         `json:"avatarUrl,omitempty"`
	CreatedAt              string          `json:"createdAt"`
}

// SpecialistResponse exposes only what the booking screen needs.
type SpecialistResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	AvatarURL *string `json:"avatarUrl,omitempty"`
}

// LoginResponse is the DTO for a successful login.
type LoginResponse struct {
	User         UserResponse `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:                     user.ID,
		Name:                   user.Name,
		Email:                  user.Email,
		Role:                   string(user.Role),
		IsActive:               user.IsActive,
		HasCompletedAssessment: user.HasCompletedAssessment,
		Profile:                user.Profile,
		AvatarURL:              user.AvatarURL,
		CreatedAt:              user.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponses(users []entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}

func ToSpecialistResponses(users []entity.User) []SpecialistResponse {
	out := make([]SpecialistResponse, 0, len(users))
	for _, u := range users {
		out = append(out, SpecialistResponse{ID: u.ID, Name: u.Name, AvatarURL: u.AvatarURL})
	}
	return out
}

// UserListResponse is one page of the admin user listing.
type UserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int64          `json:"total"`
	Page  int64          `json:"page"`
	Limit int64          `json:"limit"`
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

type ModifiedCountResponse struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

type UnreadCountResponse struct {
	Count int64 `json:"count"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
