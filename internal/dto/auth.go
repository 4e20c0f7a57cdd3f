package dto

import (
	"strings"
	"time"

	"jobtracker_backend/internal/models"
)

type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email,max=255"`
	Password    string `json:"password" validate:"required,min=8,max=128"`
	Role        string `json:"role" validate:"required,is-user-role"`
	Phone       string `json:"phone" validate:"omitempty,max=30"`
	FullName    string `json:"full_name" validate:"omitempty,max=255"`
	CompanyName string `json:"company_name" validate:"omitempty,max=255"`
}

func (r *RegisterRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FullName = strings.TrimSpace(r.FullName)
	r.CompanyName = strings.TrimSpace(r.CompanyName)
	r.Phone = strings.TrimSpace(r.Phone)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Role      models.UserRole `json:"role"`
	Phone     string          `json:"phone,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Role:      u.Role,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}

// ProfileResponse carries the caller's user and the one profile matching its role.
type ProfileResponse struct {
	User             UserResponse             `json:"user"`
	JobSeekerProfile *models.JobSeekerProfile `json:"jobseeker_profile,omitempty"`
	CompanyProfile   *models.CompanyProfile   `json:"company_profile,omitempty"`
}
