package identity

import (
	"time"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/identity"
	"github.com/shopspring/decimal"
)

// RegisterRequest creates a user account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name"`
	Role     string `json:"role" binding:"required,oneof=admin office rep"`
}

// LoginRequest authenticates a user
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID    uuid.UUID     `json:"id"`
	Email string        `json:"email"`
	Name  string        `json:"name,omitempty"`
	Role  identity.Role `json:"role"`
}

// CreateRepresentativeRequest creates a sales representative
type CreateRepresentativeRequest struct {
	Name         string          `json:"name" binding:"required"`
	Email        string          `json:"email" binding:"omitempty,email"`
	OverheadRate decimal.Decimal `json:"overhead_rate"`
}

// UpdateOverheadRateRequest changes a rep's overhead share
type UpdateOverheadRateRequest struct {
	OverheadRate decimal.Decimal `json:"overhead_rate" binding:"required"`
}

// RepresentativeResponse represents a rep in API responses
type RepresentativeResponse struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Email        string          `json:"email,omitempty"`
	OverheadRate decimal.Decimal `json:"overhead_rate"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
}

// RepListFilter represents filter options for the rep list
type RepListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

func toUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}

func toRepResponse(r *identity.Representative) RepresentativeResponse {
	return RepresentativeResponse{
		ID:           r.ID,
		Name:         r.Name,
		Email:        r.Email,
		OverheadRate: r.OverheadRate,
		Active:       r.Active,
		CreatedAt:    r.CreatedAt,
	}
}
