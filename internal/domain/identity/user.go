package identity

import (
	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// Role is a coarse permission level
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleOffice Role = "office"
	RoleRep    Role = "rep"
)

// IsValid checks if the role is known
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleOffice, RoleRep:
		return true
	}
	return false
}

// ErrInvalidCredentials is returned on a failed login
var ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")

// User is an authenticated account within a tenant
type User struct {
	shared.TenantAggregateRoot
	Email        string
	PasswordHash string
	Name         string
	Role         Role
	Active       bool
}

// NewUser creates a user with a bcrypt-hashed password
func NewUser(tenantID uuid.UUID, email, password, name string, role Role) (*User, error) {
	if email == "" {
		return nil, shared.NewDomainError("INVALID_EMAIL", "Email is required")
	}
	if len(password) < 8 {
		return nil, shared.NewDomainError("WEAK_PASSWORD", "Password must be at least 8 characters")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ROLE", "Unknown role")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &User{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Email:               email,
		PasswordHash:        string(hash),
		Name:                name,
		Role:                role,
		Active:              true,
	}, nil
}

// CheckPassword verifies a candidate password against the stored hash
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored hash after verifying the old password
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.CheckPassword(oldPassword) {
		return ErrInvalidCredentials
	}
	if len(newPassword) < 8 {
		return shared.NewDomainError("WEAK_PASSWORD", "Password must be at least 8 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}
