package identity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/identity"
	"github.com/roofline/backend/internal/domain/shared"
)

// TokenService issues and revokes access tokens. The concrete
// implementation lives in infrastructure; revocation is backed by a
// server-side blacklist so logout takes effect immediately.
type TokenService interface {
	Generate(userID, tenantID uuid.UUID, role string) (token string, expiresAt time.Time, err error)
	Revoke(ctx context.Context, token string) error
}

// AuthService handles registration, login and logout
type AuthService struct {
	userRepo identity.UserRepository
	tokens   TokenService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo identity.UserRepository, tokens TokenService) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// Register creates a user account in the tenant
func (s *AuthService) Register(ctx context.Context, tenantID uuid.UUID, req RegisterRequest) (*UserResponse, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}

	if _, err := s.userRepo.FindByEmail(ctx, tenantID, req.Email); err == nil {
		return nil, shared.NewDomainError("EMAIL_TAKEN", "An account with this email already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	user, err := identity.NewUser(tenantID, req.Email, req.Password, req.Name, identity.Role(req.Role))
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	resp := toUserResponse(user)
	return &resp, nil
}

// Login verifies credentials and issues a token. Failed lookups and wrong
// passwords produce the same error so the response does not leak which
// emails exist.
func (s *AuthService) Login(ctx context.Context, tenantID uuid.UUID, req LoginRequest) (*LoginResponse, error) {
	if tenantID == uuid.Nil {
		return nil, shared.ErrUnauthorized
	}

	user, err := s.userRepo.FindByEmail(ctx, tenantID, req.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, identity.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.Active || !user.CheckPassword(req.Password) {
		return nil, identity.ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Generate(user.ID, user.TenantID, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserResponse(user),
	}, nil
}

// Logout revokes the presented token
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}
