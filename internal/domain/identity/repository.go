package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/roofline/backend/internal/domain/shared"
)

// RepresentativeRepository persists representatives
type RepresentativeRepository interface {
	Save(ctx context.Context, rep *Representative) error
	Update(ctx context.Context, rep *Representative) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Representative, error)
	List(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (shared.Paginated[*Representative], error)
}

// UserRepository persists user accounts
type UserRepository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, tenantID uuid.UUID, email string) (*User, error)
}
