package ports

import (
	"context"

	"github.com/eventhub/event-management-api/internal/core/domain"
)

// AdminFilter restricts admin listings the same way UserFilter does for users.
type AdminFilter struct {
	Query string
	Role  domain.Role
}

// AdminUpdate carries a partial update; nil fields are left untouched.
type AdminUpdate struct {
	Email *string
	Role  *domain.Role
}

// AdminRepository defines persistence for the admins collection.
type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Admin, error)
	FindByID(ctx context.Context, id string) (*domain.Admin, error)
	List(ctx context.Context, filter AdminFilter) ([]domain.Admin, error)
	SetRole(ctx context.Context, email string, role domain.Role) error
	Update(ctx context.Context, id string, update AdminUpdate) (*domain.Admin, error)
	Delete(ctx context.Context, id string) (*domain.Admin, error)
}
