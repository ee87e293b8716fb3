package ports

import (
	"context"

	"github.com/eventhub/event-management-api/internal/core/domain"
	"github.com/eventhub/event-management-api/pkg/pagination"
)

// UserFilter restricts user listings. Query is a case-insensitive substring
// search over the searchable fields (email); Role filters exactly.
type UserFilter struct {
	Query string
	Role  domain.Role
}

// UserUpdate carries a partial update; nil fields are left untouched.
type UserUpdate struct {
	Email *string
	Role  *domain.Role
}

// UserRepository defines persistence for the users collection. The
// collection holds a unique index on email; Create surfaces violations as
// domain.ErrEmailTaken.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, filter UserFilter, pg pagination.Pagination) ([]domain.User, int64, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) (*domain.User, error)
}
