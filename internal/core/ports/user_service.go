package ports

import (
	"context"

	"github.com/eventhub/event-management-api/internal/core/domain"
	"github.com/eventhub/event-management-api/pkg/pagination"
)

// UserService exposes profile management and administrative user operations.
type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	GetAllUsers(ctx context.Context, filter UserFilter, opts pagination.Options) ([]domain.User, int64, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, update UserUpdate) (*domain.User, error)
	UpdateUser(ctx context.Context, id string, update UserUpdate) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) (*domain.User, error)
}
