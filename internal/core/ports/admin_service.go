package ports

import (
	"context"

	"github.com/eventhub/event-management-api/internal/core/domain"
)

// AdminService exposes administrative account management.
type AdminService interface {
	ListAdmins(ctx context.Context, filter AdminFilter) ([]domain.Admin, error)
	MakeAdmins(ctx context.Context, emails []string) error
	UpdateAdmin(ctx context.Context, id string, update AdminUpdate) (*domain.Admin, error)
	DeleteAdmin(ctx context.Context, id string) (*domain.Admin, error)
}
