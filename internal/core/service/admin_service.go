package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eventhub/event-management-api/internal/core/domain"
	"github.com/eventhub/event-management-api/internal/core/ports"
)

// AdminService manages the admins collection: listing, promotion, updates
// and removal of administrative accounts.
type AdminService struct {
	admins ports.AdminRepository
	log    zerolog.Logger
}

func NewAdminService(admins ports.AdminRepository, log zerolog.Logger) *AdminService {
	return &AdminService{admins: admins, log: log}
}

// ListAdmins returns admins matching the filter. Only accounts holding the
// admin role are listed; super admins manage the system and stay out of
// the listing, mirroring the original behavior.
func (s *AdminService) ListAdmins(ctx context.Context, filter ports.AdminFilter) ([]domain.Admin, error) {
	if filter.Role == "" {
		filter.Role = domain.RoleAdmin
	}
	return s.admins.List(ctx, filter)
}

// MakeAdmins promotes the given emails to the admin role. Every email must
// already be registered in the admins collection; the first missing one
// aborts the batch with domain.ErrAdminNotFound.
func (s *AdminService) MakeAdmins(ctx context.Context, emails []string) error {
	for _, email := range emails {
		if _, err := s.admins.FindByEmail(ctx, email); err != nil {
			return err
		}
		if err := s.admins.SetRole(ctx, email, domain.RoleAdmin); err != nil {
			return err
		}
		s.log.Info().Str("email", email).Msg("admin promoted")
	}
	return nil
}

// UpdateAdmin applies a partial update to an admin account.
func (s *AdminService) UpdateAdmin(ctx context.Context, id string, update ports.AdminUpdate) (*domain.Admin, error) {
	if update.Role != nil && *update.Role != domain.RoleAdmin && *update.Role != domain.RoleSuperAdmin {
		return nil, domain.ErrForbidden
	}
	if _, err := s.admins.FindByID(ctx, id); err != nil {
		return nil, err
	}
	return s.admins.Update(ctx, id, update)
}

// DeleteAdmin removes an admin account. Super-admin accounts cannot be
// deleted through this path.
func (s *AdminService) DeleteAdmin(ctx context.Context, id string) (*domain.Admin, error) {
	admin, err := s.admins.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if admin.Role != domain.RoleAdmin {
		return nil, domain.ErrAdminNotFound
	}

	deleted, err := s.admins.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("admin_id", id).Msg("admin deleted")
	return deleted, nil
}
