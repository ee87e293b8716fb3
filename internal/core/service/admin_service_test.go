package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/eventhub/event-management-api/internal/core/domain"
	"github.com/eventhub/event-management-api/internal/core/ports"
)

type stubAdminRepo struct {
	admins map[string]*domain.Admin // keyed by id
	nextID int
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{admins: make(map[string]*domain.Admin)}
}

func (r *stubAdminRepo) add(email string, role domain.Role) *domain.Admin {
	r.nextID++
	a := &domain.Admin{ID: fmt.Sprintf("admin_%d", r.nextID), Email: email, Role: role}
	r.admins[a.ID] = a
	return a
}

func (r *stubAdminRepo) FindByEmail(_ context.Context, email string) (*domain.Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			copy := *a
			return &copy, nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (r *stubAdminRepo) FindByID(_ context.Context, id string) (*domain.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	copy := *a
	return &copy, nil
}

func (r *stubAdminRepo) List(_ context.Context, filter ports.AdminFilter) ([]domain.Admin, error) {
	out := make([]domain.Admin, 0)
	for _, a := range r.admins {
		if filter.Role != "" && a.Role != filter.Role {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAdminRepo) SetRole(_ context.Context, email string, role domain.Role) error {
	for _, a := range r.admins {
		if a.Email == email {
			a.Role = role
			return nil
		}
	}
	return domain.ErrAdminNotFound
}

func (r *stubAdminRepo) Update(_ context.Context, id string, update ports.AdminUpdate) (*domain.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	if update.Email != nil {
		a.Email = *update.Email
	}
	if update.Role != nil {
		a.Role = *update.Role
	}
	copy := *a
	return &copy, nil
}

func (r *stubAdminRepo) Delete(_ context.Context, id string) (*domain.Admin, error) {
	a, ok := r.admins[id]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	delete(r.admins, id)
	return a, nil
}

func TestAdminService_ListAdmins_DefaultsToAdminRole(t *testing.T) {
	repo := newStubAdminRepo()
	repo.add("root@b.com", domain.RoleSuperAdmin)
	repo.add("ops@b.com", domain.RoleAdmin)
	svc := NewAdminService(repo, zerolog.Nop())

	admins, err := svc.ListAdmins(context.Background(), ports.AdminFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(admins) != 1 || admins[0].Email != "ops@b.com" {
		t.Fatalf("expected only admin-role accounts, got %+v", admins)
	}
}

func TestAdminService_MakeAdmins_UnregisteredEmail(t *testing.T) {
	repo := newStubAdminRepo()
	repo.add("ops@b.com", domain.RoleAdmin)
	svc := NewAdminService(repo, zerolog.Nop())

	err := svc.MakeAdmins(context.Background(), []string{"ops@b.com", "ghost@b.com"})
	if !errors.Is(err, domain.ErrAdminNotFound) {
		t.Fatalf("expected ErrAdminNotFound, got %v", err)
	}
}

func TestAdminService_DeleteAdmin_RefusesSuperAdmin(t *testing.T) {
	repo := newStubAdminRepo()
	root := repo.add("root@b.com", domain.RoleSuperAdmin)
	svc := NewAdminService(repo, zerolog.Nop())

	if _, err := svc.DeleteAdmin(context.Background(), root.ID); !errors.Is(err, domain.ErrAdminNotFound) {
		t.Fatalf("expected ErrAdminNotFound for super admin, got %v", err)
	}
}

func TestAdminService_UpdateAdmin_RejectsUserRole(t *testing.T) {
	repo := newStubAdminRepo()
	ops := repo.add("ops@b.com", domain.RoleAdmin)
	svc := NewAdminService(repo, zerolog.Nop())

	role := domain.RoleUser
	if _, err := svc.UpdateAdmin(context.Background(), ops.ID, ports.AdminUpdate{Role: &role}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}
