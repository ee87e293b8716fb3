package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/eventhub/event-management-api/internal/core/domain"
	"github.com/eventhub/event-management-api/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, email string, role domain.Role) *domain.User {
	t.Helper()
	u, err := repo.Create(context.Background(), &domain.User{Email: email, PasswordHash: "x", Role: role})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestUserService_UpdateProfile_IgnoresRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	u := seedUser(t, repo, "a@b.com", domain.RoleUser)

	role := domain.RoleSuperAdmin
	email := "new@b.com"
	updated, err := svc.UpdateProfile(context.Background(), u.ID, ports.UserUpdate{Email: &email, Role: &role})
	if err != nil {
		t.Fatalf("update profile: %v", err)
	}
	if updated.Email != "new@b.com" {
		t.Fatalf("email not updated: %s", updated.Email)
	}
	if updated.Role != domain.RoleUser {
		t.Fatalf("profile update escalated role to %s", updated.Role)
	}
}

func TestUserService_UpdateUser_UnknownRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	u := seedUser(t, repo, "a@b.com", domain.RoleUser)

	bad := domain.Role("root")
	if _, err := svc.UpdateUser(context.Background(), u.ID, ports.UserUpdate{Role: &bad}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestUserService_UpdateUser_NotFound(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	email := "x@b.com"
	if _, err := svc.UpdateUser(context.Background(), "missing", ports.UserUpdate{Email: &email}); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	u := seedUser(t, repo, "a@b.com", domain.RoleUser)

	deleted, err := svc.DeleteUser(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if deleted.ID != u.ID {
		t.Fatalf("unexpected deleted record: %+v", deleted)
	}
	if _, err := svc.GetUserByID(context.Background(), u.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
}
