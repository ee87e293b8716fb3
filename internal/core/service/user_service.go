package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/eventhub/event-management-api/internal/core/domain"
	"github.com/eventhub/event-management-api/internal/core/ports"
	"github.com/eventhub/event-management-api/pkg/pagination"
)

// UserService implements profile management and administrative user
// operations over the user store.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

// GetProfile returns the caller's own account.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// GetAllUsers returns a page of users matching the filter plus the total
// count before pagination.
func (s *UserService) GetAllUsers(ctx context.Context, filter ports.UserFilter, opts pagination.Options) ([]domain.User, int64, error) {
	return s.users.List(ctx, filter, pagination.Normalize(opts))
}

// GetUserByID returns a single user by id.
func (s *UserService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateProfile applies a partial update to the caller's own account.
// Role changes through this path are ignored.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, update ports.UserUpdate) (*domain.User, error) {
	update.Role = nil
	return s.updateByID(ctx, userID, update)
}

// UpdateUser applies a partial update to an arbitrary account.
func (s *UserService) UpdateUser(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	return s.updateByID(ctx, id, update)
}

func (s *UserService) updateByID(ctx context.Context, id string, update ports.UserUpdate) (*domain.User, error) {
	if update.Role != nil && !update.Role.Valid() {
		return nil, domain.ErrForbidden
	}
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return nil, err
	}

	updated, err := s.users.Update(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Msg("user updated")
	return updated, nil
}

// DeleteUser removes an account and returns the deleted record.
func (s *UserService) DeleteUser(ctx context.Context, id string) (*domain.User, error) {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", id).Msg("user deleted")
	return deleted, nil
}
