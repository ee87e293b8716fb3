package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/eventhub/event-management-api/internal/core/domain"
	"github.com/eventhub/event-management-api/internal/core/ports"
)

// AuthService implements signup, login, token refresh and password change
// against the user store. It owns no state beyond its collaborators.
type AuthService struct {
	users  ports.UserRepository
	tokens *TokenService
	hasher *PasswordHasher
	log    zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens *TokenService, hasher *PasswordHasher, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, hasher: hasher, log: log}
}

// Signup hashes the password and persists a new account. Email uniqueness
// is enforced by the store's unique index; violations surface as
// domain.ErrEmailTaken. The returned user never carries the digest outward
// (the field is excluded from serialization).
func (s *AuthService) Signup(ctx context.Context, email, password string, role domain.Role) (*domain.User, error) {
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("signup: unknown role %q: %w", role, domain.ErrInvalidCredentials)
	}
	// Signup is unauthenticated; super_admin accounts are provisioned out of
	// band and can never be self-assigned.
	if role == domain.RoleSuperAdmin {
		return nil, fmt.Errorf("signup: role %q: %w", role, domain.ErrForbidden)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user signed up")
	return created, nil
}

// Login verifies credentials and issues an access/refresh token pair from
// the identity's current {id, role}.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if !s.hasher.Matches(password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	access, refresh, err := s.tokens.IssuePair(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")

	return &ports.LoginResult{
		AccessToken:  access,
		RefreshToken: refresh,
		UserID:       user.ID,
	}, nil
}

// Refresh verifies a refresh token and mints a new access token. The
// identity is re-fetched so the new token carries the account's current
// role, and a deleted account invalidates all outstanding refresh tokens.
// The refresh token itself is not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return "", err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return "", err
	}

	access, err := s.tokens.IssueAccess(user.ID, user.Role)
	if err != nil {
		return "", fmt.Errorf("refresh: %w", err)
	}
	return access, nil
}

// ChangePassword verifies the current password, rejects a no-op change, and
// persists the new digest. Concurrent changes for the same user race with
// last-writer-wins semantics; acceptable for this domain.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !s.hasher.Matches(currentPassword, user.PasswordHash) {
		return domain.ErrInvalidCredentials
	}
	if s.hasher.Matches(newPassword, user.PasswordHash) {
		return domain.ErrSamePassword
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("change password: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, userID, hash); err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Msg("password changed")
	return nil
}
