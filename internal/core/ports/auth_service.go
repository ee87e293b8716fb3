package ports

import (
	"context"

	"github.com/eventhub/event-management-api/internal/core/domain"
)

// LoginResult is what a successful login yields. The refresh token is
// transported back to the client as an httpOnly cookie, never in the body.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	UserID       string
}

// AuthService orchestrates signup, login, token refresh and password change.
type AuthService interface {
	Signup(ctx context.Context, email, password string, role domain.Role) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
}
