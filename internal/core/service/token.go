package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/eventhub/event-management-api/internal/core/domain"
)

// TokenType discriminates access from refresh tokens. Type is carried in the
// claims and additionally enforced by signing each kind with its own secret,
// so possession of one kind can never forge the other.
type TokenType string

const (
	TokenAccess  TokenType = "access"
	TokenRefresh TokenType = "refresh"
)

// Claims is the only supported claim shape. It embeds the registered claims
// (expiry, issued-at) and the identity the middleware hands downstream.
type Claims struct {
	jwt.RegisteredClaims

	UserID    string      `json:"user_id"`
	Role      domain.Role `json:"role"`
	TokenType TokenType   `json:"token_type"`
}

const (
	defaultAccessTTL  = 15 * time.Minute
	defaultRefreshTTL = 30 * 24 * time.Hour
)

// TokenService issues and verifies HS256-signed access and refresh tokens.
// Secrets and TTLs are fixed at construction; the service holds no other
// state and is safe for concurrent use.
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// IssueAccess mints a short-lived access token for the given identity.
func (s *TokenService) IssueAccess(userID string, role domain.Role) (string, error) {
	return s.issue(userID, role, TokenAccess, s.accessSecret, s.accessTTL)
}

// IssueRefresh mints a long-lived refresh token for the given identity.
func (s *TokenService) IssueRefresh(userID string, role domain.Role) (string, error) {
	return s.issue(userID, role, TokenRefresh, s.refreshSecret, s.refreshTTL)
}

// IssuePair mints an access and refresh token for the same identity.
func (s *TokenService) IssuePair(userID string, role domain.Role) (access, refresh string, err error) {
	access, err = s.IssueAccess(userID, role)
	if err != nil {
		return "", "", err
	}
	refresh, err = s.IssueRefresh(userID, role)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

// VerifyAccess validates an access token and returns its claims.
func (s *TokenService) VerifyAccess(token string) (*Claims, error) {
	return s.verify(token, TokenAccess, s.accessSecret)
}

// VerifyRefresh validates a refresh token and returns its claims.
func (s *TokenService) VerifyRefresh(token string) (*Claims, error) {
	return s.verify(token, TokenRefresh, s.refreshSecret)
}

func (s *TokenService) issue(userID string, role domain.Role, kind TokenType, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		UserID:    userID,
		Role:      role,
		TokenType: kind,
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign %s token: %w", kind, err)
	}
	return signed, nil
}

// verify parses and validates token against secret. All failures wrap
// domain.ErrInvalidToken; expiry additionally satisfies
// errors.Is(err, jwt.ErrTokenExpired).
func (s *TokenService) verify(token string, expected TokenType, secret []byte) (*Claims, error) {
	claims := &Claims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)

	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	if claims.TokenType != expected {
		return nil, fmt.Errorf("%w: token type mismatch", domain.ErrInvalidToken)
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing user id", domain.ErrInvalidToken)
	}

	return claims, nil
}
