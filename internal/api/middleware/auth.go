package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/eventhub/event-management-api/internal/core/domain"
	"github.com/eventhub/event-management-api/internal/core/service"
)

// identityKey is the single context key under which the typed Identity is
// stored. Handlers read it through IdentityFrom, never directly.
const identityKey = "auth.identity"

// Identity is the authenticated caller attached to the request context
// after a successful token verification.
type Identity struct {
	UserID string
	Role   domain.Role
}

// TokenVerifier is the slice of the token service the middleware depends on.
type TokenVerifier interface {
	VerifyAccess(token string) (*service.Claims, error)
}

// Authorize gates a route behind bearer-token authentication and an
// optional role allow-list. An empty allow-list admits any authenticated
// identity. The request is rejected at the first failing step:
//
//	no token            → 401 "Access token is required"
//	verification failed → 403 "Invalid token"
//	role not allowed    → 403 "Forbidden access"
func Authorize(tokens TokenVerifier, allowed ...domain.Role) echo.MiddlewareFunc {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := bearerToken(c)
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Access token is required")
			}

			claims, err := tokens.VerifyAccess(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "Invalid token")
			}

			if len(allowedSet) > 0 {
				if _, ok := allowedSet[claims.Role]; !ok {
					return echo.NewHTTPError(http.StatusForbidden, "Forbidden access")
				}
			}

			c.Set(identityKey, Identity{UserID: claims.UserID, Role: claims.Role})
			return next(c)
		}
	}
}

// IdentityFrom extracts the identity injected by Authorize. ok is false on
// routes that did not pass through the middleware.
func IdentityFrom(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}

// bearerToken pulls the token out of the Authorization header. A "Bearer"
// scheme prefix is accepted but not required.
func bearerToken(c echo.Context) string {
	header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	if header == "" {
		return ""
	}
	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return header
}
