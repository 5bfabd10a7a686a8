package auth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/complaint-service/internal/domain"
	apperrors "github.com/spec-kit/complaint-service/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller, taken entirely from the
// verified token claims. No store lookup happens at the gate.
type Principal struct {
	UserID    string
	Role      domain.Role
	TokenID   string
	ExpiresAt time.Time
}

// IsAdmin reports whether the principal holds the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == domain.RoleAdmin
}

// Middleware validates bearer tokens and attaches principals.
type Middleware struct {
	tokens   *TokenManager
	denyList DenyList
	logger   *zap.Logger
}

// NewMiddleware constructs the gate. denyList may be nil, disabling the
// revocation check.
func NewMiddleware(tokens *TokenManager, denyList DenyList, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, denyList: denyList, logger: logger}
}

// Handle enforces authentication for protected routes. Missing, malformed,
// invalid, and expired tokens all map to the same 401.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("Unauthorized")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("Unauthorized")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("Invalid token")
	}

	if m.denyList != nil {
		revoked, err := m.denyList.IsRevoked(c.Context(), claims.ID)
		if err != nil {
			// deny-list outage fails open; the token still expires on its own
			m.logger.Warn("deny-list check failed", zap.Error(err))
		} else if revoked {
			return apperrors.NewUnauthorized("Invalid token")
		}
	}

	principal := &Principal{
		UserID:  claims.Subject,
		Role:    claims.Role,
		TokenID: claims.ID,
	}
	if claims.ExpiresAt != nil {
		principal.ExpiresAt = claims.ExpiresAt.Time
	}
	c.Locals(principalKey, principal)
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated caller.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
