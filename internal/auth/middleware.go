package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/RISHABH72git/SkillBridge/internal/domain"
	apperrors "github.com/RISHABH72git/SkillBridge/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated caller. Downstream handlers read
// only this; the bearer token itself never travels past the middleware.
type Principal struct {
	ID    string
	Email string
	Role  domain.UserRole
}

// AuthMiddleware validates bearer tokens and resolves principals.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	c.Locals(principalKey, &Principal{
		ID:    claims.UserID,
		Email: claims.Subject,
		Role:  claims.Role,
	})
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
