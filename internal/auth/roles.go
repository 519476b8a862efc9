package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/RISHABH72git/SkillBridge/internal/domain"
	apperrors "github.com/RISHABH72git/SkillBridge/pkg/util"
)

// RequireRecruiter ensures the caller holds the RECRUITER role.
func RequireRecruiter() fiber.Handler {
	return requireRole(domain.RoleRecruiter, "recruiter role required")
}

// RequireCandidate ensures the caller holds the CANDIDATE role.
func RequireCandidate() fiber.Handler {
	return requireRole(domain.RoleCandidate, "candidate role required")
}

func requireRole(role domain.UserRole, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := PrincipalFromContext(c)
		if !ok {
			return apperrors.NewUnauthorized("authentication required")
		}
		if principal.Role != role {
			return apperrors.NewForbidden(message)
		}
		return c.Next()
	}
}
