package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/RISHABH72git/SkillBridge/internal/api/dto"
	"github.com/RISHABH72git/SkillBridge/internal/domain"
	"github.com/RISHABH72git/SkillBridge/internal/service"
	apperrors "github.com/RISHABH72git/SkillBridge/pkg/util"
)

// AuthHandler exposes registration and login endpoints.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// RegisterRecruiter handles POST /register/recruiter.
func (h *AuthHandler) RegisterRecruiter(c *fiber.Ctx) error {
	return h.register(c, domain.RoleRecruiter)
}

// RegisterCandidate handles POST /register/candidate.
func (h *AuthHandler) RegisterCandidate(c *fiber.Ctx) error {
	return h.register(c, domain.RoleCandidate)
}

func (h *AuthHandler) register(c *fiber.Ctx, role domain.UserRole) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Name) == "" || req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("name, email, password required", nil)
	}

	user, err := h.auth.Register(c.UserContext(), service.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}, role)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.UserSummary{
			ID:       user.ID,
			Name:     user.Name,
			Email:    user.Email,
			UserType: string(user.Role),
		},
	})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	user, token, exp, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"data": dto.AuthResponse{
			AccessToken: token,
			TokenType:   "bearer",
			ExpiresAt:   exp,
			User: dto.UserSummary{
				ID:       user.ID,
				Email:    user.Email,
				UserType: string(user.Role),
			},
		},
	})
}
