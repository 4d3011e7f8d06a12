package auth

import (
	"strings"

	"github.com/mehraj28/Payroll-Mangement/app/models"

	"github.com/gofiber/fiber/v2"
)

const (
	localUserID   = "user_id"
	localUserRole = "user_role"
)

// Middleware validates the bearer token and stores the caller's identity
// in the request locals.
func (h *Handler) Middleware(c *fiber.Ctx) error {
	header := c.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "missing bearer token"})
	}

	claims, err := h.Tokens.Parse(strings.TrimPrefix(header, "Bearer "))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or expired token"})
	}

	c.Locals(localUserID, claims.UserID)
	c.Locals(localUserRole, claims.Role)
	return c.Next()
}

// RequireRole admits only callers whose resolved role matches. It assumes
// Middleware already ran.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if UserRole(c) != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "admin only"})
		}
		return c.Next()
	}
}

// UserID returns the authenticated caller's id from the request locals.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(localUserID).(string)
	return id
}

// UserRole returns the authenticated caller's role from the request locals.
func UserRole(c *fiber.Ctx) models.Role {
	role, _ := c.Locals(localUserRole).(models.Role)
	return role
}
