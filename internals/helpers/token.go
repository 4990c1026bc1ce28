package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserIDFromToken reads the authenticated user id stored by the auth
// middleware.
func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("user ID not found in token")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.New("invalid user ID format in token")
	}
	return id, nil
}

// GetRoleFromToken reads the role claim resolved at login.
func GetRoleFromToken(c *fiber.Ctx) string {
	if role, ok := c.Locals("role").(string); ok {
		return role
	}
	return ""
}

// GetUserNameFromToken reads the username claim, empty when absent.
func GetUserNameFromToken(c *fiber.Ctx) string {
	if name, ok := c.Locals("user_name").(string); ok {
		return name
	}
	return ""
}
