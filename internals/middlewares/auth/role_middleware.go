package auth

import (
	"github.com/gofiber/fiber/v2"

	"schoolhub_backend/internals/constants"
	helper "schoolhub_backend/internals/helpers"
)

// OnlyRoles allows the request through when the session role is one of the
// listed roles. Denials follow the authorization-failure policy: redirect to
// the caller's own dashboard with a message, never a not-found.
func OnlyRoles(message string, roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}

		if message == "" {
			message = "You do not have permission to access this page."
		}
		return helper.RedirectWithFlash(c, constants.DashboardPath(role), message)
	}
}
