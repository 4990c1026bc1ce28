package helper

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

const flashCookie = "flash"

// RedirectWithFlash sends the caller to a safe fallback location with a
// one-shot message cookie the view layer can surface. Used for authorization
// failures and post-action notices: the response is navigable and never
// leaks whether a record exists.
func RedirectWithFlash(c *fiber.Ctx, location, message string) error {
	if message != "" {
		c.Cookie(&fiber.Cookie{
			Name:     flashCookie,
			Value:    url.QueryEscape(message),
			Path:     "/",
			Expires:  time.Now().Add(30 * time.Second),
			HTTPOnly: false,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return c.Redirect(location, fiber.StatusSeeOther)
}
