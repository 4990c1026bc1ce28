package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	announcementRoute "schoolhub_backend/internals/features/home/announcements/route"
	carouselRoute "schoolhub_backend/internals/features/home/carousel/route"
	landingRoute "schoolhub_backend/internals/features/home/landing/route"
	newsRoute "schoolhub_backend/internals/features/home/news/route"
)

// HomeRoutes wires the public-facing content surface: landing page,
// announcements, news, and the staff-managed carousel.
func HomeRoutes(app *fiber.App, api fiber.Router, db *gorm.DB) {
	landingRoute.LandingRoutes(app, db)
	announcementRoute.AnnouncementRoutes(api, db)
	newsRoute.NewsRoutes(api, db)
	carouselRoute.CarouselRoutes(api, db)
}
