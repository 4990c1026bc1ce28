package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	landingController "schoolhub_backend/internals/features/home/landing/controller"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
)

func LandingRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := landingController.NewLandingController(db)
	app.Get("/", authMiddleware.OptionalAuthMiddleware(), ctrl.Landing)
}
