package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	routeDetails "schoolhub_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	BaseRoutes(app)

	api := app.Group("/api")

	log.Println("[INFO] setting up user routes")
	routeDetails.UserRoutes(api, db)

	log.Println("[INFO] setting up school routes")
	routeDetails.SchoolRoutes(api, db)

	log.Println("[INFO] setting up home routes")
	routeDetails.HomeRoutes(app, api, db)
}
