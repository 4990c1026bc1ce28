package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	carouselController "schoolhub_backend/internals/features/home/carousel/controller"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
)

func CarouselRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := carouselController.NewCarouselController(db)

	admin := api.Group("/admin/carousel",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Only staff can manage the carousel", constants.StaffOnly...),
	)
	admin.Get("/", ctrl.List)
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
}
