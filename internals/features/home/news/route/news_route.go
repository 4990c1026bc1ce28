package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	newsController "schoolhub_backend/internals/features/home/news/controller"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
)

func NewsRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := newsController.NewNewsController(db)

	api.Get("/news", ctrl.List)
	api.Get("/news/:id", ctrl.Detail)

	admin := api.Group("/admin/news",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Only staff can manage news", constants.StaffOnly...),
	)
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
	admin.Post("/:id/images", ctrl.AddImage)
	admin.Delete("/:id/images/:imageId", ctrl.RemoveImage)
}
