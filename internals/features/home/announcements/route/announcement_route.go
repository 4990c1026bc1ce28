package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	announcementController "schoolhub_backend/internals/features/home/announcements/controller"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
)

func AnnouncementRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := announcementController.NewAnnouncementController(db)

	api.Get("/announcements", authMiddleware.OptionalAuthMiddleware(), ctrl.List)

	admin := api.Group("/admin/announcements",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Only staff can manage announcements", constants.StaffOnly...),
	)
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
}
