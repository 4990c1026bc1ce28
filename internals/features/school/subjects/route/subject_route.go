package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	subjectController "schoolhub_backend/internals/features/school/subjects/controller"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
)

func SubjectRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := subjectController.NewSubjectController(db)

	api.Get("/subjects", authMiddleware.AuthMiddleware(), ctrl.List)

	admin := api.Group("/admin/subjects",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Only staff can manage subjects", constants.StaffOnly...),
	)
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
}
