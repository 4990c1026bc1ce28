package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	classController "schoolhub_backend/internals/features/school/classes/controller"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
)

func ClassRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := classController.NewClassController(db)

	// staff or the designated class teacher; checked in the controller
	api.Get("/class/:id/averages",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Teachers and staff only", constants.TeacherAndStaff...),
		ctrl.Averages)

	admin := api.Group("/admin/classes",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Only staff can manage classes", constants.StaffOnly...),
	)
	admin.Get("/", ctrl.List)
	admin.Get("/:id", ctrl.Detail)
	admin.Post("/", ctrl.Create)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
}
