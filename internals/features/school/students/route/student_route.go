package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	studentController "schoolhub_backend/internals/features/school/students/controller"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
)

func StudentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := studentController.NewStudentController(db)
	profile := studentController.NewProfileController(db)

	// staff, class teacher, or linked parent; scoped in the controller
	api.Get("/student/:id/profile",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Sign in with an assigned role to view profiles", constants.AssignedRoles...),
		profile.Profile)

	admin := api.Group("/admin/students",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Only staff can manage students", constants.StaffOnly...),
	)
	admin.Get("/", ctrl.List)
	admin.Post("/", ctrl.Create)
	admin.Post("/assign-class", ctrl.AssignClass)
	admin.Put("/:id", ctrl.Update)
	admin.Delete("/:id", ctrl.Delete)
	admin.Post("/:id/photo", ctrl.UploadPhoto)
}
