package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	dashboardController "schoolhub_backend/internals/features/school/dashboard/controller"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
)

func DashboardRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := dashboardController.NewDashboardController(db)

	api.Get("/dashboard", authMiddleware.AuthMiddleware(), ctrl.Dispatch)

	api.Get("/parent/dashboard",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Parents only", constants.ParentOnly...),
		ctrl.ParentDashboard)

	api.Get("/teacher/dashboard",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Teachers only", constants.RoleTeacher),
		ctrl.TeacherDashboard)
}
