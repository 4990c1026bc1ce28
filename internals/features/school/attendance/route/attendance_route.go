package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	attendanceController "schoolhub_backend/internals/features/school/attendance/controller"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
)

func AttendanceRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)

	grp := api.Group("/class/:id/attendance",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Teachers and staff only", constants.TeacherAndStaff...),
	)
	grp.Get("/", ctrl.TakeForm)
	grp.Post("/", ctrl.Take)
	grp.Get("/view", ctrl.ViewClassAttendance)
}
