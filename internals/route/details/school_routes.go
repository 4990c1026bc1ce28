package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	attendanceRoute "schoolhub_backend/internals/features/school/attendance/route"
	classRoute "schoolhub_backend/internals/features/school/classes/route"
	dashboardRoute "schoolhub_backend/internals/features/school/dashboard/route"
	resultRoute "schoolhub_backend/internals/features/school/results/route"
	studentRoute "schoolhub_backend/internals/features/school/students/route"
	subjectRoute "schoolhub_backend/internals/features/school/subjects/route"
)

// SchoolRoutes wires the academic surface: dashboards, classes, subjects,
// students, results, and attendance.
func SchoolRoutes(api fiber.Router, db *gorm.DB) {
	dashboardRoute.DashboardRoutes(api, db)
	classRoute.ClassRoutes(api, db)
	subjectRoute.SubjectRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
	resultRoute.ResultRoutes(api, db)
	attendanceRoute.AttendanceRoutes(api, db)
}
