package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	resultController "schoolhub_backend/internals/features/school/results/controller"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
)

func ResultRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := resultController.NewResultController(db)
	export := resultController.NewExportController(db)

	// recording and editing require only a signed-in account
	api.Get("/student/:studentId/result/add", authMiddleware.AuthMiddleware(), ctrl.AddForm)
	api.Post("/student/:studentId/result/add", authMiddleware.AuthMiddleware(), ctrl.Add)

	r := api.Group("/result", authMiddleware.AuthMiddleware())
	r.Get("/:id/edit", ctrl.EditForm)
	r.Post("/:id/edit", ctrl.Edit)
	r.Get("/:id/delete", ctrl.DeleteConfirm)
	r.Post("/:id/delete", ctrl.Delete)

	api.Get("/class/:id/results/export",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Teachers and staff only", constants.TeacherAndStaff...),
		export.ExportClassResults)

	api.Get("/parent/results/export",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Parents only", constants.ParentOnly...),
		export.ExportParentResults)
}
