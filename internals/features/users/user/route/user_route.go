package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	userController "schoolhub_backend/internals/features/users/user/controller"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
)

func UserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserAdminController(db)

	admin := api.Group("/admin",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles("Only staff can manage accounts", constants.StaffOnly...),
	)
	admin.Get("/users", ctrl.List)
	admin.Put("/users/:id/active", ctrl.SetActive)
	admin.Post("/teachers", ctrl.CreateTeacherProfile)
	admin.Post("/parents", ctrl.CreateParentProfile)
}
