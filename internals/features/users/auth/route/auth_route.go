package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "schoolhub_backend/internals/features/users/auth/controller"
	"schoolhub_backend/internals/middlewares"
	authMiddleware "schoolhub_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	grp := api.Group("/auth")
	grp.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	grp.Post("/logout", ctrl.Logout)
	grp.Get("/me", authMiddleware.AuthMiddleware(), ctrl.Me)
}
