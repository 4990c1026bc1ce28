package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "schoolhub_backend/internals/features/users/auth/route"
	userRoute "schoolhub_backend/internals/features/users/user/route"
)

// UserRoutes wires authentication and the staff account console.
func UserRoutes(api fiber.Router, db *gorm.DB) {
	authRoute.AuthRoutes(api, db)
	userRoute.UserRoutes(api, db)
}
