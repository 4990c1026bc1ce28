package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	authDTO "schoolhub_backend/internals/features/users/auth/dto"
	authService "schoolhub_backend/internals/features/users/auth/service"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	user := userModel.UserModel{
		UserName:     req.UserName,
		UserEmail:    req.Email,
		UserPassword: string(hash),
	}
	if err := h.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Username or email already taken")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create account")
	}

	// fresh accounts have no profile yet, so the role is unassigned
	return helper.JsonCreated(c, "Account created",
		authDTO.FromUserModel(user, constants.RoleUnassigned))
}

// POST /api/auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	var user userModel.UserModel
	err := h.DB.Where("user_name = ?", req.UserName).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}
	if !user.UserIsActive {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Account is disabled")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.Password)) != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid username or password")
	}

	role, err := authService.ResolveRole(h.DB, &user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	token, err := authService.IssueAccessToken(&user, role)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    token,
		Expires:  time.Now().Add(authService.AccessTokenTTL),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helper.JsonOK(c, "Login successful", authDTO.LoginResponse{
		AccessToken: token,
		User:        authDTO.FromUserModel(user, role),
		RedirectTo:  constants.DashboardPath(role),
	})
}

// POST /api/auth/logout
func (h *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
		Path:     "/",
	})
	return helper.JsonOK(c, "Logged out", nil)
}

// GET /api/auth/me
func (h *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var user userModel.UserModel
	if err := h.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
	}

	return helper.JsonOK(c, "OK",
		authDTO.FromUserModel(user, helper.GetRoleFromToken(c)))
}
