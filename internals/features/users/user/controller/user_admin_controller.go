package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	userDTO "schoolhub_backend/internals/features/users/user/dto"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
)

var validate = validator.New()

// UserAdminController is the staff console for accounts: listing them and
// minting teacher/parent profiles, which is what gives an account its role
// at the next login.
type UserAdminController struct {
	DB *gorm.DB
}

func NewUserAdminController(db *gorm.DB) *UserAdminController {
	return &UserAdminController{DB: db}
}

// GET /api/admin/users?q=&page=
func (h *UserAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&userModel.UserModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("user_name ILIKE ? OR user_email ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load users")
	}
	paging = helper.ClampPaging(paging, total)

	var users []userModel.UserModel
	if err := q.Order("user_name asc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load users")
	}

	return helper.JsonList(c, "OK", users,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// POST /api/admin/teachers
func (h *UserAdminController) CreateTeacherProfile(c *fiber.Ctx) error {
	var req userDTO.CreateTeacherProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if err := h.requireUser(req.UserID); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
	}

	profile := req.ToModel()
	if err := h.DB.Create(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "That account is already a teacher")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create teacher profile")
	}
	return helper.JsonCreated(c, "Teacher profile created", profile)
}

// POST /api/admin/parents
func (h *UserAdminController) CreateParentProfile(c *fiber.Ctx) error {
	var req userDTO.CreateParentProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}
	if err := h.requireUser(req.UserID); err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
	}

	profile := req.ToModel()
	if err := h.DB.Create(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "That account is already a parent")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create parent profile")
	}
	return helper.JsonCreated(c, "Parent profile created", profile)
}

// PUT /api/admin/users/:id/active {"active": bool}
func (h *UserAdminController) SetActive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var body struct {
		Active *bool `json:"active" validate:"required"`
	}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(body); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	res := h.DB.Model(&userModel.UserModel{}).
		Where("user_id = ?", id).
		Update("user_is_active", *body.Active)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update account")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Account not found")
	}
	return helper.JsonUpdated(c, "Account updated", fiber.Map{"user_id": id, "active": *body.Active})
}

func (h *UserAdminController) requireUser(id uuid.UUID) error {
	var user userModel.UserModel
	return h.DB.Select("user_id").First(&user, "user_id = ?", id).Error
}
