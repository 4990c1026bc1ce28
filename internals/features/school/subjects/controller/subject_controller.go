package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	subjectDTO "schoolhub_backend/internals/features/school/subjects/dto"
	subjectModel "schoolhub_backend/internals/features/school/subjects/model"
	helper "schoolhub_backend/internals/helpers"
)

var validate = validator.New()

type SubjectController struct {
	DB *gorm.DB
}

func NewSubjectController(db *gorm.DB) *SubjectController {
	return &SubjectController{DB: db}
}

// GET /api/subjects
func (h *SubjectController) List(c *fiber.Ctx) error {
	var subjects []subjectModel.SubjectModel
	if err := h.DB.Order("subject_name asc").Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load subjects")
	}
	return helper.JsonOK(c, "OK", subjects)
}

// POST /api/admin/subjects
func (h *SubjectController) Create(c *fiber.Ctx) error {
	var req subjectDTO.CreateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	subject := req.ToModel()
	if err := h.DB.Create(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "A subject with that name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create subject")
	}
	return helper.JsonCreated(c, "Subject created", subject)
}

// PUT /api/admin/subjects/:id
func (h *SubjectController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}

	var subject subjectModel.SubjectModel
	if err := h.DB.First(&subject, "subject_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Subject not found")
	}

	var req subjectDTO.UpdateSubjectRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	req.Apply(&subject)
	if err := h.DB.Save(&subject).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "A subject with that name already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update subject")
	}
	return helper.JsonUpdated(c, "Subject updated", subject)
}

// DELETE /api/admin/subjects/:id
func (h *SubjectController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid subject id")
	}
	if err := h.DB.Delete(&subjectModel.SubjectModel{}, "subject_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete subject")
	}
	return helper.JsonDeleted(c, "Subject deleted", fiber.Map{"subject_id": id})
}
