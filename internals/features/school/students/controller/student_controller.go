package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	studentDTO "schoolhub_backend/internals/features/school/students/dto"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	helper "schoolhub_backend/internals/helpers"
)

var validate = validator.New()

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

// GET /api/admin/students?q=&class_id=&page=
func (h *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&studentModel.StudentModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"student_first_name ILIKE ? OR student_last_name ILIKE ? OR student_number ILIKE ?",
			like, like, like)
	}
	if classID := strings.TrimSpace(c.Query("class_id")); classID != "" {
		id, err := uuid.Parse(classID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
		}
		q = q.Where("student_class_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load students")
	}
	paging = helper.ClampPaging(paging, total)

	var students []studentModel.StudentModel
	if err := q.Preload("CurrentClass").
		Order("student_last_name asc, student_first_name asc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load students")
	}

	return helper.JsonList(c, "OK", studentDTO.FromStudentModels(students),
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// POST /api/admin/students
func (h *StudentController) Create(c *fiber.Ctx) error {
	var req studentDTO.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	student := req.ToModel()
	err := h.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&student).Error; err != nil {
			return err
		}
		for _, parentID := range req.ParentUserIDs {
			link := studentModel.StudentParentModel{
				StudentParentStudentID:    student.StudentID,
				StudentParentParentUserID: parentID,
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Student number already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}
	return helper.JsonCreated(c, "Student created", studentDTO.FromStudentModel(student))
}

// PUT /api/admin/students/:id
func (h *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var student studentModel.StudentModel
	if err := h.DB.First(&student, "student_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	var req studentDTO.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	req.Apply(&student)
	if err := h.DB.Save(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict, "Student number already in use")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}
	return helper.JsonUpdated(c, "Student updated", studentDTO.FromStudentModel(student))
}

// DELETE /api/admin/students/:id
func (h *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}
	if err := h.DB.Delete(&studentModel.StudentModel{}, "student_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	return helper.JsonDeleted(c, "Student deleted", fiber.Map{"student_id": id})
}

// POST /api/admin/students/:id/photo (multipart field "photo")
func (h *StudentController) UploadPhoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var student studentModel.StudentModel
	if err := h.DB.First(&student, "student_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Missing photo file")
	}

	relPath, err := helper.SaveUploadedImage("student_profiles/"+student.StudentID.String(), fh)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Could not process the image")
	}

	old := student.StudentProfilePicture
	student.StudentProfilePicture = &relPath
	if err := h.DB.Model(&student).
		Update("student_profile_picture", relPath).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save photo")
	}
	if old != nil {
		_ = helper.RemoveMediaFile(*old)
	}

	return helper.JsonUpdated(c, "Photo uploaded", studentDTO.FromStudentModel(student))
}

// POST /api/admin/students/assign-class
// The one bulk action: move a batch of students into a class (or out of any).
func (h *StudentController) AssignClass(c *fiber.Ctx) error {
	var req studentDTO.AssignClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	res := h.DB.Model(&studentModel.StudentModel{}).
		Where("student_id IN ?", req.StudentIDs).
		Update("student_class_id", req.ClassID)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reassign students")
	}

	return helper.JsonUpdated(c, "Students reassigned", fiber.Map{
		"updated":  res.RowsAffected,
		"class_id": req.ClassID,
	})
}
