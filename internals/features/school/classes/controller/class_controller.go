package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	classDTO "schoolhub_backend/internals/features/school/classes/dto"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	classService "schoolhub_backend/internals/features/school/classes/service"
	resultService "schoolhub_backend/internals/features/school/results/service"
	studentDTO "schoolhub_backend/internals/features/school/students/dto"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	helper "schoolhub_backend/internals/helpers"
)

var validate = validator.New()

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

// GET /api/admin/classes?q=&page=
func (h *ClassController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := h.DB.Model(&classModel.SchoolClassModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("school_class_name ILIKE ? OR school_class_academic_year ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load classes")
	}
	paging = helper.ClampPaging(paging, total)

	var classes []classModel.SchoolClassModel
	if err := q.Preload("ClassTeacher").
		Order("school_class_academic_year desc, school_class_name asc").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load classes")
	}

	out := make([]classDTO.SchoolClassResponse, 0, len(classes))
	for i := range classes {
		var count int64
		h.DB.Model(&studentModel.StudentModel{}).
			Where("student_class_id = ?", classes[i].SchoolClassID).
			Count(&count)
		out = append(out, classDTO.FromSchoolClassModel(classes[i], count))
	}

	return helper.JsonList(c, "OK", out,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /api/admin/classes/:id
func (h *ClassController) Detail(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var class classModel.SchoolClassModel
	if err := h.DB.Preload("ClassTeacher").
		First(&class, "school_class_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	var roster []studentModel.StudentModel
	if err := h.DB.Where("student_class_id = ?", id).
		Order("student_last_name asc, student_first_name asc").
		Find(&roster).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load roster")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"class":    classDTO.FromSchoolClassModel(class, int64(len(roster))),
		"students": studentDTO.FromStudentModels(roster),
	})
}

// POST /api/admin/classes
func (h *ClassController) Create(c *fiber.Ctx) error {
	var req classDTO.CreateSchoolClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	class := req.ToModel()
	if err := h.DB.Create(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict,
				"A class with that name already exists for the academic year")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class")
	}
	return helper.JsonCreated(c, "Class created", classDTO.FromSchoolClassModel(class, 0))
}

// PUT /api/admin/classes/:id
func (h *ClassController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var class classModel.SchoolClassModel
	if err := h.DB.First(&class, "school_class_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	var req classDTO.UpdateSchoolClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	req.Apply(&class)
	if err := h.DB.Save(&class).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict,
				"A class with that name already exists for the academic year")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update class")
	}

	var count int64
	h.DB.Model(&studentModel.StudentModel{}).Where("student_class_id = ?", id).Count(&count)
	return helper.JsonUpdated(c, "Class updated", classDTO.FromSchoolClassModel(class, count))
}

// DELETE /api/admin/classes/:id
// Students keep their rows; the FK nulls their current class.
func (h *ClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}
	if err := h.DB.Delete(&classModel.SchoolClassModel{}, "school_class_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete class")
	}
	return helper.JsonDeleted(c, "Class deleted", fiber.Map{"school_class_id": id})
}

// GET /api/class/:id/averages
// Per-term per-subject averages over the students CURRENTLY in the class.
func (h *ClassController) Averages(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var class classModel.SchoolClassModel
	if err := h.DB.First(&class, "school_class_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	role := helper.GetRoleFromToken(c)
	if !classService.CanManageClass(role, &class, userID) {
		return helper.RedirectWithFlash(c, constants.DashboardPath(role),
			"You are not assigned to this class")
	}

	var rows []resultService.ScoredRow
	if err := h.DB.Table("results").
		Select("results.result_term_exam_name AS term_exam_name, subjects.subject_name AS subject_name, results.result_score AS score").
		Joins("JOIN students ON students.student_id = results.result_student_id").
		Joins("JOIN subjects ON subjects.subject_id = results.result_subject_id").
		Where("students.student_class_id = ?", id).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load results")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"class":    classDTO.FromSchoolClassModel(class, 0),
		"averages": resultService.TermSubjectAverages(rows),
	})
}
