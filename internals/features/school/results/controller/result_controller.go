package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	classService "schoolhub_backend/internals/features/school/classes/service"
	resultDTO "schoolhub_backend/internals/features/school/results/dto"
	resultModel "schoolhub_backend/internals/features/school/results/model"
	studentDTO "schoolhub_backend/internals/features/school/students/dto"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	subjectModel "schoolhub_backend/internals/features/school/subjects/model"
	helper "schoolhub_backend/internals/helpers"
)

var validate = validator.New()

type ResultController struct {
	DB *gorm.DB
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{DB: db}
}

// GET /api/result/add/:studentId
// Form context: the student plus the subject catalogue.
func (h *ResultController) AddForm(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var student studentModel.StudentModel
	if err := h.DB.Preload("CurrentClass").
		First(&student, "student_id = ?", studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	var subjects []subjectModel.SubjectModel
	if err := h.DB.Order("subject_name asc").Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load subjects")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"student":  studentDTO.FromStudentModel(student),
		"subjects": subjects,
	})
}

// POST /api/result/add/:studentId
func (h *ResultController) Add(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var student studentModel.StudentModel
	if err := h.DB.Preload("CurrentClass").
		First(&student, "student_id = ?", studentID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	var req resultDTO.CreateResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	recordedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	result := req.ToModel(studentID, recordedBy)
	if student.CurrentClass != nil {
		result.ResultClassID = &student.CurrentClass.SchoolClassID
		result.ResultClassSnapshot = map[string]interface{}{
			"school_class_id":            student.CurrentClass.SchoolClassID.String(),
			"school_class_name":          student.CurrentClass.SchoolClassName,
			"school_class_academic_year": student.CurrentClass.SchoolClassAcademicYear,
		}
	}

	if err := h.DB.Create(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict,
				"A result for this student, subject and term already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save result")
	}

	h.DB.Preload("Student").Preload("Subject").Preload("RecordedBy").
		First(&result, "result_id = ?", result.ResultID)
	return helper.JsonCreated(c, "Result recorded", resultDTO.FromResultModel(result))
}

// GET /api/result/:id/edit
func (h *ResultController) EditForm(c *fiber.Ctx) error {
	result, err := h.loadResult(c)
	if err != nil {
		return err
	}

	var subjects []subjectModel.SubjectModel
	if err := h.DB.Order("subject_name asc").Find(&subjects).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load subjects")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"result":   resultDTO.FromResultModel(*result),
		"subjects": subjects,
	})
}

// POST /api/result/:id/edit
func (h *ResultController) Edit(c *fiber.Ctx) error {
	result, err := h.loadResult(c)
	if err != nil {
		return err
	}

	var req resultDTO.UpdateResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	req.Apply(result)
	if err := h.DB.Save(result).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.JsonError(c, fiber.StatusConflict,
				"A result for this student, subject and term already exists")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update result")
	}
	return helper.JsonUpdated(c, "Result updated", resultDTO.FromResultModel(*result))
}

// GET /api/result/:id/delete
// The confirm payload; deletion itself happens on POST.
func (h *ResultController) DeleteConfirm(c *fiber.Ctx) error {
	result, err := h.loadResult(c)
	if err != nil {
		return err
	}
	if denied := h.denyUnlessClassScope(c, result); denied != nil {
		return denied
	}
	return helper.JsonOK(c, "Confirm deletion", resultDTO.FromResultModel(*result))
}

// POST /api/result/:id/delete
// Staff or the teacher of the student's current class.
func (h *ResultController) Delete(c *fiber.Ctx) error {
	result, err := h.loadResult(c)
	if err != nil {
		return err
	}
	if denied := h.denyUnlessClassScope(c, result); denied != nil {
		return denied
	}

	if err := h.DB.Delete(&resultModel.ResultModel{}, "result_id = ?", result.ResultID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete result")
	}
	return helper.JsonDeleted(c, "Result deleted", fiber.Map{"result_id": result.ResultID})
}

func (h *ResultController) loadResult(c *fiber.Ctx) (*resultModel.ResultModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid result id")
	}

	var result resultModel.ResultModel
	if err := h.DB.
		Preload("Student").Preload("Student.CurrentClass").
		Preload("Subject").Preload("RecordedBy").
		First(&result, "result_id = ?", id).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Result not found")
	}
	return &result, nil
}

func (h *ResultController) denyUnlessClassScope(c *fiber.Ctx, result *resultModel.ResultModel) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	role := helper.GetRoleFromToken(c)

	if role == constants.RoleStaff {
		return nil
	}
	if role == constants.RoleTeacher &&
		result.Student != nil && result.Student.CurrentClass != nil &&
		classService.CanManageClass(role, result.Student.CurrentClass, userID) {
		return nil
	}
	return helper.RedirectWithFlash(c, constants.DashboardPath(role),
		"You cannot delete results for that student")
}
