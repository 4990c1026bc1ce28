package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	classService "schoolhub_backend/internals/features/school/classes/service"
	resultModel "schoolhub_backend/internals/features/school/results/model"
	resultService "schoolhub_backend/internals/features/school/results/service"
	helper "schoolhub_backend/internals/helpers"
)

type ExportController struct {
	DB *gorm.DB
}

func NewExportController(db *gorm.DB) *ExportController {
	return &ExportController{DB: db}
}

// GET /api/class/:id/results/export
// CSV of every result for students currently in the class; staff or the
// designated class teacher.
func (h *ExportController) ExportClassResults(c *fiber.Ctx) error {
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

	results, err := h.resultsForExport(h.DB.
		Joins("JOIN students ON students.student_id = results.result_student_id").
		Where("students.student_class_id = ?", id))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load results")
	}

	data, err := resultService.BuildClassExport(exportRowsFromModels(results))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build export")
	}

	return sendCSV(c, resultService.ClassExportFilename(
		class.SchoolClassName, class.SchoolClassAcademicYear), data)
}

// GET /api/parent/results/export
// CSV of every result belonging to the caller's linked children.
func (h *ExportController) ExportParentResults(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	results, err := h.resultsForExport(h.DB.
		Joins("JOIN students ON students.student_id = results.result_student_id").
		Joins("JOIN student_parents ON student_parents.student_parent_student_id = students.student_id").
		Where("student_parents.student_parent_parent_user_id = ?", userID))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load results")
	}

	data, err := resultService.BuildParentExport(exportRowsFromModels(results))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build export")
	}

	return sendCSV(c, resultService.ParentExportFilename(helper.GetUserNameFromToken(c)), data)
}

func (h *ExportController) resultsForExport(q *gorm.DB) ([]resultModel.ResultModel, error) {
	var results []resultModel.ResultModel
	err := q.Model(&resultModel.ResultModel{}).
		Preload("Student").Preload("Class").
		Preload("Subject").Preload("RecordedBy").
		Joins("JOIN subjects ON subjects.subject_id = results.result_subject_id").
		Order("students.student_last_name asc, students.student_first_name asc, subjects.subject_name asc, results.result_term_exam_name asc").
		Find(&results).Error
	return results, err
}

func exportRowsFromModels(results []resultModel.ResultModel) []resultService.ExportRow {
	rows := make([]resultService.ExportRow, 0, len(results))
	for i := range results {
		r := results[i]
		row := resultService.ExportRow{
			TermExam:     r.ResultTermExamName,
			Score:        r.ResultScore,
			Grade:        r.ResultGrade,
			Comments:     r.ResultComments,
			DateRecorded: r.ResultCreatedAt,
		}
		if r.Student != nil {
			row.StudentNumber = r.Student.StudentNumber
			row.StudentName = r.Student.FullName()
		}
		// class at grading time, not the student's current class; a transfer
		// after grading must not rewrite history
		row.ClassName = gradingClassName(r)
		if r.Subject != nil {
			row.Subject = r.Subject.SubjectName
		}
		row.RecordedBy = "N/A"
		if r.RecordedBy != nil {
			row.RecordedBy = r.RecordedBy.UserName
		}
		rows = append(rows, row)
	}
	return rows
}

// gradingClassName resolves the class the result was recorded against,
// falling back to the JSONB snapshot when the class row was deleted.
func gradingClassName(r resultModel.ResultModel) string {
	if r.Class != nil {
		return r.Class.SchoolClassName
	}
	if name, ok := r.ResultClassSnapshot["school_class_name"].(string); ok && name != "" {
		return name
	}
	return "N/A"
}

func sendCSV(c *fiber.Ctx, filename string, data []byte) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
