package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	attendanceDTO "schoolhub_backend/internals/features/school/attendance/dto"
	attendanceModel "schoolhub_backend/internals/features/school/attendance/model"
	attendanceService "schoolhub_backend/internals/features/school/attendance/service"
	classService "schoolhub_backend/internals/features/school/classes/service"
	resultDTO "schoolhub_backend/internals/features/school/results/dto"
	resultModel "schoolhub_backend/internals/features/school/results/model"
	resultService "schoolhub_backend/internals/features/school/results/service"
	studentDTO "schoolhub_backend/internals/features/school/students/dto"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	studentService "schoolhub_backend/internals/features/school/students/service"
	helper "schoolhub_backend/internals/helpers"
)

type ProfileController struct {
	DB *gorm.DB
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db}
}

// GET /api/student/:id/profile?start=&end=
// Staff, the student's class teacher, or a linked parent. The attendance
// range defaults to the last 30 days.
func (h *ProfileController) Profile(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student id")
	}

	var student studentModel.StudentModel
	if err := h.DB.Preload("CurrentClass").
		First(&student, "student_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	role := helper.GetRoleFromToken(c)

	allowed, err := h.canViewProfile(role, userID, &student)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check access")
	}
	if !allowed {
		return helper.RedirectWithFlash(c, constants.DashboardPath(role),
			"You do not have access to that student")
	}

	start, end := helper.ParseDateRange(c, 30)

	var records []attendanceModel.AttendanceRecordModel
	if err := h.DB.Preload("RecordedBy").
		Where("attendance_record_student_id = ? AND attendance_record_date BETWEEN ? AND ?", id, start, end).
		Order("attendance_record_date desc").
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}

	var results []resultModel.ResultModel
	if err := h.DB.Preload("Subject").Preload("RecordedBy").
		Where("result_student_id = ?", id).
		Order("result_term_exam_name asc").
		Find(&results).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load results")
	}

	rows := scoredRows(results)
	overall, hasScores := resultService.AverageScore(rows)

	payload := fiber.Map{
		"student": studentDTO.FromStudentModel(student),
		"attendance": fiber.Map{
			"start":   start.Format(helper.DateOnly),
			"end":     end.Format(helper.DateOnly),
			"records": attendanceDTO.FromAttendanceRecordModels(records),
			"summary": attendanceService.CountStatuses(records),
		},
		"results":       resultDTO.FromResultModels(results),
		"term_averages": resultService.TermAverages(rows),
	}
	if hasScores {
		payload["overall_average"] = overall
	}

	return helper.JsonOK(c, "OK", payload)
}

func (h *ProfileController) canViewProfile(role string, userID uuid.UUID, student *studentModel.StudentModel) (bool, error) {
	switch role {
	case constants.RoleStaff:
		return true, nil
	case constants.RoleTeacher:
		if student.CurrentClass == nil {
			return false, nil
		}
		return classService.CanManageClass(role, student.CurrentClass, userID), nil
	case constants.RoleParent:
		return studentService.IsParentOf(h.DB, userID, student.StudentID)
	}
	return false, nil
}

func scoredRows(results []resultModel.ResultModel) []resultService.ScoredRow {
	rows := make([]resultService.ScoredRow, 0, len(results))
	for i := range results {
		row := resultService.ScoredRow{
			TermExamName: results[i].ResultTermExamName,
			Score:        results[i].ResultScore,
		}
		if results[i].Subject != nil {
			row.SubjectName = results[i].Subject.SubjectName
		}
		rows = append(rows, row)
	}
	return rows
}
