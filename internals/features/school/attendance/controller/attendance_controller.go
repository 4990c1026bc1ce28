package controller

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	attendanceDTO "schoolhub_backend/internals/features/school/attendance/dto"
	attendanceModel "schoolhub_backend/internals/features/school/attendance/model"
	attendanceService "schoolhub_backend/internals/features/school/attendance/service"
	classModel "schoolhub_backend/internals/features/school/classes/model"
	classService "schoolhub_backend/internals/features/school/classes/service"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	helper "schoolhub_backend/internals/helpers"
)

var validate = validator.New()

type AttendanceController struct {
	DB *gorm.DB
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{DB: db}
}

// GET /api/class/:id/attendance?date=
// The sheet for one date: the roster prefilled with whatever is stored.
func (h *AttendanceController) TakeForm(c *fiber.Ctx) error {
	class, denied := h.loadClassScoped(c)
	if class == nil {
		return denied
	}
	date := helper.ParseDateOrToday(c)

	roster, err := h.roster(class.SchoolClassID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load roster")
	}

	existing, err := h.recordsFor(class.SchoolClassID, roster, date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}

	byStudent := make(map[uuid.UUID]attendanceModel.AttendanceRecordModel, len(existing))
	for _, rec := range existing {
		byStudent[rec.AttendanceRecordStudentID] = rec
	}

	sheet := make([]attendanceDTO.SheetRow, 0, len(roster))
	for _, s := range roster {
		row := attendanceDTO.SheetRow{StudentID: s.StudentID, StudentName: s.FullName()}
		if rec, ok := byStudent[s.StudentID]; ok {
			row.Status = string(rec.AttendanceRecordStatus)
			row.Notes = rec.AttendanceRecordNotes
		}
		sheet = append(sheet, row)
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"class_id": class.SchoolClassID,
		"date":     date.Format(helper.DateOnly),
		"sheet":    sheet,
	})
}

// POST /api/class/:id/attendance
// Reconciles the submitted sheet against stored rows in one transaction.
func (h *AttendanceController) Take(c *fiber.Ctx) error {
	class, denied := h.loadClassScoped(c)
	if class == nil {
		return denied
	}

	var req attendanceDTO.TakeAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrorMap(err))
	}

	date := helper.Today()
	if req.Date != "" {
		d, err := time.Parse(helper.DateOnly, req.Date)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date")
		}
		date = d
	}

	roster, err := h.roster(class.SchoolClassID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load roster")
	}
	rosterSet := make(map[uuid.UUID]bool, len(roster))
	for _, s := range roster {
		rosterSet[s.StudentID] = true
	}

	existing, err := h.recordsFor(class.SchoolClassID, roster, date)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}

	recordedBy, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	entries := make([]attendanceService.SubmittedEntry, 0, len(req.Entries))
	for _, e := range req.Entries {
		entries = append(entries, attendanceService.SubmittedEntry{
			StudentID: e.StudentID,
			Status:    e.Status,
			Notes:     e.Notes,
		})
	}

	plan := attendanceService.BuildPlan(entries, existing, rosterSet,
		class.SchoolClassID, date, recordedBy)
	if err := attendanceService.ApplyPlan(h.DB, plan); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save attendance")
	}

	return helper.JsonOK(c, "Attendance saved", fiber.Map{
		"date":    date.Format(helper.DateOnly),
		"created": len(plan.Creates),
		"updated": len(plan.Updates),
		"skipped": plan.Skipped,
	})
}

// GET /api/class/:id/attendance/view?start_date=&end_date=
// Read-only history over a date range; both bounds default to today. Rows
// are matched on the class stamped at recording time, so students who moved
// away since still show up in the period they were marked in.
func (h *AttendanceController) ViewClassAttendance(c *fiber.Ctx) error {
	class, denied := h.loadClassScoped(c)
	if class == nil {
		return denied
	}
	start, end := helper.ParseDateRange(c, 0)

	var records []attendanceModel.AttendanceRecordModel
	if err := h.DB.Preload("Student").Preload("RecordedBy").
		Joins("JOIN students ON students.student_id = attendance_records.attendance_record_student_id").
		Where("attendance_record_class_id = ? AND attendance_record_date BETWEEN ? AND ?",
			class.SchoolClassID, start, end).
		Order("attendance_record_date desc, students.student_last_name asc, students.student_first_name asc").
		Find(&records).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load attendance")
	}

	return helper.JsonOK(c, "OK", fiber.Map{
		"class_id":   class.SchoolClassID,
		"start_date": start.Format(helper.DateOnly),
		"end_date":   end.Format(helper.DateOnly),
		"records":    attendanceDTO.FromAttendanceRecordModels(records),
		"summary":    attendanceService.CountStatuses(records),
	})
}

// loadClassScoped resolves the :id class and enforces staff-or-class-teacher.
// On denial it returns (nil, redirect) so callers just return the second value.
func (h *AttendanceController) loadClassScoped(c *fiber.Ctx) (*classModel.SchoolClassModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid class id")
	}

	var class classModel.SchoolClassModel
	if err := h.DB.First(&class, "school_class_id = ?", id).Error; err != nil {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	role := helper.GetRoleFromToken(c)
	if !classService.CanManageClass(role, &class, userID) {
		return nil, helper.RedirectWithFlash(c, constants.DashboardPath(role),
			"You are not assigned to this class")
	}
	return &class, nil
}

func (h *AttendanceController) roster(classID uuid.UUID) ([]studentModel.StudentModel, error) {
	var roster []studentModel.StudentModel
	err := h.DB.Where("student_class_id = ?", classID).
		Order("student_last_name asc, student_first_name asc").
		Find(&roster).Error
	return roster, err
}

func (h *AttendanceController) recordsFor(classID uuid.UUID, roster []studentModel.StudentModel, date time.Time) ([]attendanceModel.AttendanceRecordModel, error) {
	ids := make([]uuid.UUID, 0, len(roster))
	for _, s := range roster {
		ids = append(ids, s.StudentID)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	var records []attendanceModel.AttendanceRecordModel
	err := h.DB.Preload("Student").Preload("RecordedBy").
		Where("attendance_record_student_id IN ? AND attendance_record_date = ?", ids, date).
		Find(&records).Error
	return records, err
}
