package dto

import (
	"time"

	"github.com/google/uuid"

	m "schoolhub_backend/internals/features/school/attendance/model"
	helper "schoolhub_backend/internals/helpers"
)

/* =========================
   Take attendance
========================= */

type AttendanceEntry struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Status    string    `json:"status" validate:"omitempty,oneof=PRESENT ABSENT LATE EXCUSED"`
	Notes     string    `json:"notes" validate:"max=500"`
}

type TakeAttendanceRequest struct {
	Date    string            `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Entries []AttendanceEntry `json:"entries" validate:"required,min=1,dive"`
}

/* =========================
   Responses
========================= */

type AttendanceRecordResponse struct {
	RecordID    uuid.UUID `json:"attendance_record_id"`
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name,omitempty"`
	Date        string    `json:"date"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	RecordedBy  string    `json:"recorded_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromAttendanceRecordModel(mo m.AttendanceRecordModel) AttendanceRecordResponse {
	resp := AttendanceRecordResponse{
		RecordID:  mo.AttendanceRecordID,
		StudentID: mo.AttendanceRecordStudentID,
		Date:      mo.AttendanceRecordDate.Format(helper.DateOnly),
		Status:    string(mo.AttendanceRecordStatus),
		Notes:     mo.AttendanceRecordNotes,
		CreatedAt: mo.AttendanceRecordCreatedAt,
	}
	if mo.Student != nil {
		resp.StudentName = mo.Student.FullName()
	}
	if mo.RecordedBy != nil {
		resp.RecordedBy = mo.RecordedBy.UserName
	}
	return resp
}

func FromAttendanceRecordModels(rows []m.AttendanceRecordModel) []AttendanceRecordResponse {
	out := make([]AttendanceRecordResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromAttendanceRecordModel(rows[i]))
	}
	return out
}

// SheetRow is one roster line on the take-attendance form, prefilled with
// whatever is already stored for the date.
type SheetRow struct {
	StudentID   uuid.UUID `json:"student_id"`
	StudentName string    `json:"student_name"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
}
