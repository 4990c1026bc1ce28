package model

import (
	"time"

	"github.com/google/uuid"

	classModel "schoolhub_backend/internals/features/school/classes/model"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
)

/* =========================
   Status enum
========================= */

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "PRESENT"
	AttendanceAbsent  AttendanceStatus = "ABSENT"
	AttendanceLate    AttendanceStatus = "LATE"
	AttendanceExcused AttendanceStatus = "EXCUSED"
)

/* =========================
   Model: attendance_records
========================= */

// AttendanceRecordModel is one student's status on one calendar date; the
// (student, date) unique index guarantees at most one row per student per day.
type AttendanceRecordModel struct {
	AttendanceRecordID        uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_record_id" json:"attendance_record_id"`
	AttendanceRecordStudentID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_student_date;column:attendance_record_student_id" json:"attendance_record_student_id"`
	AttendanceRecordDate      time.Time        `gorm:"type:date;not null;uniqueIndex:uq_attendance_student_date;column:attendance_record_date" json:"attendance_record_date"`
	AttendanceRecordStatus    AttendanceStatus `gorm:"size:10;not null;column:attendance_record_status" json:"attendance_record_status"`
	AttendanceRecordNotes     string           `gorm:"type:text;not null;default:'';column:attendance_record_notes" json:"attendance_record_notes"`

	// Class context when attendance was taken; kept even if the student moves.
	AttendanceRecordClassID          *uuid.UUID `gorm:"type:uuid;column:attendance_record_class_id" json:"attendance_record_class_id,omitempty"`
	AttendanceRecordRecordedByUserID *uuid.UUID `gorm:"type:uuid;column:attendance_record_recorded_by_user_id" json:"attendance_record_recorded_by_user_id,omitempty"`

	AttendanceRecordCreatedAt time.Time `gorm:"autoCreateTime;column:attendance_record_created_at" json:"attendance_record_created_at"`

	Student    *studentModel.StudentModel   `gorm:"foreignKey:AttendanceRecordStudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Class      *classModel.SchoolClassModel `gorm:"foreignKey:AttendanceRecordClassID;references:SchoolClassID;constraint:OnDelete:SET NULL" json:"class,omitempty"`
	RecordedBy *userModel.UserModel         `gorm:"foreignKey:AttendanceRecordRecordedByUserID;references:UserID;constraint:OnDelete:SET NULL" json:"recorded_by,omitempty"`
}

func (AttendanceRecordModel) TableName() string {
	return "attendance_records"
}

// ValidStatus reports whether s is one of the four attendance statuses.
func ValidStatus(s string) bool {
	switch AttendanceStatus(s) {
	case AttendancePresent, AttendanceAbsent, AttendanceLate, AttendanceExcused:
		return true
	}
	return false
}
