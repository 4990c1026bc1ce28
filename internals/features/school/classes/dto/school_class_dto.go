package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "schoolhub_backend/internals/features/school/classes/model"
)

/* =========================
   CREATE / UPDATE
========================= */

type CreateSchoolClassRequest struct {
	Name          string     `json:"school_class_name" validate:"required,min=1,max=100"`
	AcademicYear  string     `json:"school_class_academic_year" validate:"required,min=4,max=20"`
	TeacherUserID *uuid.UUID `json:"school_class_teacher_user_id"`
}

func (r *CreateSchoolClassRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.AcademicYear = strings.TrimSpace(r.AcademicYear)
}

func (r CreateSchoolClassRequest) ToModel() m.SchoolClassModel {
	return m.SchoolClassModel{
		SchoolClassName:          r.Name,
		SchoolClassAcademicYear:  r.AcademicYear,
		SchoolClassTeacherUserID: r.TeacherUserID,
	}
}

type UpdateSchoolClassRequest struct {
	Name          *string    `json:"school_class_name" validate:"omitempty,min=1,max=100"`
	AcademicYear  *string    `json:"school_class_academic_year" validate:"omitempty,min=4,max=20"`
	TeacherUserID *uuid.UUID `json:"school_class_teacher_user_id"`
	ClearTeacher  bool       `json:"clear_teacher"`
}

func (r UpdateSchoolClassRequest) Apply(mo *m.SchoolClassModel) {
	if r.Name != nil {
		mo.SchoolClassName = strings.TrimSpace(*r.Name)
	}
	if r.AcademicYear != nil {
		mo.SchoolClassAcademicYear = strings.TrimSpace(*r.AcademicYear)
	}
	if r.ClearTeacher {
		mo.SchoolClassTeacherUserID = nil
	} else if r.TeacherUserID != nil {
		mo.SchoolClassTeacherUserID = r.TeacherUserID
	}
}

/* =========================
   RESPONSE
========================= */

type SchoolClassResponse struct {
	SchoolClassID   uuid.UUID  `json:"school_class_id"`
	Name            string     `json:"school_class_name"`
	AcademicYear    string     `json:"school_class_academic_year"`
	TeacherUserID   *uuid.UUID `json:"school_class_teacher_user_id,omitempty"`
	ClassTeacher    string     `json:"class_teacher,omitempty"`
	StudentCount    int64      `json:"student_count"`
	CreatedAt       time.Time  `json:"created_at"`
}

func FromSchoolClassModel(mo m.SchoolClassModel, studentCount int64) SchoolClassResponse {
	resp := SchoolClassResponse{
		SchoolClassID: mo.SchoolClassID,
		Name:          mo.SchoolClassName,
		AcademicYear:  mo.SchoolClassAcademicYear,
		TeacherUserID: mo.SchoolClassTeacherUserID,
		StudentCount:  studentCount,
		CreatedAt:     mo.SchoolClassCreatedAt,
	}
	if mo.ClassTeacher != nil {
		resp.ClassTeacher = mo.ClassTeacher.UserName
	}
	return resp
}
