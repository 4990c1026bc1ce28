package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "schoolhub_backend/internals/features/school/students/model"
	helper "schoolhub_backend/internals/helpers"
)

/* =========================
   CREATE / UPDATE
========================= */

type CreateStudentRequest struct {
	StudentNumber string     `json:"student_number" validate:"required,min=1,max=20"`
	FirstName     string     `json:"student_first_name" validate:"required,min=1,max=100"`
	LastName      string     `json:"student_last_name" validate:"required,min=1,max=100"`
	DOB           string     `json:"student_dob" validate:"required,datetime=2006-01-02"`
	ClassID       *uuid.UUID `json:"student_class_id"`
	ParentUserIDs []uuid.UUID `json:"parent_user_ids"`
}

func (r *CreateStudentRequest) Normalize() {
	r.StudentNumber = strings.TrimSpace(r.StudentNumber)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
}

func (r CreateStudentRequest) ToModel() m.StudentModel {
	dob, _ := time.Parse(helper.DateOnly, r.DOB)
	return m.StudentModel{
		StudentNumber:    r.StudentNumber,
		StudentFirstName: r.FirstName,
		StudentLastName:  r.LastName,
		StudentDOB:       dob,
		StudentClassID:   r.ClassID,
	}
}

type UpdateStudentRequest struct {
	StudentNumber *string    `json:"student_number" validate:"omitempty,min=1,max=20"`
	FirstName     *string    `json:"student_first_name" validate:"omitempty,min=1,max=100"`
	LastName      *string    `json:"student_last_name" validate:"omitempty,min=1,max=100"`
	DOB           *string    `json:"student_dob" validate:"omitempty,datetime=2006-01-02"`
	ClassID       *uuid.UUID `json:"student_class_id"`
	ClearClass    bool       `json:"clear_class"`
}

func (r UpdateStudentRequest) Apply(mo *m.StudentModel) {
	if r.StudentNumber != nil {
		mo.StudentNumber = strings.TrimSpace(*r.StudentNumber)
	}
	if r.FirstName != nil {
		mo.StudentFirstName = strings.TrimSpace(*r.FirstName)
	}
	if r.LastName != nil {
		mo.StudentLastName = strings.TrimSpace(*r.LastName)
	}
	if r.DOB != nil {
		if dob, err := time.Parse(helper.DateOnly, *r.DOB); err == nil {
			mo.StudentDOB = dob
		}
	}
	if r.ClearClass {
		mo.StudentClassID = nil
	} else if r.ClassID != nil {
		mo.StudentClassID = r.ClassID
	}
}

// AssignClassRequest moves a batch of students into one class (nil class
// unassigns them).
type AssignClassRequest struct {
	StudentIDs []uuid.UUID `json:"student_ids" validate:"required,min=1,dive,required"`
	ClassID    *uuid.UUID  `json:"class_id"`
}

/* =========================
   RESPONSE
========================= */

type StudentResponse struct {
	StudentID      uuid.UUID  `json:"student_id"`
	StudentNumber  string     `json:"student_number"`
	FirstName      string     `json:"student_first_name"`
	LastName       string     `json:"student_last_name"`
	FullName       string     `json:"full_name"`
	DOB            string     `json:"student_dob"`
	ClassID        *uuid.UUID `json:"student_class_id,omitempty"`
	ClassName      string     `json:"class_name,omitempty"`
	ProfilePicture *string    `json:"student_profile_picture,omitempty"`
}

func FromStudentModel(mo m.StudentModel) StudentResponse {
	resp := StudentResponse{
		StudentID:      mo.StudentID,
		StudentNumber:  mo.StudentNumber,
		FirstName:      mo.StudentFirstName,
		LastName:       mo.StudentLastName,
		FullName:       mo.FullName(),
		DOB:            mo.StudentDOB.Format(helper.DateOnly),
		ClassID:        mo.StudentClassID,
		ProfilePicture: mo.StudentProfilePicture,
	}
	if mo.CurrentClass != nil {
		resp.ClassName = mo.CurrentClass.SchoolClassName
	}
	return resp
}

func FromStudentModels(rows []m.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromStudentModel(rows[i]))
	}
	return out
}
