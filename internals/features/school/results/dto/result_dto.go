package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	m "schoolhub_backend/internals/features/school/results/model"
)

/* =========================
   CREATE / UPDATE
========================= */

type CreateResultRequest struct {
	SubjectID    uuid.UUID `json:"result_subject_id" validate:"required"`
	TermExamName string    `json:"result_term_exam_name" validate:"required,min=1,max=100"`
	Score        *float64  `json:"result_score" validate:"omitempty,gte=0,lte=100"`
	Grade        string    `json:"result_grade" validate:"omitempty,max=5"`
	Comments     string    `json:"result_comments"`
}

func (r *CreateResultRequest) Normalize() {
	r.TermExamName = strings.TrimSpace(r.TermExamName)
	r.Grade = strings.TrimSpace(r.Grade)
	r.Comments = strings.TrimSpace(r.Comments)
}

func (r CreateResultRequest) ToModel(studentID uuid.UUID, recordedBy uuid.UUID) m.ResultModel {
	rid := recordedBy
	return m.ResultModel{
		ResultStudentID:        studentID,
		ResultSubjectID:        r.SubjectID,
		ResultTermExamName:     r.TermExamName,
		ResultScore:            r.Score,
		ResultGrade:            r.Grade,
		ResultComments:         r.Comments,
		ResultRecordedByUserID: &rid,
	}
}

type UpdateResultRequest struct {
	SubjectID    *uuid.UUID `json:"result_subject_id"`
	TermExamName *string    `json:"result_term_exam_name" validate:"omitempty,min=1,max=100"`
	Score        *float64   `json:"result_score" validate:"omitempty,gte=0,lte=100"`
	ClearScore   bool       `json:"clear_score"`
	Grade        *string    `json:"result_grade" validate:"omitempty,max=5"`
	Comments     *string    `json:"result_comments"`
}

func (r UpdateResultRequest) Apply(mo *m.ResultModel) {
	if r.SubjectID != nil {
		mo.ResultSubjectID = *r.SubjectID
	}
	if r.TermExamName != nil {
		mo.ResultTermExamName = strings.TrimSpace(*r.TermExamName)
	}
	if r.ClearScore {
		mo.ResultScore = nil
	} else if r.Score != nil {
		mo.ResultScore = r.Score
	}
	if r.Grade != nil {
		mo.ResultGrade = strings.TrimSpace(*r.Grade)
	}
	if r.Comments != nil {
		mo.ResultComments = strings.TrimSpace(*r.Comments)
	}
}

/* =========================
   RESPONSE
========================= */

type ResultResponse struct {
	ResultID     uuid.UUID `json:"result_id"`
	StudentID    uuid.UUID `json:"result_student_id"`
	StudentName  string    `json:"student_name,omitempty"`
	SubjectID    uuid.UUID `json:"result_subject_id"`
	SubjectName  string    `json:"subject_name,omitempty"`
	TermExamName string    `json:"result_term_exam_name"`
	Score        *float64  `json:"result_score,omitempty"`
	Grade        string    `json:"result_grade"`
	Comments     string    `json:"result_comments"`
	RecordedBy   string    `json:"recorded_by,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func FromResultModel(mo m.ResultModel) ResultResponse {
	resp := ResultResponse{
		ResultID:     mo.ResultID,
		StudentID:    mo.ResultStudentID,
		SubjectID:    mo.ResultSubjectID,
		TermExamName: mo.ResultTermExamName,
		Score:        mo.ResultScore,
		Grade:        mo.ResultGrade,
		Comments:     mo.ResultComments,
		CreatedAt:    mo.ResultCreatedAt,
		UpdatedAt:    mo.ResultUpdatedAt,
	}
	if mo.Student != nil {
		resp.StudentName = mo.Student.FullName()
	}
	if mo.Subject != nil {
		resp.SubjectName = mo.Subject.SubjectName
	}
	if mo.RecordedBy != nil {
		resp.RecordedBy = mo.RecordedBy.UserName
	}
	return resp
}

func FromResultModels(rows []m.ResultModel) []ResultResponse {
	out := make([]ResultResponse, 0, len(rows))
	for i := range rows {
		out = append(out, FromResultModel(rows[i]))
	}
	return out
}
