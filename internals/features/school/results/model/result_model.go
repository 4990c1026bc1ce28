package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	classModel "schoolhub_backend/internals/features/school/classes/model"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	subjectModel "schoolhub_backend/internals/features/school/subjects/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
)

// ResultModel is one graded entry: one student, one subject, one term/exam.
// The class reference and JSONB snapshot record the class context at grading
// time; class-level averages deliberately key on the student's CURRENT class
// instead (see the classes controller).
type ResultModel struct {
	ResultID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:result_id" json:"result_id"`
	ResultStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_results_student_subject_term;column:result_student_id" json:"result_student_id"`
	ResultSubjectID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_results_student_subject_term;column:result_subject_id" json:"result_subject_id"`

	// Free-text grouping label, e.g. "Term 1", "Midterm Exam".
	ResultTermExamName string `gorm:"size:100;not null;uniqueIndex:uq_results_student_subject_term;column:result_term_exam_name" json:"result_term_exam_name"`

	// Numeric score in [0,100] (validated at input, not at storage) and/or a
	// letter grade.
	ResultScore    *float64 `gorm:"column:result_score" json:"result_score,omitempty"`
	ResultGrade    string   `gorm:"size:5;not null;default:'';column:result_grade" json:"result_grade"`
	ResultComments string   `gorm:"type:text;not null;default:'';column:result_comments" json:"result_comments"`

	ResultClassID          *uuid.UUID        `gorm:"type:uuid;column:result_class_id" json:"result_class_id,omitempty"`
	ResultClassSnapshot    datatypes.JSONMap `gorm:"type:jsonb;column:result_class_snapshot" json:"result_class_snapshot,omitempty"`
	ResultRecordedByUserID *uuid.UUID        `gorm:"type:uuid;column:result_recorded_by_user_id" json:"result_recorded_by_user_id,omitempty"`

	ResultCreatedAt time.Time `gorm:"autoCreateTime;column:result_created_at" json:"result_created_at"`
	ResultUpdatedAt time.Time `gorm:"autoUpdateTime;column:result_updated_at" json:"result_updated_at"`

	Student    *studentModel.StudentModel   `gorm:"foreignKey:ResultStudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Subject    *subjectModel.SubjectModel   `gorm:"foreignKey:ResultSubjectID;references:SubjectID;constraint:OnDelete:CASCADE" json:"subject,omitempty"`
	Class      *classModel.SchoolClassModel `gorm:"foreignKey:ResultClassID;references:SchoolClassID;constraint:OnDelete:SET NULL" json:"class,omitempty"`
	RecordedBy *userModel.UserModel         `gorm:"foreignKey:ResultRecordedByUserID;references:UserID;constraint:OnDelete:SET NULL" json:"recorded_by,omitempty"`
}

func (ResultModel) TableName() string {
	return "results"
}
