package model

import (
	"time"

	"github.com/google/uuid"

	userModel "schoolhub_backend/internals/features/users/user/model"
)

// SchoolClassModel is a class for one academic year, e.g. "Grade 10A" for
// 2024-2025. The same name may repeat across years.
type SchoolClassModel struct {
	SchoolClassID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:school_class_id" json:"school_class_id"`
	SchoolClassName         string    `gorm:"size:100;not null;uniqueIndex:uq_school_classes_name_year;column:school_class_name" json:"school_class_name"`
	SchoolClassAcademicYear string    `gorm:"size:20;not null;uniqueIndex:uq_school_classes_name_year;column:school_class_academic_year" json:"school_class_academic_year"`

	// Optional designated class teacher; scopes teacher authorization.
	SchoolClassTeacherUserID *uuid.UUID `gorm:"type:uuid;column:school_class_teacher_user_id" json:"school_class_teacher_user_id,omitempty"`

	SchoolClassCreatedAt time.Time `gorm:"autoCreateTime;column:school_class_created_at" json:"school_class_created_at"`
	SchoolClassUpdatedAt time.Time `gorm:"autoUpdateTime;column:school_class_updated_at" json:"school_class_updated_at"`

	ClassTeacher *userModel.UserModel `gorm:"foreignKey:SchoolClassTeacherUserID;references:UserID;constraint:OnDelete:SET NULL" json:"class_teacher,omitempty"`
}

func (SchoolClassModel) TableName() string {
	return "school_classes"
}
