package model

import (
	"time"

	"github.com/google/uuid"

	classModel "schoolhub_backend/internals/features/school/classes/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
)

// StudentModel is an enrolled student. Students do not log in; parents are
// linked through the student_parents join table. Deleting a class keeps the
// student and nulls the current-class reference.
type StudentModel struct {
	StudentID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentNumber    string    `gorm:"size:20;uniqueIndex;not null;column:student_number" json:"student_number"`
	StudentFirstName string    `gorm:"size:100;not null;column:student_first_name" json:"student_first_name"`
	StudentLastName  string    `gorm:"size:100;not null;column:student_last_name" json:"student_last_name"`
	StudentDOB       time.Time `gorm:"type:date;not null;column:student_dob" json:"student_dob"`

	StudentClassID *uuid.UUID `gorm:"type:uuid;column:student_class_id" json:"student_class_id,omitempty"`

	// Media-relative path to the profile picture (student_profiles/<id>/...).
	StudentProfilePicture *string `gorm:"size:255;column:student_profile_picture" json:"student_profile_picture,omitempty"`

	StudentCreatedAt time.Time `gorm:"autoCreateTime;column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time `gorm:"autoUpdateTime;column:student_updated_at" json:"student_updated_at"`

	CurrentClass *classModel.SchoolClassModel `gorm:"foreignKey:StudentClassID;references:SchoolClassID;constraint:OnDelete:SET NULL" json:"current_class,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}

func (s StudentModel) FullName() string {
	return s.StudentFirstName + " " + s.StudentLastName
}

// StudentParentModel links a student to a parent/guardian user account.
type StudentParentModel struct {
	StudentParentID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_parent_id" json:"student_parent_id"`
	StudentParentStudentID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_student_parents_pair;column:student_parent_student_id" json:"student_parent_student_id"`
	StudentParentParentUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_student_parents_pair;column:student_parent_parent_user_id" json:"student_parent_parent_user_id"`

	StudentParentCreatedAt time.Time `gorm:"autoCreateTime;column:student_parent_created_at" json:"student_parent_created_at"`

	Student *StudentModel        `gorm:"foreignKey:StudentParentStudentID;references:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
	Parent  *userModel.UserModel `gorm:"foreignKey:StudentParentParentUserID;references:UserID;constraint:OnDelete:CASCADE" json:"parent,omitempty"`
}

func (StudentParentModel) TableName() string {
	return "student_parents"
}
