package model

import (
	"time"

	"github.com/google/uuid"
)

// TeacherProfileModel marks a user as a teacher. Its existence is the role
// membership; there is no separate role column on users.
type TeacherProfileModel struct {
	TeacherProfileID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_profile_id" json:"teacher_profile_id"`
	TeacherProfileUserID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;column:teacher_profile_user_id" json:"teacher_profile_user_id"`
	TeacherProfilePhoneNumber string    `gorm:"size:20;not null;default:'';column:teacher_profile_phone_number" json:"teacher_profile_phone_number"`

	TeacherProfileCreatedAt time.Time `gorm:"autoCreateTime;column:teacher_profile_created_at" json:"teacher_profile_created_at"`

	User *UserModel `gorm:"foreignKey:TeacherProfileUserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (TeacherProfileModel) TableName() string {
	return "teacher_profiles"
}
