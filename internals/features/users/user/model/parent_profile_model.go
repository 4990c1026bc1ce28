package model

import (
	"time"

	"github.com/google/uuid"
)

// ParentProfileModel marks a user as a parent/guardian. The link to children
// lives on the students side (student_parents join table).
type ParentProfileModel struct {
	ParentProfileID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:parent_profile_id" json:"parent_profile_id"`
	ParentProfileUserID      uuid.UUID `gorm:"type:uuid;uniqueIndex;not null;column:parent_profile_user_id" json:"parent_profile_user_id"`
	ParentProfilePhoneNumber string    `gorm:"size:20;not null;default:'';column:parent_profile_phone_number" json:"parent_profile_phone_number"`

	ParentProfileCreatedAt time.Time `gorm:"autoCreateTime;column:parent_profile_created_at" json:"parent_profile_created_at"`

	User *UserModel `gorm:"foreignKey:ParentProfileUserID;references:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
}

func (ParentProfileModel) TableName() string {
	return "parent_profiles"
}
