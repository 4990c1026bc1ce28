package dto

import (
	"strings"

	"github.com/google/uuid"

	m "schoolhub_backend/internals/features/users/user/model"
)

// CreateTeacherProfileRequest promotes a user account to teacher.
type CreateTeacherProfileRequest struct {
	UserID      uuid.UUID `json:"user_id" validate:"required"`
	PhoneNumber string    `json:"phone_number" validate:"max=20"`
}

func (r *CreateTeacherProfileRequest) Normalize() {
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
}

func (r CreateTeacherProfileRequest) ToModel() m.TeacherProfileModel {
	return m.TeacherProfileModel{
		TeacherProfileUserID:      r.UserID,
		TeacherProfilePhoneNumber: r.PhoneNumber,
	}
}

// CreateParentProfileRequest promotes a user account to parent/guardian.
type CreateParentProfileRequest struct {
	UserID      uuid.UUID `json:"user_id" validate:"required"`
	PhoneNumber string    `json:"phone_number" validate:"max=20"`
}

func (r *CreateParentProfileRequest) Normalize() {
	r.PhoneNumber = strings.TrimSpace(r.PhoneNumber)
}

func (r CreateParentProfileRequest) ToModel() m.ParentProfileModel {
	return m.ParentProfileModel{
		ParentProfileUserID:      r.UserID,
		ParentProfilePhoneNumber: r.PhoneNumber,
	}
}
