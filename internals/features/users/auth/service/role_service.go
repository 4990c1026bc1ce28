package service

import (
	"errors"

	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	userModel "schoolhub_backend/internals/features/users/user/model"
)

/* =========================
   Role resolution
========================= */

// RoleFromFlags maps a user's memberships to the single role used everywhere
// else. Precedence when a user somehow holds several: staff wins over
// teacher, teacher over parent.
func RoleFromFlags(isStaff, hasTeacherProfile, hasParentProfile bool) string {
	switch {
	case isStaff:
		return constants.RoleStaff
	case hasTeacherProfile:
		return constants.RoleTeacher
	case hasParentProfile:
		return constants.RoleParent
	default:
		return constants.RoleUnassigned
	}
}

// ResolveRole looks up the user's profile rows and returns the role claim to
// embed in the token. Called once at login; requests afterwards trust the claim.
func ResolveRole(db *gorm.DB, user *userModel.UserModel) (string, error) {
	if user.UserIsStaff {
		return constants.RoleStaff, nil
	}

	hasTeacher, err := profileExists(db, &userModel.TeacherProfileModel{}, "teacher_profile_user_id", user.UserID)
	if err != nil {
		return "", err
	}
	if hasTeacher {
		return constants.RoleTeacher, nil
	}

	hasParent, err := profileExists(db, &userModel.ParentProfileModel{}, "parent_profile_user_id", user.UserID)
	if err != nil {
		return "", err
	}
	return RoleFromFlags(false, false, hasParent), nil
}

func profileExists(db *gorm.DB, dest interface{}, column string, userID interface{}) (bool, error) {
	err := db.Select("1").Where(column+" = ?", userID).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
