package service

import (
	"github.com/google/uuid"

	"schoolhub_backend/internals/constants"
	m "schoolhub_backend/internals/features/school/classes/model"
)

// CanManageClass reports whether the caller may take attendance, record
// results, or export for the class: staff always, a teacher only when
// designated as its class teacher.
func CanManageClass(role string, class *m.SchoolClassModel, userID uuid.UUID) bool {
	if role == constants.RoleStaff {
		return true
	}
	if role == constants.RoleTeacher &&
		class.SchoolClassTeacherUserID != nil &&
		*class.SchoolClassTeacherUserID == userID {
		return true
	}
	return false
}
