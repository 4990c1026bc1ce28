package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"schoolhub_backend/internals/constants"
	m "schoolhub_backend/internals/features/school/classes/model"
)

func TestCanManageClass(t *testing.T) {
	teacherID := uuid.New()
	otherID := uuid.New()
	class := &m.SchoolClassModel{SchoolClassTeacherUserID: &teacherID}
	unassigned := &m.SchoolClassModel{}

	assert.True(t, CanManageClass(constants.RoleStaff, class, otherID))
	assert.True(t, CanManageClass(constants.RoleStaff, unassigned, otherID))
	assert.True(t, CanManageClass(constants.RoleTeacher, class, teacherID))
	assert.False(t, CanManageClass(constants.RoleTeacher, class, otherID))
	assert.False(t, CanManageClass(constants.RoleTeacher, unassigned, teacherID))
	assert.False(t, CanManageClass(constants.RoleParent, class, teacherID))
	assert.False(t, CanManageClass(constants.RoleUnassigned, class, teacherID))
}
