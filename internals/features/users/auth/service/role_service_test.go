package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"schoolhub_backend/internals/constants"
)

func TestRoleFromFlagsPrecedence(t *testing.T) {
	cases := []struct {
		name                       string
		staff, teacher, parent     bool
		want                       string
	}{
		{"nothing", false, false, false, constants.RoleUnassigned},
		{"parent only", false, false, true, constants.RoleParent},
		{"teacher only", false, true, false, constants.RoleTeacher},
		{"staff only", true, false, false, constants.RoleStaff},
		{"teacher beats parent", false, true, true, constants.RoleTeacher},
		{"staff beats teacher", true, true, false, constants.RoleStaff},
		{"staff beats everything", true, true, true, constants.RoleStaff},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, RoleFromFlags(tc.staff, tc.teacher, tc.parent))
		})
	}
}
