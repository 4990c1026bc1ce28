package constants

// Roles are resolved once at login, in this precedence order, and carried in
// the session token. A user with no staff flag and no profile record is
// "unassigned" and only sees the public pages.
const (
	RoleStaff      = "staff"
	RoleTeacher    = "teacher"
	RoleParent     = "parent"
	RoleUnassigned = "unassigned"
)

// ==========================
// Grouped role slices
// ==========================
var (
	StaffOnly       = []string{RoleStaff}
	TeacherAndStaff = []string{RoleTeacher, RoleStaff}
	ParentOnly      = []string{RoleParent}
	AssignedRoles   = []string{RoleStaff, RoleTeacher, RoleParent}
)

// DashboardPath is the safe fallback location for a role. Authorization
// failures redirect here instead of returning a not-found, so record
// existence is never leaked.
func DashboardPath(role string) string {
	switch role {
	case RoleParent:
		return "/parent/dashboard"
	case RoleTeacher:
		return "/teacher/dashboard"
	case RoleStaff:
		return "/admin/classes"
	default:
		return "/"
	}
}
