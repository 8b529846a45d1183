package constants

import "fmt"

// Roles stored in users.role.
const (
	RoleStudent    = "student"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// Class approval states stored in classes.state.
const (
	ClassPending  = "pending"
	ClassApproved = "approved"
	ClassDenied   = "denied"
)

// Role error message templates
const (
	ErrOnlyInstructorsCanAccess = "only instructors or admins may access %s"
	ErrOnlyAdminsCanAccess      = "only admins may access %s"
)

func RoleErrorInstructor(feature string) string {
	return fmt.Sprintf(ErrOnlyInstructorsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// Grouped role / state slices
// ==========================
var (
	AllRoles = []string{
		RoleStudent,
		RoleInstructor,
		RoleAdmin,
	}

	InstructorAndAbove = []string{
		RoleInstructor,
		RoleAdmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	ClassStates = []string{
		ClassPending,
		ClassApproved,
		ClassDenied,
	}
)

func IsValidRole(role string) bool {
	return contains(AllRoles, role)
}

func IsValidClassState(state string) bool {
	return contains(ClassStates, state)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
