package appointment

import "strings"

type Role string

const (
	RolePatient Role = "patient"
	RoleDentist Role = "dentist"
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
)

func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// BooksForOthers reports whether the role books on behalf of a customer
// instead of for itself.
func (r Role) BooksForOthers() bool {
	return r == RoleStaff || r == RoleManager
}

func (r Role) CanBook() bool {
	switch r {
	case RolePatient, RoleStaff, RoleManager, "":
		return true
	}
	return false
}
