package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin       RoleType = "admin"
	RoleCoordinator RoleType = "coordinator"
	RoleGraduate    RoleType = "graduate"
)

// IsValid reports whether r is a known role.
func (r RoleType) IsValid() bool {
	switch r {
	case RoleAdmin, RoleCoordinator, RoleGraduate:
		return true
	}
	return false
}

// IsStaff reports whether r may manage news, profiles and reports.
func (r RoleType) IsStaff() bool {
	return r == RoleAdmin || r == RoleCoordinator
}

// Placeholder is shown for any value a graduate has not provided.
const Placeholder = "No especificado"
