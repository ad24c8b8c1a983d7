package domain

import "fmt"

// Role represents a user's access level.
//
// Roles are an enumerated set, not a strict hierarchy: every protected
// action declares its own allow-list of roles. The wire values are the
// backend's Portuguese identifiers and must not be translated.
type Role string

const (
	// RoleAdmin can do everything, including user management and approval
	RoleAdmin Role = "administrador"
	// RoleAnalyst can register products and edit their own pending ones
	RoleAnalyst Role = "analista"
	// RoleViewer has read-only access to the approved catalog
	RoleViewer Role = "visualizador"
)

// AllRoles lists every known role, in descending order of typical privilege
func AllRoles() []Role {
	return []Role{RoleAdmin, RoleAnalyst, RoleViewer}
}

// Validate checks if the role is one of the known values
func (r Role) Validate() error {
	switch r {
	case RoleAdmin, RoleAnalyst, RoleViewer:
		return nil
	}
	return fmt.Errorf("unknown role %q", string(r))
}

// String returns the wire value
func (r Role) String() string {
	return string(r)
}

// Label returns a human-readable name for display
func (r Role) Label() string {
	switch r {
	case RoleAdmin:
		return "Administrador"
	case RoleAnalyst:
		return "Analista"
	case RoleViewer:
		return "Visualizador"
	default:
		return string(r)
	}
}

// ParseRole converts a wire or display value into a Role
func ParseRole(s string) (Role, error) {
	switch s {
	case "administrador", "admin", "Administrador":
		return RoleAdmin, nil
	case "analista", "analyst", "Analista":
		return RoleAnalyst, nil
	case "visualizador", "viewer", "Visualizador":
		return RoleViewer, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}
