package auth

// Role is the user's role. The set is closed: anything outside of it is
// rejected at the data model boundary.
type Role string

const (
	// RoleUser is the default role assigned on registration
	RoleUser Role = "user"
	// RoleAdmin grants access to admin gated routes
	RoleAdmin Role = "admin"
)

// IsValid checks if the role is one of the predefined valid roles
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// ParseRole safely parses a string into a Role type
func ParseRole(roleStr string) (Role, bool) {
	role := Role(roleStr)
	return role, role.IsValid()
}

// AllRoles returns the closed role set
func AllRoles() []Role {
	return []Role{RoleUser, RoleAdmin}
}
