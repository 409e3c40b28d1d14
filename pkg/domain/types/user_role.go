package types

import "fmt"

// UserRole represents the role of a user
type UserRole string

const (
	UserRoleAdmin          UserRole = "admin"
	UserRoleRiskManager    UserRole = "risk_manager"
	UserRoleProjectManager UserRole = "project_manager"
	UserRoleExecutive      UserRole = "executive"
	UserRoleViewer         UserRole = "viewer"
)

// AllUserRoles returns all valid user roles
func AllUserRoles() []UserRole {
	return []UserRole{
		UserRoleAdmin,
		UserRoleRiskManager,
		UserRoleProjectManager,
		UserRoleExecutive,
		UserRoleViewer,
	}
}

// IsValid checks if the user role is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleAdmin,
		UserRoleRiskManager,
		UserRoleProjectManager,
		UserRoleExecutive,
		UserRoleViewer:
		return true
	default:
		return false
	}
}

// String returns the string representation of the user role
func (r UserRole) String() string {
	return string(r)
}

// ParseUserRole parses a string into a UserRole
func ParseUserRole(s string) (UserRole, error) {
	role := UserRole(s)
	if !role.IsValid() {
		return "", fmt.Errorf("invalid user role: %s", s)
	}
	return role, nil
}
