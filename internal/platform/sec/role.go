// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
type UserRole string

const (
	// Unrestricted system access, implies every permission
	RoleAdmin UserRole = "admin"

	// Maintains the data dictionary through the modeling subsystem
	RoleCurator UserRole = "curator"

	// Default role for standard analysts browsing published concepts
	RoleAnalyst UserRole = "analyst"
)

// ParseRole maps a role name to a known [UserRole].
func ParseRole(name string) (UserRole, bool) {
	role := UserRole(name)
	return role, role.level() > 0
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 30
	case RoleCurator:
		return 20
	case RoleAnalyst:
		return 10
	default:
		return 0
	}
}
