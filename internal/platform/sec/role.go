// Copyright (c) 2026 Aura Learning. All rights reserved.
// Author: dev@aura-learning.fr

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
//
// Roles gate what an account may do; subscription tiers gate what content
// it may open. The two axes are independent — a student on the pro plan is
// still a student.
type UserRole string

const (
	// Unrestricted platform access
	RoleAdmin UserRole = "admin"

	// Can publish content upstream, trigger imports and view analytics
	RoleManager UserRole = "manager"

	// Default role for learners
	RoleStudent UserRole = "student"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {

	// Gaps in the scale leave room for intermediate roles
	switch r {
	case RoleAdmin:
		return 30
	case RoleManager:
		return 20
	case RoleStudent:
		return 10
	default:
		return 0
	}
}
