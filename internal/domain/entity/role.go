// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an authenticated identity can have.
type Role string

const (
	// RoleOwner is the top-level administrative role overseeing all sellers.
	RoleOwner Role = "owner"
	// RoleAdmin is the seller-admin role, scoped to a single seller's panel.
	RoleAdmin Role = "admin"
	// RoleCustomer is the end-buyer role, optionally linked to one seller.
	RoleCustomer Role = "customer"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleCustomer:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
