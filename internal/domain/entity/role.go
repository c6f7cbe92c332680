// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role an account can carry in the system.
type Role string

const (
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
	// RoleManager indicates a campus manager.
	RoleManager Role = "manager"
	// RoleCoach indicates a coach on the training side.
	RoleCoach Role = "coach"
	// RoleCustomer indicates a paying customer, typically a learner's parent.
	RoleCustomer Role = "customer"
	// RoleLearner indicates a learner enrolled in training.
	RoleLearner Role = "learner"
	// RoleStaff indicates back-office staff.
	RoleStaff Role = "staff"
	// RoleRegistrant indicates a freshly registered account with no identity yet.
	RoleRegistrant Role = "registrant"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleCoach, RoleCustomer, RoleLearner, RoleStaff, RoleRegistrant:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// roleExpansion is the compiled-in role broadening table. The baseline policy
// broadens no role beyond itself; the table exists so broadening rules can be
// added in one place without touching the visibility decision procedure.
//
//nolint:gochecknoglobals // immutable policy data, never mutated at runtime
var roleExpansion = map[Role][]Role{
	RoleAdmin:      {RoleAdmin},
	RoleManager:    {RoleManager},
	RoleCoach:      {RoleCoach},
	RoleCustomer:   {RoleCustomer},
	RoleLearner:    {RoleLearner},
	RoleStaff:      {RoleStaff},
	RoleRegistrant: {RoleRegistrant},
}

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// Effective applies the role expansion table and returns the effective role
// set. It is deterministic, total and idempotent: invalid roles are dropped,
// duplicates collapse, and expanding an already-expanded set is a no-op.
func (rs Roles) Effective() Roles {
	expanded := make(Roles, 0, len(rs))
	for _, role := range rs {
		for _, e := range roleExpansion[role] {
			if !expanded.Contains(e) {
				expanded = append(expanded, e)
			}
		}
	}

	return expanded
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
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
