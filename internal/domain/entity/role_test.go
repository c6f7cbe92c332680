package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	valid := []Role{RoleAdmin, RoleManager, RoleCoach, RoleCustomer, RoleLearner, RoleStaff, RoleRegistrant}
	for _, role := range valid {
		assert.True(t, role.IsValid(), "expected %q to be valid", role)
	}

	assert.False(t, Role("superuser").IsValid())
	assert.False(t, Role("").IsValid())
	assert.False(t, Role("Admin").IsValid(), "role matching is case sensitive")
}

func TestRoles_Effective_DropsInvalidAndDeduplicates(t *testing.T) {
	raw := Roles{RoleManager, Role("ghost"), RoleManager, RoleCoach}

	effective := raw.Effective()

	assert.Equal(t, Roles{RoleManager, RoleCoach}, effective)
}

func TestRoles_Effective_Idempotent(t *testing.T) {
	raw := Roles{RoleAdmin, RoleCustomer, Role("bogus"), RoleCustomer}

	once := raw.Effective()
	twice := once.Effective()

	assert.Equal(t, once, twice)
}

func TestRoles_Effective_ContainsEveryValidInputRole(t *testing.T) {
	raw := Roles{RoleLearner, RoleStaff}

	effective := raw.Effective()

	for _, role := range raw {
		assert.True(t, effective.Contains(role), "expected effective set to keep %q", role)
	}
}

func TestRoles_Effective_EmptyInput(t *testing.T) {
	assert.Empty(t, Roles{}.Effective())
	assert.Empty(t, Roles{Role("ghost")}.Effective())
}

func TestRolesFromStrings_FiltersUnknown(t *testing.T) {
	roles := RolesFromStrings([]string{"admin", "nonsense", "coach"})

	assert.Equal(t, Roles{RoleAdmin, RoleCoach}, roles)
}

func TestRoles_ToStrings_RoundTrip(t *testing.T) {
	roles := Roles{RoleManager, RoleLearner}

	assert.Equal(t, roles, RolesFromStrings(roles.ToStrings()))
}
