package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"academy/internal/domain/entity"
)

func TestCanView_SelfIsUnconditional(t *testing.T) {
	tests := []struct {
		name  string
		roles entity.Roles
	}{
		{name: "pure learner", roles: entity.Roles{entity.RoleLearner}},
		{name: "registrant", roles: entity.Roles{entity.RoleRegistrant}},
		{name: "no roles at all", roles: entity.Roles{}},
		{name: "invalid role only", roles: entity.Roles{entity.Role("ghost")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, CanView(tt.roles, OwnershipFacts{IsSelf: true}))
		})
	}
}

func TestCanView_AdminViewsAnyone(t *testing.T) {
	tests := []struct {
		name  string
		facts OwnershipFacts
	}{
		{name: "staff target", facts: OwnershipFacts{}},
		{name: "coach target", facts: OwnershipFacts{TargetIsCoach: true}},
		{name: "learner target", facts: OwnershipFacts{TargetIsLearner: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, CanView(entity.Roles{entity.RoleAdmin}, tt.facts))
		})
	}
}

func TestCanView_PureLearnerDeniedEverythingButSelf(t *testing.T) {
	learner := entity.Roles{entity.RoleLearner}

	assert.False(t, CanView(learner, OwnershipFacts{TargetIsLearner: true}))
	assert.False(t, CanView(learner, OwnershipFacts{TargetIsCoach: true}))
	assert.False(t, CanView(learner, OwnershipFacts{CustomerOwnsTargetLearner: true}))
}

func TestCanView_LearnerWithSecondRoleIsNotPure(t *testing.T) {
	customerLearner := entity.Roles{entity.RoleCustomer, entity.RoleLearner}

	assert.True(t, CanView(customerLearner, OwnershipFacts{
		TargetIsLearner:           true,
		CustomerOwnsTargetLearner: true,
	}))
}

func TestCanView_ManagerOverseesTrainingSide(t *testing.T) {
	manager := entity.Roles{entity.RoleManager}

	assert.True(t, CanView(manager, OwnershipFacts{TargetIsCoach: true}))
	assert.True(t, CanView(manager, OwnershipFacts{TargetIsCustomer: true}))
	assert.True(t, CanView(manager, OwnershipFacts{TargetIsLearner: true}))
	// Manager peers and staff are outside the training side.
	assert.False(t, CanView(manager, OwnershipFacts{}))
}

func TestCanView_CoachOverseesTrainingSide(t *testing.T) {
	coach := entity.Roles{entity.RoleCoach}

	assert.True(t, CanView(coach, OwnershipFacts{TargetIsCoach: true}))
	assert.True(t, CanView(coach, OwnershipFacts{TargetIsCustomer: true}))
	assert.True(t, CanView(coach, OwnershipFacts{TargetIsLearner: true}))
	assert.False(t, CanView(coach, OwnershipFacts{}))
}

func TestCanView_CustomerSeesOnlyOwnedLearners(t *testing.T) {
	customer := entity.Roles{entity.RoleCustomer}

	assert.True(t, CanView(customer, OwnershipFacts{
		TargetIsLearner:           true,
		CustomerOwnsTargetLearner: true,
	}))
	assert.False(t, CanView(customer, OwnershipFacts{TargetIsLearner: true}),
		"another customer's learner must stay hidden")
	assert.False(t, CanView(customer, OwnershipFacts{TargetIsCoach: true}))
}

func TestCanView_StaffAndRegistrantDenied(t *testing.T) {
	facts := OwnershipFacts{TargetIsLearner: true}

	assert.False(t, CanView(entity.Roles{entity.RoleStaff}, facts))
	assert.False(t, CanView(entity.Roles{entity.RoleRegistrant}, facts))
	assert.False(t, CanView(entity.Roles{}, facts))
}

func TestCanView_InvalidRolesCarryNoWeight(t *testing.T) {
	assert.False(t, CanView(entity.Roles{entity.Role("admin ")}, OwnershipFacts{TargetIsLearner: true}))
}
