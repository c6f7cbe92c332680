package access

import "academy/internal/domain/entity"

// CanView decides whether an actor with the given raw role set may view the
// target described by facts. It is the single decision procedure for the read
// path; call sites must not add their own boolean checks around it.
//
// The table is evaluated in fixed precedence order, first match wins.
func CanView(actorRoles entity.Roles, facts OwnershipFacts) bool {
	// 1. Self-access is unconditional.
	if facts.IsSelf {
		return true
	}

	effective := actorRoles.Effective()

	// 2. Admins may view anyone.
	if effective.Contains(entity.RoleAdmin) {
		return true
	}

	// 3. A pure learner may never view another profile, not even another
	// learner's.
	if isPureLearner(effective) {
		return false
	}

	// 4. Without an oversight-capable role there is nothing left to allow.
	hasManagerOrCoach := effective.Contains(entity.RoleManager) || effective.Contains(entity.RoleCoach)
	if !hasManagerOrCoach && !effective.Contains(entity.RoleCustomer) {
		return false
	}

	// 5. Managers and coaches oversee the training side only.
	if hasManagerOrCoach {
		return facts.TargetIsCoach || facts.TargetIsCustomer || facts.TargetIsLearner
	}

	// 5b. Customers see only their own learners.
	return facts.CustomerOwnsTargetLearner
}

// isPureLearner reports whether the effective role set is exactly {learner}.
func isPureLearner(effective entity.Roles) bool {
	return len(effective) == 1 && effective[0] == entity.RoleLearner
}
