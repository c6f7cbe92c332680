// Package access implements the visibility and update authorization engine:
// the ownership fact record, the view decision table and the writable-field
// regimes. Everything in this package is pure; fact gathering and persistence
// live with the callers.
//
// Authorization rules, in precedence order:
//   - Self-access is unconditional.
//   - Admins may view anyone.
//   - A pure learner (effective roles exactly {learner}) may view nobody else.
//   - Managers and coaches may view any training-side identity
//     (coach, customer, learner), never staff or manager peers.
//   - Customers may view only learners they own.
//   - Everyone else is denied.
package access

// OwnershipFacts describes the target account relative to the actor. Facts
// are computed fresh for every request and never cached: ownership and
// activation state are mutable, and a stale fact record would open a
// privilege-escalation window. A deactivated projection counts as not
// present for the corresponding targetIs* fact.
type OwnershipFacts struct {
	// IsSelf is true when the actor and target are the same account.
	IsSelf bool
	// TargetIsCoach is true when the target holds an active coach projection.
	TargetIsCoach bool
	// TargetIsCustomer is true when the target holds an active customer projection.
	TargetIsCustomer bool
	// TargetIsLearner is true when the target holds an active learner projection.
	TargetIsLearner bool
	// CustomerOwnsTargetLearner is true when the actor, as a customer, is the
	// parent of the target learner.
	CustomerOwnsTargetLearner bool
}
