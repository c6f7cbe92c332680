package repository

import (
	"context"

	"academy/internal/domain/entity"
)

// IdentityRepository defines point lookups over the identity-projection
// tables. Absence is a valid fact, not a failure: every lookup returns
// (nil, nil) when no matching projection exists, and a soft-deactivated
// projection is filtered out at this boundary so callers never observe one.
// Only genuine storage failures produce a non-nil error.
type IdentityRepository interface {
	// FindManagerByAccountID retrieves the active manager projection, if any.
	FindManagerByAccountID(ctx context.Context, accountID int64) (*entity.Manager, error)

	// FindCoachByAccountID retrieves the active coach projection, if any.
	FindCoachByAccountID(ctx context.Context, accountID int64) (*entity.Coach, error)

	// FindCustomerByAccountID retrieves the active customer projection, if any.
	FindCustomerByAccountID(ctx context.Context, accountID int64) (*entity.Customer, error)

	// FindLearnerByAccountID retrieves the active learner projection, if any.
	FindLearnerByAccountID(ctx context.Context, accountID int64) (*entity.Learner, error)

	// FindStaffByAccountID retrieves the active staff projection, if any.
	FindStaffByAccountID(ctx context.Context, accountID int64) (*entity.Staff, error)
}
