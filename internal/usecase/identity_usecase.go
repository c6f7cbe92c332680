// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"academy/internal/domain/entity"
)

// IdentityUsecase resolves an account plus a declared role into exactly one
// identity projection. The declared role is the discriminant; the resolver
// never guesses the projection type from which fields a record happens to
// carry.
type IdentityUsecase interface {
	// Resolve returns the active projection for the declared role, or
	// ErrIdentityNotFound when the account holds none (a deactivated
	// projection counts as absent).
	Resolve(ctx context.Context, accountID int64, declaredRole entity.Role) (entity.Identity, error)
}
