// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"academy/internal/domain/entity"
)

// AccountUsecase covers the account lifecycle this module owns: registration
// (which creates the account and its profile record atomically) and login
// (the local session producer).
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
}

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Nickname string `json:"nickname" validate:"omitempty,max=50"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput carries the newly created account id and role set.
type RegisterOutput struct {
	AccountID   int64        `json:"account_id"`
	Email       string       `json:"email"`
	AccessGroup entity.Roles `json:"access_group"`
}

// LoginOutput carries the issued token pair.
type LoginOutput struct {
	AccountID    int64        `json:"account_id"`
	AccessGroup  entity.Roles `json:"access_group"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
}
