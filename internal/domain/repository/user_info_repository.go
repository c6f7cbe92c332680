package repository

import (
	"context"
	"errors"

	"academy/internal/domain/entity"
)

// ErrUserInfoNotFound is a domain-specific error returned when an account has no stored profile record.
var ErrUserInfoNotFound = errors.New("user info not found")

// UserInfoRepository defines the standard operations for profile-record persistence.
type UserInfoRepository interface {
	// FindByAccountID retrieves the profile record owned by the given account.
	// Returns ErrUserInfoNotFound when no record exists.
	FindByAccountID(ctx context.Context, accountID int64) (*entity.UserInfo, error)

	// Save persists the given profile record. The unique nickname constraint
	// is enforced by the database; a violation surfaces as ErrNicknameTaken
	// so the uniqueness decision is made inside the write transaction, not
	// before it.
	Save(ctx context.Context, info *entity.UserInfo) error

	// NicknameTaken reports whether another account already uses the given
	// non-empty nickname.
	NicknameTaken(ctx context.Context, nickname string, excludeAccountID int64) (bool, error)
}
