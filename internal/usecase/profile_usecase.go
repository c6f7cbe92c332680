// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"academy/internal/domain/access"
	"academy/internal/domain/entity"
)

// Session is the authenticated actor for one request: the account id plus the
// raw role set as declared on the account. The transport layer builds it from
// validated token claims; this core never verifies credentials. A Session is
// immutable for the duration of one request.
type Session struct {
	AccountID int64
	Roles     entity.Roles
}

// DetailLevel selects the view granularity returned by GetVisibleProfile.
type DetailLevel string

const (
	// DetailBasic returns the masked view.
	DetailBasic DetailLevel = "basic"
	// DetailFull returns the complete view.
	DetailFull DetailLevel = "full"
)

// ProfileUsecase defines the profile visibility and update operations.
type ProfileUsecase interface {
	// GetVisibleProfile returns the target's profile view at the requested
	// detail level, or ErrAccessDenied when the visibility policy refuses.
	// The view is never nil on success: an absent stored record is rendered
	// with safe defaults.
	GetVisibleProfile(ctx context.Context, sess Session, targetAccountID int64, detail DetailLevel) (*entity.UserInfo, error)

	// UpdateVisibleProfile applies a sanitized patch to the target's profile.
	// The whole patch is rejected when any supplied field is outside the
	// actor's writable set. The returned bool reports whether anything was
	// actually persisted; a no-op patch is a successful non-update.
	UpdateVisibleProfile(ctx context.Context, sess Session, targetAccountID int64, patch *UpdateUserInfoInput) (*entity.UserInfo, bool, error)
}

// --- Input DTOs ---

// GeographicInput carries the coarse location of a profile patch.
type GeographicInput struct {
	Province string `json:"province"`
	City     string `json:"city"`
}

// UpdateUserInfoInput defines the patch for UpdateVisibleProfile. A nil field
// means "not supplied"; a non-nil field is part of the patch even when it
// matches the stored value. Supplying a field the actor may not write is a
// FIELD_FORBIDDEN failure, never a silent drop.
type UpdateUserInfoInput struct {
	Nickname    *string          `json:"nickname,omitempty"`
	Gender      *string          `json:"gender,omitempty"`
	BirthDate   *string          `json:"birth_date,omitempty"` // YYYY-MM-DD, empty string clears
	AvatarURL   *string          `json:"avatar_url,omitempty"`
	Email       *string          `json:"email,omitempty"`
	Signature   *string          `json:"signature,omitempty"`
	Address     *string          `json:"address,omitempty"`
	Phone       *string          `json:"phone,omitempty"`
	Tags        *[]string        `json:"tags,omitempty"`
	Geographic  *GeographicInput `json:"geographic,omitempty"`
	UserState   *string          `json:"user_state,omitempty"`
	NotifyCount *int             `json:"notify_count,omitempty"`
	UnreadCount *int             `json:"unread_count,omitempty"`
}

// PresentFields lists the fields actually supplied by the patch, in a stable
// order, for the allowed-field check and change reporting.
func (in *UpdateUserInfoInput) PresentFields() []access.Field {
	if in == nil {
		return nil
	}

	fields := make([]access.Field, 0, 13)
	if in.Nickname != nil {
		fields = append(fields, access.FieldNickname)
	}
	if in.Gender != nil {
		fields = append(fields, access.FieldGender)
	}
	if in.BirthDate != nil {
		fields = append(fields, access.FieldBirthDate)
	}
	if in.AvatarURL != nil {
		fields = append(fields, access.FieldAvatarURL)
	}
	if in.Email != nil {
		fields = append(fields, access.FieldEmail)
	}
	if in.Signature != nil {
		fields = append(fields, access.FieldSignature)
	}
	if in.Address != nil {
		fields = append(fields, access.FieldAddress)
	}
	if in.Phone != nil {
		fields = append(fields, access.FieldPhone)
	}
	if in.Tags != nil {
		fields = append(fields, access.FieldTags)
	}
	if in.Geographic != nil {
		fields = append(fields, access.FieldGeographic)
	}
	if in.UserState != nil {
		fields = append(fields, access.FieldUserState)
	}
	if in.NotifyCount != nil {
		fields = append(fields, access.FieldNotifyCount)
	}
	if in.UnreadCount != nil {
		fields = append(fields, access.FieldUnreadCount)
	}

	return fields
}
