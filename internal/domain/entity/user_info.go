// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"slices"
	"time"
)

// Gender represents the declared gender on a profile.
type Gender string

const (
	// GenderMale indicates a male profile.
	GenderMale Gender = "male"
	// GenderFemale indicates a female profile.
	GenderFemale Gender = "female"
	// GenderSecret indicates the holder chose not to disclose. This is the default.
	GenderSecret Gender = "secret"
)

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderSecret:
		return true
	default:
		return false
	}
}

// UserState represents the lifecycle state of a profile.
type UserState string

const (
	// UserStatePending indicates an account that has registered but not activated.
	UserStatePending UserState = "pending"
	// UserStateActive indicates a normal, active account.
	UserStateActive UserState = "active"
	// UserStateInactive indicates a dormant account.
	UserStateInactive UserState = "inactive"
	// UserStateSuspended indicates an account frozen by a manager.
	UserStateSuspended UserState = "suspended"
)

// IsValid checks if the UserState is a valid value.
func (s UserState) IsValid() bool {
	switch s {
	case UserStatePending, UserStateActive, UserStateInactive, UserStateSuspended:
		return true
	default:
		return false
	}
}

// Geographic holds the coarse location attached to a profile.
type Geographic struct {
	Province string `json:"province"`
	City     string `json:"city"`
}

// UserInfo is the shared profile record attached to an Account. One account
// owns at most one UserInfo; it is created together with the account at
// registration and is never deleted independently.
type UserInfo struct {
	AccountID   int64       // The owning account id.
	Nickname    string      // Display name, globally unique among non-empty nicknames.
	Gender      Gender      // Declared gender, defaults to secret.
	BirthDate   *string     // Birth date in YYYY-MM-DD form, nil when undisclosed.
	AvatarURL   string      // URL of the avatar image.
	Email       string      // Contact email shown on the full view only.
	Signature   string      // Free-text signature line.
	AccessGroup Roles       // The account's role set. Read-only through this record.
	Address     string      // Mailing address.
	Phone       string      // Contact phone number.
	Tags        []string    // Free-form tags.
	Geographic  *Geographic // Coarse location, nil when unset.
	NotifyCount int         // Count of pending notifications.
	UnreadCount int         // Count of unread messages.
	UserState   UserState   // Lifecycle state of the profile.
	CreatedAt   time.Time   // Timestamp of when this record was created.
	UpdatedAt   time.Time   // Timestamp of the last modification.
}

// DefaultUserInfo builds a readable view for an account that has no stored
// profile record yet. Reads must always be representable; only mutations
// require the stored record to exist.
func DefaultUserInfo(accountID int64, accessGroup Roles) *UserInfo {
	now := time.Now()

	return &UserInfo{
		AccountID:   accountID,
		Nickname:    "",
		Gender:      GenderSecret,
		AccessGroup: slices.Clone(accessGroup),
		UserState:   UserStatePending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Basic projects the record down to the restricted "basic" detail level. It
// keeps accountId, nickname, gender, birthDate, avatarUrl, phone, accessGroup,
// userState and timestamps, and zeroes everything else. Basic is idempotent
// and performs no lookups.
func (u *UserInfo) Basic() *UserInfo {
	masked := *u
	masked.AccessGroup = slices.Clone(u.AccessGroup)
	masked.Email = ""
	masked.Signature = ""
	masked.Address = ""
	masked.Tags = nil
	masked.Geographic = nil
	masked.NotifyCount = 0
	masked.UnreadCount = 0

	return &masked
}

// Clone returns a deep copy of the record.
func (u *UserInfo) Clone() *UserInfo {
	cloned := *u
	cloned.AccessGroup = slices.Clone(u.AccessGroup)
	cloned.Tags = slices.Clone(u.Tags)
	if u.BirthDate != nil {
		birthDate := *u.BirthDate
		cloned.BirthDate = &birthDate
	}
	if u.Geographic != nil {
		geo := *u.Geographic
		cloned.Geographic = &geo
	}

	return &cloned
}
