package access

import "academy/internal/domain/entity"

// Field names a mutable profile attribute. The access group, identity links
// and timestamps are deliberately absent: they are never part of any writable
// set.
type Field string

const (
	// FieldNickname is the display name.
	FieldNickname Field = "nickname"
	// FieldGender is the declared gender.
	FieldGender Field = "gender"
	// FieldBirthDate is the birth date.
	FieldBirthDate Field = "birthDate"
	// FieldAvatarURL is the avatar image URL.
	FieldAvatarURL Field = "avatarUrl"
	// FieldEmail is the contact email.
	FieldEmail Field = "email"
	// FieldSignature is the signature line.
	FieldSignature Field = "signature"
	// FieldAddress is the mailing address.
	FieldAddress Field = "address"
	// FieldPhone is the contact phone number.
	FieldPhone Field = "phone"
	// FieldTags are the free-form tags.
	FieldTags Field = "tags"
	// FieldGeographic is the coarse location.
	FieldGeographic Field = "geographic"
	// FieldUserState is the lifecycle state. Privileged.
	FieldUserState Field = "userState"
	// FieldNotifyCount is the pending-notification counter. Privileged.
	FieldNotifyCount Field = "notifyCount"
	// FieldUnreadCount is the unread-message counter. Privileged.
	FieldUnreadCount Field = "unreadCount"
)

// FieldSet is a set of writable fields. The package-level sets below are
// compiled-in policy data; callers must treat them as read-only.
type FieldSet map[Field]struct{}

// Has reports whether f belongs to the set.
func (s FieldSet) Has(f Field) bool {
	_, ok := s[f]

	return ok
}

func newFieldSet(fields ...Field) FieldSet {
	s := make(FieldSet, len(fields))
	for _, f := range fields {
		s[f] = struct{}{}
	}

	return s
}

//nolint:gochecknoglobals // immutable policy tables, never mutated at runtime
var (
	// fullWritable is everything an admin (or a manager editing themselves)
	// may touch.
	fullWritable = newFieldSet(
		FieldNickname, FieldGender, FieldBirthDate, FieldAvatarURL,
		FieldEmail, FieldSignature, FieldAddress, FieldPhone,
		FieldTags, FieldGeographic,
		FieldUserState, FieldNotifyCount, FieldUnreadCount,
	)

	// managerOnOther is the minimal set a manager may touch on an account
	// that is not their own.
	managerOnOther = newFieldSet(
		FieldNickname, FieldAvatarURL, FieldPhone,
	)

	// selfService is the non-privileged set: the full set minus userState and
	// the counters, which require manager or admin standing regardless of
	// self/other.
	selfService = newFieldSet(
		FieldNickname, FieldGender, FieldBirthDate, FieldAvatarURL,
		FieldEmail, FieldSignature, FieldAddress, FieldPhone,
		FieldTags, FieldGeographic,
	)
)

// AllowedFields returns the set of profile fields the actor may write on the
// target. Four disjoint regimes apply:
//
//   - admin, or manager acting on self: the full writable set
//   - manager acting on another account: nickname, avatarUrl, phone only
//   - anyone else (including self-service): the non-privileged set
//
// A patch that supplies a field outside the returned set must fail hard with
// FIELD_FORBIDDEN; silently dropping a caller-supplied privileged field would
// mask a permission bug.
func AllowedFields(actorRoles entity.Roles, isSelf bool) FieldSet {
	effective := actorRoles.Effective()

	switch {
	case effective.Contains(entity.RoleAdmin):
		return fullWritable
	case effective.Contains(entity.RoleManager) && isSelf:
		return fullWritable
	case effective.Contains(entity.RoleManager):
		return managerOnOther
	default:
		return selfService
	}
}
