package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fullUserInfo() *UserInfo {
	birthDate := "1998-04-12"

	return &UserInfo{
		AccountID:   42,
		Nickname:    "nick",
		Gender:      GenderFemale,
		BirthDate:   &birthDate,
		AvatarURL:   "https://cdn.example.com/a.png",
		Email:       "nick@example.com",
		Signature:   "hello there",
		AccessGroup: Roles{RoleCoach},
		Address:     "No. 1, Example Rd.",
		Phone:       "0912345678",
		Tags:        []string{"tennis", "beginner"},
		Geographic:  &Geographic{Province: "Taipei", City: "Xinyi"},
		NotifyCount: 3,
		UnreadCount: 7,
		UserState:   UserStateActive,
		CreatedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt:   time.Date(2024, 6, 7, 8, 9, 10, 0, time.UTC),
	}
}

func TestUserInfo_Basic_MasksSensitiveFields(t *testing.T) {
	info := fullUserInfo()

	basic := info.Basic()

	assert.Empty(t, basic.Email)
	assert.Empty(t, basic.Signature)
	assert.Empty(t, basic.Address)
	assert.Nil(t, basic.Tags)
	assert.Nil(t, basic.Geographic)
	assert.Zero(t, basic.NotifyCount)
	assert.Zero(t, basic.UnreadCount)
}

func TestUserInfo_Basic_KeepsBasicFields(t *testing.T) {
	info := fullUserInfo()

	basic := info.Basic()

	assert.Equal(t, info.AccountID, basic.AccountID)
	assert.Equal(t, info.Nickname, basic.Nickname)
	assert.Equal(t, info.Gender, basic.Gender)
	assert.Equal(t, info.BirthDate, basic.BirthDate)
	assert.Equal(t, info.AvatarURL, basic.AvatarURL)
	assert.Equal(t, info.Phone, basic.Phone)
	assert.Equal(t, info.AccessGroup, basic.AccessGroup)
	assert.Equal(t, info.UserState, basic.UserState)
	assert.Equal(t, info.CreatedAt, basic.CreatedAt)
	assert.Equal(t, info.UpdatedAt, basic.UpdatedAt)
}

func TestUserInfo_Basic_Idempotent(t *testing.T) {
	basic := fullUserInfo().Basic()

	assert.Equal(t, basic, basic.Basic())
}

func TestUserInfo_Basic_DoesNotMutateReceiver(t *testing.T) {
	info := fullUserInfo()
	want := info.Clone()

	_ = info.Basic()

	assert.Equal(t, want, info)
}

func TestDefaultUserInfo(t *testing.T) {
	accessGroup := Roles{RoleCustomer, RoleLearner}

	info := DefaultUserInfo(42, accessGroup)

	assert.Equal(t, int64(42), info.AccountID)
	assert.Empty(t, info.Nickname)
	assert.Equal(t, GenderSecret, info.Gender)
	assert.Nil(t, info.BirthDate)
	assert.Equal(t, accessGroup, info.AccessGroup)
	assert.Equal(t, UserStatePending, info.UserState)
	assert.False(t, info.CreatedAt.IsZero())
	assert.Equal(t, info.CreatedAt, info.UpdatedAt)
}

func TestDefaultUserInfo_ClonesAccessGroup(t *testing.T) {
	accessGroup := Roles{RoleCustomer}

	info := DefaultUserInfo(1, accessGroup)
	accessGroup[0] = RoleAdmin

	assert.Equal(t, Roles{RoleCustomer}, info.AccessGroup)
}

func TestUserInfo_Clone_DeepCopies(t *testing.T) {
	info := fullUserInfo()

	cloned := info.Clone()
	cloned.Tags[0] = "changed"
	cloned.Geographic.City = "changed"
	*cloned.BirthDate = "2000-01-01"
	cloned.AccessGroup[0] = RoleAdmin

	assert.Equal(t, "tennis", info.Tags[0])
	assert.Equal(t, "Xinyi", info.Geographic.City)
	assert.Equal(t, "1998-04-12", *info.BirthDate)
	assert.Equal(t, RoleCoach, info.AccessGroup[0])
}

func TestGender_IsValid(t *testing.T) {
	assert.True(t, GenderMale.IsValid())
	assert.True(t, GenderFemale.IsValid())
	assert.True(t, GenderSecret.IsValid())
	assert.False(t, Gender("other").IsValid())
	assert.False(t, Gender("").IsValid())
}

func TestUserState_IsValid(t *testing.T) {
	assert.True(t, UserStatePending.IsValid())
	assert.True(t, UserStateActive.IsValid())
	assert.True(t, UserStateInactive.IsValid())
	assert.True(t, UserStateSuspended.IsValid())
	assert.False(t, UserState("deleted").IsValid())
}
