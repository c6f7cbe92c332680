// Package model contains the GORM table mappings. Models are kept separate
// from domain entities so persistence concerns never leak into the domain.
package model

import (
	"time"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates ids via the
// identity column. It is an exported type so it can be used by the GORM Gen
// tool from other packages.
type AccountModel struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	Email         string     `gorm:"type:varchar(255);unique;not null"`
	PasswordHash  string     `gorm:"type:varchar(255);not null"`
	AccessGroup   []string   `gorm:"type:jsonb;serializer:json;not null"`
	DeactivatedAt *time.Time `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	UserInfo *UserInfoModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// GeographicModel is the embedded JSON shape of a profile's coarse location.
type GeographicModel struct {
	Province string `json:"province"`
	City     string `json:"city"`
}

// UserInfoModel mirrors the 'user_infos' table. AccountID references
// accounts.id; the nickname carries a partial unique index so empty nicknames
// never collide.
type UserInfoModel struct {
	AccountID   int64            `gorm:"primaryKey"`
	Nickname    string           `gorm:"type:varchar(50);index:idx_user_infos_nickname,unique,where:nickname <> ''"`
	Gender      string           `gorm:"type:varchar(10);not null"`
	BirthDate   *string          `gorm:"type:date"`
	AvatarURL   string           `gorm:"type:varchar(255)"`
	Email       string           `gorm:"type:varchar(255)"`
	Signature   string           `gorm:"type:varchar(200)"`
	AccessGroup []string         `gorm:"type:jsonb;serializer:json;not null"`
	Address     string           `gorm:"type:varchar(200)"`
	Phone       string           `gorm:"type:varchar(20)"`
	Tags        []string         `gorm:"type:jsonb;serializer:json"`
	Geographic  *GeographicModel `gorm:"type:jsonb;serializer:json"`
	NotifyCount int              `gorm:"not null;default:0"`
	UnreadCount int              `gorm:"not null;default:0"`
	UserState   string           `gorm:"type:varchar(10);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserInfoModel) TableName() string {
	return "user_infos"
}
