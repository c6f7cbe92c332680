package model

import (
	"time"
)

// ManagerModel mirrors the 'managers' table.
type ManagerModel struct {
	AccountID     int64  `gorm:"primaryKey"`
	Department    string `gorm:"type:varchar(100)"`
	JobTitle      string `gorm:"type:varchar(100)"`
	DeactivatedAt *time.Time `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ManagerModel) TableName() string {
	return "managers"
}

// CoachModel mirrors the 'coaches' table.
type CoachModel struct {
	AccountID     int64  `gorm:"primaryKey"`
	Level         string `gorm:"type:varchar(50)"`
	Specialty     string `gorm:"type:varchar(100)"`
	DeactivatedAt *time.Time `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CoachModel) TableName() string {
	return "coaches"
}

// CustomerModel mirrors the 'customers' table.
type CustomerModel struct {
	AccountID         int64  `gorm:"primaryKey"`
	MembershipLevel   string `gorm:"type:varchar(50)"`
	RemainingSessions int    `gorm:"not null;default:0"`
	DeactivatedAt     *time.Time `gorm:"index"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// LearnerModel mirrors the 'learners' table. CustomerID references
// customers.account_id and may be reassigned.
type LearnerModel struct {
	AccountID     int64  `gorm:"primaryKey"`
	CustomerID    int64  `gorm:"index;not null"`
	Grade         string `gorm:"type:varchar(50)"`
	DeactivatedAt *time.Time `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (LearnerModel) TableName() string {
	return "learners"
}

// StaffModel mirrors the 'staffs' table.
type StaffModel struct {
	AccountID     int64  `gorm:"primaryKey"`
	Department    string `gorm:"type:varchar(100)"`
	DeactivatedAt *time.Time `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (StaffModel) TableName() string {
	return "staffs"
}
