// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the aggregate root: one authenticated principal holding a role
// set and, through it, zero or more identity projections plus one UserInfo.
type Account struct {
	ID            int64      // The unique account id.
	Email         string     // Login identifier, unique across the system.
	PasswordHash  string     // Stores the bcrypt-hashed password.
	AccessGroup   Roles      // The raw role set declared on the account.
	DeactivatedAt *time.Time // Non-nil once the account has been soft-deactivated.
	CreatedAt     time.Time  // Timestamp of when this account was created.
	UpdatedAt     time.Time  // Timestamp of the last modification.
}

// Deactivated reports whether the account has been soft-deactivated.
func (a *Account) Deactivated() bool {
	return a.DeactivatedAt != nil
}
