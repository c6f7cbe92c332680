// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// IdentityKind discriminates the identity projection union. The kind is
// carried as data on every projection; callers must never infer the kind from
// which fields happen to be present, because Customer and Learner records
// share several field names.
type IdentityKind string

const (
	// IdentityKindManager tags a Manager projection.
	IdentityKindManager IdentityKind = "manager"
	// IdentityKindCoach tags a Coach projection.
	IdentityKindCoach IdentityKind = "coach"
	// IdentityKindCustomer tags a Customer projection.
	IdentityKindCustomer IdentityKind = "customer"
	// IdentityKindLearner tags a Learner projection.
	IdentityKindLearner IdentityKind = "learner"
	// IdentityKindStaff tags a Staff projection.
	IdentityKindStaff IdentityKind = "staff"
)

// Identity is the tagged union of the role-specific projection records. An
// account may own several projections simultaneously, but a resolution event
// yields exactly one.
type Identity interface {
	// Kind returns the discriminant of this projection.
	Kind() IdentityKind
	// Account returns the owning account id.
	Account() int64
	// Deactivated reports whether this projection has been soft-deactivated.
	Deactivated() bool
}

// KindForRole maps a declared role to its projection kind. Admin and
// registrant roles carry no projection.
func KindForRole(role Role) (IdentityKind, bool) {
	switch role {
	case RoleManager:
		return IdentityKindManager, true
	case RoleCoach:
		return IdentityKindCoach, true
	case RoleCustomer:
		return IdentityKindCustomer, true
	case RoleLearner:
		return IdentityKindLearner, true
	case RoleStaff:
		return IdentityKindStaff, true
	default:
		return "", false
	}
}

// Manager is the campus-manager identity projection.
type Manager struct {
	AccountID     int64
	Department    string
	JobTitle      string
	DeactivatedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Kind returns the discriminant of this projection.
func (m *Manager) Kind() IdentityKind { return IdentityKindManager }

// Account returns the owning account id.
func (m *Manager) Account() int64 { return m.AccountID }

// Deactivated reports whether this projection has been soft-deactivated.
func (m *Manager) Deactivated() bool { return m.DeactivatedAt != nil }

// Coach is the coach identity projection.
type Coach struct {
	AccountID     int64
	Level         string
	Specialty     string
	DeactivatedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Kind returns the discriminant of this projection.
func (c *Coach) Kind() IdentityKind { return IdentityKindCoach }

// Account returns the owning account id.
func (c *Coach) Account() int64 { return c.AccountID }

// Deactivated reports whether this projection has been soft-deactivated.
func (c *Coach) Deactivated() bool { return c.DeactivatedAt != nil }

// Customer is the customer identity projection, typically a learner's parent.
type Customer struct {
	AccountID         int64
	MembershipLevel   string
	RemainingSessions int
	DeactivatedAt     *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Kind returns the discriminant of this projection.
func (c *Customer) Kind() IdentityKind { return IdentityKindCustomer }

// Account returns the owning account id.
func (c *Customer) Account() int64 { return c.AccountID }

// Deactivated reports whether this projection has been soft-deactivated.
func (c *Customer) Deactivated() bool { return c.DeactivatedAt != nil }

// Learner is the learner identity projection. CustomerID links the learner to
// the owning customer; ownership can be reassigned between requests, which is
// why ownership facts are never cached.
type Learner struct {
	AccountID     int64
	CustomerID    int64
	Grade         string
	DeactivatedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Kind returns the discriminant of this projection.
func (l *Learner) Kind() IdentityKind { return IdentityKindLearner }

// Account returns the owning account id.
func (l *Learner) Account() int64 { return l.AccountID }

// Deactivated reports whether this projection has been soft-deactivated.
func (l *Learner) Deactivated() bool { return l.DeactivatedAt != nil }

// Staff is the back-office staff identity projection.
type Staff struct {
	AccountID     int64
	Department    string
	DeactivatedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Kind returns the discriminant of this projection.
func (s *Staff) Kind() IdentityKind { return IdentityKindStaff }

// Account returns the owning account id.
func (s *Staff) Account() int64 { return s.AccountID }

// Deactivated reports whether this projection has been soft-deactivated.
func (s *Staff) Deactivated() bool { return s.DeactivatedAt != nil }
