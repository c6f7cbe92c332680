package postgres

import (
	"context"

	"academy/internal/domain/entity"
	"academy/internal/domain/repository"
	"academy/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// identityRepository implements the domain.IdentityRepository interface using
// GORM. Every lookup filters soft-deactivated rows at the query level so
// callers only ever observe active projections; absence maps to (nil, nil).
type identityRepository struct {
	db *gorm.DB
}

// NewIdentityRepository is the constructor for identityRepository.
func NewIdentityRepository(db *gorm.DB) repository.IdentityRepository {
	return &identityRepository{db: db}
}

// FindManagerByAccountID retrieves the active manager projection, if any.
func (repo *identityRepository) FindManagerByAccountID(ctx context.Context, accountID int64) (*entity.Manager, error) {
	var m model.ManagerModel
	err := repo.activeByAccount(ctx, accountID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find manager projection")
	}

	return &entity.Manager{
		AccountID:     m.AccountID,
		Department:    m.Department,
		JobTitle:      m.JobTitle,
		DeactivatedAt: m.DeactivatedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

// FindCoachByAccountID retrieves the active coach projection, if any.
func (repo *identityRepository) FindCoachByAccountID(ctx context.Context, accountID int64) (*entity.Coach, error) {
	var m model.CoachModel
	err := repo.activeByAccount(ctx, accountID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find coach projection")
	}

	return &entity.Coach{
		AccountID:     m.AccountID,
		Level:         m.Level,
		Specialty:     m.Specialty,
		DeactivatedAt: m.DeactivatedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

// FindCustomerByAccountID retrieves the active customer projection, if any.
func (repo *identityRepository) FindCustomerByAccountID(ctx context.Context, accountID int64) (*entity.Customer, error) {
	var m model.CustomerModel
	err := repo.activeByAccount(ctx, accountID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find customer projection")
	}

	return &entity.Customer{
		AccountID:         m.AccountID,
		MembershipLevel:   m.MembershipLevel,
		RemainingSessions: m.RemainingSessions,
		DeactivatedAt:     m.DeactivatedAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}, nil
}

// FindLearnerByAccountID retrieves the active learner projection, if any.
func (repo *identityRepository) FindLearnerByAccountID(ctx context.Context, accountID int64) (*entity.Learner, error) {
	var m model.LearnerModel
	err := repo.activeByAccount(ctx, accountID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find learner projection")
	}

	return &entity.Learner{
		AccountID:     m.AccountID,
		CustomerID:    m.CustomerID,
		Grade:         m.Grade,
		DeactivatedAt: m.DeactivatedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

// FindStaffByAccountID retrieves the active staff projection, if any.
func (repo *identityRepository) FindStaffByAccountID(ctx context.Context, accountID int64) (*entity.Staff, error) {
	var m model.StaffModel
	err := repo.activeByAccount(ctx, accountID).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find staff projection")
	}

	return &entity.Staff{
		AccountID:     m.AccountID,
		Department:    m.Department,
		DeactivatedAt: m.DeactivatedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}, nil
}

func (repo *identityRepository) activeByAccount(ctx context.Context, accountID int64) *gorm.DB {
	return repo.db.WithContext(ctx).
		Where("account_id = ? AND deactivated_at IS NULL", accountID)
}
