// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique id.
func (repo *accountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&accountM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account together with its profile record. Both rows
// are inserted through the same connection, so when called inside
// TransactionManager.Execute the pair commits or rolls back as one unit.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account, info *entity.UserInfo) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// The profile row inherits the generated account id.
	info.AccountID = accountM.ID
	infoM := fromUserInfoDomain(info)
	if err := repo.db.WithContext(ctx).Create(infoM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrNicknameTaken.WrapMessage("nickname already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user info")
	}

	// Reflect generated values back onto the entities.
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt
	info.CreatedAt = infoM.CreatedAt
	info.UpdatedAt = infoM.UpdatedAt

	return nil
}

// toAccountDomain maps the persistence model back to a pure domain entity.
func toAccountDomain(m *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:            m.ID,
		Email:         m.Email,
		PasswordHash:  m.PasswordHash,
		AccessGroup:   entity.RolesFromStrings(m.AccessGroup),
		DeactivatedAt: m.DeactivatedAt,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// fromAccountDomain maps a pure domain entity to a GORM persistence model.
func fromAccountDomain(account *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:            account.ID,
		Email:         account.Email,
		PasswordHash:  account.PasswordHash,
		AccessGroup:   account.AccessGroup.ToStrings(),
		DeactivatedAt: account.DeactivatedAt,
		CreatedAt:     account.CreatedAt,
		UpdatedAt:     account.UpdatedAt,
	}
}
