package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	"academy/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the account and its profile record atomically. Every new
// account starts as a plain registrant; role grants are an operator concern.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	email := strings.ToLower(strings.TrimSpace(input.Email))

	// Hash outside the transaction (bcrypt is CPU-bound).
	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	var created *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, err := accountRepo.FindByEmail(ctx, email)
		if err == nil {
			return errors.Wrap(domainerrors.ErrAccountExists, "email already registered")
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to find account by email")
		}

		account := &entity.Account{
			Email:        email,
			PasswordHash: passwordHash,
			AccessGroup:  entity.Roles{entity.RoleRegistrant},
		}
		info := entity.DefaultUserInfo(0, account.AccessGroup)
		if nickname := strings.TrimSpace(input.Nickname); nickname != "" {
			info.Nickname = nickname
		}

		if err := accountRepo.Create(ctx, account, info); err != nil {
			return errors.Wrap(err, "failed to create account")
		}
		created = account

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("accountID", created.ID))

	return &usecase.RegisterOutput{
		AccountID:   created.ID,
		Email:       created.Email,
		AccessGroup: created.AccessGroup,
	}, nil
}

// Login verifies credentials and issues a token pair carrying the account's
// stored role set.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	email := strings.ToLower(strings.TrimSpace(input.Email))

	account, err := srv.loadLoginAccount(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if account.Deactivated() {
		srv.log(ctx).Warn("Login rejected for deactivated account", slog.Int64("accountID", account.ID))

		return nil, errors.Wrap(domainerrors.ErrAccountDeactivated, "login failed")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(account.ID, account.AccessGroup.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	srv.log(ctx).Debug("Login completed", slog.Int64("accountID", account.ID))

	return &usecase.LoginOutput{
		AccountID:    account.ID,
		AccessGroup:  account.AccessGroup,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// loadLoginAccount loads the account from primary in a short transaction to
// avoid stale reads on replicas. Absence maps to the same error as a bad
// password.
func (srv *accountService) loadLoginAccount(ctx context.Context, email string) (*entity.Account, error) {
	var account *entity.Account

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.AccountRepo().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
			}

			return errors.Wrap(err, "failed to find account by email")
		}
		account = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}
