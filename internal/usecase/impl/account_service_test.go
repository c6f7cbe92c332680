package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	mockRepo "academy/internal/mocks/repository"
	mockSvc "academy/internal/mocks/service"
	"academy/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return accountServiceFixtures{
		service:      service,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Email:    "  New@Example.COM ",
		Password: "password123",
		Nickname: "newbie",
	}

	fx.hasher.EXPECT().Hash("password123").Return("hashed", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByEmail(ctx, "new@example.com").
				Return(nil, repository.ErrAccountNotFound)
			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account"), mock.AnythingOfType("*entity.UserInfo")).
				RunAndReturn(func(_ context.Context, account *entity.Account, info *entity.UserInfo) error {
					assert.Equal(t, "new@example.com", account.Email)
					assert.Equal(t, "hashed", account.PasswordHash)
					assert.Equal(t, entity.Roles{entity.RoleRegistrant}, account.AccessGroup)
					assert.Equal(t, "newbie", info.Nickname)
					account.ID = 11

					return nil
				})

			return fn(mockFactory)
		})

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(11), output.AccountID)
	assert.Equal(t, "new@example.com", output.Email)
	assert.Equal(t, entity.Roles{entity.RoleRegistrant}, output.AccessGroup)
}

func TestAccountService_Register_EmailTaken(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "taken@example.com", Password: "password123"}

	fx.hasher.EXPECT().Hash("password123").Return("hashed", nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByEmail(ctx, "taken@example.com").
				Return(&entity.Account{ID: 11, Email: "taken@example.com"}, nil)

			return fn(mockFactory)
		})

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountExists)
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Email: "new@example.com", Password: "password123"}

	fx.hasher.EXPECT().Hash("password123").Return("", errors.New("cost out of range"))

	_, err := fx.service.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "User@Example.com", Password: "password123"}
	account := &entity.Account{
		ID:           11,
		Email:        "user@example.com",
		PasswordHash: "hashed",
		AccessGroup:  entity.Roles{entity.RoleCustomer},
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(account, nil)

			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check("password123", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateTokens(int64(11), []string{"customer"}).
		Return("access-token", "refresh-token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(11), output.AccountID)
	assert.Equal(t, entity.Roles{entity.RoleCustomer}, output.AccessGroup)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "ghost@example.com", Password: "password123"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").
				Return(nil, repository.ErrAccountNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	// Absence and a bad password must be indistinguishable.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "user@example.com", Password: "wrong"}
	account := &entity.Account{ID: 11, Email: "user@example.com", PasswordHash: "hashed"}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(account, nil)

			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

	_, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_Login_DeactivatedAccount(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "user@example.com", Password: "password123"}
	deactivatedAt := time.Now().Add(-time.Hour)
	account := &entity.Account{
		ID:            11,
		Email:         "user@example.com",
		PasswordHash:  "hashed",
		DeactivatedAt: &deactivatedAt,
	}

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(account, nil)

			return fn(mockFactory)
		})

	fx.hasher.EXPECT().Check("password123", "hashed").Return(true)

	_, err := fx.service.Login(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccountDeactivated)
}
