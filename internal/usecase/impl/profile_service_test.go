package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

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

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service      usecase.ProfileUsecase
	txManager    *mockRepo.MockTransactionManager
	identityRepo *mockRepo.MockIdentityRepository
	publisher    *mockSvc.MockProfileEventPublisher
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	identityRepo := mockRepo.NewMockIdentityRepository(t)
	publisher := mockSvc.NewMockProfileEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProfileService(txManager, identityRepo, publisher, logger)

	return profileServiceFixtures{
		service:      service,
		txManager:    txManager,
		identityRepo: identityRepo,
		publisher:    publisher,
	}
}

// expectNoProjections stubs all four fact lookups with empty results. The fact
// gatherer runs its lookups on an errgroup-derived context, so the context is
// matched loosely.
func expectNoProjections(fx profileServiceFixtures, actorID, targetID int64) {
	fx.identityRepo.EXPECT().FindCoachByAccountID(mock.Anything, targetID).Return(nil, nil)
	fx.identityRepo.EXPECT().FindCustomerByAccountID(mock.Anything, targetID).Return(nil, nil)
	fx.identityRepo.EXPECT().FindLearnerByAccountID(mock.Anything, targetID).Return(nil, nil)
	if actorID != targetID {
		fx.identityRepo.EXPECT().FindCustomerByAccountID(mock.Anything, actorID).Return(nil, nil)
	}
}

func storedUserInfo(accountID int64) *entity.UserInfo {
	return &entity.UserInfo{
		AccountID:   accountID,
		Nickname:    "stored-nick",
		Gender:      entity.GenderSecret,
		Email:       "stored@example.com",
		Signature:   "a signature",
		AccessGroup: entity.Roles{entity.RoleLearner},
		Tags:        []string{"tag-a"},
		NotifyCount: 2,
		UnreadCount: 5,
		UserState:   entity.UserStateActive,
	}
}

func TestProfileService_GetVisibleProfile_Self(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	sess := usecase.Session{AccountID: 7, Roles: entity.Roles{entity.RoleLearner}}
	stored := storedUserInfo(7)

	expectNoProjections(fx, 7, 7)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockInfoRepo := mockRepo.NewMockUserInfoRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().UserInfoRepo().Return(mockInfoRepo)
			mockAccountRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.Account{ID: 7}, nil)
			mockInfoRepo.EXPECT().FindByAccountID(ctx, int64(7)).Return(stored, nil)

			return fn(mockFactory)
		})

	view, err := fx.service.GetVisibleProfile(ctx, sess, 7, usecase.DetailFull)

	require.NoError(t, err)
	assert.Equal(t, stored, view)
}

func TestProfileService_GetVisibleProfile_BasicDetailMasks(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	sess := usecase.Session{AccountID: 7, Roles: entity.Roles{entity.RoleLearner}}
	stored := storedUserInfo(7)

	expectNoProjections(fx, 7, 7)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockInfoRepo := mockRepo.NewMockUserInfoRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().UserInfoRepo().Return(mockInfoRepo)
			mockAccountRepo.EXPECT().FindByID(ctx, int64(7)).Return(&entity.Account{ID: 7}, nil)
			mockInfoRepo.EXPECT().FindByAccountID(ctx, int64(7)).Return(stored, nil)

			return fn(mockFactory)
		})

	view, err := fx.service.GetVisibleProfile(ctx, sess, 7, usecase.DetailBasic)

	require.NoError(t, err)
	assert.Equal(t, "stored-nick", view.Nickname)
	assert.Empty(t, view.Email)
	assert.Empty(t, view.Signature)
	assert.Nil(t, view.Tags)
	assert.Zero(t, view.NotifyCount)
	assert.Zero(t, view.UnreadCount)
}

func TestProfileService_GetVisibleProfile_InvalidTarget(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	sess := usecase.Session{AccountID: 7, Roles: entity.Roles{entity.RoleAdmin}}

	_, err := fx.service.GetVisibleProfile(ctx, sess, 0, usecase.DetailFull)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTarget)
}

func TestProfileService_GetVisibleProfile_PureLearnerDenied(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	sess := usecase.Session{AccountID: 7, Roles: entity.Roles{entity.RoleLearner}}

	fx.identityRepo.EXPECT().FindCoachByAccountID(mock.Anything, int64(8)).Return(&entity.Coach{AccountID: 8}, nil)
	fx.identityRepo.EXPECT().FindCustomerByAccountID(mock.Anything, int64(8)).Return(nil, nil)
	fx.identityRepo.EXPECT().FindLearnerByAccountID(mock.Anything, int64(8)).Return(nil, nil)
	fx.identityRepo.EXPECT().FindCustomerByAccountID(mock.Anything, int64(7)).Return(nil, nil)

	_, err := fx.service.GetVisibleProfile(ctx, sess, 8, usecase.DetailFull)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestProfileService_GetVisibleProfile_CustomerSeesOwnLearner(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	sess := usecase.Session{AccountID: 7, Roles: entity.Roles{entity.RoleCustomer}}
	stored := storedUserInfo(8)

	fx.identityRepo.EXPECT().FindCoachByAccountID(mock.Anything, int64(8)).Return(nil, nil)
	fx.identityRepo.EXPECT().FindCustomerByAccountID(mock.Anything, int64(8)).Return(nil, nil)
	fx.identityRepo.EXPECT().FindLearnerByAccountID(mock.Anything, int64(8)).
		Return(&entity.Learner{AccountID: 8, CustomerID: 7}, nil)
	fx.identityRepo.EXPECT().FindCustomerByAccountID(mock.Anything, int64(7)).
		Return(&entity.Customer{AccountID: 7}, nil)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockInfoRepo := mockRepo.NewMockUserInfoRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().UserInfoRepo().Return(mockInfoRepo)
			mockAccountRepo.EXPECT().FindByID(ctx, int64(8)).Return(&entity.Account{ID: 8}, nil)
			mockInfoRepo.EXPECT().FindByAccountID(ctx, int64(8)).Return(stored, nil)

			return fn(mockFactory)
		})

	view, err := fx.service.GetVisibleProfile(ctx, sess, 8, usecase.DetailFull)

	require.NoError(t, err)
	assert.Equal(t, stored, view)
}

func TestProfileService_GetVisibleProfile_CustomerDeniedForeignLearner(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	sess := usecase.Session{AccountID: 7, Roles: entity.Roles{entity.RoleCustomer}}

	fx.identityRepo.EXPECT().FindCoachByAccountID(mock.Anything, int64(8)).Return(nil, nil)
	fx.identityRepo.EXPECT().FindCustomerByAccountID(mock.Anything, int64(8)).Return(nil, nil)
	fx.identityRepo.EXPECT().FindLearnerByAccountID(mock.Anything, int64(8)).
		Return(&entity.Learner{AccountID: 8, CustomerID: 99}, nil)
	fx.identityRepo.EXPECT().FindCustomerByAccountID(mock.Anything, int64(7)).
		Return(&entity.Customer{AccountID: 7}, nil)

	_, err := fx.service.GetVisibleProfile(ctx, sess, 8, usecase.DetailFull)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestProfileService_GetVisibleProfile_MissingAccountHasConstantShape(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	sess := usecase.Session{AccountID: 1, Roles: entity.Roles{entity.RoleAdmin}}

	expectNoProjections(fx, 1, 404)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByID(ctx, int64(404)).Return(nil, repository.ErrAccountNotFound)

			return fn(mockFactory)
		})

	_, err := fx.service.GetVisibleProfile(ctx, sess, 404, usecase.DetailFull)

	require.Error(t, err)
	// A missing account is indistinguishable from a denied one.
	assert.ErrorIs(t, err, domainerrors.ErrAccessDenied)
}

func TestProfileService_GetVisibleProfile_MissingRecordRendersDefaults(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	sess := usecase.Session{AccountID: 7, Roles: entity.Roles{entity.RoleLearner}}
	account := &entity.Account{ID: 7, AccessGroup: entity.Roles{entity.RoleLearner}}

	expectNoProjections(fx, 7, 7)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockInfoRepo := mockRepo.NewMockUserInfoRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().UserInfoRepo().Return(mockInfoRepo)
			mockAccountRepo.EXPECT().FindByID(ctx, int64(7)).Return(account, nil)
			mockInfoRepo.EXPECT().FindByAccountID(ctx, int64(7)).Return(nil, repository.ErrUserInfoNotFound)

			return fn(mockFactory)
		})

	view, err := fx.service.GetVisibleProfile(ctx, sess, 7, usecase.DetailFull)

	require.NoError(t, err)
	assert.Equal(t, int64(7), view.AccountID)
	assert.Equal(t, entity.GenderSecret, view.Gender)
	assert.Equal(t, entity.UserStatePending, view.UserState)
	assert.Equal(t, account.AccessGroup, view.AccessGroup)
}

func TestProfileService_GetVisibleProfile_FactGatheringError(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	sess := usecase.Session{AccountID: 7, Roles: entity.Roles{entity.RoleAdmin}}

	fx.identityRepo.EXPECT().FindCoachByAccountID(mock.Anything, int64(8)).
		Return(nil, errors.New("database error")).Maybe()
	fx.identityRepo.EXPECT().FindCustomerByAccountID(mock.Anything, int64(8)).Return(nil, nil).Maybe()
	fx.identityRepo.EXPECT().FindLearnerByAccountID(mock.Anything, int64(8)).Return(nil, nil).Maybe()
	fx.identityRepo.EXPECT().FindCustomerByAccountID(mock.Anything, int64(7)).Return(nil, nil).Maybe()

	_, err := fx.service.GetVisibleProfile(ctx, sess, 8, usecase.DetailFull)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to gather ownership facts")
}

func TestProfileService_UpdateVisibleProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	sess := usecase.Session{AccountID: 7, Roles: entity.Roles{entity.RoleLearner}}
	stored := storedUserInfo(7)
	nickname := "fresh-nick"
	patch := &usecase.UpdateUserInfoInput{Nickname: &nickname}

	expectNoProjections(fx, 7, 7)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInfoRepo := mockRepo.NewMockUserInfoRepository(t)

			mockFactory.EXPECT().UserInfoRepo().Return(mockInfoRepo)
			mockInfoRepo.EXPECT().FindByAccountID(ctx, int64(7)).Return(stored, nil)
			mockInfoRepo.EXPECT().NicknameTaken(ctx, "fresh-nick", int64(7)).Return(false, nil)
			mockInfoRepo.EXPECT().Save(ctx, stored).Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishProfileEvent(ctx, mock.AnythingOfType("*service.ProfileEvent")).
		Return(nil)

	view, updated, err := fx.service.UpdateVisibleProfile(ctx, sess, 7, patch)

	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, "fresh-nick", view.Nickname)
}

func TestProfileService_UpdateVisibleProfile_NoopPatch(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	sess := usecase.Session{AccountID: 7, Roles: entity.Roles{entity.RoleLearner}}
	stored := storedUserInfo(7)
	nickname := stored.Nickname
	patch := &usecase.UpdateUserInfoInput{Nickname: &nickname}

	expectNoProjections(fx, 7, 7)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInfoRepo := mockRepo.NewMockUserInfoRepository(t)

			mockFactory.EXPECT().UserInfoRepo().Return(mockInfoRepo)
			// Re-sending the current state must not reach Save.
			mockInfoRepo.EXPECT().FindByAccountID(ctx, int64(7)).Return(stored, nil)

			return fn(mockFactory)
		})

	view, updated, err := fx.service.UpdateVisibleProfile(ctx, sess, 7, patch)

	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, stored, view)
}

func TestProfileService_UpdateVisibleProfile_ManagerForbiddenField(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	sess := usecase.Session{AccountID: 1, Roles: entity.Roles{entity.RoleManager}}
	userState := string(entity.UserStateSuspended)
	nickname := "renamed"
	patch := &usecase.UpdateUserInfoInput{Nickname: &nickname, UserState: &userState}

	fx.identityRepo.EXPECT().FindCoachByAccountID(mock.Anything, int64(8)).Return(nil, nil)
	fx.identityRepo.EXPECT().FindCustomerByAccountID(mock.Anything, int64(8)).
		Return(&entity.Customer{AccountID: 8}, nil)
	fx.identityRepo.EXPECT().FindLearnerByAccountID(mock.Anything, int64(8)).Return(nil, nil)
	fx.identityRepo.EXPECT().FindCustomerByAccountID(mock.Anything, int64(1)).Return(nil, nil)

	_, updated, err := fx.service.UpdateVisibleProfile(ctx, sess, 8, patch)

	require.Error(t, err)
	// One forbidden field fails the whole patch; the writable nickname must
	// not slip through.
	assert.ErrorIs(t, err, domainerrors.ErrFieldForbidden)
	assert.False(t, updated)
}

func TestProfileService_UpdateVisibleProfile_AdminMayWriteUserState(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	sess := usecase.Session{AccountID: 1, Roles: entity.Roles{entity.RoleAdmin}}
	stored := storedUserInfo(8)
	userState := string(entity.UserStateSuspended)
	patch := &usecase.UpdateUserInfoInput{UserState: &userState}

	expectNoProjections(fx, 1, 8)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInfoRepo := mockRepo.NewMockUserInfoRepository(t)

			mockFactory.EXPECT().UserInfoRepo().Return(mockInfoRepo)
			mockInfoRepo.EXPECT().FindByAccountID(ctx, int64(8)).Return(stored, nil)
			mockInfoRepo.EXPECT().Save(ctx, stored).Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishProfileEvent(ctx, mock.AnythingOfType("*service.ProfileEvent")).
		Return(nil)

	view, updated, err := fx.service.UpdateVisibleProfile(ctx, sess, 8, patch)

	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, entity.UserStateSuspended, view.UserState)
}

func TestProfileService_UpdateVisibleProfile_ValidationFailed(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	sess := usecase.Session{AccountID: 7, Roles: entity.Roles{entity.RoleLearner}}
	birthDate := "31/12/1999"
	patch := &usecase.UpdateUserInfoInput{BirthDate: &birthDate}

	expectNoProjections(fx, 7, 7)

	_, updated, err := fx.service.UpdateVisibleProfile(ctx, sess, 7, patch)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.False(t, updated)
}

func TestProfileService_UpdateVisibleProfile_ProfileNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	sess := usecase.Session{AccountID: 7, Roles: entity.Roles{entity.RoleLearner}}
	nickname := "fresh-nick"
	patch := &usecase.UpdateUserInfoInput{Nickname: &nickname}

	expectNoProjections(fx, 7, 7)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInfoRepo := mockRepo.NewMockUserInfoRepository(t)

			mockFactory.EXPECT().UserInfoRepo().Return(mockInfoRepo)
			mockInfoRepo.EXPECT().FindByAccountID(ctx, int64(7)).Return(nil, repository.ErrUserInfoNotFound)

			return fn(mockFactory)
		})

	_, updated, err := fx.service.UpdateVisibleProfile(ctx, sess, 7, patch)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	assert.False(t, updated)
}

func TestProfileService_UpdateVisibleProfile_NicknameTaken(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	sess := usecase.Session{AccountID: 7, Roles: entity.Roles{entity.RoleLearner}}
	stored := storedUserInfo(7)
	nickname := "fresh-nick"
	patch := &usecase.UpdateUserInfoInput{Nickname: &nickname}

	expectNoProjections(fx, 7, 7)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInfoRepo := mockRepo.NewMockUserInfoRepository(t)

			mockFactory.EXPECT().UserInfoRepo().Return(mockInfoRepo)
			mockInfoRepo.EXPECT().FindByAccountID(ctx, int64(7)).Return(stored, nil)
			mockInfoRepo.EXPECT().NicknameTaken(ctx, "fresh-nick", int64(7)).Return(true, nil)

			return fn(mockFactory)
		})

	_, updated, err := fx.service.UpdateVisibleProfile(ctx, sess, 7, patch)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNicknameTaken)
	assert.False(t, updated)
}

func TestProfileService_UpdateVisibleProfile_PublishFailureIsNotFatal(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	sess := usecase.Session{AccountID: 7, Roles: entity.Roles{entity.RoleLearner}}
	stored := storedUserInfo(7)
	signature := "new signature"
	patch := &usecase.UpdateUserInfoInput{Signature: &signature}

	expectNoProjections(fx, 7, 7)

	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockInfoRepo := mockRepo.NewMockUserInfoRepository(t)

			mockFactory.EXPECT().UserInfoRepo().Return(mockInfoRepo)
			mockInfoRepo.EXPECT().FindByAccountID(ctx, int64(7)).Return(stored, nil)
			mockInfoRepo.EXPECT().Save(ctx, stored).Return(nil)

			return fn(mockFactory)
		})

	fx.publisher.EXPECT().
		PublishProfileEvent(ctx, mock.AnythingOfType("*service.ProfileEvent")).
		Return(errors.New("broker unavailable"))

	view, updated, err := fx.service.UpdateVisibleProfile(ctx, sess, 7, patch)

	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, "new signature", view.Signature)
}

func TestProfileService_UpdateVisibleProfile_InvalidTarget(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	sess := usecase.Session{AccountID: 7, Roles: entity.Roles{entity.RoleAdmin}}

	_, updated, err := fx.service.UpdateVisibleProfile(ctx, sess, -1, &usecase.UpdateUserInfoInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTarget)
	assert.False(t, updated)
}
