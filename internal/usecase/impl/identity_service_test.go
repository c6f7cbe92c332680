package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	mockRepo "academy/internal/mocks/repository"
	"academy/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// identityServiceFixtures holds all test dependencies for identity service tests.
type identityServiceFixtures struct {
	service      usecase.IdentityUsecase
	identityRepo *mockRepo.MockIdentityRepository
}

func createTestIdentityService(t *testing.T) identityServiceFixtures {
	identityRepo := mockRepo.NewMockIdentityRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewIdentityService(identityRepo, logger)

	return identityServiceFixtures{
		service:      service,
		identityRepo: identityRepo,
	}
}

func TestIdentityService_Resolve_Manager(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	manager := &entity.Manager{AccountID: 3, Department: "operations", JobTitle: "site lead"}

	fx.identityRepo.EXPECT().FindManagerByAccountID(ctx, int64(3)).Return(manager, nil)

	identity, err := fx.service.Resolve(ctx, 3, entity.RoleManager)

	require.NoError(t, err)
	assert.Equal(t, entity.IdentityKindManager, identity.Kind())
	assert.Equal(t, int64(3), identity.Account())
	assert.Equal(t, manager, identity)
}

func TestIdentityService_Resolve_Learner(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()
	learner := &entity.Learner{AccountID: 9, CustomerID: 4, Grade: "junior"}

	fx.identityRepo.EXPECT().FindLearnerByAccountID(ctx, int64(9)).Return(learner, nil)

	identity, err := fx.service.Resolve(ctx, 9, entity.RoleLearner)

	require.NoError(t, err)
	assert.Equal(t, entity.IdentityKindLearner, identity.Kind())
	assert.Equal(t, learner, identity)
}

func TestIdentityService_Resolve_NotFound(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()

	fx.identityRepo.EXPECT().FindCoachByAccountID(ctx, int64(5)).Return(nil, nil)

	_, err := fx.service.Resolve(ctx, 5, entity.RoleCoach)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityNotFound)
}

func TestIdentityService_Resolve_RoleWithoutProjection(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()

	// Admin and registrant carry no projection record; no lookup is issued.
	_, err := fx.service.Resolve(ctx, 5, entity.RoleAdmin)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityNotFound)

	_, err = fx.service.Resolve(ctx, 5, entity.RoleRegistrant)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrIdentityNotFound)
}

func TestIdentityService_Resolve_InvalidAccountID(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()

	_, err := fx.service.Resolve(ctx, 0, entity.RoleCoach)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTarget)
}

func TestIdentityService_Resolve_RepositoryError(t *testing.T) {
	fx := createTestIdentityService(t)

	ctx := context.Background()

	fx.identityRepo.EXPECT().FindStaffByAccountID(ctx, int64(5)).Return(nil, errors.New("database error"))

	_, err := fx.service.Resolve(ctx, 5, entity.RoleStaff)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to resolve identity")
}
