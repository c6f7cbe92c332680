package impl

import (
	"context"
	"log/slog"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/usecase"

	"github.com/pkg/errors"
)

// identityService resolves one declared role to its stored projection.
type identityService struct {
	identityRepo repository.IdentityRepository
	logger       *slog.Logger
}

// NewIdentityService is the constructor for identityService.
func NewIdentityService(identityRepo repository.IdentityRepository, logger *slog.Logger) usecase.IdentityUsecase {
	return &identityService{
		identityRepo: identityRepo,
		logger:       logger,
	}
}

// Resolve looks up the projection record for the declared role. Roles without
// a projection (admin, registrant) and absent or deactivated records resolve
// to the same not-found error.
func (srv *identityService) Resolve(ctx context.Context, accountID int64, declaredRole entity.Role) (entity.Identity, error) {
	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Debug("Resolving identity",
		slog.Int64("accountID", accountID), slog.String("role", string(declaredRole)))

	if accountID <= 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidTarget)
	}

	var (
		identity entity.Identity
		err      error
	)

	switch declaredRole {
	case entity.RoleManager:
		var manager *entity.Manager
		manager, err = srv.identityRepo.FindManagerByAccountID(ctx, accountID)
		if manager != nil {
			identity = manager
		}
	case entity.RoleCoach:
		var coach *entity.Coach
		coach, err = srv.identityRepo.FindCoachByAccountID(ctx, accountID)
		if coach != nil {
			identity = coach
		}
	case entity.RoleCustomer:
		var customer *entity.Customer
		customer, err = srv.identityRepo.FindCustomerByAccountID(ctx, accountID)
		if customer != nil {
			identity = customer
		}
	case entity.RoleLearner:
		var learner *entity.Learner
		learner, err = srv.identityRepo.FindLearnerByAccountID(ctx, accountID)
		if learner != nil {
			identity = learner
		}
	case entity.RoleStaff:
		var staff *entity.Staff
		staff, err = srv.identityRepo.FindStaffByAccountID(ctx, accountID)
		if staff != nil {
			identity = staff
		}
	default:
		return nil, errors.Wrapf(domainerrors.ErrIdentityNotFound, "role %q has no identity projection", declaredRole)
	}

	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve identity")
	}
	if identity == nil {
		return nil, errors.Wrapf(domainerrors.ErrIdentityNotFound, "no %s identity for account %d", declaredRole, accountID)
	}

	return identity, nil
}
