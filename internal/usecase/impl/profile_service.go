// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "academy/internal/delivery/context"
	"academy/internal/domain/access"
	"academy/internal/domain/entity"
	domainerrors "academy/internal/domain/errors"
	"academy/internal/domain/repository"
	"academy/internal/domain/service"
	"academy/internal/usecase"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	maxNicknameRunes  = 50
	maxAvatarURLRunes = 255
	maxEmailRunes     = 254
	maxSignatureRunes = 200
	maxAddressRunes   = 200
	maxPhoneRunes     = 20
	maxTagCount       = 10
	maxTagRunes       = 20
	maxGeoRunes       = 50

	birthDateLayout = "2006-01-02"
)

// profileService implements the ProfileUsecase interface. It is stateless:
// every decision is scoped to one request, and ownership facts are gathered
// fresh each time.
type profileService struct {
	txManager    repository.TransactionManager
	identityRepo repository.IdentityRepository
	publisher    service.ProfileEventPublisher
	logger       *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	identityRepo repository.IdentityRepository,
	publisher service.ProfileEventPublisher,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager:    txManager,
		identityRepo: identityRepo,
		publisher:    publisher,
		logger:       logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetVisibleProfile authorizes the read and returns the target's view at the
// requested detail level.
func (srv *profileService) GetVisibleProfile(ctx context.Context, sess usecase.Session, targetAccountID int64, detail usecase.DetailLevel) (*entity.UserInfo, error) {
	srv.log(ctx).Debug("Getting visible profile",
		slog.Int64("actorID", sess.AccountID), slog.Int64("targetID", targetAccountID), slog.String("detail", string(detail)))

	if targetAccountID <= 0 {
		return nil, errors.WithStack(domainerrors.ErrInvalidTarget)
	}

	facts, err := srv.gatherFacts(ctx, sess, targetAccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to gather ownership facts")
	}

	if !access.CanView(sess.Roles, facts) {
		return nil, errors.WithStack(domainerrors.ErrAccessDenied)
	}

	var view *entity.UserInfo

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		account, err := repoFactory.AccountRepo().FindByID(ctx, targetAccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				// Constant shape: the caller must not learn whether the
				// account exists.
				return errors.Wrap(domainerrors.ErrAccessDenied, "target account does not exist")
			}

			return errors.Wrap(err, "failed to find target account")
		}

		info, err := repoFactory.UserInfoRepo().FindByAccountID(ctx, targetAccountID)
		if err != nil {
			if errors.Is(err, repository.ErrUserInfoNotFound) {
				// Login-time reads tolerate a missing record; render defaults.
				view = entity.DefaultUserInfo(targetAccountID, account.AccessGroup)

				return nil
			}

			return errors.Wrap(err, "failed to find user info")
		}
		view = info

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get visible profile")
	}

	if detail == usecase.DetailBasic {
		view = view.Basic()
	}

	return view, nil
}

// UpdateVisibleProfile authorizes the write, sanitizes the patch against the
// actor's writable field set, and persists only a real change.
func (srv *profileService) UpdateVisibleProfile(ctx context.Context, sess usecase.Session, targetAccountID int64, patch *usecase.UpdateUserInfoInput) (*entity.UserInfo, bool, error) {
	srv.log(ctx).Info("Updating visible profile",
		slog.Int64("actorID", sess.AccountID), slog.Int64("targetID", targetAccountID))

	if targetAccountID <= 0 {
		return nil, false, errors.WithStack(domainerrors.ErrInvalidTarget)
	}
	if patch == nil {
		patch = &usecase.UpdateUserInfoInput{}
	}

	facts, err := srv.gatherFacts(ctx, sess, targetAccountID)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to gather ownership facts")
	}

	if !access.CanView(sess.Roles, facts) {
		return nil, false, errors.WithStack(domainerrors.ErrAccessDenied)
	}

	// The whole patch is rejected when any supplied field is outside the
	// writable set; nothing is partially applied.
	allowed := access.AllowedFields(sess.Roles, facts.IsSelf)
	for _, field := range patch.PresentFields() {
		if !allowed.Has(field) {
			return nil, false, errors.Wrapf(domainerrors.ErrFieldForbidden, "field %q is not writable for this actor", field)
		}
	}

	norm, err := normalizePatch(patch)
	if err != nil {
		return nil, false, err
	}

	var (
		view    *entity.UserInfo
		changed []access.Field
	)

	// Re-read, diff, uniqueness re-check and save run in a single
	// transaction so a concurrent update cannot be silently overwritten by a
	// decision made against stale state.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		infoRepo := repoFactory.UserInfoRepo()

		current, err := infoRepo.FindByAccountID(ctx, targetAccountID)
		if err != nil {
			if errors.Is(err, repository.ErrUserInfoNotFound) {
				// Creating a profile implicitly during an update would mask
				// a data-integrity problem.
				return errors.Wrap(domainerrors.ErrProfileNotFound, "no stored profile for target")
			}

			return errors.Wrap(err, "failed to find user info")
		}

		changed = applyPatch(current, norm)
		if len(changed) == 0 {
			view = current

			return nil
		}

		if slices.Contains(changed, access.FieldNickname) {
			taken, err := infoRepo.NicknameTaken(ctx, current.Nickname, targetAccountID)
			if err != nil {
				return errors.Wrap(err, "failed to check nickname uniqueness")
			}
			if taken {
				return errors.Wrap(domainerrors.ErrNicknameTaken, "nickname already in use")
			}
		}

		if err := infoRepo.Save(ctx, current); err != nil {
			return errors.Wrap(err, "failed to save user info")
		}
		view = current

		return nil
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to update visible profile")
	}

	updated := len(changed) > 0
	if updated {
		srv.publishProfileEvent(ctx, targetAccountID, changed, view.UpdatedAt)
	}

	return view, updated, nil
}

// gatherFacts issues the four independent projection lookups concurrently;
// the policy never runs against partial facts. Storage failures propagate as
// is; absence is a fact, not an error.
func (srv *profileService) gatherFacts(ctx context.Context, sess usecase.Session, targetAccountID int64) (access.OwnershipFacts, error) {
	facts := access.OwnershipFacts{IsSelf: sess.AccountID == targetAccountID}

	var (
		targetCoach    *entity.Coach
		targetCustomer *entity.Customer
		targetLearner  *entity.Learner
		actorCustomer  *entity.Customer
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		targetCoach, err = srv.identityRepo.FindCoachByAccountID(groupCtx, targetAccountID)

		return errors.Wrap(err, "find target coach")
	})
	group.Go(func() error {
		var err error
		targetCustomer, err = srv.identityRepo.FindCustomerByAccountID(groupCtx, targetAccountID)

		return errors.Wrap(err, "find target customer")
	})
	group.Go(func() error {
		var err error
		targetLearner, err = srv.identityRepo.FindLearnerByAccountID(groupCtx, targetAccountID)

		return errors.Wrap(err, "find target learner")
	})
	group.Go(func() error {
		var err error
		actorCustomer, err = srv.identityRepo.FindCustomerByAccountID(groupCtx, sess.AccountID)

		return errors.Wrap(err, "find actor customer")
	})

	if err := group.Wait(); err != nil {
		return access.OwnershipFacts{}, err
	}

	facts.TargetIsCoach = targetCoach != nil
	facts.TargetIsCustomer = targetCustomer != nil
	facts.TargetIsLearner = targetLearner != nil
	facts.CustomerOwnsTargetLearner = targetLearner != nil &&
		actorCustomer != nil &&
		targetLearner.CustomerID == actorCustomer.AccountID

	return facts, nil
}

// publishProfileEvent announces the change best-effort; a publish failure is
// logged and never fails the update.
func (srv *profileService) publishProfileEvent(ctx context.Context, accountID int64, changed []access.Field, updatedAt time.Time) {
	if srv.publisher == nil {
		return
	}

	changedFields := make([]string, len(changed))
	for i, f := range changed {
		changedFields[i] = string(f)
	}

	event := &service.ProfileEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		AccountID:     accountID,
		ChangedFields: changedFields,
		UpdatedAt:     updatedAt,
	}
	if err := srv.publisher.PublishProfileEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish profile event",
			slog.Int64("accountID", accountID), slog.Any("error", err))
	}
}

// normalizePatch validates and normalizes every supplied field. It returns a
// patch whose values are ready for direct comparison against stored state, or
// a VALIDATION_FAILED error naming the offending field.
func normalizePatch(patch *usecase.UpdateUserInfoInput) (*usecase.UpdateUserInfoInput, error) {
	norm := *patch

	if patch.Nickname != nil {
		nickname := strings.TrimSpace(*patch.Nickname)
		if nickname == "" {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "nickname must not be empty")
		}
		if utf8.RuneCountInString(nickname) > maxNicknameRunes {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "nickname exceeds %d characters", maxNicknameRunes)
		}
		norm.Nickname = &nickname
	}

	if patch.Gender != nil {
		if !entity.Gender(*patch.Gender).IsValid() {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown gender %q", *patch.Gender)
		}
	}

	if patch.BirthDate != nil && *patch.BirthDate != "" {
		if _, err := time.Parse(birthDateLayout, *patch.BirthDate); err != nil {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "birth date must be YYYY-MM-DD")
		}
	}

	if patch.AvatarURL != nil && utf8.RuneCountInString(*patch.AvatarURL) > maxAvatarURLRunes {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "avatar url exceeds %d characters", maxAvatarURLRunes)
	}

	if patch.Email != nil && *patch.Email != "" {
		if utf8.RuneCountInString(*patch.Email) > maxEmailRunes {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "email exceeds %d characters", maxEmailRunes)
		}
		if _, err := mail.ParseAddress(*patch.Email); err != nil {
			return nil, errors.Wrap(domainerrors.ErrValidationFailed, "malformed email address")
		}
	}

	if patch.Signature != nil && utf8.RuneCountInString(*patch.Signature) > maxSignatureRunes {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "signature exceeds %d characters", maxSignatureRunes)
	}

	if patch.Address != nil && utf8.RuneCountInString(*patch.Address) > maxAddressRunes {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "address exceeds %d characters", maxAddressRunes)
	}

	if patch.Phone != nil && utf8.RuneCountInString(*patch.Phone) > maxPhoneRunes {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "phone exceeds %d characters", maxPhoneRunes)
	}

	if patch.Tags != nil {
		tags := *patch.Tags
		if len(tags) > maxTagCount {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "at most %d tags allowed", maxTagCount)
		}
		normTags := make([]string, 0, len(tags))
		for _, tag := range tags {
			tag = strings.TrimSpace(tag)
			if tag == "" {
				return nil, errors.Wrap(domainerrors.ErrValidationFailed, "tags must not be empty")
			}
			if utf8.RuneCountInString(tag) > maxTagRunes {
				return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "tag exceeds %d characters", maxTagRunes)
			}
			normTags = append(normTags, tag)
		}
		norm.Tags = &normTags
	}

	if patch.Geographic != nil {
		if utf8.RuneCountInString(patch.Geographic.Province) > maxGeoRunes ||
			utf8.RuneCountInString(patch.Geographic.City) > maxGeoRunes {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "geographic fields exceed %d characters", maxGeoRunes)
		}
	}

	if patch.UserState != nil {
		if !entity.UserState(*patch.UserState).IsValid() {
			return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "unknown user state %q", *patch.UserState)
		}
	}

	if patch.NotifyCount != nil && *patch.NotifyCount < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "notify count must not be negative")
	}
	if patch.UnreadCount != nil && *patch.UnreadCount < 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unread count must not be negative")
	}

	return &norm, nil
}

// applyPatch writes the normalized values onto the stored record and reports
// which fields actually changed. Structured fields are compared by deep
// equality so re-sending the current state is a no-op.
func applyPatch(current *entity.UserInfo, norm *usecase.UpdateUserInfoInput) []access.Field {
	var changed []access.Field

	if norm.Nickname != nil && *norm.Nickname != current.Nickname {
		current.Nickname = *norm.Nickname
		changed = append(changed, access.FieldNickname)
	}
	if norm.Gender != nil && entity.Gender(*norm.Gender) != current.Gender {
		current.Gender = entity.Gender(*norm.Gender)
		changed = append(changed, access.FieldGender)
	}
	if norm.BirthDate != nil {
		if *norm.BirthDate == "" {
			if current.BirthDate != nil {
				current.BirthDate = nil
				changed = append(changed, access.FieldBirthDate)
			}
		} else if current.BirthDate == nil || *current.BirthDate != *norm.BirthDate {
			birthDate := *norm.BirthDate
			current.BirthDate = &birthDate
			changed = append(changed, access.FieldBirthDate)
		}
	}
	if norm.AvatarURL != nil && *norm.AvatarURL != current.AvatarURL {
		current.AvatarURL = *norm.AvatarURL
		changed = append(changed, access.FieldAvatarURL)
	}
	if norm.Email != nil && *norm.Email != current.Email {
		current.Email = *norm.Email
		changed = append(changed, access.FieldEmail)
	}
	if norm.Signature != nil && *norm.Signature != current.Signature {
		current.Signature = *norm.Signature
		changed = append(changed, access.FieldSignature)
	}
	if norm.Address != nil && *norm.Address != current.Address {
		current.Address = *norm.Address
		changed = append(changed, access.FieldAddress)
	}
	if norm.Phone != nil && *norm.Phone != current.Phone {
		current.Phone = *norm.Phone
		changed = append(changed, access.FieldPhone)
	}
	if norm.Tags != nil && !slices.Equal(*norm.Tags, current.Tags) {
		current.Tags = slices.Clone(*norm.Tags)
		changed = append(changed, access.FieldTags)
	}
	if norm.Geographic != nil {
		geo := entity.Geographic{Province: norm.Geographic.Province, City: norm.Geographic.City}
		if current.Geographic == nil || *current.Geographic != geo {
			current.Geographic = &geo
			changed = append(changed, access.FieldGeographic)
		}
	}
	if norm.UserState != nil && entity.UserState(*norm.UserState) != current.UserState {
		current.UserState = entity.UserState(*norm.UserState)
		changed = append(changed, access.FieldUserState)
	}
	if norm.NotifyCount != nil && *norm.NotifyCount != current.NotifyCount {
		current.NotifyCount = *norm.NotifyCount
		changed = append(changed, access.FieldNotifyCount)
	}
	if norm.UnreadCount != nil && *norm.UnreadCount != current.UnreadCount {
		current.UnreadCount = *norm.UnreadCount
		changed = append(changed, access.FieldUnreadCount)
	}

	return changed
}
