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

// userInfoRepository implements the domain.UserInfoRepository interface using GORM.
type userInfoRepository struct {
	db *gorm.DB
}

// NewUserInfoRepository is the constructor for userInfoRepository.
func NewUserInfoRepository(db *gorm.DB) repository.UserInfoRepository {
	return &userInfoRepository{db: db}
}

// FindByAccountID retrieves the profile record owned by the given account.
func (repo *userInfoRepository) FindByAccountID(ctx context.Context, accountID int64) (*entity.UserInfo, error) {
	var infoM model.UserInfoModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		First(&infoM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserInfoNotFound
		}

		return nil, errors.Wrap(err, "failed to find user info by account id")
	}

	return toUserInfoDomain(&infoM), nil
}

// Save persists the full profile record. The partial unique index on nickname
// backs up the pre-save uniqueness check; a race between two writers surfaces
// here as ErrNicknameTaken.
func (repo *userInfoRepository) Save(ctx context.Context, info *entity.UserInfo) error {
	infoM := fromUserInfoDomain(info)

	if err := repo.db.WithContext(ctx).Save(infoM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrNicknameTaken.WrapMessage("nickname already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to save user info")
	}

	info.UpdatedAt = infoM.UpdatedAt

	return nil
}

// NicknameTaken reports whether another account already uses the given
// non-empty nickname.
func (repo *userInfoRepository) NicknameTaken(ctx context.Context, nickname string, excludeAccountID int64) (bool, error) {
	if nickname == "" {
		return false, nil
	}

	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserInfoModel{}).
		Where("nickname = ? AND account_id <> ?", nickname, excludeAccountID).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to count nickname usage")
	}

	return count > 0, nil
}

// toUserInfoDomain maps the persistence model back to a pure domain entity.
func toUserInfoDomain(m *model.UserInfoModel) *entity.UserInfo {
	info := &entity.UserInfo{
		AccountID:   m.AccountID,
		Nickname:    m.Nickname,
		Gender:      entity.Gender(m.Gender),
		BirthDate:   m.BirthDate,
		AvatarURL:   m.AvatarURL,
		Email:       m.Email,
		Signature:   m.Signature,
		AccessGroup: entity.RolesFromStrings(m.AccessGroup),
		Address:     m.Address,
		Phone:       m.Phone,
		Tags:        m.Tags,
		NotifyCount: m.NotifyCount,
		UnreadCount: m.UnreadCount,
		UserState:   entity.UserState(m.UserState),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Geographic != nil {
		info.Geographic = &entity.Geographic{
			Province: m.Geographic.Province,
			City:     m.Geographic.City,
		}
	}

	return info
}

// fromUserInfoDomain maps a pure domain entity to a GORM persistence model.
func fromUserInfoDomain(info *entity.UserInfo) *model.UserInfoModel {
	infoM := &model.UserInfoModel{
		AccountID:   info.AccountID,
		Nickname:    info.Nickname,
		Gender:      string(info.Gender),
		BirthDate:   info.BirthDate,
		AvatarURL:   info.AvatarURL,
		Email:       info.Email,
		Signature:   info.Signature,
		AccessGroup: info.AccessGroup.ToStrings(),
		Address:     info.Address,
		Phone:       info.Phone,
		Tags:        info.Tags,
		NotifyCount: info.NotifyCount,
		UnreadCount: info.UnreadCount,
		UserState:   string(info.UserState),
		CreatedAt:   info.CreatedAt,
		UpdatedAt:   info.UpdatedAt,
	}
	if info.Geographic != nil {
		infoM.Geographic = &model.GeographicModel{
			Province: info.Geographic.Province,
			City:     info.Geographic.City,
		}
	}

	return infoM
}
