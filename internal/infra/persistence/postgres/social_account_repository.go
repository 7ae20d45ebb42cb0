package postgres

import (
	"context"
	"time"

	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/domain/repository"
	"syncfloww/internal/errors"
	"syncfloww/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type socialAccountRepository struct {
	db *gorm.DB
}

func NewSocialAccountRepository(db *gorm.DB) repository.SocialAccountRepository {
	return &socialAccountRepository{db: db}
}

func (repo *socialAccountRepository) Create(ctx context.Context, account *entity.SocialAccount) error {
	accountM := &model.SocialAccountModel{
		UserID:          account.UserID,
		BrandID:         account.BrandID,
		Platform:        string(account.Platform),
		AccountID:       account.AccountID,
		Username:        account.Username,
		DisplayName:     account.DisplayName,
		ProfileImageURL: account.ProfileImageURL,
		AccessToken:     account.AccessToken,
		RefreshToken:    account.RefreshToken,
		TokenExpiresAt:  account.TokenExpiresAt,
		IsActive:        account.IsActive,
	}

	if err := repo.db.WithContext(ctx).Omit("Brand").Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrSocialAccountAlreadyConnected.WithDetails(string(account.Platform) + ":" + account.AccountID)
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrBrandNotFound.WrapMessage("invalid brand reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create social account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

func (repo *socialAccountRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.SocialAccount, error) {
	var accountM model.SocialAccountModel
	err := repo.db.WithContext(ctx).
		Preload("Brand").
		Where("id = ? AND user_id = ?", id, userID).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSocialAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find social account")
	}

	return toSocialAccountDomain(&accountM), nil
}

func (repo *socialAccountRepository) List(ctx context.Context, filter repository.SocialAccountFilter) (*entity.Page[*entity.SocialAccount], error) {
	query := repo.db.Model(&model.SocialAccountModel{}).Where("user_id = ?", filter.UserID)
	if filter.Platform != "" {
		query = query.Where("platform = ?", string(filter.Platform))
	}
	if filter.BrandID != nil {
		query = query.Where("brand_id = ?", *filter.BrandID)
	}

	rows, total, err := paginate[model.SocialAccountModel](ctx, query, filter.Page, "created_at DESC", "Brand")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list social accounts")
	}

	return mapPage(rows, total, filter.Page, toSocialAccountDomain), nil
}

func (repo *socialAccountRepository) Update(ctx context.Context, account *entity.SocialAccount) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.SocialAccountModel{}).
		Where("id = ? AND user_id = ?", account.ID, account.UserID).
		Updates(map[string]any{
			"brand_id":   account.BrandID,
			"is_active":  account.IsActive,
			"updated_at": now,
		})
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrBrandNotFound.WrapMessage("invalid brand reference")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update social account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSocialAccountNotFound
	}

	account.UpdatedAt = now

	return nil
}

func (repo *socialAccountRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.SocialAccountModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete social account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSocialAccountNotFound
	}

	return nil
}

func toSocialAccountDomain(data *model.SocialAccountModel) *entity.SocialAccount {
	account := &entity.SocialAccount{
		ID:              data.ID,
		UserID:          data.UserID,
		BrandID:         data.BrandID,
		Platform:        entity.Platform(data.Platform),
		AccountID:       data.AccountID,
		Username:        data.Username,
		DisplayName:     data.DisplayName,
		ProfileImageURL: data.ProfileImageURL,
		AccessToken:     data.AccessToken,
		RefreshToken:    data.RefreshToken,
		TokenExpiresAt:  data.TokenExpiresAt,
		IsActive:        data.IsActive,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
	if data.Brand != nil {
		account.BrandName = data.Brand.Name
	}

	return account
}
