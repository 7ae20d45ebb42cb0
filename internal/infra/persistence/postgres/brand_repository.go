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

const defaultBrandOrder = "created_at DESC"

var brandOrderings = map[string]string{
	"created_at": "created_at",
	"name":       "name",
}

type brandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &brandRepository{db: db}
}

func (repo *brandRepository) Create(ctx context.Context, brand *entity.Brand) error {
	brandM := fromBrandDomain(brand)

	if err := repo.db.WithContext(ctx).Create(brandM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid brand owner")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create brand")
	}

	brand.ID = brandM.ID
	brand.CreatedAt = brandM.CreatedAt
	brand.UpdatedAt = brandM.UpdatedAt

	return nil
}

func (repo *brandRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Brand, error) {
	var brandM model.BrandModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&brandM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand")
	}

	return toBrandDomain(&brandM), nil
}

func (repo *brandRepository) List(ctx context.Context, filter repository.BrandFilter) (*entity.Page[*entity.Brand], error) {
	query := repo.db.Model(&model.BrandModel{}).Where("user_id = ?", filter.UserID)
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("(name ILIKE ? OR niche ILIKE ?)", pattern, pattern)
	}

	rows, total, err := paginate[model.BrandModel](ctx, query, filter.Page, orderBy(filter.Ordering, brandOrderings, defaultBrandOrder))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return mapPage(rows, total, filter.Page, toBrandDomain), nil
}

func (repo *brandRepository) Update(ctx context.Context, brand *entity.Brand) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.BrandModel{}).
		Where("id = ? AND user_id = ?", brand.ID, brand.UserID).
		Updates(map[string]any{
			"name":            brand.Name,
			"description":     brand.Description,
			"logo_url":        brand.LogoURL,
			"voice":           brand.Voice,
			"target_audience": brand.TargetAudience,
			"niche":           brand.Niche,
			"is_active":       brand.IsActive,
			"updated_at":      now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update brand")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBrandNotFound
	}

	brand.UpdatedAt = now

	return nil
}

// Delete removes the brand; its social accounts cascade with it.
func (repo *brandRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.BrandModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete brand")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBrandNotFound
	}

	return nil
}

func toBrandDomain(data *model.BrandModel) *entity.Brand {
	return &entity.Brand{
		ID:             data.ID,
		UserID:         data.UserID,
		Name:           data.Name,
		Description:    data.Description,
		LogoURL:        data.LogoURL,
		Voice:          data.Voice,
		TargetAudience: data.TargetAudience,
		Niche:          data.Niche,
		IsActive:       data.IsActive,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func fromBrandDomain(data *entity.Brand) *model.BrandModel {
	return &model.BrandModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Name:           data.Name,
		Description:    data.Description,
		LogoURL:        data.LogoURL,
		Voice:          data.Voice,
		TargetAudience: data.TargetAudience,
		Niche:          data.Niche,
		IsActive:       data.IsActive,
	}
}
