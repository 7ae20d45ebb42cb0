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

type automationRuleRepository struct {
	db *gorm.DB
}

func NewAutomationRuleRepository(db *gorm.DB) repository.AutomationRuleRepository {
	return &automationRuleRepository{db: db}
}

func (repo *automationRuleRepository) Create(ctx context.Context, rule *entity.AutomationRule) error {
	ruleM := fromAutomationRuleDomain(rule)

	if err := repo.db.WithContext(ctx).Create(ruleM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSocialAccountNotFound.WrapMessage("invalid social account reference")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("interval_minutes and daily_limit must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create automation rule")
	}

	rule.ID = ruleM.ID
	rule.CreatedAt = ruleM.CreatedAt
	rule.UpdatedAt = ruleM.UpdatedAt

	return nil
}

func (repo *automationRuleRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.AutomationRule, error) {
	var ruleM model.AutomationRuleModel
	err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&ruleM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAutomationRuleNotFound
		}

		return nil, errors.Wrap(err, "failed to find automation rule")
	}

	return toAutomationRuleDomain(&ruleM), nil
}

func (repo *automationRuleRepository) List(ctx context.Context, filter repository.AutomationRuleFilter) (*entity.Page[*entity.AutomationRule], error) {
	query := repo.db.Model(&model.AutomationRuleModel{}).Where("user_id = ?", filter.UserID)
	if filter.Status != "" {
		query = query.Where("status = ?", string(filter.Status))
	}
	if filter.AutomationType != "" {
		query = query.Where("automation_type = ?", string(filter.AutomationType))
	}
	if filter.SocialAccountID != nil {
		query = query.Where("social_account_id = ?", *filter.SocialAccountID)
	}

	rows, total, err := paginate[model.AutomationRuleModel](ctx, query, filter.Page, "created_at DESC")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list automation rules")
	}

	return mapPage(rows, total, filter.Page, toAutomationRuleDomain), nil
}

func (repo *automationRuleRepository) Update(ctx context.Context, rule *entity.AutomationRule) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.AutomationRuleModel{}).
		Where("id = ? AND user_id = ?", rule.ID, rule.UserID).
		Updates(map[string]any{
			"social_account_id": rule.SocialAccountID,
			"name":              rule.Name,
			"automation_type":   string(rule.AutomationType),
			"target":            rule.Target,
			"message":           rule.Message,
			"interval_minutes":  rule.IntervalMinutes,
			"daily_limit":       rule.DailyLimit,
			"status":            string(rule.Status),
			"is_active":         rule.IsActive,
			"updated_at":        now,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update automation rule")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAutomationRuleNotFound
	}

	rule.UpdatedAt = now

	return nil
}

func (repo *automationRuleRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.AutomationRuleModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete automation rule")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAutomationRuleNotFound
	}

	return nil
}

func toAutomationRuleDomain(data *model.AutomationRuleModel) *entity.AutomationRule {
	return &entity.AutomationRule{
		ID:              data.ID,
		UserID:          data.UserID,
		SocialAccountID: data.SocialAccountID,
		Name:            data.Name,
		AutomationType:  entity.AutomationType(data.AutomationType),
		Target:          data.Target,
		Message:         data.Message,
		IntervalMinutes: data.IntervalMinutes,
		DailyLimit:      data.DailyLimit,
		Status:          entity.AutomationStatus(data.Status),
		IsActive:        data.IsActive,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromAutomationRuleDomain(data *entity.AutomationRule) *model.AutomationRuleModel {
	return &model.AutomationRuleModel{
		ID:              data.ID,
		UserID:          data.UserID,
		SocialAccountID: data.SocialAccountID,
		Name:            data.Name,
		AutomationType:  string(data.AutomationType),
		Target:          data.Target,
		Message:         data.Message,
		IntervalMinutes: data.IntervalMinutes,
		DailyLimit:      data.DailyLimit,
		Status:          string(data.Status),
		IsActive:        data.IsActive,
	}
}
