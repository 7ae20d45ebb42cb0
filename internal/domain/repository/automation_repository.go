package repository

import (
	"context"
	"errors"

	"syncfloww/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrAutomationRuleNotFound = errors.New("automation rule not found")

type AutomationRuleFilter struct {
	UserID          uuid.UUID
	Status          entity.AutomationStatus
	AutomationType  entity.AutomationType
	SocialAccountID *uuid.UUID
	Page            entity.PageRequest
}

type AutomationRuleRepository interface {
	Create(ctx context.Context, rule *entity.AutomationRule) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.AutomationRule, error)
	List(ctx context.Context, filter AutomationRuleFilter) (*entity.Page[*entity.AutomationRule], error)
	Update(ctx context.Context, rule *entity.AutomationRule) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
