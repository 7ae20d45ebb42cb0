package usecase

import (
	"context"

	"syncfloww/internal/domain/entity"
	"syncfloww/internal/domain/repository"

	"github.com/google/uuid"
)

type CreateAutomationRuleInput struct {
	SocialAccountID uuid.UUID
	Name            string
	AutomationType  entity.AutomationType
	Target          string
	Message         string
	IntervalMinutes *int
	DailyLimit      *int
	Status          entity.AutomationStatus
	IsActive        *bool
}

// UpdateAutomationRuleInput leaves nil fields unchanged.
type UpdateAutomationRuleInput struct {
	SocialAccountID *uuid.UUID
	Name            *string
	AutomationType  *entity.AutomationType
	Target          *string
	Message         *string
	IntervalMinutes *int
	DailyLimit      *int
	Status          *entity.AutomationStatus
	IsActive        *bool
}

type AutomationUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input *CreateAutomationRuleInput) (*entity.AutomationRule, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*entity.AutomationRule, error)
	List(ctx context.Context, filter repository.AutomationRuleFilter) (*entity.Page[*entity.AutomationRule], error)
	Update(ctx context.Context, userID, id uuid.UUID, input *UpdateAutomationRuleInput) (*entity.AutomationRule, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
