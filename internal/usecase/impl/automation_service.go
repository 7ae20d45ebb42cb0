package impl

import (
	"context"
	"log/slog"

	deliverycontext "syncfloww/internal/delivery/context"
	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/domain/repository"
	"syncfloww/internal/errors"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type automationService struct {
	ruleRepo   repository.AutomationRuleRepository
	socialRepo repository.SocialAccountRepository
	logger     *slog.Logger
}

type AutomationServiceParams struct {
	fx.In

	RuleRepo   repository.AutomationRuleRepository
	SocialRepo repository.SocialAccountRepository
	Logger     *slog.Logger
}

// NewAutomationService is the constructor for automationService.
func NewAutomationService(params AutomationServiceParams) usecase.AutomationUsecase {
	return &automationService{
		ruleRepo:   params.RuleRepo,
		socialRepo: params.SocialRepo,
		logger:     params.Logger,
	}
}

func (srv *automationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *automationService) Create(ctx context.Context, userID uuid.UUID, input *usecase.CreateAutomationRuleInput) (*entity.AutomationRule, error) {
	if err := srv.ensureAccount(ctx, userID, input.SocialAccountID); err != nil {
		return nil, err
	}

	rule := &entity.AutomationRule{
		UserID:          userID,
		SocialAccountID: input.SocialAccountID,
		Name:            input.Name,
		AutomationType:  input.AutomationType,
		Target:          input.Target,
		Message:         input.Message,
		IntervalMinutes: entity.DefaultIntervalMinutes,
		DailyLimit:      entity.DefaultDailyLimit,
		Status:          input.Status,
		IsActive:        true,
	}
	if rule.Status == "" {
		rule.Status = entity.AutomationStatusActive
	}
	if input.IntervalMinutes != nil {
		rule.IntervalMinutes = *input.IntervalMinutes
	}
	if input.DailyLimit != nil {
		rule.DailyLimit = *input.DailyLimit
	}
	if input.IsActive != nil {
		rule.IsActive = *input.IsActive
	}
	if err := validateRuleLimits(rule); err != nil {
		return nil, err
	}

	if err := srv.ruleRepo.Create(ctx, rule); err != nil {
		return nil, errors.Wrap(err, "failed to create automation rule")
	}

	srv.log(ctx).Info("Automation rule created", slog.Any("ruleID", rule.ID), slog.Any("userID", userID))

	return rule, nil
}

func (srv *automationService) Get(ctx context.Context, userID, id uuid.UUID) (*entity.AutomationRule, error) {
	rule, err := srv.ruleRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, translate(err, repository.ErrAutomationRuleNotFound, domainerrors.ErrAutomationRuleNotFound, "failed to find automation rule")
	}

	return rule, nil
}

func (srv *automationService) List(ctx context.Context, filter repository.AutomationRuleFilter) (*entity.Page[*entity.AutomationRule], error) {
	page, err := srv.ruleRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list automation rules")
	}

	return page, nil
}

func (srv *automationService) Update(ctx context.Context, userID, id uuid.UUID, input *usecase.UpdateAutomationRuleInput) (*entity.AutomationRule, error) {
	rule, err := srv.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if input.SocialAccountID != nil && *input.SocialAccountID != rule.SocialAccountID {
		if err := srv.ensureAccount(ctx, userID, *input.SocialAccountID); err != nil {
			return nil, err
		}
		rule.SocialAccountID = *input.SocialAccountID
	}
	setString(&rule.Name, input.Name)
	setString(&rule.Target, input.Target)
	setString(&rule.Message, input.Message)
	if input.AutomationType != nil {
		rule.AutomationType = *input.AutomationType
	}
	if input.IntervalMinutes != nil {
		rule.IntervalMinutes = *input.IntervalMinutes
	}
	if input.DailyLimit != nil {
		rule.DailyLimit = *input.DailyLimit
	}
	if input.Status != nil {
		rule.Status = *input.Status
	}
	if input.IsActive != nil {
		rule.IsActive = *input.IsActive
	}
	if err := validateRuleLimits(rule); err != nil {
		return nil, err
	}

	if err := srv.ruleRepo.Update(ctx, rule); err != nil {
		return nil, translate(err, repository.ErrAutomationRuleNotFound, domainerrors.ErrAutomationRuleNotFound, "failed to update automation rule")
	}

	return rule, nil
}

func (srv *automationService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := srv.ruleRepo.Delete(ctx, userID, id); err != nil {
		return translate(err, repository.ErrAutomationRuleNotFound, domainerrors.ErrAutomationRuleNotFound, "failed to delete automation rule")
	}

	return nil
}

func (srv *automationService) ensureAccount(ctx context.Context, userID, socialAccountID uuid.UUID) error {
	if _, err := srv.socialRepo.FindByID(ctx, userID, socialAccountID); err != nil {
		return translate(err, repository.ErrSocialAccountNotFound, domainerrors.ErrSocialAccountNotFound, "failed to find social account")
	}

	return nil
}

func validateRuleLimits(rule *entity.AutomationRule) error {
	verr := domainerrors.NewValidationError(nil)
	if rule.IntervalMinutes < 1 {
		verr.Add("interval_minutes", "Ensure this value is greater than or equal to 1.")
	}
	if rule.DailyLimit < 1 {
		verr.Add("daily_limit", "Ensure this value is greater than or equal to 1.")
	}
	if verr.HasErrors() {
		return verr
	}

	return nil
}
