package handler

import (
	"log/slog"
	"net/http"
	"time"

	"syncfloww/internal/delivery/api/response"
	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/domain/repository"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type AutomationHandlerParams struct {
	fx.In

	AutomationUC usecase.AutomationUsecase
	Logger       *slog.Logger
}

// AutomationHandler serves automation rules. Rules are stored only; nothing executes them.
type AutomationHandler struct {
	automationUC usecase.AutomationUsecase
	logger       *slog.Logger
}

func NewAutomationHandler(params AutomationHandlerParams) *AutomationHandler {
	return &AutomationHandler{
		automationUC: params.AutomationUC,
		logger:       params.Logger,
	}
}

type ListAutomationRulesQuery struct {
	Status         string `query:"status" validate:"omitempty,oneof=active paused completed"`
	AutomationType string `query:"automation_type" validate:"omitempty,oneof=auto_reply scheduled_post engagement"`
}

type CreateAutomationRuleRequest struct {
	SocialAccount   uuid.UUID `json:"social_account" validate:"required"`
	Name            string    `json:"name" validate:"required,max=255"`
	AutomationType  string    `json:"automation_type" validate:"required,oneof=auto_reply scheduled_post engagement"`
	Target          string    `json:"target" validate:"max=255"`
	Message         string    `json:"message"`
	IntervalMinutes *int      `json:"interval_minutes" validate:"omitempty,gte=1"`
	DailyLimit      *int      `json:"daily_limit" validate:"omitempty,gte=1"`
	Status          string    `json:"status" validate:"omitempty,oneof=active paused completed"`
	IsActive        *bool     `json:"is_active"`
}

type UpdateAutomationRuleRequest struct {
	SocialAccount   *uuid.UUID `json:"social_account"`
	Name            *string    `json:"name" validate:"omitempty,max=255"`
	AutomationType  *string    `json:"automation_type" validate:"omitempty,oneof=auto_reply scheduled_post engagement"`
	Target          *string    `json:"target" validate:"omitempty,max=255"`
	Message         *string    `json:"message"`
	IntervalMinutes *int       `json:"interval_minutes" validate:"omitempty,gte=1"`
	DailyLimit      *int       `json:"daily_limit" validate:"omitempty,gte=1"`
	Status          *string    `json:"status" validate:"omitempty,oneof=active paused completed"`
	IsActive        *bool      `json:"is_active"`
}

type AutomationRuleResponse struct {
	ID              uuid.UUID `json:"id"`
	SocialAccount   uuid.UUID `json:"social_account"`
	Name            string    `json:"name"`
	AutomationType  string    `json:"automation_type"`
	Target          string    `json:"target"`
	Message         string    `json:"message"`
	IntervalMinutes int       `json:"interval_minutes"`
	DailyLimit      int       `json:"daily_limit"`
	Status          string    `json:"status"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func toAutomationRuleResponse(r *entity.AutomationRule) AutomationRuleResponse {
	return AutomationRuleResponse{
		ID:              r.ID,
		SocialAccount:   r.SocialAccountID,
		Name:            r.Name,
		AutomationType:  string(r.AutomationType),
		Target:          r.Target,
		Message:         r.Message,
		IntervalMinutes: r.IntervalMinutes,
		DailyLimit:      r.DailyLimit,
		Status:          string(r.Status),
		IsActive:        r.IsActive,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (h *AutomationHandler) ListRules(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	page, err := pageRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	accountID, err := optionalUUIDQuery(c, "social_account")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var q ListAutomationRulesQuery
	if err := bindAndValidate(c, &q); err != nil {
		return response.HandleAppError(c, err)
	}

	rules, err := h.automationUC.List(c.Request().Context(), repository.AutomationRuleFilter{
		UserID:          userID,
		Status:          entity.AutomationStatus(q.Status),
		AutomationType:  entity.AutomationType(q.AutomationType),
		SocialAccountID: accountID,
		Page:            page,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, rules, toAutomationRuleResponse)
}

func (h *AutomationHandler) CreateRule(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req CreateAutomationRuleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	rule, err := h.automationUC.Create(c.Request().Context(), userID, &usecase.CreateAutomationRuleInput{
		SocialAccountID: req.SocialAccount,
		Name:            req.Name,
		AutomationType:  entity.AutomationType(req.AutomationType),
		Target:          req.Target,
		Message:         req.Message,
		IntervalMinutes: req.IntervalMinutes,
		DailyLimit:      req.DailyLimit,
		Status:          entity.AutomationStatus(req.Status),
		IsActive:        req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAutomationRuleResponse(rule))
}

func (h *AutomationHandler) GetRule(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id", domainerrors.ErrAutomationRuleNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	rule, err := h.automationUC.Get(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAutomationRuleResponse(rule))
}

// UpdateRule serves PUT (name and automation_type required) and PATCH.
func (h *AutomationHandler) UpdateRule(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id", domainerrors.ErrAutomationRuleNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req UpdateAutomationRuleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	if err := requireOnPut(c, map[string]bool{
		"name":            req.Name != nil,
		"automation_type": req.AutomationType != nil,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateAutomationRuleInput{
		SocialAccountID: req.SocialAccount,
		Name:            req.Name,
		Target:          req.Target,
		Message:         req.Message,
		IntervalMinutes: req.IntervalMinutes,
		DailyLimit:      req.DailyLimit,
		IsActive:        req.IsActive,
	}
	if req.AutomationType != nil {
		at := entity.AutomationType(*req.AutomationType)
		input.AutomationType = &at
	}
	if req.Status != nil {
		st := entity.AutomationStatus(*req.Status)
		input.Status = &st
	}

	rule, err := h.automationUC.Update(c.Request().Context(), userID, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAutomationRuleResponse(rule))
}

func (h *AutomationHandler) DeleteRule(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id", domainerrors.ErrAutomationRuleNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.automationUC.Delete(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
