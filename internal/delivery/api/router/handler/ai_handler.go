package handler

import (
	"log/slog"
	"net/http"
	"time"

	"syncfloww/internal/delivery/api/middleware"
	"syncfloww/internal/delivery/api/response"
	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/domain/repository"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const scopeAll = "all"

type AIHandlerParams struct {
	fx.In

	AgentUC  usecase.AgentUsecase
	ConfigUC usecase.AIConfigurationUsecase
	Logger   *slog.Logger
}

// AIHandler serves the agent registry, task dispatch and AI configurations.
type AIHandler struct {
	agentUC  usecase.AgentUsecase
	configUC usecase.AIConfigurationUsecase
	logger   *slog.Logger
}

func NewAIHandler(params AIHandlerParams) *AIHandler {
	return &AIHandler{
		agentUC:  params.AgentUC,
		configUC: params.ConfigUC,
		logger:   params.Logger,
	}
}

type ListTasksQuery struct {
	Status string `query:"status" validate:"omitempty,oneof=pending processing completed failed"`
	Scope  string `query:"scope" validate:"omitempty,oneof=mine all"`
}

type CreateAIConfigurationRequest struct {
	Name        string   `json:"name" validate:"required,max=255"`
	ModelName   string   `json:"model_name" validate:"required,max=100"`
	Temperature *float64 `json:"temperature" validate:"omitempty,gte=0,lte=2"`
	MaxLength   *int     `json:"max_length" validate:"omitempty,gte=1"`
	IsActive    *bool    `json:"is_active"`
}

type UpdateAIConfigurationRequest struct {
	Name        *string  `json:"name" validate:"omitempty,max=255"`
	ModelName   *string  `json:"model_name" validate:"omitempty,max=100"`
	Temperature *float64 `json:"temperature" validate:"omitempty,gte=0,lte=2"`
	MaxLength   *int     `json:"max_length" validate:"omitempty,gte=1"`
	IsActive    *bool    `json:"is_active"`
}

type AgentResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TaskType    string    `json:"task_type"`
	IsActive    bool      `json:"is_active"`
}

// TaskResponse keeps output_data null until the task resolves.
type TaskResponse struct {
	ID           uuid.UUID      `json:"id"`
	Agent        uuid.UUID      `json:"agent"`
	AgentName    string         `json:"agent_name"`
	RequestedBy  *uuid.UUID     `json:"requested_by"`
	InputData    map[string]any `json:"input_data"`
	OutputData   map[string]any `json:"output_data"`
	ErrorMessage string         `json:"error_message"`
	Status       string         `json:"status"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	CompletedAt  *time.Time     `json:"completed_at"`
}

type AIConfigurationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	ModelName   string    `json:"model_name"`
	Temperature float64   `json:"temperature"`
	MaxLength   int       `json:"max_length"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toAgentResponse(a *entity.AIAgent) AgentResponse {
	return AgentResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		TaskType:    string(a.TaskType),
		IsActive:    a.IsActive,
	}
}

func toTaskResponse(t *entity.AgentTask) TaskResponse {
	return TaskResponse{
		ID:           t.ID,
		Agent:        t.AgentID,
		AgentName:    t.AgentName,
		RequestedBy:  t.RequestedBy,
		InputData:    t.InputData,
		OutputData:   t.OutputData,
		ErrorMessage: t.ErrorMessage,
		Status:       string(t.Status),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    t.UpdatedAt,
		CompletedAt:  t.CompletedAt,
	}
}

func toAIConfigurationResponse(cfg *entity.AIConfiguration) AIConfigurationResponse {
	return AIConfigurationResponse{
		ID:          cfg.ID,
		Name:        cfg.Name,
		ModelName:   cfg.ModelName,
		Temperature: cfg.Temperature,
		MaxLength:   cfg.MaxLength,
		IsActive:    cfg.IsActive,
		CreatedAt:   cfg.CreatedAt,
		UpdatedAt:   cfg.UpdatedAt,
	}
}

func (h *AIHandler) ListAgents(c echo.Context) error {
	page, err := pageRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	agents, err := h.agentUC.ListAgents(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, agents, toAgentResponse)
}

func (h *AIHandler) GetAgent(c echo.Context) error {
	id, err := pathID(c, "id", domainerrors.ErrAgentIDNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	agent, err := h.agentUC.GetAgent(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAgentResponse(agent))
}

// Execute registers a pending task for the first active agent of the task type.
// The body is stored verbatim as the task input.
func (h *AIHandler) Execute(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Only the body: path and query values must not leak into the stored input.
	input := map[string]any{}
	if err := (&echo.DefaultBinder{}).BindBody(c, &input); err != nil {
		return response.HandleAppError(c, errMalformedBody.WithDetails(bindMessage(err)))
	}

	task, err := h.agentUC.Execute(c.Request().Context(), userID, entity.TaskType(c.Param("task_type")), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusAccepted, toTaskResponse(task))
}

// ListTasks lists the caller's tasks; staff may pass scope=all.
func (h *AIHandler) ListTasks(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	page, err := pageRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var q ListTasksQuery
	if err := bindAndValidate(c, &q); err != nil {
		return response.HandleAppError(c, err)
	}

	tasks, err := h.agentUC.ListTasks(c.Request().Context(), &usecase.ListTasksInput{
		UserID:   userID,
		IsStaff:  middleware.IsStaff(c),
		AllUsers: q.Scope == scopeAll,
		Status:   entity.TaskStatus(q.Status),
		Page:     page,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, tasks, toTaskResponse)
}

func (h *AIHandler) GetTask(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id", domainerrors.ErrTaskNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	task, err := h.agentUC.GetTask(c.Request().Context(), userID, middleware.IsStaff(c), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTaskResponse(task))
}

func (h *AIHandler) ListConfigurations(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	page, err := pageRequest(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	configs, err := h.configUC.List(c.Request().Context(), repository.AIConfigurationFilter{UserID: userID, Page: page})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Paginated(c, configs, toAIConfigurationResponse)
}

func (h *AIHandler) CreateConfiguration(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req CreateAIConfigurationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	cfg, err := h.configUC.Create(c.Request().Context(), userID, &usecase.CreateAIConfigurationInput{
		Name:        req.Name,
		ModelName:   req.ModelName,
		Temperature: req.Temperature,
		MaxLength:   req.MaxLength,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAIConfigurationResponse(cfg))
}

func (h *AIHandler) GetConfiguration(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id", domainerrors.ErrAIConfigurationNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cfg, err := h.configUC.Get(c.Request().Context(), userID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAIConfigurationResponse(cfg))
}

// UpdateConfiguration serves PUT (name and model_name required) and PATCH.
func (h *AIHandler) UpdateConfiguration(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id", domainerrors.ErrAIConfigurationNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	var req UpdateAIConfigurationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}
	if err := requireOnPut(c, map[string]bool{
		"name":       req.Name != nil,
		"model_name": req.ModelName != nil,
	}); err != nil {
		return response.HandleAppError(c, err)
	}

	cfg, err := h.configUC.Update(c.Request().Context(), userID, id, &usecase.UpdateAIConfigurationInput{
		Name:        req.Name,
		ModelName:   req.ModelName,
		Temperature: req.Temperature,
		MaxLength:   req.MaxLength,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAIConfigurationResponse(cfg))
}

func (h *AIHandler) DeleteConfiguration(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id", domainerrors.ErrAIConfigurationNotFound)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.configUC.Delete(c.Request().Context(), userID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
