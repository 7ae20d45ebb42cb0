package usecase

import (
	"context"

	"syncfloww/internal/domain/entity"
	"syncfloww/internal/domain/repository"

	"github.com/google/uuid"
)

// ListTasksInput scopes the listing to the caller unless AllUsers is set by a staff member.
type ListTasksInput struct {
	UserID   uuid.UUID
	IsStaff  bool
	AllUsers bool
	Status   entity.TaskStatus
	Page     entity.PageRequest
}

// AgentUsecase covers the agent registry and task dispatch.
type AgentUsecase interface {
	ListAgents(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.AIAgent], error)
	GetAgent(ctx context.Context, id uuid.UUID) (*entity.AIAgent, error)
	// Execute registers a pending task on the first active agent of taskType and announces it to the worker.
	Execute(ctx context.Context, userID uuid.UUID, taskType entity.TaskType, input map[string]any) (*entity.AgentTask, error)
	ListTasks(ctx context.Context, input *ListTasksInput) (*entity.Page[*entity.AgentTask], error)
	GetTask(ctx context.Context, userID uuid.UUID, isStaff bool, id uuid.UUID) (*entity.AgentTask, error)
}

// TaskProcessor drives a task through processing to a terminal status.
type TaskProcessor interface {
	// Process returns nil when the task is not pending anymore; such deliveries are duplicates.
	Process(ctx context.Context, taskID uuid.UUID) error
}

type CreateAIConfigurationInput struct {
	Name        string
	ModelName   string
	Temperature *float64
	MaxLength   *int
	IsActive    *bool
}

// UpdateAIConfigurationInput leaves nil fields unchanged.
type UpdateAIConfigurationInput struct {
	Name        *string
	ModelName   *string
	Temperature *float64
	MaxLength   *int
	IsActive    *bool
}

type AIConfigurationUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, input *CreateAIConfigurationInput) (*entity.AIConfiguration, error)
	Get(ctx context.Context, userID, id uuid.UUID) (*entity.AIConfiguration, error)
	List(ctx context.Context, filter repository.AIConfigurationFilter) (*entity.Page[*entity.AIConfiguration], error)
	Update(ctx context.Context, userID, id uuid.UUID, input *UpdateAIConfigurationInput) (*entity.AIConfiguration, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
