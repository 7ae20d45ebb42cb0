package repository

import (
	"context"
	"errors"

	"syncfloww/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrAgentNotFound           = errors.New("agent not found")
	ErrTaskNotFound            = errors.New("agent task not found")
	ErrTaskStatusConflict      = errors.New("agent task is not in the expected status")
	ErrAIConfigurationNotFound = errors.New("ai configuration not found")
)

type AIAgentRepository interface {
	ListActive(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.AIAgent], error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AIAgent, error)
	// FindFirstActiveByTaskType orders by created_at, id.
	FindFirstActiveByTaskType(ctx context.Context, taskType entity.TaskType) (*entity.AIAgent, error)
	// FindWithModel loads the agent with its model and provider.
	FindWithModel(ctx context.Context, id uuid.UUID) (*entity.AIAgent, error)
}

type AgentTaskFilter struct {
	// RequestedBy scopes the listing; nil lists every task.
	RequestedBy *uuid.UUID
	Status      entity.TaskStatus
	Page        entity.PageRequest
}

type AgentTaskRepository interface {
	Create(ctx context.Context, task *entity.AgentTask) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AgentTask, error)
	List(ctx context.Context, filter AgentTaskFilter) (*entity.Page[*entity.AgentTask], error)
	// Transition applies the change only while the row is still in transition.From.
	// It returns ErrTaskStatusConflict when no row matched.
	Transition(ctx context.Context, id uuid.UUID, transition entity.TaskTransition) error
}

type AIConfigurationFilter struct {
	UserID uuid.UUID
	Page   entity.PageRequest
}

type AIConfigurationRepository interface {
	Create(ctx context.Context, cfg *entity.AIConfiguration) error
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.AIConfiguration, error)
	List(ctx context.Context, filter AIConfigurationFilter) (*entity.Page[*entity.AIConfiguration], error)
	Update(ctx context.Context, cfg *entity.AIConfiguration) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
