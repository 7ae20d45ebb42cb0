package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "syncfloww/internal/delivery/context"
	"syncfloww/internal/domain/entity"
	domainerrors "syncfloww/internal/domain/errors"
	"syncfloww/internal/domain/repository"
	"syncfloww/internal/domain/service"
	"syncfloww/internal/errors"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// publishTimeout bounds the publish that follows a registered task.
const publishTimeout = 15 * time.Second

// agentService registers agent tasks and hands them to the worker through the event publisher.
type agentService struct {
	agentRepo repository.AIAgentRepository
	taskRepo  repository.AgentTaskRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

type AgentServiceParams struct {
	fx.In

	AgentRepo repository.AIAgentRepository
	TaskRepo  repository.AgentTaskRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewAgentService is the constructor for agentService.
func NewAgentService(params AgentServiceParams) usecase.AgentUsecase {
	return &agentService{
		agentRepo: params.AgentRepo,
		taskRepo:  params.TaskRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *agentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *agentService) ListAgents(ctx context.Context, page entity.PageRequest) (*entity.Page[*entity.AIAgent], error) {
	agents, err := srv.agentRepo.ListActive(ctx, page)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list agents")
	}

	return agents, nil
}

func (srv *agentService) GetAgent(ctx context.Context, id uuid.UUID) (*entity.AIAgent, error) {
	agent, err := srv.agentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, repository.ErrAgentNotFound, domainerrors.ErrAgentIDNotFound, "failed to find agent")
	}

	return agent, nil
}

func (srv *agentService) Execute(ctx context.Context, userID uuid.UUID, taskType entity.TaskType, input map[string]any) (*entity.AgentTask, error) {
	if !taskType.IsValid() {
		return nil, domainerrors.ErrAgentNotFound
	}

	agent, err := srv.agentRepo.FindFirstActiveByTaskType(ctx, taskType)
	if err != nil {
		return nil, translate(err, repository.ErrAgentNotFound, domainerrors.ErrAgentNotFound, "failed to find agent")
	}

	if input == nil {
		input = map[string]any{}
	}
	requestedBy := userID
	task := &entity.AgentTask{
		AgentID:     agent.ID,
		AgentName:   agent.Name,
		RequestedBy: &requestedBy,
		InputData:   input,
		Status:      entity.TaskStatusPending,
	}
	if err := srv.taskRepo.Create(ctx, task); err != nil {
		return nil, errors.Wrap(err, "failed to create agent task")
	}

	event := &service.AgentTaskEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		TaskID:    task.ID.String(),
		AgentID:   agent.ID.String(),
		TaskType:  string(taskType),
	}
	// The task row exists; a client that disconnects now must not lose the event.
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := srv.publisher.PublishAgentTaskEvent(publishCtx, event); err != nil {
		// The row stays pending; the caller still gets the task.
		srv.log(ctx).Error("Failed to publish agent task event",
			slog.Any("taskID", task.ID),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Agent task registered",
		slog.Any("taskID", task.ID),
		slog.Any("agentID", agent.ID),
		slog.String("taskType", string(taskType)),
	)

	return task, nil
}

func (srv *agentService) ListTasks(ctx context.Context, input *usecase.ListTasksInput) (*entity.Page[*entity.AgentTask], error) {
	filter := repository.AgentTaskFilter{
		Status: input.Status,
		Page:   input.Page,
	}
	if !input.AllUsers || !input.IsStaff {
		userID := input.UserID
		filter.RequestedBy = &userID
	}

	page, err := srv.taskRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list agent tasks")
	}

	return page, nil
}

// GetTask hides tasks requested by other users unless the caller is staff.
func (srv *agentService) GetTask(ctx context.Context, userID uuid.UUID, isStaff bool, id uuid.UUID) (*entity.AgentTask, error) {
	task, err := srv.taskRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translate(err, repository.ErrTaskNotFound, domainerrors.ErrTaskNotFound, "failed to find agent task")
	}

	if !isStaff && (task.RequestedBy == nil || *task.RequestedBy != userID) {
		return nil, domainerrors.ErrTaskNotFound
	}

	return task, nil
}
