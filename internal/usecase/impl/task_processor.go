package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	deliverycontext "syncfloww/internal/delivery/context"
	"syncfloww/internal/domain/entity"
	"syncfloww/internal/domain/repository"
	"syncfloww/internal/domain/service"
	"syncfloww/internal/errors"
	"syncfloww/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// stateWriteTimeout bounds status writes made after the claim.
const stateWriteTimeout = 10 * time.Second

// Input keys read from a task's input_data when building the prompt.
const (
	inputKeyPrompt  = "prompt"
	inputKeyContent = "content"
)

var (
	errAgentHasNoModel    = errors.New("agent has no model configured")
	errModelHasNoProvider = errors.New("agent model has no provider configured")
)

// taskProcessor claims a pending task, runs it against the agent's model and records the outcome.
// Only repository failures and interruptions are returned, after the claim is released back to pending.
// Everything else resolves the task as failed.
type taskProcessor struct {
	agentRepo repository.AIAgentRepository
	taskRepo  repository.AgentTaskRepository
	llm       service.LLMClient
	now       func() time.Time
	logger    *slog.Logger
}

type TaskProcessorParams struct {
	fx.In

	AgentRepo repository.AIAgentRepository
	TaskRepo  repository.AgentTaskRepository
	LLM       service.LLMClient
	Logger    *slog.Logger
}

// NewTaskProcessor is the constructor for taskProcessor.
func NewTaskProcessor(params TaskProcessorParams) usecase.TaskProcessor {
	return &taskProcessor{
		agentRepo: params.AgentRepo,
		taskRepo:  params.TaskRepo,
		llm:       params.LLM,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (p *taskProcessor) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, p.logger)
}

func (p *taskProcessor) Process(ctx context.Context, taskID uuid.UUID) error {
	logger := p.log(ctx).With(slog.Any("taskID", taskID))

	task, err := p.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, repository.ErrTaskNotFound) {
			logger.Warn("Dropping event for unknown task")

			return nil
		}

		return errors.Wrap(err, "failed to load agent task")
	}
	if task.Status != entity.TaskStatusPending {
		logger.Info("Skipping task that is no longer pending", slog.String("status", string(task.Status)))

		return nil
	}

	err = p.taskRepo.Transition(ctx, taskID, entity.TaskTransition{
		From: entity.TaskStatusPending,
		To:   entity.TaskStatusProcessing,
		At:   p.now(),
	})
	if err != nil {
		if errors.Is(err, repository.ErrTaskStatusConflict) {
			logger.Info("Task already claimed by another worker")

			return nil
		}

		return errors.Wrap(err, "failed to claim agent task")
	}

	output, runErr := p.run(ctx, task)
	if runErr != nil {
		var repoErr *retryableError
		if errors.As(runErr, &repoErr) {
			return p.release(ctx, taskID, repoErr.err)
		}
		if ctx.Err() != nil {
			return p.release(ctx, taskID, errors.Wrap(runErr, "agent task interrupted"))
		}

		logger.Warn("Agent task failed", slog.Any("error", runErr))

		return p.resolve(ctx, taskID, entity.TaskTransition{
			From:         entity.TaskStatusProcessing,
			To:           entity.TaskStatusFailed,
			ErrorMessage: runErr.Error(),
			At:           p.now(),
		})
	}

	logger.Info("Agent task completed")

	return p.resolve(ctx, taskID, entity.TaskTransition{
		From:       entity.TaskStatusProcessing,
		To:         entity.TaskStatusCompleted,
		OutputData: output,
		At:         p.now(),
	})
}

func (p *taskProcessor) run(ctx context.Context, task *entity.AgentTask) (map[string]any, error) {
	agent, err := p.agentRepo.FindWithModel(ctx, task.AgentID)
	if err != nil {
		if errors.Is(err, repository.ErrAgentNotFound) {
			return nil, errors.Wrap(err, "failed to resolve agent")
		}

		return nil, &retryableError{err: errors.Wrap(err, "failed to load agent")}
	}
	if agent.Model == nil {
		return nil, errAgentHasNoModel
	}
	if agent.Model.Provider == nil {
		return nil, errModelHasNoProvider
	}

	prompt, err := buildPrompt(task.InputData)
	if err != nil {
		return nil, err
	}

	req := service.CompletionRequest{
		Provider:     agent.Model.Provider,
		ModelID:      agent.Model.ModelID,
		SystemPrompt: agent.SystemPrompt(),
		Prompt:       prompt,
	}
	if temperature, ok := agent.Temperature(); ok {
		req.Temperature = &temperature
	}
	if maxTokens, ok := agent.MaxTokens(); ok {
		req.MaxTokens = maxTokens
	}

	result, err := p.llm.Complete(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "llm completion failed")
	}

	return map[string]any{
		"content": result.Content,
		"model":   result.Model,
		"usage": map[string]any{
			"prompt_tokens":     result.Usage.PromptTokens,
			"completion_tokens": result.Usage.CompletionTokens,
			"total_tokens":      result.Usage.TotalTokens,
		},
	}, nil
}

// resolve records the outcome even when the push request was cancelled during the run.
// A failed write releases the claim and returns the retryable error.
func (p *taskProcessor) resolve(ctx context.Context, taskID uuid.UUID, transition entity.TaskTransition) error {
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), stateWriteTimeout)
	defer cancel()

	err := p.taskRepo.Transition(writeCtx, taskID, transition)
	if err == nil {
		return nil
	}
	if errors.Is(err, repository.ErrTaskStatusConflict) {
		p.log(ctx).Warn("Task left processing before it was resolved", slog.Any("taskID", taskID))

		return nil
	}

	return p.release(ctx, taskID, errors.Wrapf(err, "failed to mark agent task %s", transition.To))
}

// release hands a claimed task back to pending so a redelivery can run it again, then returns cause.
func (p *taskProcessor) release(ctx context.Context, taskID uuid.UUID, cause error) error {
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), stateWriteTimeout)
	defer cancel()

	err := p.taskRepo.Transition(writeCtx, taskID, entity.TaskTransition{
		From: entity.TaskStatusProcessing,
		To:   entity.TaskStatusPending,
		At:   p.now(),
	})
	if err != nil && !errors.Is(err, repository.ErrTaskStatusConflict) {
		p.log(ctx).Error("Failed to release agent task claim",
			slog.Any("taskID", taskID),
			slog.Any("error", err),
			slog.Any("cause", cause),
		)
	}

	return cause
}

// buildPrompt prefers an explicit prompt or content string and falls back to the JSON input.
func buildPrompt(input map[string]any) (string, error) {
	for _, key := range []string{inputKeyPrompt, inputKeyContent} {
		if s, ok := input[key].(string); ok && s != "" {
			return s, nil
		}
	}

	raw, err := json.Marshal(input)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode task input")
	}

	return string(raw), nil
}

type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return e.err.Error()
}

func (e *retryableError) Unwrap() error {
	return e.err
}
