package impl

import (
	"context"
	"testing"
	"time"

	"syncfloww/internal/domain/entity"
	"syncfloww/internal/domain/repository"
	"syncfloww/internal/domain/service"
	"syncfloww/internal/errors"
	mockRepo "syncfloww/internal/mocks/repository"
	mockSvc "syncfloww/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskProcessorFixtures struct {
	processor *taskProcessor
	agentRepo *mockRepo.MockAIAgentRepository
	taskRepo  *mockRepo.MockAgentTaskRepository
	llm       *mockSvc.MockLLMClient
	now       time.Time
}

func createTestTaskProcessor(t *testing.T) taskProcessorFixtures {
	fx := taskProcessorFixtures{
		agentRepo: mockRepo.NewMockAIAgentRepository(t),
		taskRepo:  mockRepo.NewMockAgentTaskRepository(t),
		llm:       mockSvc.NewMockLLMClient(t),
		now:       time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	processor := NewTaskProcessor(TaskProcessorParams{
		AgentRepo: fx.agentRepo,
		TaskRepo:  fx.taskRepo,
		LLM:       fx.llm,
		Logger:    newDiscardLogger(),
	}).(*taskProcessor)
	processor.now = func() time.Time { return fx.now }
	fx.processor = processor

	return fx
}

func newModelAgent() *entity.AIAgent {
	return &entity.AIAgent{
		ID:       uuid.New(),
		TaskType: entity.TaskTypeCaption,
		Config: map[string]any{
			entity.AgentConfigSystemPrompt: "You write captions.",
			entity.AgentConfigTemperature:  0.4,
			entity.AgentConfigMaxTokens:    float64(256),
		},
		Model: &entity.AIModel{
			ModelID:  "gpt-4o-mini",
			Provider: &entity.LLMProvider{ProviderClass: entity.ProviderClassOpenAI, APIKey: "sk-test"},
		},
	}
}

func (fx taskProcessorFixtures) expectRelease(task *entity.AgentTask) {
	fx.taskRepo.EXPECT().
		Transition(mock.Anything, task.ID, entity.TaskTransition{From: entity.TaskStatusProcessing, To: entity.TaskStatusPending, At: fx.now}).
		Return(nil).
		Once()
}

func (fx taskProcessorFixtures) expectClaim(ctx context.Context, task *entity.AgentTask) {
	fx.taskRepo.EXPECT().FindByID(ctx, task.ID).Return(task, nil)
	fx.taskRepo.EXPECT().
		Transition(ctx, task.ID, entity.TaskTransition{From: entity.TaskStatusPending, To: entity.TaskStatusProcessing, At: fx.now}).
		Return(nil)
}

func TestTaskProcessor_Process_Completes(t *testing.T) {
	fx := createTestTaskProcessor(t)
	ctx := context.Background()
	agent := newModelAgent()
	task := &entity.AgentTask{
		ID:        uuid.New(),
		AgentID:   agent.ID,
		Status:    entity.TaskStatusPending,
		InputData: map[string]any{"prompt": "Sunset over Lisbon"},
	}

	fx.expectClaim(ctx, task)
	fx.agentRepo.EXPECT().FindWithModel(ctx, agent.ID).Return(agent, nil)
	fx.llm.EXPECT().
		Complete(ctx, mock.MatchedBy(func(req service.CompletionRequest) bool {
			return req.ModelID == "gpt-4o-mini" &&
				req.SystemPrompt == "You write captions." &&
				req.Prompt == "Sunset over Lisbon" &&
				req.Temperature != nil && *req.Temperature == float32(0.4) &&
				req.MaxTokens == 256
		})).
		Return(&service.CompletionResult{
			Content: "Golden hour, golden city.",
			Model:   "gpt-4o-mini-2024",
			Usage:   service.CompletionUsage{PromptTokens: 12, CompletionTokens: 6, TotalTokens: 18},
		}, nil)
	fx.taskRepo.EXPECT().
		Transition(mock.Anything, task.ID, mock.MatchedBy(func(tr entity.TaskTransition) bool {
			return tr.From == entity.TaskStatusProcessing &&
				tr.To == entity.TaskStatusCompleted &&
				tr.OutputData["content"] == "Golden hour, golden city." &&
				tr.OutputData["model"] == "gpt-4o-mini-2024" &&
				tr.At.Equal(fx.now)
		})).
		Return(nil)

	require.NoError(t, fx.processor.Process(ctx, task.ID))
}

func TestTaskProcessor_Process_LLMFailureMarksFailed(t *testing.T) {
	fx := createTestTaskProcessor(t)
	ctx := context.Background()
	agent := newModelAgent()
	task := &entity.AgentTask{ID: uuid.New(), AgentID: agent.ID, Status: entity.TaskStatusPending, InputData: map[string]any{"topic": "coffee"}}

	fx.expectClaim(ctx, task)
	fx.agentRepo.EXPECT().FindWithModel(ctx, agent.ID).Return(agent, nil)
	fx.llm.EXPECT().
		Complete(ctx, mock.MatchedBy(func(req service.CompletionRequest) bool {
			return req.Prompt == `{"topic":"coffee"}`
		})).
		Return(nil, errors.New("rate limited"))
	fx.taskRepo.EXPECT().
		Transition(mock.Anything, task.ID, mock.MatchedBy(func(tr entity.TaskTransition) bool {
			return tr.To == entity.TaskStatusFailed && tr.ErrorMessage != "" && tr.OutputData == nil
		})).
		Return(nil)

	assert.NoError(t, fx.processor.Process(ctx, task.ID))
}

func TestTaskProcessor_Process_AgentWithoutModel(t *testing.T) {
	fx := createTestTaskProcessor(t)
	ctx := context.Background()
	agent := &entity.AIAgent{ID: uuid.New()}
	task := &entity.AgentTask{ID: uuid.New(), AgentID: agent.ID, Status: entity.TaskStatusPending}

	fx.expectClaim(ctx, task)
	fx.agentRepo.EXPECT().FindWithModel(ctx, agent.ID).Return(agent, nil)
	fx.taskRepo.EXPECT().
		Transition(mock.Anything, task.ID, mock.MatchedBy(func(tr entity.TaskTransition) bool {
			return tr.To == entity.TaskStatusFailed && tr.ErrorMessage == "agent has no model configured"
		})).
		Return(nil)

	assert.NoError(t, fx.processor.Process(ctx, task.ID))
}

func TestTaskProcessor_Process_SkipsDuplicates(t *testing.T) {
	t.Run("task already resolved", func(t *testing.T) {
		fx := createTestTaskProcessor(t)
		ctx := context.Background()
		task := &entity.AgentTask{ID: uuid.New(), Status: entity.TaskStatusCompleted}

		fx.taskRepo.EXPECT().FindByID(ctx, task.ID).Return(task, nil)

		assert.NoError(t, fx.processor.Process(ctx, task.ID))
	})

	t.Run("claimed by another worker", func(t *testing.T) {
		fx := createTestTaskProcessor(t)
		ctx := context.Background()
		task := &entity.AgentTask{ID: uuid.New(), Status: entity.TaskStatusPending}

		fx.taskRepo.EXPECT().FindByID(ctx, task.ID).Return(task, nil)
		fx.taskRepo.EXPECT().Transition(ctx, task.ID, mock.Anything).Return(repository.ErrTaskStatusConflict)

		assert.NoError(t, fx.processor.Process(ctx, task.ID))
	})

	t.Run("unknown task", func(t *testing.T) {
		fx := createTestTaskProcessor(t)
		ctx := context.Background()
		taskID := uuid.New()

		fx.taskRepo.EXPECT().FindByID(ctx, taskID).Return(nil, repository.ErrTaskNotFound)

		assert.NoError(t, fx.processor.Process(ctx, taskID))
	})
}

func TestTaskProcessor_Process_RepositoryErrorsAreReturned(t *testing.T) {
	t.Run("load", func(t *testing.T) {
		fx := createTestTaskProcessor(t)
		ctx := context.Background()
		taskID := uuid.New()

		fx.taskRepo.EXPECT().FindByID(ctx, taskID).Return(nil, errors.New("connection refused"))

		assert.ErrorContains(t, fx.processor.Process(ctx, taskID), "connection refused")
	})

	t.Run("agent lookup releases the claim", func(t *testing.T) {
		fx := createTestTaskProcessor(t)
		ctx := context.Background()
		task := &entity.AgentTask{ID: uuid.New(), AgentID: uuid.New(), Status: entity.TaskStatusPending}

		fx.expectClaim(ctx, task)
		fx.agentRepo.EXPECT().FindWithModel(ctx, task.AgentID).Return(nil, errors.New("connection refused"))
		fx.expectRelease(task)

		assert.ErrorContains(t, fx.processor.Process(ctx, task.ID), "failed to load agent")
	})

	t.Run("outcome write releases the claim", func(t *testing.T) {
		fx := createTestTaskProcessor(t)
		ctx := context.Background()
		agent := newModelAgent()
		task := &entity.AgentTask{ID: uuid.New(), AgentID: agent.ID, Status: entity.TaskStatusPending, InputData: map[string]any{"prompt": "hi"}}

		fx.expectClaim(ctx, task)
		fx.agentRepo.EXPECT().FindWithModel(ctx, agent.ID).Return(agent, nil)
		fx.llm.EXPECT().Complete(ctx, mock.Anything).Return(&service.CompletionResult{Content: "hello"}, nil)
		fx.taskRepo.EXPECT().
			Transition(mock.Anything, task.ID, mock.MatchedBy(func(tr entity.TaskTransition) bool {
				return tr.To == entity.TaskStatusCompleted
			})).
			Return(errors.New("connection reset"))
		fx.expectRelease(task)

		assert.ErrorContains(t, fx.processor.Process(ctx, task.ID), "failed to mark agent task completed")
	})

	t.Run("failed release still reports the cause", func(t *testing.T) {
		fx := createTestTaskProcessor(t)
		ctx := context.Background()
		task := &entity.AgentTask{ID: uuid.New(), AgentID: uuid.New(), Status: entity.TaskStatusPending}

		fx.expectClaim(ctx, task)
		fx.agentRepo.EXPECT().FindWithModel(ctx, task.AgentID).Return(nil, errors.New("connection refused"))
		fx.taskRepo.EXPECT().
			Transition(mock.Anything, task.ID, mock.MatchedBy(func(tr entity.TaskTransition) bool {
				return tr.To == entity.TaskStatusPending
			})).
			Return(errors.New("connection refused"))

		assert.ErrorContains(t, fx.processor.Process(ctx, task.ID), "failed to load agent")
	})
}

func TestTaskProcessor_Process_ReleasedTaskRunsOnRedelivery(t *testing.T) {
	fx := createTestTaskProcessor(t)
	ctx := context.Background()
	agent := newModelAgent()
	task := &entity.AgentTask{ID: uuid.New(), AgentID: agent.ID, Status: entity.TaskStatusPending, InputData: map[string]any{"prompt": "hi"}}

	// First delivery: the agent cannot be loaded and the claim is released.
	fx.taskRepo.EXPECT().FindByID(ctx, task.ID).Return(task, nil).Twice()
	fx.taskRepo.EXPECT().
		Transition(ctx, task.ID, entity.TaskTransition{From: entity.TaskStatusPending, To: entity.TaskStatusProcessing, At: fx.now}).
		Return(nil).
		Twice()
	fx.agentRepo.EXPECT().FindWithModel(ctx, agent.ID).Return(nil, errors.New("connection refused")).Once()
	fx.expectRelease(task)

	require.Error(t, fx.processor.Process(ctx, task.ID))

	// Redelivery: the task is pending again and completes.
	fx.agentRepo.EXPECT().FindWithModel(ctx, agent.ID).Return(agent, nil).Once()
	fx.llm.EXPECT().Complete(ctx, mock.Anything).Return(&service.CompletionResult{Content: "hello"}, nil).Once()
	fx.taskRepo.EXPECT().
		Transition(mock.Anything, task.ID, mock.MatchedBy(func(tr entity.TaskTransition) bool {
			return tr.From == entity.TaskStatusProcessing && tr.To == entity.TaskStatusCompleted
		})).
		Return(nil).
		Once()

	assert.NoError(t, fx.processor.Process(ctx, task.ID))
}

func TestTaskProcessor_Process_InterruptedRunReleasesClaim(t *testing.T) {
	fx := createTestTaskProcessor(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	agent := newModelAgent()
	task := &entity.AgentTask{ID: uuid.New(), AgentID: agent.ID, Status: entity.TaskStatusPending, InputData: map[string]any{"prompt": "hi"}}

	fx.expectClaim(ctx, task)
	fx.agentRepo.EXPECT().FindWithModel(ctx, agent.ID).Return(agent, nil)
	fx.llm.EXPECT().Complete(ctx, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ service.CompletionRequest) (*service.CompletionResult, error) {
			cancel()

			return nil, context.Canceled
		})
	fx.expectRelease(task)

	assert.ErrorContains(t, fx.processor.Process(ctx, task.ID), "agent task interrupted")
}

func TestBuildPrompt(t *testing.T) {
	prompt, err := buildPrompt(map[string]any{"content": "Improve this"})
	require.NoError(t, err)
	assert.Equal(t, "Improve this", prompt)

	prompt, err = buildPrompt(map[string]any{"b": 2, "a": 1})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":2}`, prompt)
}
