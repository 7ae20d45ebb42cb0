package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type ProviderClass string

const (
	ProviderClassOpenAI    ProviderClass = "openai"
	ProviderClassAnthropic ProviderClass = "anthropic"
	ProviderClassGoogle    ProviderClass = "google"
	ProviderClassCohere    ProviderClass = "cohere"
	ProviderClassMistral   ProviderClass = "mistral"
)

// LLMProvider is a configured model vendor.
type LLMProvider struct {
	ID            uuid.UUID
	Name          string
	ProviderClass ProviderClass
	APIKey        string
	BaseURL       string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ModelType string

const (
	ModelTypeChat       ModelType = "chat"
	ModelTypeCompletion ModelType = "completion"
	ModelTypeEmbedding  ModelType = "embedding"
)

// AIModel is a model offered by a provider.
type AIModel struct {
	ID            uuid.UUID
	ProviderID    uuid.UUID
	Provider      *LLMProvider
	Name          string
	ModelID       string // Vendor model identifier, e.g. "gpt-4o".
	ModelType     ModelType
	Description   string
	ContextWindow int
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type TaskType string

const (
	TaskTypeImprovement TaskType = "improvement"
	TaskTypeVariation   TaskType = "variation"
	TaskTypeScript      TaskType = "script"
	TaskTypeCaption     TaskType = "caption"
)

func (t TaskType) IsValid() bool {
	switch t {
	case TaskTypeImprovement, TaskTypeVariation, TaskTypeScript, TaskTypeCaption:
		return true
	default:
		return false
	}
}

// Agent config keys read by the worker.
const (
	AgentConfigSystemPrompt = "system_prompt"
	AgentConfigTemperature  = "temperature"
	AgentConfigMaxTokens    = "max_tokens"
)

// AIAgent is a prompt-configured worker bound to a task type.
type AIAgent struct {
	ID          uuid.UUID
	ModelID     *uuid.UUID
	Model       *AIModel
	Name        string
	Description string
	TaskType    TaskType
	Config      map[string]any
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SystemPrompt returns the configured system prompt, if any.
func (a *AIAgent) SystemPrompt() string {
	s, _ := a.Config[AgentConfigSystemPrompt].(string)

	return s
}

// Temperature returns the configured sampling temperature.
func (a *AIAgent) Temperature() (float32, bool) {
	v, ok := toFloat(a.Config[AgentConfigTemperature])

	return float32(v), ok
}

// MaxTokens returns the configured completion limit.
func (a *AIAgent) MaxTokens() (int, bool) {
	v, ok := toFloat(a.Config[AgentConfigMaxTokens])

	return int(v), ok && v > 0
}

// toFloat accepts json.Number because JSONB columns are decoded with UseNumber.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()

		return f, err == nil
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusProcessing TaskStatus = "processing"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusFailed     TaskStatus = "failed"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusProcessing, TaskStatusCompleted, TaskStatusFailed:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is possible.
func (s TaskStatus) IsTerminal() bool {
	return s == TaskStatusCompleted || s == TaskStatusFailed
}

// CanTransitionTo allows pending -> processing and processing -> completed|failed.
// processing -> pending releases a claim so the task can be retried.
func (s TaskStatus) CanTransitionTo(next TaskStatus) bool {
	switch s {
	case TaskStatusPending:
		return next == TaskStatusProcessing
	case TaskStatusProcessing:
		return next == TaskStatusCompleted || next == TaskStatusFailed || next == TaskStatusPending
	default:
		return false
	}
}

// AgentTask is one execution request against an agent.
type AgentTask struct {
	ID           uuid.UUID
	AgentID      uuid.UUID
	AgentName    string
	RequestedBy  *uuid.UUID
	InputData    map[string]any
	OutputData   map[string]any // nil until the task resolves.
	ErrorMessage string
	Status       TaskStatus
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TaskTransition describes a conditional status change.
type TaskTransition struct {
	From         TaskStatus
	To           TaskStatus
	OutputData   map[string]any
	ErrorMessage string
	At           time.Time
}

const (
	DefaultAITemperature = 0.7
	DefaultAIMaxLength   = 2000
)

// AIConfiguration holds per-user generation preferences.
type AIConfiguration struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	ModelName   string
	Temperature float64
	MaxLength   int
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
