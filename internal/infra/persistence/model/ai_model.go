package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LLMProviderModel mirrors the 'llm_providers' table.
type LLMProviderModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string    `gorm:"type:varchar(100);not null"`
	ProviderClass string    `gorm:"type:varchar(20);not null"`
	APIKey        string    `gorm:"column:api_key;type:text"`
	BaseURL       string    `gorm:"column:base_url;type:text"`
	IsActive      bool      `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (LLMProviderModel) TableName() string {
	return "llm_providers"
}

// AIModelModel mirrors the 'ai_models' table.
type AIModelModel struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProviderID    uuid.UUID         `gorm:"type:uuid;not null"`
	Provider      *LLMProviderModel `gorm:"foreignKey:ProviderID"`
	Name          string            `gorm:"type:varchar(100);not null"`
	ModelID       string            `gorm:"column:model_id;type:varchar(100);not null"`
	ModelType     string            `gorm:"type:varchar(20);not null"`
	Description   string            `gorm:"type:text"`
	ContextWindow int
	IsActive      bool `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AIModelModel) TableName() string {
	return "ai_models"
}

// AIAgentModel mirrors the 'ai_agents' table.
type AIAgentModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ModelID     *uuid.UUID        `gorm:"type:uuid"`
	Model       *AIModelModel     `gorm:"foreignKey:ModelID"`
	Name        string            `gorm:"type:varchar(100);not null"`
	Description string            `gorm:"type:text"`
	TaskType    string            `gorm:"type:varchar(20);not null;index"`
	Config      datatypes.JSONMap `gorm:"type:jsonb"`
	IsActive    bool              `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AIAgentModel) TableName() string {
	return "ai_agents"
}

// AgentTaskModel mirrors the 'agent_tasks' table. OutputData stays NULL until the task resolves.
type AgentTaskModel struct {
	ID           uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	AgentID      uuid.UUID         `gorm:"type:uuid;not null"`
	Agent        *AIAgentModel     `gorm:"foreignKey:AgentID"`
	RequestedBy  *uuid.UUID        `gorm:"type:uuid;index"`
	InputData    datatypes.JSONMap `gorm:"type:jsonb"`
	OutputData   datatypes.JSONMap `gorm:"type:jsonb"`
	ErrorMessage string            `gorm:"type:text"`
	Status       string            `gorm:"type:varchar(20);not null"`
	CompletedAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AgentTaskModel) TableName() string {
	return "agent_tasks"
}

// AIConfigurationModel mirrors the 'ai_configurations' table.
type AIConfigurationModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	ModelName   string    `gorm:"type:varchar(100);not null"`
	Temperature float64   `gorm:"not null"`
	MaxLength   int       `gorm:"not null"`
	IsActive    bool      `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AIConfigurationModel) TableName() string {
	return "ai_configurations"
}
