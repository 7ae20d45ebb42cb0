package service

import (
	"context"
)

// AgentTaskEvent announces a pending agent task to the worker.
type AgentTaskEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	TaskID    string `json:"task_id"`
	AgentID   string `json:"agent_id"`
	TaskType  string `json:"task_type"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAgentTaskEvent publishes an agent task event for async processing
	PublishAgentTaskEvent(ctx context.Context, event *AgentTaskEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
