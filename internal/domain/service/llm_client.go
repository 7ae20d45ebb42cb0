package service

import (
	"context"

	"syncfloww/internal/domain/entity"
)

// CompletionRequest is one chat completion against a provider model.
type CompletionRequest struct {
	Provider     *entity.LLMProvider
	ModelID      string
	SystemPrompt string
	Prompt       string
	Temperature  *float32
	MaxTokens    int
}

type CompletionUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

type CompletionResult struct {
	Content string
	Model   string
	Usage   CompletionUsage
}

// LLMClient calls a chat completion endpoint.
type LLMClient interface {
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResult, error)
}
