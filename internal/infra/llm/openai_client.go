// Package llm calls OpenAI-compatible chat completion endpoints.
package llm

import (
	"context"
	"math"
	"net/http"
	"strings"

	"syncfloww/config"
	"syncfloww/internal/domain/entity"
	"syncfloww/internal/domain/service"
	"syncfloww/internal/errors"

	"github.com/sashabaranov/go-openai"
)

var (
	ErrMissingAPIKey       = errors.New("llm: no api key configured for provider")
	ErrUnsupportedProvider = errors.New("llm: provider needs its own OpenAI-compatible base url and api key")
	ErrEmptyCompletion     = errors.New("llm: completion returned no choices")
)

type openAIClient struct {
	fallbackKey     string
	fallbackBaseURL string
	httpClient      *http.Client
}

// NewOpenAIClient falls back to llm.openaiApiKey and llm.baseUrl for openai-class providers without credentials.
// Other classes are only reachable through their own base url and key.
func NewOpenAIClient(cfg *config.Config) service.LLMClient {
	c := &openAIClient{httpClient: &http.Client{}}
	if cfg.LLM != nil {
		c.fallbackKey = cfg.LLM.OpenAIAPIKey
		c.fallbackBaseURL = cfg.LLM.BaseURL
		c.httpClient.Timeout = cfg.LLM.RequestTimeout
	}

	return c
}

func (c *openAIClient) Complete(ctx context.Context, req service.CompletionRequest) (*service.CompletionResult, error) {
	client, err := c.clientFor(req.Provider)
	if err != nil {
		return nil, err
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt})
	}
	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Prompt})

	chatReq := openai.ChatCompletionRequest{
		Model:     req.ModelID,
		Messages:  messages,
		MaxTokens: req.MaxTokens,
	}
	if req.Temperature != nil {
		chatReq.Temperature = *req.Temperature
		// go-openai omits a zero temperature, which would leave the provider default in place.
		if chatReq.Temperature == 0 {
			chatReq.Temperature = math.SmallestNonzeroFloat32
		}
	}

	resp, err := client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, errors.Wrapf(err, "chat completion with model %s", req.ModelID)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}

	return &service.CompletionResult{
		Content: resp.Choices[0].Message.Content,
		Model:   resp.Model,
		Usage: service.CompletionUsage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}

func (c *openAIClient) clientFor(provider *entity.LLMProvider) (*openai.Client, error) {
	class := entity.ProviderClassOpenAI
	var apiKey, baseURL string
	if provider != nil {
		class = provider.ProviderClass
		apiKey, baseURL = provider.APIKey, provider.BaseURL
	}

	if class != entity.ProviderClassOpenAI {
		if baseURL == "" || apiKey == "" {
			return nil, errors.Wrapf(ErrUnsupportedProvider, "provider class %s", class)
		}
	} else {
		if apiKey == "" {
			apiKey = c.fallbackKey
		}
		if baseURL == "" {
			baseURL = c.fallbackBaseURL
		}
		if apiKey == "" {
			return nil, ErrMissingAPIKey
		}
	}

	clientCfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	clientCfg.HTTPClient = c.httpClient

	return openai.NewClientWithConfig(clientCfg), nil
}
