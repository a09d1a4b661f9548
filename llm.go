package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/c360studio/semstreams/agentic"
	"github.com/c360studio/semstreams/model"
	agenticmodel "github.com/c360studio/semstreams/processor/agentic-model"
	openai "github.com/sashabaranov/go-openai"
)

// =============================================================================
// LLM ADAPTER (C11)
// =============================================================================
// Uniform request/response shape over two transports: the registry-routed
// agentic client (grounded on the teacher's DefaultLLMProvider) for any
// endpoint the deployment's model.Registry knows about, and a direct
// go-openai client for a plain OpenAI-compatible fallback when the registry
// has no entry for the configured fallback provider. "auto" mode tries the
// primary, then the fallback; any transport detail is mapped to one of the
// §7 user-safe messages before it reaches a caller.
// =============================================================================

// LLMRequest is the adapter's uniform inbound shape.
type LLMRequest struct {
	SystemPrompt string
	UserMessage  string
	MaxTokens    int
}

// LLMResponse is the adapter's uniform outbound shape.
type LLMResponse struct {
	Text      string
	TokensIn  int
	TokensOut int
	Provider  string
	Model     string
}

// LLMClient is the capability the core consumes (§6).
type LLMClient interface {
	Chat(ctx context.Context, req LLMRequest) (LLMResponse, error)
}

// RegistryLLMClient routes Chat calls through a semstreams model.Registry,
// resolving the "advisor-chat" capability to a concrete endpoint.
type RegistryLLMClient struct {
	registry model.RegistryReader
}

// NewRegistryLLMClient builds an LLMClient backed by a model registry.
func NewRegistryLLMClient(registry model.RegistryReader) *RegistryLLMClient {
	return &RegistryLLMClient{registry: registry}
}

// Chat implements LLMClient.
func (c *RegistryLLMClient) Chat(ctx context.Context, req LLMRequest) (LLMResponse, error) {
	endpointName := c.registry.Resolve("advisor-chat")
	endpoint := c.registry.GetEndpoint(endpointName)
	if endpoint == nil {
		endpoint = c.registry.GetEndpoint(c.registry.GetDefault())
	}
	if endpoint == nil {
		return LLMResponse{}, notConfiguredError(errors.New("no endpoint for advisor-chat"))
	}

	client, err := agenticmodel.NewClient(endpoint)
	if err != nil {
		return LLMResponse{}, notConfiguredError(err)
	}
	defer client.Close()

	resp, err := client.ChatCompletion(ctx, agentic.AgentRequest{
		RequestID: "advisor-chat",
		Role:      agentic.RoleGeneral,
		Messages: []agentic.ChatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserMessage},
		},
		Model:       endpoint.Model,
		MaxTokens:   req.MaxTokens,
		Temperature: 0.4,
	})
	if err != nil {
		return LLMResponse{}, classifyTransportError(err)
	}
	if resp.Status == agentic.StatusError {
		return LLMResponse{}, classifyProviderError(resp.Error)
	}
	if resp.Message.Content == "" {
		return LLMResponse{}, invalidResponseError(errors.New("empty completion"))
	}

	return LLMResponse{
		Text: resp.Message.Content, TokensIn: resp.TokenUsage.PromptTokens,
		TokensOut: resp.TokenUsage.CompletionTokens, Provider: endpoint.Provider, Model: endpoint.Model,
	}, nil
}

// OpenAIClient is a direct, registry-free OpenAI-compatible client, used as
// the fallback leg of "auto" mode when the registry has no fallback entry.
type OpenAIClient struct {
	client   *openai.Client
	model    string
	provider string
}

// NewOpenAIClient builds an LLMClient directly against an OpenAI-compatible
// API (apiKey, baseURL - empty baseURL uses api.openai.com).
func NewOpenAIClient(apiKey, baseURL, model, provider string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{client: openai.NewClientWithConfig(cfg), model: model, provider: provider}
}

// Chat implements LLMClient.
func (c *OpenAIClient) Chat(ctx context.Context, req LLMRequest) (LLMResponse, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: req.UserMessage},
		},
		MaxTokens: req.MaxTokens,
	})
	if err != nil {
		return LLMResponse{}, classifyTransportError(err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return LLMResponse{}, invalidResponseError(errors.New("empty choices"))
	}

	return LLMResponse{
		Text: resp.Choices[0].Message.Content, TokensIn: resp.Usage.PromptTokens,
		TokensOut: resp.Usage.CompletionTokens, Provider: c.provider, Model: c.model,
	}, nil
}

// AutoLLMClient tries a primary client, falling back to a secondary one on
// any error, a config error included (the primary will never succeed then,
// so failing straight to the fallback is still worth trying).
type AutoLLMClient struct {
	primary  LLMClient
	fallback LLMClient
}

// NewAutoLLMClient builds the "auto" mode adapter (§4.11).
func NewAutoLLMClient(primary, fallback LLMClient) *AutoLLMClient {
	return &AutoLLMClient{primary: primary, fallback: fallback}
}

// Chat implements LLMClient.
func (c *AutoLLMClient) Chat(ctx context.Context, req LLMRequest) (LLMResponse, error) {
	resp, err := c.primary.Chat(ctx, req)
	if err == nil {
		return resp, nil
	}
	if c.fallback == nil {
		return LLMResponse{}, err
	}
	return c.fallback.Chat(ctx, req)
}

func classifyTransportError(err error) error {
	return transportError(err)
}

func classifyProviderError(providerMsg string) error {
	if strings.Contains(strings.ToLower(providerMsg), "rate limit") || strings.Contains(providerMsg, "429") {
		return providerRateLimitError(fmt.Errorf("provider error: %s", providerMsg))
	}
	return invalidResponseError(fmt.Errorf("provider error: %s", providerMsg))
}
