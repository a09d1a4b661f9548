package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLLMClient struct {
	resp LLMResponse
	err  error
}

func (s stubLLMClient) Chat(ctx context.Context, req LLMRequest) (LLMResponse, error) {
	return s.resp, s.err
}

func TestAutoLLMClient_UsesPrimaryOnSuccess(t *testing.T) {
	primary := stubLLMClient{resp: LLMResponse{Text: "from primary", Provider: "ollama"}}
	fallback := stubLLMClient{resp: LLMResponse{Text: "from fallback", Provider: "openai"}}
	client := NewAutoLLMClient(primary, fallback)

	resp, err := client.Chat(context.Background(), LLMRequest{UserMessage: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "from primary", resp.Text)
}

func TestAutoLLMClient_FallsBackOnPrimaryError(t *testing.T) {
	primary := stubLLMClient{err: transportError(errors.New("connection refused"))}
	fallback := stubLLMClient{resp: LLMResponse{Text: "from fallback", Provider: "openai"}}
	client := NewAutoLLMClient(primary, fallback)

	resp, err := client.Chat(context.Background(), LLMRequest{UserMessage: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "from fallback", resp.Text)
}

func TestAutoLLMClient_NoFallbackReturnsPrimaryError(t *testing.T) {
	wantErr := transportError(errors.New("timeout"))
	primary := stubLLMClient{err: wantErr}
	client := NewAutoLLMClient(primary, nil)

	_, err := client.Chat(context.Background(), LLMRequest{UserMessage: "hi"})
	assert.Equal(t, wantErr, err)
}

func TestAutoLLMClient_FallbackAlsoFailsReturnsFallbackError(t *testing.T) {
	primary := stubLLMClient{err: transportError(errors.New("down"))}
	fallbackErr := invalidResponseError(errors.New("empty"))
	fallback := stubLLMClient{err: fallbackErr}
	client := NewAutoLLMClient(primary, fallback)

	_, err := client.Chat(context.Background(), LLMRequest{UserMessage: "hi"})
	assert.Equal(t, fallbackErr, err)
}

func TestClassifyProviderError_DetectsRateLimitBySubstring(t *testing.T) {
	err := classifyProviderError("Rate limit exceeded for this model")
	advisorErr, ok := err.(*AdvisorError)
	require.True(t, ok)
	assert.Equal(t, ErrProviderRateLimit, advisorErr.Kind)
}

func TestClassifyProviderError_DetectsRateLimitBy429(t *testing.T) {
	err := classifyProviderError("upstream returned 429")
	advisorErr, ok := err.(*AdvisorError)
	require.True(t, ok)
	assert.Equal(t, ErrProviderRateLimit, advisorErr.Kind)
}

func TestClassifyProviderError_OtherMessagesAreInvalidResponse(t *testing.T) {
	err := classifyProviderError("model returned malformed json")
	advisorErr, ok := err.(*AdvisorError)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidResponse, advisorErr.Kind)
}

func TestClassifyTransportError_WrapsAsTransport(t *testing.T) {
	err := classifyTransportError(errors.New("dial tcp: connection refused"))
	advisorErr, ok := err.(*AdvisorError)
	require.True(t, ok)
	assert.Equal(t, ErrTransport, advisorErr.Kind)
	assert.Equal(t, "Could not reach AI service. Please check your connection.", advisorErr.Error())
}

func TestAdvisorError_ErrorNeverLeaksCause(t *testing.T) {
	err := notConfiguredError(errors.New("secret internal detail: connection string xyz"))
	assert.NotContains(t, err.Error(), "secret internal detail")
	assert.NotContains(t, err.Error(), "connection string")
}
