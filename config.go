package advisor

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/c360studio/semstreams/model"
	"github.com/joho/godotenv"
)

// =============================================================================
// CONFIGURATION SURFACE (§6)
// =============================================================================
// AISettings is consumed at startup and re-read before every rate-limit
// check. LoadAISettings follows the teacher's "read a file, fall back to
// sane local defaults" shape (see LoadModelRegistry); environment overrides
// come through godotenv the way the rest of the example corpus does it.
// =============================================================================

// AIMode controls whether the AI path is reachable at all.
type AIMode string

const (
	AIModeOff       AIMode = "off"
	AIModeOn        AIMode = "on"
	AIModeUnlimited AIMode = "unlimited"
)

// AISettings is the mutable (admin-editable, out of core scope) AI
// configuration consulted by the rate limiter and the LLM adapter.
type AISettings struct {
	Mode             AIMode `json:"mode"`
	DailyLimitFree   int    `json:"dailyLimitFree"`
	DailyLimitAdmin  int    `json:"dailyLimitAdmin"`
	CooldownSeconds  int    `json:"cooldownSeconds"`
	PrimaryProvider  string `json:"primaryProvider"`
	PrimaryModel     string `json:"primaryModel"`
	FallbackProvider string `json:"fallbackProvider,omitempty"`
	FallbackModel    string `json:"fallbackModel,omitempty"`
}

// LoadAISettings reads AI configuration from a JSON file, falling back to
// DefaultAISettings for local development when the file is absent.
func LoadAISettings(path string) (*AISettings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultAISettings(), nil
	}
	var settings AISettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// DefaultAISettings returns a conservative local-development configuration:
// AI on, a small daily allowance, no cooldown, pointed at the local model
// registry's default endpoint.
func DefaultAISettings() *AISettings {
	return &AISettings{
		Mode: AIModeOn, DailyLimitFree: 10, DailyLimitAdmin: 100,
		CooldownSeconds: 0, PrimaryProvider: "ollama", PrimaryModel: "llama3.2",
	}
}

// LoadEnv loads a local .env file (if present) into the process environment.
// Safe to call multiple times; a missing file is not an error.
func LoadEnv() {
	_ = godotenv.Load()
}

// EnvInt reads an environment variable as an int, falling back to def.
func EnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// DefaultModelRegistry returns a registry configured for local development
// using Ollama, so the advisor can run against C11 without external API
// keys. Mirrors the teacher's "agent-work" capability shape for the
// advisor's own "advisor-chat" capability.
func DefaultModelRegistry() *model.Registry {
	return &model.Registry{
		Endpoints: map[string]*model.EndpointConfig{
			"ollama": {
				Provider:  "ollama",
				URL:       "http://localhost:11434/v1",
				Model:     "llama3.2",
				MaxTokens: 8192,
			},
		},
		Capabilities: map[string]*model.CapabilityConfig{
			"advisor-chat": {
				Description: "Free-form advisor question answering",
				Preferred:   []string{"ollama"},
			},
		},
		Defaults: model.DefaultsConfig{
			Model: "ollama",
		},
	}
}

// ProductionModelRegistry returns a registry configured for production use,
// requiring OPENAI_API_KEY and/or ANTHROPIC_API_KEY in the environment.
func ProductionModelRegistry() *model.Registry {
	return &model.Registry{
		Endpoints: map[string]*model.EndpointConfig{
			"gpt-4o": {
				Provider:      "openai",
				URL:           "https://api.openai.com/v1",
				Model:         "gpt-4o",
				MaxTokens:     128000,
				SupportsTools: false,
				APIKeyEnv:     "OPENAI_API_KEY",
			},
			"claude": {
				Provider:  "anthropic",
				Model:     "claude-sonnet-4-5-20250514",
				MaxTokens: 200000,
				APIKeyEnv: "ANTHROPIC_API_KEY",
			},
		},
		Capabilities: map[string]*model.CapabilityConfig{
			"advisor-chat": {
				Description: "Free-form advisor question answering",
				Preferred:   []string{"gpt-4o"},
				Fallback:    []string{"claude"},
			},
		},
		Defaults: model.DefaultsConfig{
			Model: "gpt-4o",
		},
	}
}
