package llm

import (
	"fmt"
	"os"
)

// Config selects and configures a provider.
type Config struct {
	// Provider is "anthropic", "openai" or "mock".
	Provider string
	Model    string
	APIKey   string
	BaseURL  string
}

// ConfigFromEnv builds a Config from the environment. The provider
// defaults to whichever API key is present, Anthropic first.
func ConfigFromEnv() Config {
	cfg := Config{
		Provider: os.Getenv("LEKSIKA_LLM_PROVIDER"),
		Model:    os.Getenv("LEKSIKA_LLM_MODEL"),
		BaseURL:  os.Getenv("LEKSIKA_LLM_BASE_URL"),
	}
	if cfg.Provider == "" {
		switch {
		case os.Getenv("ANTHROPIC_API_KEY") != "":
			cfg.Provider = "anthropic"
		case os.Getenv("OPENAI_API_KEY") != "":
			cfg.Provider = "openai"
		}
	}
	switch cfg.Provider {
	case "anthropic":
		cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case "openai":
		cfg.APIKey = os.Getenv("OPENAI_API_KEY")
	}
	return cfg
}

// NewProvider creates a Provider from configuration.
func NewProvider(cfg Config) (Provider, error) {
	switch cfg.Provider {
	case "anthropic":
		return NewAnthropicProvider(cfg)
	case "openai":
		return NewOpenAIProvider(cfg)
	case "mock":
		return NewMockProvider(), nil
	case "":
		return nil, fmt.Errorf("no LLM provider configured: set LEKSIKA_LLM_PROVIDER or an API key")
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
}
