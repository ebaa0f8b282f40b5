package llm

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Provider names accepted in Config.Provider.
const (
	ProviderAnthropic  = "anthropic"
	ProviderOpenAI     = "openai"
	ProviderGemini     = "gemini"
	ProviderOpenRouter = "openrouter"
	ProviderMock       = "mock"
)

// Config selects a provider and holds the settings for each one.
type Config struct {
	Provider string

	Anthropic  ProviderConfig
	OpenAI     ProviderConfig
	Gemini     ProviderConfig
	OpenRouter ProviderConfig

	Retry RetryConfig

	// Timeout bounds one Generate call including retries.
	Timeout time.Duration
}

// ProviderConfig is the connection setting shared by all providers.
type ProviderConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// RetryConfig configures exponential backoff for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with default models and no provider.
func DefaultConfig() Config {
	return Config{
		Anthropic:  ProviderConfig{Model: "claude-haiku"},
		OpenAI:     ProviderConfig{Model: "gpt-4o-mini"},
		Gemini:     ProviderConfig{Model: "gemini-flash"},
		OpenRouter: ProviderConfig{Model: "google/gemini-2.5-flash"},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2,
		},
		Timeout: 45 * time.Second,
	}
}

// LoadConfig reads BLOATIQ_* variables. When BLOATIQ_LLM_PROVIDER is unset
// it falls back to the first standard API key found (GEMINI_API_KEY,
// OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY). The second result
// is false when no provider could be chosen.
func LoadConfig() (Config, bool) {
	cfg := DefaultConfig()

	envInto(&cfg.Anthropic, "ANTHROPIC")
	envInto(&cfg.OpenAI, "OPENAI")
	envInto(&cfg.Gemini, "GEMINI")
	envInto(&cfg.OpenRouter, "OPENROUTER")

	if d, err := time.ParseDuration(os.Getenv("BLOATIQ_LLM_TIMEOUT")); err == nil && d > 0 {
		cfg.Timeout = d
	}

	if p := os.Getenv("BLOATIQ_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
		return cfg, true
	}

	discover := []struct {
		provider string
		env      string
		target   *ProviderConfig
	}{
		{ProviderGemini, "GEMINI_API_KEY", &cfg.Gemini},
		{ProviderOpenAI, "OPENAI_API_KEY", &cfg.OpenAI},
		{ProviderAnthropic, "ANTHROPIC_API_KEY", &cfg.Anthropic},
		{ProviderOpenRouter, "OPENROUTER_API_KEY", &cfg.OpenRouter},
	}
	for _, d := range discover {
		if d.target.APIKey != "" {
			cfg.Provider = d.provider
			return cfg, true
		}
	}
	for _, d := range discover {
		if k := os.Getenv(d.env); k != "" {
			cfg.Provider = d.provider
			d.target.APIKey = k
			return cfg, true
		}
	}
	return cfg, false
}

func envInto(pc *ProviderConfig, name string) {
	if k := os.Getenv("BLOATIQ_" + name + "_API_KEY"); k != "" {
		pc.APIKey = k
	}
	if m := os.Getenv("BLOATIQ_" + name + "_MODEL"); m != "" {
		pc.Model = m
	}
	if u := os.Getenv("BLOATIQ_" + name + "_BASE_URL"); u != "" {
		pc.BaseURL = u
	}
}

// Selected returns the settings of the chosen provider.
func (c Config) Selected() (ProviderConfig, error) {
	switch c.Provider {
	case ProviderAnthropic:
		return c.Anthropic, nil
	case ProviderOpenAI:
		return c.OpenAI, nil
	case ProviderGemini:
		return c.Gemini, nil
	case ProviderOpenRouter:
		return c.OpenRouter, nil
	case ProviderMock:
		return ProviderConfig{Model: "mock"}, nil
	case "":
		return ProviderConfig{}, ErrNotConfigured
	default:
		return ProviderConfig{}, fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
}

// Validate checks that the selected provider has an API key.
func (c Config) Validate() error {
	pc, err := c.Selected()
	if err != nil {
		return err
	}
	if c.Provider != ProviderMock && pc.APIKey == "" {
		return fmt.Errorf("an API key is required for the %s provider (set BLOATIQ_%s_API_KEY)",
			c.Provider, strings.ToUpper(c.Provider))
	}
	return nil
}
