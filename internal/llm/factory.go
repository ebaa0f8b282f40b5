package llm

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bloatai/bloatiq/internal/store"
)

// NewProvider builds the configured provider wrapped as
// timeout → retry → event logging → base. events may be nil to skip
// event logging.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, logger *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pc, _ := cfg.Selected()

	var (
		base Provider
		err  error
	)
	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(pc)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(pc)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, pc)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(pc)
	case ProviderMock:
		base = NewMockProvider()
	}
	if err != nil {
		return nil, fmt.Errorf("initialize %s provider: %w", cfg.Provider, err)
	}

	p := base
	if events != nil {
		p = WithLogging(p, cfg.Provider, events, logger)
	}
	p = WithRetry(p, cfg.Retry, logger)
	return WithTimeout(p, cfg.Timeout), nil
}

// NewProviderFromEnv loads the configuration from the environment and
// builds a provider. It returns ErrNotConfigured when nothing is set.
func NewProviderFromEnv(ctx context.Context, events store.EventRepo, logger *zap.Logger) (Provider, error) {
	cfg, ok := LoadConfig()
	if !ok {
		return nil, ErrNotConfigured
	}
	return NewProvider(ctx, cfg, events, logger)
}

type timeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout bounds every Generate call on p by d. A non-positive d
// returns p unchanged.
func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &timeoutProvider{inner: p, timeout: d}
}

func (t *timeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}

func (t *timeoutProvider) ModelID() string {
	return t.inner.ModelID()
}
