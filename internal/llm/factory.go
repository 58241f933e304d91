package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration, wrapped with the
// retry and usage-logging decorators. A nil recorder skips the usage
// log.
func NewProvider(ctx context.Context, cfg Config, recorder UsageRecorder) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap order: caller -> retry -> usage log -> base.
	wrapped := base
	if recorder != nil {
		wrapped = WithUsageLog(wrapped, cfg.Provider, recorder)
	}
	return WithRetry(wrapped, cfg.Retry), nil
}
