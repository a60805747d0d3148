package inference

import (
	"context"
	"fmt"
	"time"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/config"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/prompt"
)

// New builds the invoker selected by cfg.Provider, bounded by cfg.ModelTimeout.
func New(ctx context.Context, cfg config.Config) (Invoker, error) {
	var (
		inv Invoker
		err error
	)
	switch cfg.Provider {
	case "", "gemini":
		inv, err = NewGeminiInvoker(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	case "openai":
		inv, err = NewOpenAIInvoker(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	default:
		return nil, fmt.Errorf("inference: unknown provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfg.Provider, err)
	}
	return WithTimeout(inv, cfg.ModelTimeout), nil
}

type timeoutInvoker struct {
	Invoker
	timeout time.Duration
}

// WithTimeout bounds every call made through inv. d <= 0 returns inv unchanged.
func WithTimeout(inv Invoker, d time.Duration) Invoker {
	if d <= 0 {
		return inv
	}
	return &timeoutInvoker{Invoker: inv, timeout: d}
}

func (t *timeoutInvoker) Invoke(ctx context.Context, task prompt.Task, text string) Response {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.Invoker.Invoke(ctx, task, text)
}
