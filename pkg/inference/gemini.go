package inference

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/prompt"
)

// harmCategories are blocked at medium probability and above for the
// conversational task.
var harmCategories = []genai.HarmCategory{
	genai.HarmCategoryHarassment,
	genai.HarmCategoryHateSpeech,
	genai.HarmCategorySexuallyExplicit,
	genai.HarmCategoryDangerousContent,
}

type GeminiInvoker struct {
	client *genai.Client
	model  string
}

// NewGeminiInvoker creates a Gemini API client for model.
func NewGeminiInvoker(ctx context.Context, apiKey, model string) (*GeminiInvoker, error) {
	return NewGeminiInvokerWithConfig(ctx, &genai.ClientConfig{APIKey: apiKey}, model)
}

// NewGeminiInvokerWithConfig is NewGeminiInvoker with full control over the
// client config (base URL, HTTP client).
func NewGeminiInvokerWithConfig(ctx context.Context, config *genai.ClientConfig, model string) (*GeminiInvoker, error) {
	if config == nil || strings.TrimSpace(config.APIKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}
	config.Backend = genai.BackendGeminiAPI
	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	return &GeminiInvoker{client: client, model: model}, nil
}

func (g *GeminiInvoker) Name() string { return "gemini:" + g.model }

// Invoke runs a single GenerateContent call.
func (g *GeminiInvoker) Invoke(ctx context.Context, task prompt.Task, text string) Response {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(text), geminiConfig(task))
	if err != nil {
		return Response{Err: fmt.Errorf("failed to generate content: %w", err)}
	}
	if out := result.Text(); out != "" {
		return Response{Text: out}
	}
	return Response{Blocked: geminiBlockReason(result)}
}

func geminiConfig(task prompt.Task) *genai.GenerateContentConfig {
	if !task.Conversational() {
		return nil
	}
	d := ConversationalDecoding
	config := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(d.Temperature),
		TopP:            genai.Ptr(d.TopP),
		TopK:            genai.Ptr(d.TopK),
		MaxOutputTokens: d.MaxOutputTokens,
	}
	for _, c := range harmCategories {
		config.SafetySettings = append(config.SafetySettings, &genai.SafetySetting{
			Category:  c,
			Threshold: genai.HarmBlockThresholdBlockMediumAndAbove,
		})
	}
	return config
}

func geminiBlockReason(result *genai.GenerateContentResponse) string {
	if result == nil {
		return UnknownReason
	}
	if fb := result.PromptFeedback; fb != nil && fb.BlockReason != "" && fb.BlockReason != genai.BlockedReasonUnspecified {
		return string(fb.BlockReason)
	}
	if len(result.Candidates) > 0 && result.Candidates[0] != nil {
		if fr := result.Candidates[0].FinishReason; fr != "" && fr != genai.FinishReasonStop {
			return "Blocked: Finish Reason - " + string(fr)
		}
	}
	return UnknownReason
}
