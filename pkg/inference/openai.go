package inference

import (
	"context"
	"fmt"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/prompt"
)

// OpenAIInvoker implements Invoker over any OpenAI-compatible chat
// completion endpoint.
type OpenAIInvoker struct {
	client *openai.Client
	model  string
}

// NewOpenAIInvoker creates an invoker. baseURL may be empty for api.openai.com.
func NewOpenAIInvoker(apiKey, model, baseURL string, opts ...option.RequestOption) (*OpenAIInvoker, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}, opts...)
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := openai.NewClient(opts...)
	return &OpenAIInvoker{client: &client, model: model}, nil
}

func (o *OpenAIInvoker) Name() string { return "openai:" + o.model }

// Invoke sends the prompt as a single user message.
func (o *OpenAIInvoker) Invoke(ctx context.Context, task prompt.Task, text string) Response {
	params := openai.ChatCompletionNewParams{
		Model:    o.model,
		Messages: []openai.ChatCompletionMessageParamUnion{openai.UserMessage(text)},
	}
	if task.Conversational() {
		d := ConversationalDecoding
		params.Temperature = openai.Float(float64(d.Temperature))
		params.TopP = openai.Float(float64(d.TopP))
		params.MaxCompletionTokens = openai.Int(int64(d.MaxOutputTokens))
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return Response{Err: fmt.Errorf("openai inference error: %w", err)}
	}
	if len(resp.Choices) == 0 {
		return Response{Blocked: UnknownReason}
	}
	choice := resp.Choices[0]
	if choice.Message.Content != "" && choice.FinishReason != "content_filter" {
		return Response{Text: choice.Message.Content}
	}
	if choice.FinishReason != "" && choice.FinishReason != "stop" {
		return Response{Blocked: "Blocked: Finish Reason - " + string(choice.FinishReason)}
	}
	if choice.Message.Refusal != "" {
		return Response{Blocked: choice.Message.Refusal}
	}
	return Response{Blocked: UnknownReason}
}
