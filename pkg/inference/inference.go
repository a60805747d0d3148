package inference

import (
	"context"
	"errors"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/prompt"
)

// ErrMissingAPIKey is returned by constructors when no credential is configured.
var ErrMissingAPIKey = errors.New("inference: API key is empty")

// UnknownReason is reported when a response carries no text and the
// provider gives no block or finish reason.
const UnknownReason = "Unknown"

// Invoker sends one prompt to a generative model. Implementations never
// retry and never return a raw transport fault; everything is folded into
// the Response.
type Invoker interface {
	Name() string
	Invoke(ctx context.Context, task prompt.Task, text string) Response
}

// Response is the outcome of a single model call. Exactly one of Text,
// Blocked or Err is meaningful.
type Response struct {
	Text    string
	Blocked string
	Err     error
}

// OK reports whether the model produced text.
func (r Response) OK() bool {
	return r.Err == nil && r.Blocked == "" && r.Text != ""
}

// Reason describes a failed response.
func (r Response) Reason() string {
	switch {
	case r.Err != nil:
		return r.Err.Error()
	case r.Blocked != "":
		return r.Blocked
	case r.Text == "":
		return UnknownReason
	}
	return ""
}

// Decoding holds the sampling parameters of the conversational task.
type Decoding struct {
	Temperature     float32
	TopP            float32
	TopK            float32
	MaxOutputTokens int32
}

// ConversationalDecoding is applied to prompt.SupportiveAnswer; other tasks
// use provider defaults.
var ConversationalDecoding = Decoding{
	Temperature:     0.75,
	TopP:            0.95,
	TopK:            40,
	MaxOutputTokens: 1024,
}
