package inference

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/openai/openai-go/v3/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/config"
	"github.com/MONISHCR/Mindful-AI-Backend/pkg/prompt"
)

func geminiServer(t *testing.T, status int, body string, seen *atomic.Value) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if seen != nil {
			b, _ := io.ReadAll(r.Body)
			seen.Store(string(b))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestGemini(t *testing.T, srv *httptest.Server) *GeminiInvoker {
	t.Helper()
	inv, err := NewGeminiInvokerWithConfig(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL + "/"},
	}, "gemini-1.5-flash")
	require.NoError(t, err)
	return inv
}

func TestGemini_Text(t *testing.T) {
	srv := geminiServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"score\": 7}"}]},"finishReason":"STOP"}]}`, nil)

	resp := newTestGemini(t, srv).Invoke(context.Background(), prompt.JournalAnalysis, "hello")

	require.True(t, resp.OK(), resp.Reason())
	assert.Equal(t, `{"score": 7}`, resp.Text)
}

func TestGemini_PromptFeedbackBlock(t *testing.T) {
	srv := geminiServer(t, http.StatusOK, `{"promptFeedback":{"blockReason":"SAFETY"}}`, nil)

	resp := newTestGemini(t, srv).Invoke(context.Background(), prompt.SupportiveAnswer, "hello")

	assert.False(t, resp.OK())
	assert.NoError(t, resp.Err)
	assert.Equal(t, "SAFETY", resp.Blocked)
}

func TestGemini_FinishReasonBlock(t *testing.T) {
	srv := geminiServer(t, http.StatusOK, `{"candidates":[{"finishReason":"SAFETY"}]}`, nil)

	resp := newTestGemini(t, srv).Invoke(context.Background(), prompt.SupportiveAnswer, "hello")

	assert.Equal(t, "Blocked: Finish Reason - SAFETY", resp.Blocked)
}

func TestGemini_TransportErrorIsFolded(t *testing.T) {
	srv := geminiServer(t, http.StatusBadRequest,
		`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`, nil)

	resp := newTestGemini(t, srv).Invoke(context.Background(), prompt.JournalAnalysis, "hello")

	require.Error(t, resp.Err)
	assert.False(t, resp.OK())
	assert.Contains(t, resp.Reason(), "API key not valid")
}

func TestGemini_ConversationalSendsSafetySettings(t *testing.T) {
	var seen atomic.Value
	srv := geminiServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"ok"}]},"finishReason":"STOP"}]}`, &seen)
	inv := newTestGemini(t, srv)

	inv.Invoke(context.Background(), prompt.SupportiveAnswer, "hello")
	body := seen.Load().(string)
	assert.Contains(t, body, "BLOCK_MEDIUM_AND_ABOVE")
	assert.Contains(t, body, "HARM_CATEGORY_DANGEROUS_CONTENT")

	inv.Invoke(context.Background(), prompt.JournalAnalysis, "hello")
	assert.NotContains(t, seen.Load().(string), "safetySettings")
}

func TestGemini_MissingKey(t *testing.T) {
	_, err := NewGeminiInvoker(context.Background(), "  ", "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestGeminiConfig(t *testing.T) {
	assert.Nil(t, geminiConfig(prompt.MoodAssessment))

	cfg := geminiConfig(prompt.SupportiveAnswer)
	require.NotNil(t, cfg)
	assert.Equal(t, float32(0.75), *cfg.Temperature)
	assert.Equal(t, float32(0.95), *cfg.TopP)
	assert.Equal(t, float32(40), *cfg.TopK)
	assert.Equal(t, int32(1024), cfg.MaxOutputTokens)
	assert.Len(t, cfg.SafetySettings, 4)
}

func openAIServer(t *testing.T, status int, body string, seen *atomic.Value) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/chat/completions") {
			http.NotFound(w, r)
			return
		}
		if seen != nil {
			b, _ := io.ReadAll(r.Body)
			seen.Store(string(b))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func completion(content, finish string) string {
	b, _ := json.Marshal(map[string]any{
		"id":      "chatcmpl-1",
		"object":  "chat.completion",
		"created": 1,
		"model":   "gpt-4o-mini",
		"choices": []map[string]any{{
			"index":         0,
			"finish_reason": finish,
			"message":       map[string]any{"role": "assistant", "content": content},
		}},
	})
	return string(b)
}

func TestOpenAI_Text(t *testing.T) {
	var seen atomic.Value
	srv := openAIServer(t, http.StatusOK, completion("be kind to yourself", "stop"), &seen)
	inv, err := NewOpenAIInvoker("sk-test", "", srv.URL+"/")
	require.NoError(t, err)

	resp := inv.Invoke(context.Background(), prompt.SupportiveAnswer, "hello")

	require.True(t, resp.OK(), resp.Reason())
	assert.Equal(t, "be kind to yourself", resp.Text)
	assert.Contains(t, seen.Load().(string), `"temperature":0.75`)
}

func TestOpenAI_ContentFilter(t *testing.T) {
	srv := openAIServer(t, http.StatusOK, completion("", "content_filter"), nil)
	inv, err := NewOpenAIInvoker("sk-test", "gpt-4o-mini", srv.URL+"/")
	require.NoError(t, err)

	resp := inv.Invoke(context.Background(), prompt.JournalAnalysis, "hello")

	assert.Equal(t, "Blocked: Finish Reason - content_filter", resp.Blocked)
}

func TestOpenAI_ServerErrorNoRetry(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":{"message":"boom"}}`)
	}))
	t.Cleanup(srv.Close)
	inv, err := NewOpenAIInvoker("sk-test", "gpt-4o-mini", srv.URL+"/", option.WithRequestTimeout(5*time.Second))
	require.NoError(t, err)

	resp := inv.Invoke(context.Background(), prompt.JournalAnalysis, "hello")

	require.Error(t, resp.Err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestOpenAI_MissingKey(t *testing.T) {
	_, err := NewOpenAIInvoker("", "m", "")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

type slowInvoker struct{}

func (slowInvoker) Name() string { return "slow" }

func (slowInvoker) Invoke(ctx context.Context, _ prompt.Task, _ string) Response {
	<-ctx.Done()
	return Response{Err: ctx.Err()}
}

func TestWithTimeout(t *testing.T) {
	inv := WithTimeout(slowInvoker{}, 20*time.Millisecond)
	assert.Equal(t, "slow", inv.Name())

	resp := inv.Invoke(context.Background(), prompt.JournalAnalysis, "x")
	assert.ErrorIs(t, resp.Err, context.DeadlineExceeded)

	assert.Equal(t, slowInvoker{}, WithTimeout(slowInvoker{}, 0))
}

func TestNew_UnknownProvider(t *testing.T) {
	_, err := New(context.Background(), config.Config{Provider: "llama"})
	assert.ErrorContains(t, err, "unknown provider")

	_, err = New(context.Background(), config.Config{Provider: "openai"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestResponseReason(t *testing.T) {
	assert.Equal(t, UnknownReason, Response{}.Reason())
	assert.Equal(t, "SAFETY", Response{Blocked: "SAFETY"}.Reason())
	assert.Empty(t, Response{Text: "hi"}.Reason())
}
