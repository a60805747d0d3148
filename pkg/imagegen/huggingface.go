package imagegen

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MONISHCR/Mindful-AI-Backend/pkg/utils"
)

// DefaultBaseURL is the Hugging Face serverless inference router.
const DefaultBaseURL = "https://router.huggingface.co/hf-inference"

var ErrNotConfigured = errors.New("imagegen: no image token configured")

// Renderer turns a text prompt into encoded image bytes.
type Renderer interface {
	Render(ctx context.Context, prompt string) ([]byte, error)
}

// HuggingFace calls the text-to-image task of a hosted model.
type HuggingFace struct {
	client  *http.Client
	baseURL string
	token   string
	model   string
}

func NewHuggingFace(token, model, baseURL string) (*HuggingFace, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrNotConfigured
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HuggingFace{
		client:  &http.Client{Timeout: 2 * time.Minute},
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		model:   model,
	}, nil
}

func (h *HuggingFace) Render(ctx context.Context, prompt string) ([]byte, error) {
	body, err := json.Marshal(map[string]string{"inputs": prompt})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.baseURL+"/models/"+h.model, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+h.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "image/png")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image API error (%d): %s", resp.StatusCode, utils.LimitStr(strings.TrimSpace(string(data)), 200))
	}
	if ct := resp.Header.Get("Content-Type"); strings.HasPrefix(ct, "application/json") {
		return nil, fmt.Errorf("image API returned JSON instead of an image: %s", utils.LimitStr(string(data), 200))
	}
	return data, nil
}
