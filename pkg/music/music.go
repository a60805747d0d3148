package music

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	ErrNoResults     = errors.New("music: no videos matched")
	ErrNotConfigured = errors.New("music: searcher not configured")
)

// Searcher finds one video for a mood and language.
type Searcher interface {
	Search(ctx context.Context, mood, language string) (videoID string, err error)
}

// Unconfigured is used when no YouTube key is set. Every search fails with
// ErrNotConfigured.
type Unconfigured struct{}

func (Unconfigured) Search(context.Context, string, string) (string, error) {
	return "", ErrNotConfigured
}

// Describe renders a search error as the message sent to clients.
func Describe(err error) string {
	var apiErr *googleapi.Error
	switch {
	case errors.Is(err, ErrNoResults):
		return "No relevant videos found on YouTube for your request."
	case errors.Is(err, ErrNotConfigured):
		return "Backend YouTube service not configured."
	case errors.As(err, &apiErr):
		msg := fmt.Sprintf("YouTube API error (%d). Check API key/quota.", apiErr.Code)
		if apiErr.Code == http.StatusForbidden {
			msg += " Possible quota exceeded or API not enabled/key invalid."
		}
		return msg
	}
	return fmt.Sprintf("An unexpected backend error occurred: %v", err)
}
