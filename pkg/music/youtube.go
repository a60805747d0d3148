package music

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// YouTube searches the YouTube Data API v3 for music videos.
type YouTube struct {
	service *youtube.Service
}

// NewYouTube builds a searcher authenticated with apiKey. Extra options are
// appended after the key (endpoint, HTTP client).
func NewYouTube(ctx context.Context, apiKey string, opts ...option.ClientOption) (*YouTube, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create youtube service: %w", err)
	}
	return &YouTube{service: svc}, nil
}

// Search returns the ID of the top music video for the mood.
func (y *YouTube) Search(ctx context.Context, mood, language string) (string, error) {
	query := BuildQuery(mood, language)
	log.Info("searching youtube", "query", query)

	resp, err := y.service.Search.List([]string{"snippet"}).
		Q(query).
		MaxResults(1).
		Type("video").
		TopicId(MusicTopic).
		RelevanceLanguage(RelevanceLanguage(language)).
		Context(ctx).
		Do()
	if err != nil {
		log.Error("youtube search failed", "query", query, "err", err)
		return "", err
	}
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		title := ""
		if item.Snippet != nil {
			title = item.Snippet.Title
		}
		log.Info("found video", "title", title, "id", item.Id.VideoId)
		return item.Id.VideoId, nil
	}
	log.Warn("no relevant videos found", "query", query)
	return "", ErrNoResults
}
