package llm

import (
	"context"
	"fmt"

	"MemoryStoryAgent/internal/models"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

const (
	videoSearchKind  = "video"
	videoSearchLimit = 5
)

type VideoSearcher interface {
	Search(ctx context.Context, query string) ([]models.Video, error)
}

// YouTubeSearcher는 YouTube Data API v3 search.list를 호출한다
type YouTubeSearcher struct {
	service *youtube.Service
}

// opts는 테스트에서 엔드포인트를 바꿀 때 사용
func NewYouTubeSearcher(ctx context.Context, apiKey string, opts ...option.ClientOption) (*YouTubeSearcher, error) {
	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("NewYouTubeSearcher(): failed to create service: %w", err)
	}
	return &YouTubeSearcher{service: service}, nil
}

// Search는 최대 5개의 영상을 검색 순서대로 돌려준다
func (y *YouTubeSearcher) Search(ctx context.Context, query string) ([]models.Video, error) {
	resp, err := y.service.Search.List([]string{"snippet"}).
		Q(query).
		Type(videoSearchKind).
		MaxResults(videoSearchLimit).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("YouTubeSearcher.Search(): %w", err)
	}

	videos := make([]models.Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		video := models.Video{
			Title:   item.Snippet.Title,
			VideoID: item.Id.VideoId,
		}
		if item.Snippet.Thumbnails != nil && item.Snippet.Thumbnails.Default != nil {
			video.ThumbnailURL = item.Snippet.Thumbnails.Default.Url
		}
		videos = append(videos, video)
		if len(videos) == videoSearchLimit {
			break
		}
	}
	return videos, nil
}
