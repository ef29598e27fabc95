package agent

import (
	"context"

	"MemoryStoryAgent/internal/models"
)

const maxPlaylistItems = 5

// GeneratePlaylist: 사용자 언어의 메시지를 영어로 번역한 뒤 영상을 검색
func (s *Service) GeneratePlaylist(ctx context.Context, message, userID string) ([]models.PlaylistItem, error) {
	if userID == "" || message == "" {
		return nil, invalid("Missing 'message' or 'userID'")
	}

	metadata, err := s.store.GetUserMetadata(ctx, userID)
	if err != nil {
		return nil, storeError("GeneratePlaylist", err)
	}

	ctx = context.WithoutCancel(ctx)
	query, err := s.translator.TranslateToEnglish(ctx, message, metadata.Language)
	if err != nil {
		return nil, err
	}

	videos, err := s.providers.Video.Search(ctx, query)
	if err != nil {
		return nil, providerError("video search", err)
	}

	if len(videos) > maxPlaylistItems {
		videos = videos[:maxPlaylistItems]
	}
	items := make([]models.PlaylistItem, 0, len(videos))
	for _, v := range videos {
		items = append(items, models.NewPlaylistItem(v))
	}
	return items, nil
}
