package agent

import (
	"context"
	"strings"

	"MemoryStoryAgent/internal/llm"
	"MemoryStoryAgent/internal/prompts"

	"go.uber.org/zap"
)

// GenerateStory는 사용자의 문화적 배경과 언어를 반영해 회상 내용으로 짧은 이야기를 만든다
func (s *Service) GenerateStory(ctx context.Context, message, userID string) (string, error) {
	if userID == "" {
		return "", invalid("userID is required")
	}

	metadata, err := s.store.GetUserMetadata(ctx, userID)
	if err != nil {
		return "", storeError("GenerateStory", err)
	}

	prompt := prompts.Story(metadata.CulturalBackground, metadata.Language, message)
	story, err := s.providers.Text.Complete(context.WithoutCancel(ctx), s.models.Story, []llm.Message{
		llm.UserMessage(prompt),
	})
	if err != nil {
		return "", providerError("story", err)
	}

	s.logger.Debug("GenerateStory(): story generated", zap.String("userID", userID), zap.Int("length", len(story)))
	return strings.TrimSpace(story), nil
}

// 이야기 음성 변환. 목소리는 저장된 언어로만 결정
func (s *Service) NarrateStory(ctx context.Context, story, userID string) ([]byte, error) {
	if userID == "" {
		return nil, invalid("userID is required")
	}
	if story == "" {
		return nil, invalid("story is required")
	}

	metadata, err := s.store.GetUserMetadata(ctx, userID)
	if err != nil {
		return nil, storeError("NarrateStory", err)
	}

	language := metadata.Language
	if language == "" {
		language = llm.DefaultLanguage
	}

	audio, err := s.providers.Speech.Synthesize(context.WithoutCancel(ctx), llm.SpeechRequest{
		Model:  s.models.Speech,
		Input:  story,
		Voice:  llm.SelectVoice(language),
		Format: s.models.SpeechFormat,
	})
	if err != nil {
		return nil, providerError("speech", err)
	}
	return audio, nil
}
