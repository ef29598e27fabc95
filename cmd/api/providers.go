package main

import (
	"context"
	"fmt"

	"MemoryStoryAgent/internal/agent"
	"MemoryStoryAgent/internal/config"
	"MemoryStoryAgent/internal/llm"

	"go.uber.org/zap"
)

// newProviders는 설정에 맞는 외부 API 클라이언트를 만든다. 반환된 close 함수는 항상 호출해야 한다.
func newProviders(ctx context.Context, cfg *config.Config) (agent.Providers, func(), error) {
	var closers []func() error
	closeAll := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				zap.L().Warn("newProviders(): close failed", zap.Error(err))
			}
		}
	}

	openaiClient := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL)
	providers := agent.Providers{
		Text:   openaiClient,
		Speech: openaiClient,
		Image:  openaiClient,
	}

	if cfg.TextProvider == config.ProviderGemini {
		gemini, err := llm.NewGeminiCompleter(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return agent.Providers{}, func() {}, fmt.Errorf("creating gemini client: %w", err)
		}
		providers.Text = gemini
	}

	if cfg.SpeechProvider == config.ProviderGoogle {
		tts, err := llm.NewGoogleSynthesizer(ctx, cfg.GoogleCredentials, cfg.GoogleVoiceA, cfg.GoogleVoiceB)
		if err != nil {
			return agent.Providers{}, func() {}, fmt.Errorf("creating google tts client: %w", err)
		}
		closers = append(closers, tts.Close)
		providers.Speech = tts
	}

	videos, err := llm.NewYouTubeSearcher(ctx, cfg.YouTubeAPIKey)
	if err != nil {
		closeAll()
		return agent.Providers{}, func() {}, fmt.Errorf("creating youtube client: %w", err)
	}
	providers.Video = videos

	return providers, closeAll, nil
}

func modelsFromConfig(cfg *config.Config) agent.Models {
	return agent.Models{
		Story:        cfg.StoryModel,
		Translate:    cfg.TranslateModel,
		Speech:       cfg.TTSModel,
		SpeechFormat: llm.FormatMP3,
		Image:        cfg.ImageModel,
	}
}
