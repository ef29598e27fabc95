package agent

import (
	"context"
	"strings"

	"MemoryStoryAgent/internal/llm"
	"MemoryStoryAgent/internal/prompts"

	"go.uber.org/zap"
)

// imageStage는 이전 단계의 출력을 받아 다음 단계의 입력을 만든다
type imageStage struct {
	name string
	run  func(ctx context.Context, input string) (string, error)
}

// imagePipeline: 번역 -> 장면 묘사 -> 이미지 생성
func (s *Service) imagePipeline() []imageStage {
	return []imageStage{
		{name: "translate", run: s.completeWith(prompts.MemoryTranslation())},
		{name: "visualize", run: s.completeWith(prompts.VisualRewrite())},
		{name: "render", run: s.renderImage},
	}
}

func (s *Service) completeWith(instruction string) func(ctx context.Context, input string) (string, error) {
	return func(ctx context.Context, input string) (string, error) {
		out, err := s.providers.Text.Complete(ctx, s.models.Translate, []llm.Message{
			llm.SystemMessage(instruction),
			llm.UserMessage(input),
		})
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(out), nil
	}
}

func (s *Service) renderImage(ctx context.Context, prompt string) (string, error) {
	return s.providers.Image.GenerateImage(ctx, llm.ImageRequest{
		Model:  s.models.Image,
		Prompt: prompt,
		N:      llm.ImageCount,
		Size:   llm.ImageSize,
	})
}

// GenerateImage는 회상 내용으로 이미지 URL을 만든다. userID는 받지만 프로필은 읽지 않음
func (s *Service) GenerateImage(ctx context.Context, memory, userID string) (string, error) {
	if memory == "" {
		return "", invalid("memory is required")
	}

	ctx = context.WithoutCancel(ctx)
	value := memory
	for _, stage := range s.imagePipeline() {
		out, err := stage.run(ctx, value)
		if err != nil {
			return "", providerError(stage.name, err)
		}
		s.logger.Debug("GenerateImage(): stage finished", zap.String("stage", stage.name), zap.String("userID", userID))
		value = out
	}
	return value, nil
}
