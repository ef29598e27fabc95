package agent

import (
	"context"
	"strings"

	"MemoryStoryAgent/internal/llm"
	"MemoryStoryAgent/internal/prompts"
)

// Translator는 영어 입력만 받는 API에 넘기기 전에 텍스트를 영어로 바꾼다
type Translator struct {
	completer llm.Completer
	model     string
}

func NewTranslator(completer llm.Completer, model string) *Translator {
	return &Translator{completer: completer, model: model}
}

// 비어 있거나 이미 영어면 그대로 반환
func (t *Translator) TranslateToEnglish(ctx context.Context, text, sourceLanguage string) (string, error) {
	if text == "" || strings.EqualFold(sourceLanguage, "english") {
		return text, nil
	}

	translated, err := t.completer.Complete(ctx, t.model, []llm.Message{
		llm.SystemMessage(prompts.MessageTranslation(sourceLanguage)),
		llm.UserMessage(text),
	})
	if err != nil {
		return "", providerError("translate", err)
	}
	return strings.TrimSpace(translated), nil
}
