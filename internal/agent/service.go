/**
* Name: 			service.go
* Description: 		사용자 요청마다 프로필 조회와 외부 API 호출을 순서대로 묶는 오케스트레이터
* Workflow: 		프로필 조회, 프롬프트 조립, 외부 API 호출, 결과 가공
 */
package agent

import (
	"MemoryStoryAgent/internal/auth"
	"MemoryStoryAgent/internal/llm"
	"MemoryStoryAgent/internal/storage"

	"go.uber.org/zap"
)

// 단계별로 사용할 모델 이름
type Models struct {
	Story        string
	Translate    string
	Speech       string
	SpeechFormat string
	Image        string
}

// OpenAI 기본 모델
func DefaultModels() Models {
	return Models{
		Story:        "gpt-4",
		Translate:    "gpt-3.5-turbo",
		Speech:       "tts-1",
		SpeechFormat: llm.FormatMP3,
		Image:        "dall-e-3",
	}
}

// 외부 API 클라이언트 묶음
type Providers struct {
	Text   llm.Completer
	Speech llm.Synthesizer
	Image  llm.ImageGenerator
	Video  llm.VideoSearcher
}

// Service는 시작할 때 한 번 만들어 모든 핸들러가 공유한다. 요청별 상태 없음.
type Service struct {
	store      storage.Store
	providers  Providers
	tokens     *auth.TokenIssuer
	translator *Translator
	models     Models
	logger     *zap.Logger
}

func NewService(store storage.Store, providers Providers, tokens *auth.TokenIssuer, models Models, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:      store,
		providers:  providers,
		tokens:     tokens,
		translator: NewTranslator(providers.Text, models.Translate),
		models:     models,
		logger:     logger,
	}
}
