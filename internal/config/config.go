package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"MemoryStoryAgent/internal/storage"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
	ProviderGoogle = "google"
)

type Config struct {
	Port        string
	JWTSecret   string
	CORSOrigins []string

	Store storage.Config

	TextProvider   string
	SpeechProvider string

	OpenAIAPIKey      string
	OpenAIBaseURL     string
	GeminiAPIKey      string
	YouTubeAPIKey     string
	GoogleCredentials string
	GoogleVoiceA      string
	GoogleVoiceB      string

	StoryModel     string
	TranslateModel string
	TTSModel       string
	ImageModel     string

	RateLimitRPS   float64
	RateLimitBurst int
	RequireAuth    bool
}

// LoadEnv는 .env 파일을 환경 변수로 읽는다. 이미 설정된 값은 덮어쓰지 않음.
func LoadEnv(files ...string) error {
	return godotenv.Load(files...)
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "5009"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
		Store: storage.Config{
			Backend:       strings.ToLower(getEnv("STORE_BACKEND", storage.BackendNeo4j)),
			Neo4jURI:      getEnv("NEO4J_URI", "neo4j://localhost:7687"),
			Neo4jUser:     getEnv("NEO4J_USER", "neo4j"),
			Neo4jPassword: getEnv("NEO4J_PASSWORD", ""),
			SQLitePath:    getEnv("SQLITE_PATH", "data/profiles.db"),
			DatabaseURL:   getEnv("DATABASE_URL", ""),
		},
		TextProvider:      strings.ToLower(getEnv("TEXT_PROVIDER", ProviderOpenAI)),
		SpeechProvider:    strings.ToLower(getEnv("SPEECH_PROVIDER", ProviderOpenAI)),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		YouTubeAPIKey:     getEnv("YOUTUBE_API_KEY", ""),
		GoogleCredentials: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
		GoogleVoiceA:      getEnv("GOOGLE_TTS_VOICE_A", "en-US-Neural2-F"),
		GoogleVoiceB:      getEnv("GOOGLE_TTS_VOICE_B", "en-US-Neural2-C"),
		TTSModel:          getEnv("TTS_MODEL", "tts-1"),
		ImageModel:        getEnv("IMAGE_MODEL", "dall-e-3"),
		RequireAuth:       getBool("REQUIRE_AUTH", false),
	}

	// 텍스트 모델 기본값은 제공자마다 다르다
	storyDefault, translateDefault := "gpt-4", "gpt-3.5-turbo"
	if cfg.TextProvider == ProviderGemini {
		storyDefault, translateDefault = "gemini-2.5-flash", "gemini-2.5-flash"
	}
	cfg.StoryModel = getEnv("STORY_MODEL", storyDefault)
	cfg.TranslateModel = getEnv("TRANSLATE_MODEL", translateDefault)

	var err error
	if cfg.RateLimitRPS, err = getFloat("RATE_LIMIT_RPS", 5); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", 10); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []error

	if c.JWTSecret == "" {
		errs = append(errs, fmt.Errorf("JWT_SECRET is required"))
	}

	switch c.Store.Backend {
	case storage.BackendNeo4j:
		if c.Store.Neo4jURI == "" {
			errs = append(errs, fmt.Errorf("NEO4J_URI is required for the neo4j store"))
		}
	case storage.BackendSQLite:
		if c.Store.SQLitePath == "" {
			errs = append(errs, fmt.Errorf("SQLITE_PATH is required for the sqlite store"))
		}
	case storage.BackendPostgres:
		if c.Store.DatabaseURL == "" {
			errs = append(errs, fmt.Errorf("DATABASE_URL is required for the postgres store"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_BACKEND must be neo4j, sqlite or postgres, got %q", c.Store.Backend))
	}

	switch c.TextProvider {
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			errs = append(errs, fmt.Errorf("OPENAI_API_KEY is required for the openai text provider"))
		}
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			errs = append(errs, fmt.Errorf("GEMINI_API_KEY is required for the gemini text provider"))
		}
	default:
		errs = append(errs, fmt.Errorf("TEXT_PROVIDER must be openai or gemini, got %q", c.TextProvider))
	}

	switch c.SpeechProvider {
	case ProviderOpenAI, ProviderGoogle:
	default:
		errs = append(errs, fmt.Errorf("SPEECH_PROVIDER must be openai or google, got %q", c.SpeechProvider))
	}

	// 이미지 생성과 기본 음성 합성은 항상 OpenAI를 쓴다
	if c.OpenAIAPIKey == "" && c.TextProvider != ProviderOpenAI {
		errs = append(errs, fmt.Errorf("OPENAI_API_KEY is required for image generation"))
	}
	if c.YouTubeAPIKey == "" {
		errs = append(errs, fmt.Errorf("YOUTUBE_API_KEY is required"))
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must not be negative"))
	}

	return errors.Join(errs...)
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getBool(key string, defaultVal bool) bool {
	val, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultVal
	}
	return val
}

func getInt(key string, defaultVal int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return val, nil
}

func getFloat(key string, defaultVal float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultVal, nil
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number: %w", key, err)
	}
	return val, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
