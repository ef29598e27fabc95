package handler

import (
	"MemoryStoryAgent/internal/auth"
	"MemoryStoryAgent/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type RouterConfig struct {
	CORSOrigins []string
	// RateLimit이 0이면 제한하지 않음
	RateLimit rate.Limit
	RateBurst int
	// Tokens가 nil이 아니면 /api 그룹에 Bearer 토큰 검증을 건다
	Tokens *auth.TokenIssuer
	Logger *zap.Logger
}

func NewRouter(h *Handler, cfg RouterConfig) *gin.Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()
	router.Use(middleware.RequestLogger(logger), gin.Recovery())
	router.Use(middleware.CORS(cfg.CORSOrigins))

	router.GET("/health", h.Health)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/register", h.Register)
	router.POST("/login", h.Login)

	api := router.Group("/api")
	if cfg.RateLimit > 0 {
		api.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateBurst))
	}
	if cfg.Tokens != nil {
		api.Use(middleware.RequireToken(cfg.Tokens))
	}
	{
		api.POST("/generate-story", h.GenerateStory)
		api.POST("/speak-story", h.SpeakStory)
		api.POST("/generate-image", h.GenerateImage)
		api.POST("/generate-playlist", h.GeneratePlaylist)
	}

	return router
}
