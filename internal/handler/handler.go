/**
* Name: 			handler.go
* Description: 		HTTP 핸들러 공통 구조체, 응답 타입, 에러 변환
* Workflow: 		요청 바인딩, 오케스트레이터 호출, 에러를 상태 코드로 변환
 */
package handler

import (
	"context"
	"errors"
	"net/http"

	"MemoryStoryAgent/internal/agent"
	"MemoryStoryAgent/internal/middleware"
	"MemoryStoryAgent/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Agent는 핸들러가 사용하는 오케스트레이터 기능
type Agent interface {
	GenerateStory(ctx context.Context, message, userID string) (string, error)
	NarrateStory(ctx context.Context, story, userID string) ([]byte, error)
	GenerateImage(ctx context.Context, memory, userID string) (string, error)
	GeneratePlaylist(ctx context.Context, message, userID string) ([]models.PlaylistItem, error)
	Register(ctx context.Context, in agent.RegisterInput) (string, error)
	Login(ctx context.Context, email string) (agent.LoginResult, error)
}

type Handler struct {
	agent  Agent
	logger *zap.Logger
}

func NewHandler(a Agent, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{agent: a, logger: logger}
}

type SuccessResponse struct {
	Message string `json:"message" example:"Registration successful"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"Story generation failed"`
}

// writeError는 내부 에러 내용을 응답에 싣지 않는다. 상세 내용은 로그에만 남김.
func (h *Handler) writeError(c *gin.Context, op string, err error, fallback string) {
	status, message := http.StatusInternalServerError, fallback

	var verr *agent.ValidationError
	switch {
	case errors.As(err, &verr):
		status, message = http.StatusBadRequest, verr.Message
	case errors.Is(err, agent.ErrUnauthorized):
		status, message = http.StatusUnauthorized, "Invalid credentials"
	}

	if status >= http.StatusInternalServerError {
		h.logger.Error(op+"(): request failed", zap.Error(err))
	} else {
		h.logger.Info(op+"(): request rejected", zap.Int("status", status), zap.Error(err))
	}
	_ = c.Error(err)
	c.JSON(status, ErrorResponse{Error: message})
}

// authorizeUser: 토큰 인증이 켜져 있으면 요청 본문의 userID가 토큰의 userID와 같아야 한다
func (h *Handler) authorizeUser(c *gin.Context, userID string) bool {
	tokenUserID := c.GetString(middleware.ContextUserID)
	if tokenUserID == "" || tokenUserID == userID {
		return true
	}
	h.logger.Warn("authorizeUser(): userID does not match token",
		zap.String("tokenUserID", tokenUserID), zap.String("userID", userID))
	c.JSON(http.StatusForbidden, ErrorResponse{Error: "Forbidden"})
	return false
}
