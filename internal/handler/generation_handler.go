/**
* Name: 			generation_handler.go
* Description: 		이야기, 음성, 이미지, 플레이리스트 생성 핸들러
* Workflow: 		요청 바인딩, 사용자 확인, 오케스트레이터 호출, 결과 응답
 */
package handler

import (
	"errors"
	"net/http"

	"MemoryStoryAgent/internal/agent"
	"MemoryStoryAgent/internal/models"

	"github.com/gin-gonic/gin"
)

type StoryRequest struct {
	Message string `json:"message" example:"I remember dancing with my wife at our wedding"`
	UserID  string `json:"userID" example:"3f1c2d9e-8a4b-4c1e-9f3a-2b7d6e5c4a10"`
}

type StoryResponse struct {
	Story string `json:"story" example:"Once upon a time..."`
}

type SpeakRequest struct {
	Story  string `json:"story" example:"Once upon a time..."`
	UserID string `json:"userID" example:"3f1c2d9e-8a4b-4c1e-9f3a-2b7d6e5c4a10"`
}

type ImageRequest struct {
	Memory string `json:"memory" example:"My grandmother's kitchen on Sunday mornings"`
	UserID string `json:"userID" example:"3f1c2d9e-8a4b-4c1e-9f3a-2b7d6e5c4a10"`
}

type ImageResponse struct {
	ImageURL string `json:"imageUrl" example:"https://oaidalleapiprodscus.blob.core.windows.net/private/img.png"`
}

type PlaylistRequest struct {
	Message string `json:"message" example:"songs from my youth in Manila"`
	UserID  string `json:"userID" example:"3f1c2d9e-8a4b-4c1e-9f3a-2b7d6e5c4a10"`
}

type PlaylistResponse struct {
	Playlists []models.PlaylistItem `json:"playlists"`
}

// GenerateStory godoc
// @Summary      이야기 생성
// @Description  사용자의 문화적 배경과 언어를 반영한 짧은 이야기를 생성합니다.
// @Tags         API
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.StoryRequest true "회상 내용과 사용자 ID"
// @Success      200 {object} handler.StoryResponse
// @Failure      403 {object} handler.ErrorResponse "토큰의 사용자와 다름"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/generate-story [post]
func (h *Handler) GenerateStory(c *gin.Context) {
	var req StoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	if !h.authorizeUser(c, req.UserID) {
		return
	}

	story, err := h.agent.GenerateStory(c.Request.Context(), req.Message, req.UserID)
	if err != nil {
		h.writeError(c, "GenerateStory", err, "Story generation failed")
		return
	}
	c.JSON(http.StatusOK, StoryResponse{Story: story})
}

// SpeakStory godoc
// @Summary      이야기 음성 변환 (TTS)
// @Description  사용자 언어에 맞는 목소리로 이야기를 읽어 mp3로 돌려줍니다.
// @Tags         API
// @Accept       json
// @Produce      audio/mpeg
// @Security     BearerAuth
// @Param        request body handler.SpeakRequest true "이야기와 사용자 ID"
// @Success      200 {file} file "오디오 바이너리 데이터"
// @Failure      403 {object} handler.ErrorResponse "토큰의 사용자와 다름"
// @Failure      404 {object} handler.ErrorResponse "사용자를 찾을 수 없음"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/speak-story [post]
func (h *Handler) SpeakStory(c *gin.Context) {
	var req SpeakRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	if !h.authorizeUser(c, req.UserID) {
		return
	}

	audio, err := h.agent.NarrateStory(c.Request.Context(), req.Story, req.UserID)
	if errors.Is(err, agent.ErrNotFound) {
		h.logger.Sugar().Infof("SpeakStory(): %v", err)
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "User not found"})
		return
	}
	if err != nil {
		h.writeError(c, "SpeakStory", err, "Failed to synthesize speech")
		return
	}
	c.Data(http.StatusOK, "audio/mpeg", audio)
}

// GenerateImage godoc
// @Summary      이미지 생성
// @Description  회상 내용을 영어로 번역하고 장면 묘사로 바꾼 뒤 이미지를 생성합니다.
// @Tags         API
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.ImageRequest true "회상 내용과 사용자 ID"
// @Success      200 {object} handler.ImageResponse
// @Failure      403 {object} handler.ErrorResponse "토큰의 사용자와 다름"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/generate-image [post]
func (h *Handler) GenerateImage(c *gin.Context) {
	var req ImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	if !h.authorizeUser(c, req.UserID) {
		return
	}

	url, err := h.agent.GenerateImage(c.Request.Context(), req.Memory, req.UserID)
	if err != nil {
		h.writeError(c, "GenerateImage", err, "Failed to generate image")
		return
	}
	c.JSON(http.StatusOK, ImageResponse{ImageURL: url})
}

// GeneratePlaylist godoc
// @Summary      플레이리스트 생성
// @Description  메시지를 영어로 번역해 YouTube에서 영상을 최대 5개 찾습니다.
// @Tags         API
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.PlaylistRequest true "메시지와 사용자 ID"
// @Success      200 {object} handler.PlaylistResponse
// @Failure      400 {object} handler.ErrorResponse "message 또는 userID 누락"
// @Failure      403 {object} handler.ErrorResponse "토큰의 사용자와 다름"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/generate-playlist [post]
func (h *Handler) GeneratePlaylist(c *gin.Context) {
	var req PlaylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}
	if req.UserID != "" && !h.authorizeUser(c, req.UserID) {
		return
	}

	items, err := h.agent.GeneratePlaylist(c.Request.Context(), req.Message, req.UserID)
	if err != nil {
		h.writeError(c, "GeneratePlaylist", err, "Playlist generation failed")
		return
	}
	c.JSON(http.StatusOK, PlaylistResponse{Playlists: items})
}
