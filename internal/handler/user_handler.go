/**
* Name: 			user_handler.go
* Description: 		회원가입, 로그인 핸들러
* Workflow: 		프로필 등록, 이메일로 사용자 조회 후 세션 토큰 발급
 */
package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"MemoryStoryAgent/internal/agent"

	"github.com/gin-gonic/gin"
)

// flexibleInt는 숫자와 숫자 문자열("72") 모두 받는다
type flexibleInt int

func (n *flexibleInt) UnmarshalJSON(data []byte) error {
	s := strings.Trim(strings.TrimSpace(string(data)), `"`)
	if s == "" || s == "null" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("age must be a number: %w", err)
	}
	*n = flexibleInt(v)
	return nil
}

// /register 요청 바디
type RegisterRequest struct {
	Email              string      `json:"email" example:"ana@example.com"`
	Age                flexibleInt `json:"age" swaggertype:"integer" example:"72"`
	CulturalBackground string      `json:"culturalBackground" example:"Mexican"`
	Language           string      `json:"language" example:"Spanish"`
	Gender             string      `json:"gender" example:"female"`
	Country            string      `json:"country" example:"Mexico"`
}

// /login 요청 바디
type LoginRequest struct {
	Email string `json:"email" example:"ana@example.com"`
}

type LoginSuccessResponse struct {
	Message string `json:"message" example:"Login successful"`
	Token   string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	UserID  string `json:"userID" example:"3f1c2d9e-8a4b-4c1e-9f3a-2b7d6e5c4a10"`
}

// Register godoc
// @Summary      회원가입 (Register)
// @Description  새로운 사용자 프로필을 생성합니다. 여섯 항목 모두 필수입니다.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body handler.RegisterRequest true "회원가입 요청 정보"
// @Success      200 {object} handler.SuccessResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	_, err := h.agent.Register(c.Request.Context(), agent.RegisterInput{
		Email:              req.Email,
		Age:                int(req.Age),
		CulturalBackground: req.CulturalBackground,
		Language:           req.Language,
		Gender:             req.Gender,
		Country:            req.Country,
	})
	if err != nil {
		h.writeError(c, "Register", err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Registration successful"})
}

// Login godoc
// @Summary      로그인 (Login)
// @Description  이메일로 사용자를 찾아 JWT 토큰을 발급받습니다. 비밀번호는 확인하지 않습니다.
// @Tags         User
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "로그인 요청 정보"
// @Success      200 {object} handler.LoginSuccessResponse
// @Failure      400 {object} handler.ErrorResponse "잘못된 요청"
// @Failure      401 {object} handler.ErrorResponse "등록되지 않은 이메일"
// @Failure      500 {object} handler.ErrorResponse "서버 내부 오류"
// @Router       /login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request"})
		return
	}

	result, err := h.agent.Login(c.Request.Context(), req.Email)
	if err != nil {
		h.writeError(c, "Login", err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, LoginSuccessResponse{
		Message: "Login successful",
		Token:   result.Token,
		UserID:  result.UserID,
	})
}
