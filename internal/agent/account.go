package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"MemoryStoryAgent/internal/models"
	"MemoryStoryAgent/internal/storage"

	"go.uber.org/zap"
)

type RegisterInput struct {
	Email              string
	Age                int
	CulturalBackground string
	Language           string
	Gender             string
	Country            string
}

type LoginResult struct {
	Token  string
	UserID string
}

func (in RegisterInput) validate() error {
	var missing []string
	if strings.TrimSpace(in.Email) == "" {
		missing = append(missing, "email")
	}
	if in.Age <= 0 {
		missing = append(missing, "age")
	}
	if strings.TrimSpace(in.CulturalBackground) == "" {
		missing = append(missing, "culturalBackground")
	}
	if strings.TrimSpace(in.Language) == "" {
		missing = append(missing, "language")
	}
	if strings.TrimSpace(in.Gender) == "" {
		missing = append(missing, "gender")
	}
	if strings.TrimSpace(in.Country) == "" {
		missing = append(missing, "country")
	}
	if len(missing) > 0 {
		return invalid("All fields are required: missing " + strings.Join(missing, ", "))
	}
	return nil
}

// 프로필 생성. 이메일 중복은 막지 않음
func (s *Service) Register(ctx context.Context, in RegisterInput) (string, error) {
	if err := in.validate(); err != nil {
		return "", err
	}

	userID, err := s.store.CreateProfile(ctx, models.UserProfile{
		Email:              strings.TrimSpace(in.Email),
		Age:                in.Age,
		CulturalBackground: in.CulturalBackground,
		Language:           in.Language,
		Gender:             in.Gender,
		Country:            in.Country,
	})
	if err != nil {
		return "", storeError("Register", err)
	}

	s.logger.Info("Register(): profile created", zap.String("userID", userID))
	return userID, nil
}

// 이메일로 찾은 프로필에 세션 토큰 발급. 비밀번호 확인 없음
func (s *Service) Login(ctx context.Context, email string) (LoginResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return LoginResult{}, invalid("Email is required")
	}

	userID, err := s.store.FindUserIDByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		return LoginResult{}, fmt.Errorf("%w: Login: %w", ErrUnauthorized, err)
	}
	if err != nil {
		return LoginResult{}, storeError("Login", err)
	}

	token, err := s.tokens.Issue(userID)
	if err != nil {
		return LoginResult{}, fmt.Errorf("Login(): issuing token: %w", err)
	}
	return LoginResult{Token: token, UserID: userID}, nil
}
