package agent

import (
	"errors"
	"fmt"

	"MemoryStoryAgent/internal/storage"
)

var (
	ErrValidation       = errors.New("validation failed")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrNotFound         = errors.New("user not found")
	ErrProvider         = errors.New("provider call failed")
	ErrStoreUnavailable = errors.New("profile store unavailable")
)

// ValidationError의 Message는 클라이언트에 그대로 보여줘도 되는 문구
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

func invalid(message string) error {
	return &ValidationError{Message: message}
}

func providerError(stage string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrProvider, stage, err)
}

// 저장소 에러를 오케스트레이터 에러로 변환
func storeError(op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %s: %w", ErrNotFound, op, err)
	case errors.Is(err, storage.ErrValidation):
		return fmt.Errorf("%w: %s: %w", ErrValidation, op, err)
	default:
		return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
	}
}
