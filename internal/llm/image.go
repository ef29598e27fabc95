package llm

import (
	"context"
	"errors"
)

const (
	ImageCount = 1
	ImageSize  = "1024x1024"
)

var ErrNoImageReturned = errors.New("no image URL returned")

type ImageRequest struct {
	Model  string
	Prompt string
	N      int
	Size   string
}

// ImageGenerator는 호스팅된 이미지 URL을 돌려준다
type ImageGenerator interface {
	GenerateImage(ctx context.Context, req ImageRequest) (string, error)
}
