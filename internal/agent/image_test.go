package agent

import (
	"context"
	"errors"
	"testing"

	"MemoryStoryAgent/internal/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateImage_RunsStagesInOrder(t *testing.T) {
	f := newFixture(t)
	f.text.replies = []string{"my grandmother's kitchen", "a warm sunlit kitchen with copper pots"}

	url, err := f.service.GenerateImage(context.Background(), "la cocina de mi abuela", "u-es")
	require.NoError(t, err)
	assert.Equal(t, "https://images.example.com/1.png", url)

	require.Len(t, f.text.calls, 2)
	assert.Equal(t, "Translate the following memory description to English:", f.text.calls[0].messages[0].Content)
	assert.Equal(t, "la cocina de mi abuela", f.text.calls[0].messages[1].Content)
	assert.Equal(t, "Rewrite the following description as a vivid visual scene for image generation:", f.text.calls[1].messages[0].Content)
	assert.Equal(t, "my grandmother's kitchen", f.text.calls[1].messages[1].Content)
	assert.Equal(t, "gpt-3.5-turbo", f.text.calls[1].model)

	require.Len(t, f.images.requests, 1)
	assert.Equal(t, llm.ImageRequest{
		Model:  "dall-e-3",
		Prompt: "a warm sunlit kitchen with copper pots",
		N:      1,
		Size:   "1024x1024",
	}, f.images.requests[0])

	// 이미지 경로는 프로필을 읽지 않는다
	assert.Zero(t, f.store.calls)
}

func TestGenerateImage_AbortsOnFirstFailure(t *testing.T) {
	tests := []struct {
		name          string
		failAt        int
		wantTextCalls int
	}{
		{name: "translate fails", failAt: 1, wantTextCalls: 1},
		{name: "visual rewrite fails", failAt: 2, wantTextCalls: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.text.failAt = tt.failAt
			f.text.err = errors.New("rate limited")

			url, err := f.service.GenerateImage(context.Background(), "a memory", "u-en")
			assert.ErrorIs(t, err, ErrProvider)
			assert.Empty(t, url)
			assert.Len(t, f.text.calls, tt.wantTextCalls)
			assert.Empty(t, f.images.requests)
		})
	}
}

func TestGenerateImage_NoImageReturned(t *testing.T) {
	f := newFixture(t)
	f.images.err = llm.ErrNoImageReturned

	url, err := f.service.GenerateImage(context.Background(), "a memory", "u-en")
	assert.ErrorIs(t, err, ErrProvider)
	assert.ErrorIs(t, err, llm.ErrNoImageReturned)
	assert.Empty(t, url)
}

func TestGenerateImage_RequiresMemory(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.GenerateImage(context.Background(), "", "u-en")
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, f.text.calls)
}
