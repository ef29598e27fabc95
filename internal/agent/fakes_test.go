package agent

import (
	"context"
	"sync"
	"testing"
	"time"

	"MemoryStoryAgent/internal/auth"
	"MemoryStoryAgent/internal/llm"
	"MemoryStoryAgent/internal/models"
	"MemoryStoryAgent/internal/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	mu       sync.Mutex
	profiles []models.UserProfile
	err      error
	calls    int
}

func (f *fakeStore) GetUserMetadata(_ context.Context, userID string) (models.UserMetadata, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return models.UserMetadata{}, f.err
	}
	for _, p := range f.profiles {
		if p.UserID == userID {
			return models.UserMetadata{CulturalBackground: p.CulturalBackground, Language: p.Language}, nil
		}
	}
	return models.UserMetadata{}, storage.ErrNotFound
}

func (f *fakeStore) CreateProfile(_ context.Context, p models.UserProfile) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	p.UserID = "user-" + p.Email
	f.profiles = append(f.profiles, p)
	return p.UserID, nil
}

func (f *fakeStore) FindUserIDByEmail(_ context.Context, email string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	for _, p := range f.profiles {
		if p.Email == email {
			return p.UserID, nil
		}
	}
	return "", storage.ErrNotFound
}

func (f *fakeStore) Close(context.Context) error { return nil }

type completion struct {
	model    string
	messages []llm.Message
}

// fakeCompleter는 호출마다 replies를 순서대로 돌려준다. failAt 번째 호출(1부터)은 실패.
type fakeCompleter struct {
	replies []string
	failAt  int
	err     error
	calls   []completion
	ctxErrs []error
}

func (f *fakeCompleter) Complete(ctx context.Context, model string, messages []llm.Message) (string, error) {
	f.calls = append(f.calls, completion{model: model, messages: messages})
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	n := len(f.calls)
	if f.failAt == n {
		return "", f.err
	}
	if n <= len(f.replies) {
		return f.replies[n-1], nil
	}
	return "completion", nil
}

type fakeSynthesizer struct {
	audio    []byte
	err      error
	requests []llm.SpeechRequest
	ctxErrs  []error
}

func (f *fakeSynthesizer) Synthesize(ctx context.Context, req llm.SpeechRequest) ([]byte, error) {
	f.requests = append(f.requests, req)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	if f.err != nil {
		return nil, f.err
	}
	return f.audio, nil
}

type fakeImages struct {
	url      string
	err      error
	requests []llm.ImageRequest
	ctxErrs  []error
}

func (f *fakeImages) GenerateImage(ctx context.Context, req llm.ImageRequest) (string, error) {
	f.requests = append(f.requests, req)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

type fakeSearcher struct {
	videos  []models.Video
	err     error
	queries []string
	ctxErrs []error
}

func (f *fakeSearcher) Search(ctx context.Context, query string) ([]models.Video, error) {
	f.queries = append(f.queries, query)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	if f.err != nil {
		return nil, f.err
	}
	return f.videos, nil
}

type fixture struct {
	store   *fakeStore
	text    *fakeCompleter
	speech  *fakeSynthesizer
	images  *fakeImages
	videos  *fakeSearcher
	tokens  *auth.TokenIssuer
	service *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	tokens, err := auth.NewTokenIssuer("test-secret", time.Hour)
	require.NoError(t, err)

	f := &fixture{
		store: &fakeStore{profiles: []models.UserProfile{
			{UserID: "u-es", Email: "ana@example.com", Age: 70, CulturalBackground: "Mexican", Language: "Spanish", Gender: "female", Country: "Mexico"},
			{UserID: "u-en", Email: "bob@example.com", Age: 81, CulturalBackground: "Irish", Language: "English", Gender: "male", Country: "Ireland"},
			{UserID: "u-blank", Email: "kim@example.com", Age: 65, CulturalBackground: "Korean", Language: "", Gender: "female", Country: "Korea"},
		}},
		text:   &fakeCompleter{},
		speech: &fakeSynthesizer{audio: []byte("ID3-audio")},
		images: &fakeImages{url: "https://images.example.com/1.png"},
		videos: &fakeSearcher{},
		tokens: tokens,
	}
	f.service = NewService(f.store, Providers{
		Text:   f.text,
		Speech: f.speech,
		Image:  f.images,
		Video:  f.videos,
	}, tokens, DefaultModels(), zap.NewNop())
	return f
}
