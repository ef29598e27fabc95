package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpenAITestServer(t *testing.T, path string, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc(path, handler)
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return NewOpenAIClient("test-key", server.URL+"/v1")
}

func TestOpenAIClient_Complete(t *testing.T) {
	var got struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
	}

	client := newOpenAITestServer(t, "/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"c1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"  Once upon a time.  "},"finish_reason":"stop"}]}`)
	})

	text, err := client.Complete(context.Background(), "gpt-4", []Message{
		SystemMessage("be kind"),
		UserMessage("hello"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Once upon a time.", text)

	assert.Equal(t, "gpt-4", got.Model)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "be kind", got.Messages[0].Content)
	assert.Equal(t, "user", got.Messages[1].Role)
}

func TestOpenAIClient_CompleteNoChoices(t *testing.T) {
	client := newOpenAITestServer(t, "/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"id":"c1","object":"chat.completion","choices":[]}`)
	})

	_, err := client.Complete(context.Background(), "gpt-4", []Message{UserMessage("hello")})
	assert.ErrorIs(t, err, ErrEmptyCompletion)
}

func TestOpenAIClient_CompleteAPIError(t *testing.T) {
	client := newOpenAITestServer(t, "/v1/chat/completions", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		io.WriteString(w, `{"error":{"message":"quota exceeded","type":"insufficient_quota"}}`)
	})

	_, err := client.Complete(context.Background(), "gpt-4", []Message{UserMessage("hello")})
	assert.Error(t, err)
}

func TestOpenAIClient_Synthesize(t *testing.T) {
	var got map[string]any
	client := newOpenAITestServer(t, "/v1/audio/speech", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "audio/mpeg")
		w.Write([]byte("ID3-fake-mp3"))
	})

	audio, err := client.Synthesize(context.Background(), SpeechRequest{
		Model:  "tts-1",
		Input:  "A story",
		Voice:  VoiceA,
		Format: FormatMP3,
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("ID3-fake-mp3"), audio)
	assert.Equal(t, "tts-1", got["model"])
	assert.Equal(t, "nova", got["voice"])
	assert.Equal(t, "mp3", got["response_format"])
	assert.Equal(t, "A story", got["input"])
}

func TestOpenAIClient_GenerateImage(t *testing.T) {
	var got map[string]any
	client := newOpenAITestServer(t, "/v1/images/generations", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"created":1,"data":[{"url":"https://images.example.com/1.png"}]}`)
	})

	url, err := client.GenerateImage(context.Background(), ImageRequest{
		Model:  "dall-e-3",
		Prompt: "a lantern festival at dusk",
		N:      ImageCount,
		Size:   ImageSize,
	})
	require.NoError(t, err)
	assert.Equal(t, "https://images.example.com/1.png", url)
	assert.Equal(t, "dall-e-3", got["model"])
	assert.Equal(t, "1024x1024", got["size"])
	assert.EqualValues(t, 1, got["n"])
}

func TestOpenAIClient_GenerateImageNoURL(t *testing.T) {
	client := newOpenAITestServer(t, "/v1/images/generations", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"created":1,"data":[]}`)
	})

	_, err := client.GenerateImage(context.Background(), ImageRequest{Model: "dall-e-3", Prompt: "x", N: 1, Size: ImageSize})
	assert.ErrorIs(t, err, ErrNoImageReturned)
}
