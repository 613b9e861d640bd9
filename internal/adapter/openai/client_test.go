package openai

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaweb/linguaweb-backend/internal/config"
	"github.com/linguaweb/linguaweb-backend/internal/domain"
)

func testConfig(baseURL string) config.OpenAIConfig {
	return config.OpenAIConfig{
		APIKey:   "sk-test",
		BaseURL:  baseURL,
		GPTModel: "gpt-4-1106-preview",
		TTSModel: "tts-1",
		STTModel: "whisper-1",
		Voice:    "alloy",
	}
}

const testInstruction = "Return a brief definition for the word provided by the user."

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(testConfig(srv.URL+"/v1"), slog.Default())
}

func TestGenerate_ReturnsCompletion(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/chat/completions", r.URL.Path)

		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, testInstruction, req.Messages[0].Content)
		assert.Equal(t, "cat", req.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  a small feline \n"}}]}`))
	}))

	got, err := client.Generate(context.Background(), testInstruction, "cat")
	require.NoError(t, err)
	assert.Equal(t, "a small feline", got)
}

func TestGenerate_EmptyCompletionIsUpstreamError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"   "}}]}`))
	}))

	_, err := client.Generate(context.Background(), testInstruction, "cat")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestGenerate_HTTPErrorIsUpstreamError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
	}))

	_, err := client.Generate(context.Background(), testInstruction, "cat")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestSynthesize_ReturnsAudioBytes(t *testing.T) {
	t.Parallel()

	audio := []byte("fake-mp3-bytes")
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/audio/speech", r.URL.Path)
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write(audio)
	}))

	got, err := client.Synthesize(context.Background(), "cat")
	require.NoError(t, err)
	assert.Equal(t, audio, got)
}

func TestSynthesize_EmptyAudioIsUpstreamError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "audio/mpeg")
	}))

	_, err := client.Synthesize(context.Background(), "cat")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUpstream)
}

func TestTranscribe_NormalizesResult(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/audio/transcriptions", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"text":"Hello World\n"}`))
	}))

	path := filepath.Join(t.TempDir(), "audio.mp3")
	require.NoError(t, os.WriteFile(path, []byte("fake"), 0o644))

	got, err := client.Transcribe(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
}

func TestVoice(t *testing.T) {
	t.Parallel()

	client := NewClient(testConfig(""), slog.Default())
	assert.Equal(t, "alloy", client.Voice())
}
