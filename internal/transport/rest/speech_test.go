package rest

import (
	"bytes"
	"context"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linguaweb/linguaweb-backend/internal/domain"
)

type mockTranscriptionService struct {
	TranscribeFunc func(ctx context.Context, filename string, data []byte) (string, error)
}

func (m *mockTranscriptionService) Transcribe(ctx context.Context, filename string, data []byte) (string, error) {
	return m.TranscribeFunc(ctx, filename, data)
}

func speechRouter(svc *mockTranscriptionService) http.Handler {
	logger := slog.Default()
	mux := http.NewServeMux()
	h := NewSpeechHandler(svc, logger, 1024*1024)
	mux.HandleFunc("POST /speech/transcribe", h.Transcribe)
	return mux
}

func multipartAudio(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestSpeech_Transcribe(t *testing.T) {
	t.Parallel()

	svc := &mockTranscriptionService{
		TranscribeFunc: func(_ context.Context, filename string, data []byte) (string, error) {
			assert.Equal(t, "voice.mp3", filename)
			assert.Equal(t, []byte("mp3-bytes"), data)
			return "ephemeral", nil
		},
	}

	body, contentType := multipartAudio(t, "audio", "voice.mp3", []byte("mp3-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/speech/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	speechRouter(svc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `"ephemeral"`, strings.TrimSpace(rec.Body.String()))
}

func TestSpeech_Transcribe_MissingFile(t *testing.T) {
	t.Parallel()

	svc := &mockTranscriptionService{
		TranscribeFunc: func(_ context.Context, _ string, _ []byte) (string, error) {
			t.Error("service should not be called without an audio file")
			return "", nil
		},
	}

	body, contentType := multipartAudio(t, "other", "voice.mp3", []byte("mp3"))
	req := httptest.NewRequest(http.MethodPost, "/speech/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	speechRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSpeech_Transcribe_TooLarge(t *testing.T) {
	t.Parallel()

	svc := &mockTranscriptionService{
		TranscribeFunc: func(_ context.Context, _ string, _ []byte) (string, error) {
			return "", domain.ErrTooLarge
		},
	}

	body, contentType := multipartAudio(t, "audio", "voice.mp3", []byte("mp3"))
	req := httptest.NewRequest(http.MethodPost, "/speech/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	speechRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestSpeech_Transcribe_UpstreamDown(t *testing.T) {
	t.Parallel()

	svc := &mockTranscriptionService{
		TranscribeFunc: func(_ context.Context, _ string, _ []byte) (string, error) {
			return "", domain.ErrUpstream
		},
	}

	body, contentType := multipartAudio(t, "audio", "voice.mp3", []byte("mp3"))
	req := httptest.NewRequest(http.MethodPost, "/speech/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	speechRouter(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
