package rest

import (
	"context"
	"io"
	"log/slog"
	"net/http"
)

// transcriptionService defines the minimal interface needed by SpeechHandler.
type transcriptionService interface {
	Transcribe(ctx context.Context, filename string, data []byte) (string, error)
}

// SpeechHandler serves the speech transcription endpoint.
type SpeechHandler struct {
	svc      transcriptionService
	log      *slog.Logger
	maxBytes int64
}

// NewSpeechHandler creates a SpeechHandler. maxBytes caps the multipart
// upload size at the transport level.
func NewSpeechHandler(svc transcriptionService, logger *slog.Logger, maxBytes int64) *SpeechHandler {
	return &SpeechHandler{
		svc:      svc,
		log:      logger.With("handler", "speech"),
		maxBytes: maxBytes,
	}
}

// Transcribe handles POST /speech/transcribe. Expects a multipart form with
// an "audio" file field.
func (h *SpeechHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	// Some slack over the service cap so oversized uploads surface as 413
	// from the service rather than a generic parse failure.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes+1024)

	file, header, err := r.FormFile("audio")
	if err != nil {
		writeError(w, http.StatusBadRequest, "audio file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read audio file")
		return
	}

	text, err := h.svc.Transcribe(r.Context(), header.Filename, data)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, text)
}
