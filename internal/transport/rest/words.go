package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/linguaweb/linguaweb-backend/internal/domain"
	"github.com/linguaweb/linguaweb-backend/internal/service/words"
)

// wordService defines the minimal interface needed by WordsHandler.
type wordService interface {
	ListIDs(ctx context.Context) ([]int64, error)
	Get(ctx context.Context, id int64) (*domain.Word, error)
	Audio(ctx context.Context, id int64) ([]byte, error)
	CheckAnswer(ctx context.Context, id int64, in words.CheckInput) (bool, error)
}

// WordsHandler serves the word catalog REST endpoints.
type WordsHandler struct {
	svc wordService
	log *slog.Logger
}

// NewWordsHandler creates a WordsHandler.
func NewWordsHandler(svc wordService, logger *slog.Logger) *WordsHandler {
	return &WordsHandler{svc: svc, log: logger.With("handler", "words")}
}

// wordDataResponse is a word entry without the word itself, so clients
// cannot peek at the answer.
type wordDataResponse struct {
	ID          int64    `json:"id"`
	Description string   `json:"description"`
	Synonyms    []string `json:"synonyms"`
	Antonyms    []string `json:"antonyms"`
	Jeopardy    string   `json:"jeopardy"`
	AudioKey    string   `json:"audioKey"`
}

type checkRequest struct {
	Word        *string `json:"word"`
	Description *string `json:"description"`
	Synonyms    *string `json:"synonyms"`
	Antonyms    *string `json:"antonyms"`
	Jeopardy    *string `json:"jeopardy"`
}

func toWordData(w *domain.Word) wordDataResponse {
	resp := wordDataResponse{
		ID:       w.ID,
		Synonyms: w.Synonyms,
		Antonyms: w.Antonyms,
	}
	if w.Description != nil {
		resp.Description = *w.Description
	}
	if w.Jeopardy != nil {
		resp.Jeopardy = *w.Jeopardy
	}
	if w.AudioKey != nil {
		resp.AudioKey = *w.AudioKey
	}
	return resp
}

// List handles GET /words.
func (h *WordsHandler) List(w http.ResponseWriter, r *http.Request) {
	ids, err := h.svc.ListIDs(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if ids == nil {
		ids = []int64{}
	}

	writeJSON(w, http.StatusOK, ids)
}

// Get handles GET /words/{id}.
func (h *WordsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordData(entry))
}

// Download handles GET /words/download/{id}.
func (h *WordsHandler) Download(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	audio, err := h.svc.Audio(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	w.Header().Set("Content-Type", "audio/mp3")
	w.WriteHeader(http.StatusOK)
	w.Write(audio) //nolint:errcheck
}

// Check handles POST /words/check/{id}.
func (h *WordsHandler) Check(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	correct, err := h.svc.CheckAnswer(r.Context(), id, words.CheckInput{
		Word:        req.Word,
		Description: req.Description,
		Synonyms:    req.Synonyms,
		Antonyms:    req.Antonyms,
		Jeopardy:    req.Jeopardy,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, correct)
}

// pathID parses the {id} path segment. Writes a 400 and returns false on
// malformed input.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
