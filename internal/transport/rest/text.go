package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/linguaweb/linguaweb-backend/internal/domain"
	"github.com/linguaweb/linguaweb-backend/internal/service/words"
)

// taskService defines the minimal interface needed by TextHandler.
type taskService interface {
	GetOrCreate(ctx context.Context, word *string) (*domain.Word, error)
	CheckAnswer(ctx context.Context, id int64, in words.CheckInput) (bool, error)
}

// TextHandler serves the random-word text task endpoints. Each task endpoint
// draws a random word, creates its entry on first encounter, and returns a
// single artifact with the entry id.
type TextHandler struct {
	svc taskService
	log *slog.Logger
}

// NewTextHandler creates a TextHandler.
func NewTextHandler(svc taskService, logger *slog.Logger) *TextHandler {
	return &TextHandler{svc: svc, log: logger.With("handler", "text")}
}

type descriptionTask struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

type synonymsTask struct {
	ID       int64    `json:"id"`
	Synonyms []string `json:"synonyms"`
}

type antonymsTask struct {
	ID       int64    `json:"id"`
	Antonyms []string `json:"antonyms"`
}

type jeopardyTask struct {
	ID       int64  `json:"id"`
	Jeopardy string `json:"jeopardy"`
}

// Description handles GET /text/description.
func (h *TextHandler) Description(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.GetOrCreate(r.Context(), nil)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	task := descriptionTask{ID: entry.ID}
	if entry.Description != nil {
		task.Description = *entry.Description
	}
	writeJSON(w, http.StatusOK, task)
}

// Synonyms handles GET /text/synonyms.
func (h *TextHandler) Synonyms(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.GetOrCreate(r.Context(), nil)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, synonymsTask{ID: entry.ID, Synonyms: entry.Synonyms})
}

// Antonyms handles GET /text/antonyms.
func (h *TextHandler) Antonyms(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.GetOrCreate(r.Context(), nil)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, antonymsTask{ID: entry.ID, Antonyms: entry.Antonyms})
}

// Jeopardy handles GET /text/jeopardy.
func (h *TextHandler) Jeopardy(w http.ResponseWriter, r *http.Request) {
	entry, err := h.svc.GetOrCreate(r.Context(), nil)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	task := jeopardyTask{ID: entry.ID}
	if entry.Jeopardy != nil {
		task.Jeopardy = *entry.Jeopardy
	}
	writeJSON(w, http.StatusOK, task)
}

// Check handles POST /text/check/{id}.
func (h *TextHandler) Check(w http.ResponseWriter, r *http.Request) {
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
