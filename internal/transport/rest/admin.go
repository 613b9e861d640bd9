package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/linguaweb/linguaweb-backend/internal/domain"
)

// adminService defines the minimal interface needed by AdminHandler.
type adminService interface {
	AddWord(ctx context.Context, word string) (*domain.Word, error)
	AddPresetWords(ctx context.Context) ([]domain.Word, error)
}

// AdminHandler serves admin REST endpoints.
type AdminHandler struct {
	svc adminService
	log *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, log: logger.With("handler", "admin")}
}

// wordResponse is a full word entry including the word itself; admin only.
type wordResponse struct {
	ID          int64    `json:"id"`
	Word        string   `json:"word"`
	Description string   `json:"description"`
	Synonyms    []string `json:"synonyms"`
	Antonyms    []string `json:"antonyms"`
	Jeopardy    string   `json:"jeopardy"`
	AudioKey    string   `json:"audioKey"`
}

func toWordResponse(w *domain.Word) wordResponse {
	resp := wordResponse{
		ID:       w.ID,
		Word:     w.Word,
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

// AddWord handles POST /admin/add_word. The word arrives as a form field.
func (h *AdminHandler) AddWord(w http.ResponseWriter, r *http.Request) {
	word := r.FormValue("word")

	entry, err := h.svc.AddWord(r.Context(), word)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWordResponse(entry))
}

// AddPresetWords handles POST /admin/add_preset_words.
func (h *AdminHandler) AddPresetWords(w http.ResponseWriter, r *http.Request) {
	created, err := h.svc.AddPresetWords(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := make([]wordResponse, 0, len(created))
	for i := range created {
		resp = append(resp, toWordResponse(&created[i]))
	}

	writeJSON(w, http.StatusCreated, resp)
}
