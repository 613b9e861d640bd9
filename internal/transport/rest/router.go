package rest

import (
	"net/http"

	"github.com/linguaweb/linguaweb-backend/internal/transport/middleware"
)

// RouterDeps bundles the handlers and cross-cutting settings for NewRouter.
type RouterDeps struct {
	Words  *WordsHandler
	Text   *TextHandler
	Admin  *AdminHandler
	Speech *SpeechHandler
	Health *HealthHandler

	// AdminLimit wraps the admin routes; nil disables rate limiting.
	AdminLimit middleware.Middleware
}

// NewRouter builds the HTTP route table.
func NewRouter(deps RouterDeps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", deps.Health.Health)
	mux.HandleFunc("GET /health/live", deps.Health.Live)
	mux.HandleFunc("GET /ready", deps.Health.Ready)

	mux.HandleFunc("GET /words", deps.Words.List)
	mux.HandleFunc("GET /words/{id}", deps.Words.Get)
	mux.HandleFunc("GET /words/download/{id}", deps.Words.Download)
	mux.HandleFunc("POST /words/check/{id}", deps.Words.Check)

	mux.HandleFunc("GET /text/description", deps.Text.Description)
	mux.HandleFunc("GET /text/synonyms", deps.Text.Synonyms)
	mux.HandleFunc("GET /text/antonyms", deps.Text.Antonyms)
	mux.HandleFunc("GET /text/jeopardy", deps.Text.Jeopardy)
	mux.HandleFunc("POST /text/check/{id}", deps.Text.Check)

	limit := deps.AdminLimit
	if limit == nil {
		limit = func(next http.Handler) http.Handler { return next }
	}
	mux.Handle("POST /admin/add_word", limit(http.HandlerFunc(deps.Admin.AddWord)))
	mux.Handle("POST /admin/add_preset_words", limit(http.HandlerFunc(deps.Admin.AddPresetWords)))

	mux.HandleFunc("POST /speech/transcribe", deps.Speech.Transcribe)

	return mux
}
