// Package words implements the word catalog orchestration: get-or-create of
// word entries, answer checking, and audio retrieval.
package words

import (
	"context"
	"log/slog"

	"github.com/linguaweb/linguaweb-backend/internal/domain"
)

type wordRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Word, error)
	GetByWord(ctx context.Context, word string) (*domain.Word, error)
	ListIDs(ctx context.Context) ([]int64, error)
	ListByWords(ctx context.Context, words []string) ([]domain.Word, error)
	Create(ctx context.Context, w *domain.Word) (*domain.Word, error)
	UpdateArtifacts(ctx context.Context, id int64, patch domain.WordArtifacts) (*domain.Word, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type textGenerator interface {
	Generate(ctx context.Context, instruction, prompt string) (string, error)
}

type speechSynthesizer interface {
	Synthesize(ctx context.Context, text string) ([]byte, error)
}

type blobStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}

type wordSource interface {
	Words() []string
	RandomWord() string
}

// Service orchestrates word entry creation: it checks the catalog, fans out
// generation calls for missing artifacts, and persists results exactly once.
type Service struct {
	log   *slog.Logger
	words wordRepo
	tx    txManager
	gen   textGenerator
	tts   speechSynthesizer
	blobs blobStore
	dict  wordSource
	voice string
}

// NewService creates a word catalog service.
func NewService(
	logger *slog.Logger,
	words wordRepo,
	tx txManager,
	gen textGenerator,
	tts speechSynthesizer,
	blobs blobStore,
	dict wordSource,
	voice string,
) *Service {
	return &Service{
		log:   logger.With("service", "words"),
		words: words,
		tx:    tx,
		gen:   gen,
		tts:   tts,
		blobs: blobs,
		dict:  dict,
		voice: voice,
	}
}

// ListIDs returns the ids of all catalog entries.
func (s *Service) ListIDs(ctx context.Context) ([]int64, error) {
	return s.words.ListIDs(ctx)
}

// Get returns the catalog entry with the given id.
// Returns domain.ErrNotFound if the id is unknown.
func (s *Service) Get(ctx context.Context, id int64) (*domain.Word, error) {
	return s.words.GetByID(ctx, id)
}
