package words

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/linguaweb/linguaweb-backend/internal/domain"
)

// AddWord creates a catalog entry for an explicitly named word.
// Unlike GetOrCreate, an existing entry is a conflict: the caller asked to
// add, not to fetch.
func (s *Service) AddWord(ctx context.Context, word string) (*domain.Word, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, domain.NewValidationError("word", "required")
	}

	if _, err := s.words.GetByWord(ctx, word); err == nil {
		return nil, fmt.Errorf("word %q: %w", word, domain.ErrAlreadyExists)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get word %q: %w", word, err)
	}

	entry, created, err := s.createEntry(ctx, word)
	if err != nil {
		return nil, err
	}
	if !created {
		// Lost the insert race after the existence check.
		return nil, fmt.Errorf("word %q: %w", word, domain.ErrAlreadyExists)
	}

	return entry, nil
}

// AddPresetWords creates entries for every allowed-list word not yet in the
// catalog, running the single-word creations concurrently. Words already
// present are silently skipped and excluded from the result. If every preset
// word already exists the whole call is a conflict.
func (s *Service) AddPresetWords(ctx context.Context) ([]domain.Word, error) {
	preset := s.dict.Words()

	existing, err := s.words.ListByWords(ctx, preset)
	if err != nil {
		return nil, fmt.Errorf("list preset words: %w", err)
	}
	if len(existing) == len(preset) {
		return nil, fmt.Errorf("all preset words: %w", domain.ErrAlreadyExists)
	}

	existingSet := make(map[string]struct{}, len(existing))
	for _, w := range existing {
		existingSet[w.Word] = struct{}{}
	}

	var (
		mu      sync.Mutex
		created []domain.Word
	)

	g, gctx := errgroup.WithContext(ctx)

	for _, w := range preset {
		if _, ok := existingSet[w]; ok {
			continue
		}

		g.Go(func() error {
			entry, didCreate, err := s.createEntry(gctx, w)
			if err != nil {
				return err
			}
			if !didCreate {
				// Raced with another request; skip like a preexisting word.
				return nil
			}

			mu.Lock()
			created = append(created, *entry)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "preset words added", slog.Int("count", len(created)))

	return created, nil
}
