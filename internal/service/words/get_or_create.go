package words

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/linguaweb/linguaweb-backend/internal/domain"
)

// GetOrCreate returns the catalog entry for the given word, generating and
// persisting any missing artifacts. A nil word draws one uniformly at random
// from the allowed-word list.
//
// A complete cached entry is returned without any external calls. An entry
// with gaps gets exactly the missing artifacts generated (partial fill). A
// full miss fans out all generation calls concurrently, uploads the audio,
// and inserts the row; if a concurrent request wins the insert race, the
// winner's row is read back and returned.
func (s *Service) GetOrCreate(ctx context.Context, word *string) (*domain.Word, error) {
	w := ""
	if word != nil {
		w = *word
	}
	if w == "" {
		w = s.dict.RandomWord()
	}

	existing, err := s.words.GetByWord(ctx, w)
	if err == nil {
		if existing.Complete() {
			return existing, nil
		}
		return s.fillMissing(ctx, existing)
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("get word %q: %w", w, err)
	}

	entry, _, err := s.createEntry(ctx, w)
	return entry, err
}

// createEntry builds all artifacts for a word concurrently and inserts the
// row. The returned bool reports whether this call performed the insert:
// false means a concurrent request won the race and the winner's row is
// returned instead.
func (s *Service) createEntry(ctx context.Context, word string) (*domain.Word, bool, error) {
	artifacts, audio, err := s.generateAll(ctx, word)
	if err != nil {
		return nil, false, err
	}

	audioKey := domain.AudioKey(word, s.voice)
	if err := s.blobs.Put(ctx, audioKey, audio); err != nil {
		return nil, false, fmt.Errorf("store audio for %q: %w", word, err)
	}

	var created *domain.Word
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.words.Create(txCtx, &domain.Word{
			Word:        word,
			Description: artifacts.Description,
			Synonyms:    artifacts.Synonyms,
			Antonyms:    artifacts.Antonyms,
			Jeopardy:    artifacts.Jeopardy,
			AudioKey:    &audioKey,
		})
		return createErr
	})

	if txErr != nil {
		// Concurrent create: the unique constraint on word is the sole
		// arbiter. The loser reads back the winner's row.
		if errors.Is(txErr, domain.ErrAlreadyExists) {
			existing, err := s.words.GetByWord(ctx, word)
			if err != nil {
				return nil, false, fmt.Errorf("get word after conflict: %w", err)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create word %q: %w", word, txErr)
	}

	s.log.InfoContext(ctx, "word created",
		slog.String("word", word),
		slog.Int64("word_id", created.ID),
	)

	return created, true, nil
}

// generateAll fans out the four text generations and the speech synthesis
// concurrently. All five calls are issued without waiting on one another;
// the first failure cancels the rest and fails the whole operation.
func (s *Service) generateAll(ctx context.Context, word string) (domain.WordArtifacts, []byte, error) {
	var (
		artifacts domain.WordArtifacts
		audio     []byte
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		text, err := s.gen.Generate(gctx, promptWordDescription, word)
		if err != nil {
			return fmt.Errorf("generate description: %w", err)
		}
		artifacts.Description = &text
		return nil
	})

	g.Go(func() error {
		text, err := s.gen.Generate(gctx, promptWordSynonyms, word)
		if err != nil {
			return fmt.Errorf("generate synonyms: %w", err)
		}
		artifacts.Synonyms = domain.DecodeList(&text)
		return nil
	})

	g.Go(func() error {
		text, err := s.gen.Generate(gctx, promptWordAntonyms, word)
		if err != nil {
			return fmt.Errorf("generate antonyms: %w", err)
		}
		artifacts.Antonyms = domain.DecodeList(&text)
		return nil
	})

	g.Go(func() error {
		text, err := s.gen.Generate(gctx, promptWordJeopardy, word)
		if err != nil {
			return fmt.Errorf("generate jeopardy clue: %w", err)
		}
		artifacts.Jeopardy = &text
		return nil
	})

	g.Go(func() error {
		data, err := s.tts.Synthesize(gctx, word)
		if err != nil {
			return fmt.Errorf("synthesize audio: %w", err)
		}
		audio = data
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.WordArtifacts{}, nil, err
	}

	return artifacts, audio, nil
}

// fillMissing generates exactly the artifacts absent from an existing entry
// and persists them. Fields already present are never regenerated.
func (s *Service) fillMissing(ctx context.Context, entry *domain.Word) (*domain.Word, error) {
	var patch domain.WordArtifacts

	g, gctx := errgroup.WithContext(ctx)

	if entry.Description == nil {
		g.Go(func() error {
			text, err := s.gen.Generate(gctx, promptWordDescription, entry.Word)
			if err != nil {
				return fmt.Errorf("generate description: %w", err)
			}
			patch.Description = &text
			return nil
		})
	}

	if entry.Synonyms == nil {
		g.Go(func() error {
			text, err := s.gen.Generate(gctx, promptWordSynonyms, entry.Word)
			if err != nil {
				return fmt.Errorf("generate synonyms: %w", err)
			}
			patch.Synonyms = domain.DecodeList(&text)
			return nil
		})
	}

	if entry.Antonyms == nil {
		g.Go(func() error {
			text, err := s.gen.Generate(gctx, promptWordAntonyms, entry.Word)
			if err != nil {
				return fmt.Errorf("generate antonyms: %w", err)
			}
			patch.Antonyms = domain.DecodeList(&text)
			return nil
		})
	}

	if entry.Jeopardy == nil {
		g.Go(func() error {
			text, err := s.gen.Generate(gctx, promptWordJeopardy, entry.Word)
			if err != nil {
				return fmt.Errorf("generate jeopardy clue: %w", err)
			}
			patch.Jeopardy = &text
			return nil
		})
	}

	audioKey := domain.AudioKey(entry.Word, s.voice)
	if entry.AudioKey == nil {
		g.Go(func() error {
			data, err := s.tts.Synthesize(gctx, entry.Word)
			if err != nil {
				return fmt.Errorf("synthesize audio: %w", err)
			}
			if err := s.blobs.Put(gctx, audioKey, data); err != nil {
				return fmt.Errorf("store audio for %q: %w", entry.Word, err)
			}
			patch.AudioKey = &audioKey
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var updated *domain.Word
	txErr := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		updated, updateErr = s.words.UpdateArtifacts(txCtx, entry.ID, patch)
		return updateErr
	})
	if txErr != nil {
		return nil, fmt.Errorf("fill word %q: %w", entry.Word, txErr)
	}

	s.log.InfoContext(ctx, "word artifacts filled",
		slog.String("word", entry.Word),
		slog.Int64("word_id", entry.ID),
	)

	return updated, nil
}
