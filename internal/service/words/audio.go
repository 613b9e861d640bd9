package words

import (
	"context"
	"fmt"

	"github.com/linguaweb/linguaweb-backend/internal/domain"
)

// Audio returns the pronunciation audio bytes for the entry with id.
// An unknown id, an entry without an audio key, and a missing blob all
// surface as domain.ErrNotFound: the caller only learns that no audio
// exists for this word.
func (s *Service) Audio(ctx context.Context, id int64) ([]byte, error) {
	entry, err := s.words.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if entry.AudioKey == nil {
		return nil, fmt.Errorf("audio for word %d: %w", id, domain.ErrNotFound)
	}

	data, err := s.blobs.Get(ctx, *entry.AudioKey)
	if err != nil {
		return nil, fmt.Errorf("audio for word %d: %w", id, err)
	}

	return data, nil
}
