package words

import (
	"context"

	"github.com/linguaweb/linguaweb-backend/internal/domain"
)

// CheckInput is the sparse set of fields to compare against a stored entry.
// Nil fields are not checked; at least one must be set.
type CheckInput struct {
	Word        *string
	Description *string
	Synonyms    *string
	Antonyms    *string
	Jeopardy    *string
}

func (in CheckInput) empty() bool {
	return in.Word == nil && in.Description == nil && in.Synonyms == nil &&
		in.Antonyms == nil && in.Jeopardy == nil
}

// CheckAnswer compares the provided fields against the stored entry with id.
// The word is compared case-insensitively with surrounding whitespace
// trimmed; all other fields compare for exact equality. Every provided field
// must match; a single mismatch returns false.
func (s *Service) CheckAnswer(ctx context.Context, id int64, in CheckInput) (bool, error) {
	if in.empty() {
		return false, domain.NewValidationError("checks", "at least one field is required")
	}

	entry, err := s.words.GetByID(ctx, id)
	if err != nil {
		return false, err
	}

	if in.Word != nil && domain.NormalizeGuess(*in.Word) != domain.NormalizeGuess(entry.Word) {
		return false, nil
	}
	if in.Description != nil && !equalsStored(*in.Description, entry.Description) {
		return false, nil
	}
	if in.Synonyms != nil && !equalsStored(*in.Synonyms, domain.EncodeList(entry.Synonyms)) {
		return false, nil
	}
	if in.Antonyms != nil && !equalsStored(*in.Antonyms, domain.EncodeList(entry.Antonyms)) {
		return false, nil
	}
	if in.Jeopardy != nil && !equalsStored(*in.Jeopardy, entry.Jeopardy) {
		return false, nil
	}

	return true, nil
}

// equalsStored compares a submitted value with a stored field; an absent
// stored field never matches.
func equalsStored(candidate string, stored *string) bool {
	return stored != nil && candidate == *stored
}
