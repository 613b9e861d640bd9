package domain

import (
	"fmt"
	"strings"
	"time"
)

// Word is one catalog entry: a word string plus its generated study artifacts.
// Artifact fields are nil until generated. Once populated they are never
// regenerated; the orchestrator only fills gaps.
type Word struct {
	ID          int64
	Word        string
	Description *string
	Synonyms    []string
	Antonyms    []string
	Jeopardy    *string
	AudioKey    *string
	TimeCreated time.Time
	TimeUpdated time.Time
}

// Complete reports whether every generated artifact is present.
func (w *Word) Complete() bool {
	return w.Description != nil &&
		w.Synonyms != nil &&
		w.Antonyms != nil &&
		w.Jeopardy != nil &&
		w.AudioKey != nil
}

// WordArtifacts is the set of generated artifacts for a word. Nil fields
// mean "not generated"; when used as an update patch, nil fields are left
// untouched.
type WordArtifacts struct {
	Description *string
	Synonyms    []string
	Antonyms    []string
	Jeopardy    *string
	AudioKey    *string
}

// listDelimiter joins synonym/antonym lists in their single-column encoding.
const listDelimiter = ","

// EncodeList joins an ordered list into its stored single-string form.
// A nil list encodes to nil (column NULL); an empty list encodes to "".
func EncodeList(items []string) *string {
	if items == nil {
		return nil
	}
	s := strings.Join(items, listDelimiter)
	return &s
}

// DecodeList reverses EncodeList. nil stays nil, "" becomes an empty list.
func DecodeList(s *string) []string {
	if s == nil {
		return nil
	}
	if *s == "" {
		return []string{}
	}
	return strings.Split(*s, listDelimiter)
}

// AudioKey derives the deterministic blob key for a word's pronunciation
// audio, e.g. "cat_alloy.mp3".
func AudioKey(word, voice string) string {
	return fmt.Sprintf("%s_%s.mp3", word, voice)
}

// NormalizeGuess prepares a submitted word guess for comparison:
// surrounding whitespace is trimmed and case is folded.
func NormalizeGuess(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
