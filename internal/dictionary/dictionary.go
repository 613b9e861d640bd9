// Package dictionary provides the fixed allowed-word list that random
// word tasks are drawn from.
package dictionary

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
)

//go:embed words.txt
var embeddedWords string

// Dictionary holds the allowed-word list.
type Dictionary struct {
	words []string
}

// New creates a Dictionary from the embedded word list, or from the file
// at path when path is non-empty.
func New(path string) (*Dictionary, error) {
	raw := embeddedWords
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("dictionary: read %s: %w", path, err)
		}
		raw = string(data)
	}

	words := parseWords(raw)
	if len(words) == 0 {
		return nil, fmt.Errorf("dictionary: word list is empty")
	}

	return &Dictionary{words: words}, nil
}

// Words returns the full allowed-word list. Callers must not mutate it.
func (d *Dictionary) Words() []string {
	return d.words
}

// RandomWord draws one word uniformly at random.
func (d *Dictionary) RandomWord() string {
	return d.words[rand.IntN(len(d.words))]
}

func parseWords(raw string) []string {
	var words []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	return words
}
