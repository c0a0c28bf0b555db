// Package theme handles thematic tag categories: loading the theme
// document, extracting filename vocabulary, and keyword-based assignment.
package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/nanosep/portfolio/internal/types"
)

var (
	splitRe = regexp.MustCompile(`[-_\s]+`)
	hexRe   = regexp.MustCompile(`^[0-9a-f]{6,}$`)
	digitRe = regexp.MustCompile(`^[0-9]+$`)
)

// Stopwords excluded from the vocabulary: function words plus generator
// names that appear in machine-produced filenames.
var Stopwords = map[string]bool{
	"a": true, "an": true, "the": true, "of": true, "in": true, "on": true,
	"at": true, "to": true, "for": true, "and": true, "or": true, "is": true,
	"it": true, "by": true, "with": true, "from": true, "as": true, "be": true,
	"was": true, "are": true, "but": true, "not": true, "no": true, "up": true,
	"out": true, "so": true, "if": true, "its": true, "has": true, "had": true,
	"do": true, "my": true, "he": true, "she": true, "we": true, "me": true,
	"us": true, "his": true, "her": true, "our": true, "your": true,
	"img": true, "image": true, "photo": true, "pic": true, "file": true,
	"download": true, "untitled": true, "grok": true, "video": true,
	"freepik": true, "gemini": true, "generated": true, "magnifics": true,
	"mystic": true, "midjourney": true, "stable": true, "diffusion": true,
}

// Load reads the theme document. A missing file is an error: theme
// proposal has to run first.
func Load(path string) ([]types.Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var themes []types.Theme
	if err := json.Unmarshal(data, &themes); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return themes, nil
}

// Save writes a theme document as pretty-printed JSON.
func Save(path string, themes []types.Theme) error {
	data, err := json.MarshalIndent(themes, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// Tokenize splits a filename stem into its set of lowercase words.
func Tokenize(stem string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range splitRe.Split(strings.ToLower(stem), -1) {
		if w != "" {
			words[w] = true
		}
	}
	return words
}

// WordCount is one vocabulary entry.
type WordCount struct {
	Word  string
	Count int
}

// Vocabulary extracts word frequencies from the stems of the given media
// items, skipping short words, numbers, stopwords, and hex-looking tokens
// (UUID/hash fragments). Sorted by descending count, then word.
func Vocabulary(items []types.MediaItem) []WordCount {
	counts := make(map[string]int)
	for _, it := range items {
		for w := range Tokenize(it.Stem) {
			if len(w) < 3 || digitRe.MatchString(w) || Stopwords[w] || hexRe.MatchString(w) {
				continue
			}
			counts[w]++
		}
	}

	vocab := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		vocab = append(vocab, WordCount{Word: w, Count: c})
	}
	sort.Slice(vocab, func(i, j int) bool {
		if vocab[i].Count != vocab[j].Count {
			return vocab[i].Count > vocab[j].Count
		}
		return vocab[i].Word < vocab[j].Word
	})
	return vocab
}

// AssignByKeywords tags each item whose stem shares a word with a theme's
// keyword set. Tag order follows theme order; items with no match get an
// empty list.
func AssignByKeywords(items []types.MediaItem, themes []types.Theme) map[string][]string {
	results := make(map[string][]string, len(items))
	for _, it := range items {
		words := Tokenize(it.Stem)
		tags := []string{}
		for _, th := range themes {
			for _, kw := range th.Keywords {
				if words[kw] {
					tags = append(tags, th.Tag)
					break
				}
			}
		}
		results[it.Path] = tags
	}
	return results
}
