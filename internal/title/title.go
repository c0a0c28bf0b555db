// Package title derives display titles from media filenames.
package title

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

var (
	// Canonical UUIDs embedded anywhere in the stem.
	uuidRe = regexp.MustCompile(`(?i)[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}`)
	// Trailing generator-tool hash suffixes: separator + 12 or more
	// alphanumerics. Covers "-PG0ypRgDrFtnBmIDPB3G" and "_7brk8p7brk8p7brk".
	hashSuffixRe = regexp.MustCompile(`[-_][A-Za-z0-9]{12,}$`)
	separatorRe  = regexp.MustCompile(`[-_]+`)
	spaceRe      = regexp.MustCompile(`\s+`)
)

// Deriver turns filenames into display titles. GenericPrefixes are the
// lowercase phrases that force the numbered fallback.
type Deriver struct {
	GenericPrefixes []string
}

// result of one rule: either a terminal title or the stem to hand to the
// next rule.
type outcome struct {
	title string
	done  bool
	stem  string
}

// next passes the (possibly rewritten) stem on to the following rule.
func next(stem string) outcome { return outcome{stem: stem} }

// final stops the chain with the given title.
func final(title string) outcome { return outcome{title: title, done: true} }

// Derive builds a title for the index-th file (1-based) of a type-group of
// size total within an album. First terminal rule wins; the chain always
// produces a non-empty title.
func (d Deriver) Derive(album, filename string, index, total int) string {
	fallback := fmt.Sprintf("%s — %s", capitalize(album), pad(index, total))

	rules := []func(string) outcome{
		func(s string) outcome { return next(uuidRe.ReplaceAllString(s, "")) },
		func(s string) outcome { return next(hashSuffixRe.ReplaceAllString(s, "")) },
		func(s string) outcome {
			s = separatorRe.ReplaceAllString(s, " ")
			s = spaceRe.ReplaceAllString(strings.TrimSpace(s), " ")
			return next(s)
		},
		func(s string) outcome {
			if len(s) < 2 {
				return final(fallback)
			}
			return next(s)
		},
		func(s string) outcome { return next(titleCase(s)) },
		func(s string) outcome {
			if d.isGeneric(s) {
				return final(fallback)
			}
			return next(s)
		},
		func(s string) outcome {
			if total > 1 {
				return final(fmt.Sprintf("%s — %s", s, pad(index, total)))
			}
			return final(s)
		},
	}

	stem := strings.TrimSuffix(filename, filepath.Ext(filename))
	for _, rule := range rules {
		out := rule(stem)
		if out.done {
			return out.title
		}
		stem = out.stem
	}
	return fallback
}

// isGeneric reports whether the title-cased stem equals or starts with any
// configured generic phrase, case-insensitively.
func (d Deriver) isGeneric(stem string) bool {
	lower := strings.ToLower(stem)
	for _, p := range d.GenericPrefixes {
		if lower == p || strings.HasPrefix(lower, p) {
			return true
		}
	}
	return false
}

// pad zero-pads index to the digit width of total.
func pad(index, total int) string {
	width := len(fmt.Sprint(total))
	return fmt.Sprintf("%0*d", width, index)
}

// capitalize uppercases the first rune and lowercases the rest.
func capitalize(s string) string {
	r := []rune(strings.ToLower(s))
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// titleCase uppercases the first letter of every space-separated word,
// lowercasing the rest.
func titleCase(s string) string {
	words := strings.Split(s, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(strings.ToLower(w))
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
