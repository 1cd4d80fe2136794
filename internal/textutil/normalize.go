package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Sanitize trims and lowercases text, folds whitespace runes to a single space
// each, and deletes every remaining rune outside a-z. When keepNewlines is
// true, '\n' is preserved so callers can split the result into lines.
func Sanitize(text string, keepNewlines bool) string {
	lowered := cases.Lower(language.Und).String(strings.TrimSpace(text))
	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case r >= 'a' && r <= 'z', r == ' ':
			b.WriteRune(r)
		case r == '\n' && keepNewlines:
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return b.String()
}

// Tokenize sanitizes text and splits it into tokens. Runs of separators never
// produce empty tokens, and empty input yields an empty slice.
func Tokenize(text string) []string {
	return strings.Fields(Sanitize(text, false))
}
