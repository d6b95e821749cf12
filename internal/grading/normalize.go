package grading

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes free text into a comparable token.
// It lower-cases, strips diacritics, trims punctuation from the edges of each
// whitespace-separated token and collapses whitespace. Normalize is idempotent.
// Phrases that differ only in edge punctuation ("¿Dónde?", "donde") normalize
// to the same token, so such accepted phrases collapse to one answer.
func Normalize(text string) string {
	// transform.Chain keeps state, so it is built per call.
	stripMarks := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	lowered := strings.ToLower(text)
	stripped, _, err := transform.String(stripMarks, lowered)
	if err != nil {
		stripped = lowered
	}

	fields := strings.Fields(stripped)
	tokens := fields[:0]
	for _, field := range fields {
		if token := TrimPunct(field); token != "" {
			tokens = append(tokens, token)
		}
	}
	return strings.Join(tokens, " ")
}

// TrimPunct removes leading and trailing punctuation from a token
func TrimPunct(token string) string {
	return strings.TrimFunc(token, unicode.IsPunct)
}

// Tokens splits text into normalized whitespace-separated tokens
func Tokens(text string) []string {
	return strings.Fields(Normalize(text))
}
