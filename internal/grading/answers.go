package grading

import (
	"traductor/internal/domain"

	"github.com/samber/lo"
)

// ExpectedAnswers returns the normalized answers accepted for a section.
// Explicit accepted phrases win over answers derived from the translation,
// unless none of them survives normalization.
// An empty result means the section cannot be graded.
func ExpectedAnswers(section domain.Section) []string {
	if accepted := normalizeAll(section.Accepted); len(accepted) > 0 {
		return accepted
	}

	t := section.Translation
	switch t.Kind {
	case domain.TranslationWord:
		return normalizeAll(append([]string{t.Word.Surface}, t.Word.Alternates...))
	case domain.TranslationWords, domain.TranslationLiteral:
		return normalizeAll([]string{t.Surface()})
	}
	return nil
}

// IsGradable reports whether a section has at least one expected answer
func IsGradable(section domain.Section) bool {
	return len(ExpectedAnswers(section)) > 0
}

// Matches reports whether input is one of the section's expected answers
func Matches(section domain.Section, input string) bool {
	token := Normalize(input)
	if token == "" {
		return false
	}
	return lo.Contains(ExpectedAnswers(section), token)
}

func normalizeAll(phrases []string) []string {
	out := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		if token := Normalize(phrase); token != "" {
			out = append(out, token)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return lo.Uniq(out)
}
