package mistakes

import (
	"traductor/internal/domain"
	"traductor/internal/grading"
)

// recognizeVerb matches the whole input, then each token, against known
// conjugation surfaces.
func (c *Classifier) recognizeVerb(input string) (domain.Word, bool) {
	if w, ok := c.idx.Conjugation(input); ok {
		return w, true
	}
	for _, token := range grading.Tokens(input) {
		if w, ok := c.idx.Conjugation(token); ok {
			return w, true
		}
	}
	return domain.Word{}, false
}

// recognizePronoun matches like recognizeVerb. Ambiguous surfaces such as
// "tu" resolve to the candidate in the preferred category when one exists.
func (c *Classifier) recognizePronoun(input, preferCategory string) (domain.Word, bool) {
	candidates := c.idx.Pronouns(input)
	if len(candidates) == 0 {
		for _, token := range grading.Tokens(input) {
			if candidates = c.idx.Pronouns(token); len(candidates) > 0 {
				break
			}
		}
	}
	if len(candidates) == 0 {
		return domain.Word{}, false
	}
	for _, w := range candidates {
		if w.Category == preferCategory {
			return w, true
		}
	}
	return candidates[0], true
}

// expectedVerb finds the conjugation a section expects. Structured content
// is authoritative; only literal or phrase-only sections fall back to
// recognizing their accepted answers.
func (c *Classifier) expectedVerb(section domain.Section) (domain.Word, bool) {
	if units := section.Translation.Units(); len(units) > 0 {
		for _, w := range units {
			if w.IsConjugation() {
				return w, true
			}
		}
		return domain.Word{}, false
	}
	for _, answer := range grading.ExpectedAnswers(section) {
		if w, ok := c.recognizeVerb(answer); ok {
			return w, true
		}
	}
	return domain.Word{}, false
}

func (c *Classifier) expectedPronoun(section domain.Section) (domain.Word, bool) {
	if units := section.Translation.Units(); len(units) > 0 {
		for _, w := range units {
			if w.IsPronoun() {
				return w, true
			}
		}
		return domain.Word{}, false
	}
	for _, answer := range grading.ExpectedAnswers(section) {
		if w, ok := c.recognizePronoun(answer, ""); ok {
			return w, true
		}
	}
	return domain.Word{}, false
}
