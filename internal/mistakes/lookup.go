package mistakes

import (
	"cmp"

	"traductor/internal/domain"
	"traductor/internal/grading"
	"traductor/internal/vocab"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// PersonAlternatives lists forms of the same root and tense in other persons.
// It falls back to any other form of the root, then to any form of another
// linking verb, and returns nil when the vocabulary has no linking verbs.
func (c *Classifier) PersonAlternatives(expected domain.Word) []domain.Word {
	root, ok := c.idx.Root(expected.Root)
	if ok {
		var out []domain.Word
		for _, form := range root.Conjugations[expected.Tense] {
			if !vocab.SamePerson(form.Person, expected.Person) {
				out = append(out, form)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return c.fallback(expected)
}

// TenseAlternative returns a form of the same root in another tense,
// preferring the same person.
func (c *Classifier) TenseAlternative(expected domain.Word) (domain.Word, bool) {
	if root, ok := c.idx.Root(expected.Root); ok {
		var other []domain.Word
		for _, tense := range root.Tenses {
			if tense == expected.Tense {
				continue
			}
			for _, form := range root.Conjugations[tense] {
				if form.Person == expected.Person {
					return form, true
				}
				other = append(other, form)
			}
		}
		if len(other) > 0 {
			return other[0], true
		}
	}
	return first(c.fallback(expected))
}

// LinkingCounterpart returns the analogous form of the other linking verb,
// preferring matching tense and person, then matching tense.
func (c *Classifier) LinkingCounterpart(expected domain.Word) (domain.Word, bool) {
	for _, root := range c.otherLinkingRoots(expected.Root) {
		if form, ok := c.idx.Form(root.Surface, expected.Tense, expected.Person); ok {
			return form, true
		}
		if forms := root.Conjugations[expected.Tense]; len(forms) > 0 {
			return forms[0], true
		}
	}
	return first(c.fallback(expected))
}

// Distractors builds plausible wrong choices for a section's expected verb or
// pronoun, in a stable order. It returns nil when nothing is recognizable.
func (c *Classifier) Distractors(section domain.Section) []domain.Word {
	var out []domain.Word
	if verb, ok := c.expectedVerb(section); ok {
		alternatives := c.PersonAlternatives(verb)
		out = append(out, alternatives[:min(2, len(alternatives))]...)
		if w, ok := c.TenseAlternative(verb); ok {
			out = append(out, w)
		}
		if w, ok := c.LinkingCounterpart(verb); ok {
			out = append(out, w)
		}
		return dedupe(out, verb)
	}

	if pronoun, ok := c.expectedPronoun(section); ok {
		var samePerson []domain.Word
		for _, w := range c.idx.Words() {
			if !w.IsPronoun() || w.Surface == pronoun.Surface {
				continue
			}
			switch {
			case w.Category == pronoun.Category && !vocab.SamePerson(w.Person, pronoun.Person):
				out = append(out, w)
			case w.Category != pronoun.Category && vocab.SamePerson(w.Person, pronoun.Person):
				samePerson = append(samePerson, w)
			}
		}
		out = out[:min(2, len(out))]
		out = append(out, samePerson[:min(1, len(samePerson))]...)
		return dedupe(out, pronoun)
	}

	return nil
}

// fallback yields other forms of the same root, then forms of another
// linking verb.
func (c *Classifier) fallback(expected domain.Word) []domain.Word {
	if root, ok := c.idx.Root(expected.Root); ok {
		var out []domain.Word
		for _, form := range root.Forms() {
			if form.Surface != expected.Surface {
				out = append(out, form)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	for _, root := range c.otherLinkingRoots(expected.Root) {
		if forms := root.Forms(); len(forms) > 0 {
			return forms
		}
	}
	return nil
}

func (c *Classifier) otherLinkingRoots(root string) []domain.VerbRoot {
	return lo.Filter(c.idx.LinkingRoots(), func(r domain.VerbRoot, _ int) bool {
		return grading.Normalize(r.Surface) != grading.Normalize(root)
	})
}

func first(words []domain.Word) (domain.Word, bool) {
	if len(words) == 0 {
		return domain.Word{}, false
	}
	return words[0], true
}

func dedupe(words []domain.Word, expected domain.Word) []domain.Word {
	words = lo.Filter(words, func(w domain.Word, _ int) bool {
		return grading.Normalize(w.Surface) != grading.Normalize(expected.Surface)
	})
	words = lo.UniqBy(words, func(w domain.Word) string {
		return grading.Normalize(w.Surface)
	})
	slices.SortStableFunc(words, func(a, b domain.Word) int {
		return cmp.Compare(a.Surface, b.Surface)
	})
	return words
}
