package mistakes

import (
	"traductor/internal/domain"
	"traductor/internal/grading"
	"traductor/internal/vocab"
)

// Classifier runs the verb and pronoun classifiers against a vocabulary index
type Classifier struct {
	idx *vocab.Index
}

// NewClassifier creates a classifier backed by idx
func NewClassifier(idx *vocab.Index) *Classifier {
	return &Classifier{idx: idx}
}

// Classify runs both classifiers and returns the non-empty diagnoses
func (c *Classifier) Classify(section domain.Section, input string) []Diagnosis {
	var out []Diagnosis
	if d := c.ClassifyVerb(section, input); !d.Empty() {
		out = append(out, d)
	}
	if d := c.ClassifyPronoun(section, input); !d.Empty() {
		out = append(out, d)
	}
	return out
}

// ClassifyVerb tags how a wrong verb form differs from the expected one.
// Tags are checked independently: root, then tense, then person.
func (c *Classifier) ClassifyVerb(section domain.Section, input string) Diagnosis {
	used, ok := c.recognizeVerb(input)
	if !ok {
		return Diagnosis{}
	}
	expected, ok := c.expectedVerb(section)
	if !ok {
		return Diagnosis{}
	}

	d := Diagnosis{Family: FamilyVerb, Used: used, Expected: expected}

	if grading.Normalize(used.Root) != grading.Normalize(expected.Root) {
		if c.idx.IsLinking(used.Root) && c.idx.IsLinking(expected.Root) {
			d.Tags = append(d.Tags, TagSerVsEstar)
		} else {
			d.Tags = append(d.Tags, TagWrongRoot)
		}
	}
	if used.Tense != "" && expected.Tense != "" && used.Tense != expected.Tense {
		d.Tags = append(d.Tags, TagTense)
	}
	if used.Person != "" && expected.Person != "" && !vocab.SamePerson(used.Person, expected.Person) {
		d.Tags = append(d.Tags, TagConjugation)
	}

	return d
}

// ClassifyPronoun tags how a wrong pronoun differs from the expected one
func (c *Classifier) ClassifyPronoun(section domain.Section, input string) Diagnosis {
	expected, ok := c.expectedPronoun(section)
	if !ok {
		return Diagnosis{}
	}
	used, ok := c.recognizePronoun(input, expected.Category)
	if !ok {
		return Diagnosis{}
	}

	d := Diagnosis{Family: FamilyPronoun, Used: used, Expected: expected}

	if used.Category != "" && expected.Category != "" && used.Category != expected.Category {
		d.Tags = append(d.Tags, TagCategory)
	}
	if used.Person != "" && expected.Person != "" && !vocab.SamePerson(used.Person, expected.Person) {
		d.Tags = append(d.Tags, TagPerson)
	}

	return d
}
