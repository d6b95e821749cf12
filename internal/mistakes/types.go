// Package mistakes diagnoses why a wrong answer is wrong when both the answer
// and the expected form are recognizable verbs or pronouns.
package mistakes

import (
	"fmt"

	"traductor/internal/domain"
)

// Tag names one way a wrong answer differs from the expected one
type Tag string

const (
	TagSerVsEstar  Tag = "ser-vs-estar"
	TagWrongRoot   Tag = "wrong-root"
	TagTense       Tag = "tense"
	TagConjugation Tag = "conjugation"
	TagCategory    Tag = "category"
	TagPerson      Tag = "person"
)

// Grammatical families handled by the classifiers
const (
	FamilyVerb    = "verb"
	FamilyPronoun = "pronoun"
)

// Dimensions along which transitions are counted
const (
	DimensionRoot     = "root"
	DimensionTense    = "tense"
	DimensionPerson   = "person"
	DimensionCategory = "category"
)

// Diagnosis is the output of a classifier. A zero Diagnosis means the wrong
// answer could not be analyzed.
type Diagnosis struct {
	Family   string
	Tags     []Tag
	Used     domain.Word
	Expected domain.Word
}

// Empty reports whether no tag was produced
func (d Diagnosis) Empty() bool {
	return len(d.Tags) == 0
}

// Keys returns the synthetic error-category keys, e.g. "verb/tense"
func (d Diagnosis) Keys() []string {
	keys := make([]string, 0, len(d.Tags))
	for _, tag := range d.Tags {
		keys = append(keys, d.Family+"/"+string(tag))
	}
	return keys
}

// Transition is a wrong->expected change along one dimension
type Transition struct {
	Dimension string
	From      string
	To        string
}

// Key renders the transition as "<from>-><to>"
func (t Transition) Key() string {
	return fmt.Sprintf("%s->%s", t.From, t.To)
}

// Transitions lists one transition per tag
func (d Diagnosis) Transitions() []Transition {
	var out []Transition
	for _, tag := range d.Tags {
		switch tag {
		case TagSerVsEstar, TagWrongRoot:
			out = append(out, Transition{DimensionRoot, d.Used.Root, d.Expected.Root})
		case TagTense:
			out = append(out, Transition{DimensionTense, d.Used.Tense, d.Expected.Tense})
		case TagConjugation:
			out = append(out, Transition{DimensionPerson, d.Used.Person, d.Expected.Person})
		case TagCategory:
			out = append(out, Transition{DimensionCategory, d.Used.Category, d.Expected.Category})
		case TagPerson:
			out = append(out, Transition{DimensionPerson, d.Used.Person, d.Expected.Person})
		}
	}
	return out
}
