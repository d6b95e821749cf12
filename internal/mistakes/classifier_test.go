package mistakes

import (
	"testing"

	"traductor/internal/catalog"
	"traductor/internal/domain"
	"traductor/internal/vocab"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier(t *testing.T) (*Classifier, *vocab.Index) {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	return NewClassifier(c.Index), c.Index
}

func sectionFor(t *testing.T, idx *vocab.Index, path string) domain.Section {
	t.Helper()
	w, ok := idx.ByPath(path)
	require.True(t, ok, path)
	return domain.Section{Translation: domain.SingleWord(w)}
}

func TestClassifyVerb(t *testing.T) {
	c, idx := newTestClassifier(t)
	estoy := sectionFor(t, idx, "verbs.estar.conjugations.present.0")

	tests := []struct {
		name     string
		input    string
		expected []Tag
	}{
		{name: "linking pair swap", input: "soy", expected: []Tag{TagSerVsEstar}},
		{name: "wrong tense", input: "estuve", expected: []Tag{TagTense}},
		{name: "wrong person", input: "está", expected: []Tag{TagConjugation}},
		{name: "unaccented wrong person", input: "esta", expected: []Tag{TagConjugation}},
		{name: "wrong root", input: "tengo", expected: []Tag{TagWrongRoot}},
		{name: "everything wrong", input: "fue", expected: []Tag{TagSerVsEstar, TagTense, TagConjugation}},
		{name: "token with punctuation", input: "¡Yo soy!", expected: []Tag{TagSerVsEstar}},
		{name: "same form", input: "yo estoy", expected: nil},
		{name: "nonsense", input: "xyzzy", expected: nil},
		{name: "empty", input: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := c.ClassifyVerb(estoy, tt.input)
			assert.Equal(t, tt.expected, d.Tags)
		})
	}
}

func TestClassifyVerb_NoExpectedVerb(t *testing.T) {
	c, idx := newTestClassifier(t)
	de := sectionFor(t, idx, "prepositions.de")

	assert.True(t, c.ClassifyVerb(de, "soy").Empty())
	assert.True(t, c.ClassifyVerb(domain.Section{}, "soy").Empty())
}

func TestClassifyVerb_LiteralSection(t *testing.T) {
	c, _ := newTestClassifier(t)
	section := domain.Section{Translation: domain.Literal("tengo")}

	d := c.ClassifyVerb(section, "tienes")
	assert.Equal(t, []Tag{TagConjugation}, d.Tags)
	assert.Equal(t, FamilyVerb, d.Family)
}

func TestClassifyPronoun(t *testing.T) {
	c, idx := newTestClassifier(t)
	lo := sectionFor(t, idx, "pronouns.direct_object.lo")

	tests := []struct {
		name     string
		input    string
		expected []Tag
	}{
		{name: "same category and person", input: "la", expected: nil},
		{name: "wrong person", input: "me", expected: []Tag{TagPerson}},
		{name: "subject instead of object", input: "él", expected: []Tag{TagCategory}},
		{name: "indirect instead of direct", input: "le", expected: []Tag{TagCategory}},
		{name: "category and person", input: "yo", expected: []Tag{TagCategory, TagPerson}},
		{name: "nonsense", input: "xyzzy", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := c.ClassifyPronoun(lo, tt.input)
			assert.Equal(t, tt.expected, d.Tags)
		})
	}
}

func TestClassifyPronoun_AmbiguousSurfacePrefersExpectedCategory(t *testing.T) {
	c, idx := newTestClassifier(t)
	mi := sectionFor(t, idx, "pronouns.possessive.mi")

	d := c.ClassifyPronoun(mi, "tu")
	assert.Equal(t, []Tag{TagPerson}, d.Tags)
	assert.Equal(t, "possessive", d.Used.Category)
}

func TestClassify_BothFamilies(t *testing.T) {
	c, idx := newTestClassifier(t)
	section := sectionFor(t, idx, "verbs.estar.conjugations.present.0")

	diagnoses := c.Classify(section, "soy")
	require.Len(t, diagnoses, 1)
	assert.Equal(t, []string{"verb/ser-vs-estar"}, diagnoses[0].Keys())

	assert.Empty(t, c.Classify(section, "xyzzy"))
}

func TestDiagnosis_Transitions(t *testing.T) {
	c, idx := newTestClassifier(t)
	estoy := sectionFor(t, idx, "verbs.estar.conjugations.present.0")

	d := c.ClassifyVerb(estoy, "fue")
	transitions := d.Transitions()
	require.Len(t, transitions, 3)

	assert.Equal(t, DimensionRoot, transitions[0].Dimension)
	assert.Equal(t, "ser->estar", transitions[0].Key())
	assert.Equal(t, "preterite->present", transitions[1].Key())
	assert.Equal(t, "third person singular->first person singular", transitions[2].Key())
}
