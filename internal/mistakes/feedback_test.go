package mistakes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerbFeedback(t *testing.T) {
	c, idx := newTestClassifier(t)
	estoy := sectionFor(t, idx, "verbs.estar.conjugations.present.0")

	feedback := c.VerbFeedback(estoy, "soy")
	require.Len(t, feedback, 1)

	f := feedback[0]
	assert.Equal(t, TagSerVsEstar, f.Tag)
	assert.Equal(t, `"soy" (ser, present, first person singular)`, f.Used)
	assert.Equal(t, `"estoy" (estar, present, first person singular)`, f.Expected)
	assert.Equal(t, Explanation(TagSerVsEstar), f.Explanation)
	assert.Contains(t, f.Message(), "You used \"soy\"")

	assert.Empty(t, c.VerbFeedback(estoy, "xyzzy"))
}

func TestPronounFeedback(t *testing.T) {
	c, idx := newTestClassifier(t)
	lo := sectionFor(t, idx, "pronouns.direct_object.lo")

	feedback := c.PronounFeedback(lo, "yo")
	require.Len(t, feedback, 2)
	assert.Equal(t, TagCategory, feedback[0].Tag)
	assert.Equal(t, `"yo" (subject, first person singular)`, feedback[0].Used)
	assert.Equal(t, TagPerson, feedback[1].Tag)
}

func TestExplanation_EveryTag(t *testing.T) {
	for _, tag := range []Tag{TagSerVsEstar, TagWrongRoot, TagTense, TagConjugation, TagCategory, TagPerson} {
		assert.NotEmpty(t, Explanation(tag), tag)
	}
}

func TestExplainKey(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		expected string
		ok       bool
	}{
		{name: "verb tag", key: "verb/ser-vs-estar", expected: Explanation(TagSerVsEstar), ok: true},
		{name: "pronoun tag", key: "pronoun/category", expected: Explanation(TagCategory), ok: true},
		{name: "unknown tag", key: "verb/mood"},
		{name: "unknown family", key: "noun/tense"},
		{name: "note key", key: "verbs.estar.notes.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, ok := ExplainKey(tt.key)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, text)
		})
	}
}
