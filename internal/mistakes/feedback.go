package mistakes

import (
	"fmt"
	"strings"

	"traductor/internal/domain"
)

var explanations = map[Tag]string{
	TagSerVsEstar:  "Use ser for what something is (identity, origin, profession); use estar for where or how it is right now.",
	TagWrongRoot:   "That form belongs to a different verb than the one this sentence needs.",
	TagTense:       "The verb is right but the tense is not; check when the action happens.",
	TagConjugation: "The verb and tense are right but the ending does not match the subject.",
	TagCategory:    "That pronoun plays a different role in the sentence (subject, object or possessive).",
	TagPerson:      "That pronoun refers to a different person or number.",
}

// Explanation returns the fixed explanatory sentence for a tag
func Explanation(tag Tag) string {
	return explanations[tag]
}

// ExplainKey returns the explanation behind a synthetic category key such as
// "verb/tense"
func ExplainKey(key string) (string, bool) {
	family, tag, ok := strings.Cut(key, "/")
	if !ok || (family != FamilyVerb && family != FamilyPronoun) {
		return "", false
	}
	text := Explanation(Tag(tag))
	return text, text != ""
}

// Feedback pairs what the learner used with what was expected for one tag
type Feedback struct {
	Tag         Tag
	Used        string
	Expected    string
	Explanation string
}

// Message renders the feedback as a single human-readable line
func (f Feedback) Message() string {
	return fmt.Sprintf("You used %s, expected %s. %s", f.Used, f.Expected, f.Explanation)
}

// BuildFeedback produces one Feedback per tag of a diagnosis
func BuildFeedback(d Diagnosis) []Feedback {
	describe := describeVerb
	if d.Family == FamilyPronoun {
		describe = describePronoun
	}

	out := make([]Feedback, 0, len(d.Tags))
	for _, tag := range d.Tags {
		out = append(out, Feedback{
			Tag:         tag,
			Used:        describe(d.Used),
			Expected:    describe(d.Expected),
			Explanation: Explanation(tag),
		})
	}
	return out
}

// VerbFeedback classifies a wrong answer as a verb mistake and explains it
func (c *Classifier) VerbFeedback(section domain.Section, input string) []Feedback {
	return BuildFeedback(c.ClassifyVerb(section, input))
}

// PronounFeedback classifies a wrong answer as a pronoun mistake and explains it
func (c *Classifier) PronounFeedback(section domain.Section, input string) []Feedback {
	return BuildFeedback(c.ClassifyPronoun(section, input))
}

func describeVerb(w domain.Word) string {
	return describe(w.Surface, w.Root, w.Tense, w.Person)
}

func describePronoun(w domain.Word) string {
	return describe(w.Surface, w.Category, w.Person)
}

// describe renders "surface (a, b, c)" skipping unknown attributes
func describe(surface string, attrs ...string) string {
	var known []string
	for _, a := range attrs {
		if a != "" {
			known = append(known, a)
		}
	}
	if len(known) == 0 {
		return fmt.Sprintf("%q", surface)
	}
	return fmt.Sprintf("%q (%s)", surface, strings.Join(known, ", "))
}
