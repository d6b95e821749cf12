// Package summary turns a lesson's submission and error logs into analytics.
package summary

import (
	"cmp"

	"traductor/internal/catalog"
	"traductor/internal/domain"
	"traductor/internal/grading"
	"traductor/internal/mistakes"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Build computes the summary of one lesson. Only submissions and error
// entries carrying the lesson's ID are considered; output depends on nothing
// but the arguments.
func Build(lesson domain.Lesson, classifier *mistakes.Classifier, subs []domain.Submission, errs []domain.ErrorEntry) domain.LessonSummary {
	s := domain.LessonSummary{
		LessonID:        lesson.ID,
		Correct:         []domain.Submission{},
		Incorrect:       []domain.IncorrectSubmission{},
		ErrorCategories: map[string]int{},
		Verbs:           newBreakdown(),
		Pronouns:        newBreakdown(),
	}

	incorrect := make(map[string]bool)
	for _, sub := range subs {
		if sub.LessonID != lesson.ID {
			continue
		}
		s.Total++
		if sub.IsCorrect {
			s.Correct = append(s.Correct, sub)
			continue
		}
		incorrect[sub.ID] = true

		entry := domain.IncorrectSubmission{Submission: sub, Expected: []string{}, References: []string{}}
		section, ok := sectionAt(lesson, sub.Sentence, sub.Section)
		if ok {
			if answers := grading.ExpectedAnswers(section); answers != nil {
				entry.Expected = answers
			}
			if keys := catalog.ReferenceKeys(section); keys != nil {
				entry.References = keys
			}
			if classifier != nil {
				for _, d := range classifier.Classify(section, sub.Input) {
					switch d.Family {
					case mistakes.FamilyVerb:
						addDiagnosis(&s.Verbs, d)
					case mistakes.FamilyPronoun:
						addDiagnosis(&s.Pronouns, d)
					}
				}
			}
		}
		s.Incorrect = append(s.Incorrect, entry)
	}

	for _, e := range errs {
		if e.LessonID != lesson.ID || !incorrect[e.SubmissionID] {
			continue
		}
		for _, key := range e.Keys {
			s.ErrorCategories[key]++
		}
	}

	s.Sentences = sentenceStats(lesson, subs)
	sortExamples(&s.Verbs)
	sortExamples(&s.Pronouns)
	return s
}

func sectionAt(lesson domain.Lesson, sentence, section int) (domain.Section, bool) {
	if sentence < 0 || sentence >= len(lesson.Sentences) {
		return domain.Section{}, false
	}
	sections := lesson.Sentences[sentence].Sections
	if section < 0 || section >= len(sections) {
		return domain.Section{}, false
	}
	return sections[section], true
}

type attempts struct {
	total   int
	correct int
	missed  bool
}

func sentenceStats(lesson domain.Lesson, subs []domain.Submission) []domain.SentenceStats {
	bySection := make(map[[2]int]*attempts)
	for _, sub := range subs {
		if sub.LessonID != lesson.ID {
			continue
		}
		k := [2]int{sub.Sentence, sub.Section}
		a, ok := bySection[k]
		if !ok {
			a = &attempts{}
			bySection[k] = a
		}
		a.total++
		if sub.IsCorrect {
			a.correct++
		} else {
			a.missed = true
		}
	}

	out := []domain.SentenceStats{}
	for i, sentence := range lesson.Sentences {
		total := catalog.GradableSections(sentence)
		if total == 0 {
			continue
		}
		st := domain.SentenceStats{Sentence: i, TotalSections: total, Attempts: map[int]int{}, Missed: []int{}}
		for j := range sentence.Sections {
			a, ok := bySection[[2]int{i, j}]
			if !ok {
				continue
			}
			st.Attempts[j] = a.total
			if a.total == 1 && a.correct == 1 {
				st.FirstTryCorrect++
			}
			if a.missed {
				st.Missed = append(st.Missed, j)
			}
		}
		out = append(out, st)
	}
	return out
}

func newBreakdown() domain.MistakeBreakdown {
	return domain.MistakeBreakdown{
		Tags:        map[string]int{},
		Transitions: map[string]map[string]int{},
		Examples:    map[string][]domain.ExamplePair{},
	}
}

func addDiagnosis(b *domain.MistakeBreakdown, d mistakes.Diagnosis) {
	b.Total++
	for _, tag := range d.Tags {
		b.Tags[string(tag)]++
	}
	for _, tr := range d.Transitions() {
		if b.Transitions[tr.Dimension] == nil {
			b.Transitions[tr.Dimension] = map[string]int{}
		}
		b.Transitions[tr.Dimension][tr.Key()]++

		key := ExampleKey(tr.Dimension, tr.Key())
		b.Examples[key] = addExample(b.Examples[key], d.Used.Surface, d.Expected.Surface)
	}
}

// ExampleKey is the Examples map key for a transition along a dimension
func ExampleKey(dimension, transition string) string {
	return dimension + ":" + transition
}

func addExample(pairs []domain.ExamplePair, wrong, expected string) []domain.ExamplePair {
	for i := range pairs {
		if pairs[i].Wrong == wrong && pairs[i].Expected == expected {
			pairs[i].Count++
			return pairs
		}
	}
	return append(pairs, domain.ExamplePair{Wrong: wrong, Expected: expected, Count: 1})
}

func sortExamples(b *domain.MistakeBreakdown) {
	for _, key := range maps.Keys(b.Examples) {
		slices.SortFunc(b.Examples[key], func(x, y domain.ExamplePair) int {
			if x.Count != y.Count {
				return cmp.Compare(y.Count, x.Count)
			}
			if x.Wrong != y.Wrong {
				return cmp.Compare(x.Wrong, y.Wrong)
			}
			return cmp.Compare(x.Expected, y.Expected)
		})
	}
}
