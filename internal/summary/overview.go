package summary

import (
	"cmp"

	"traductor/internal/domain"
	"traductor/internal/mistakes"

	"golang.org/x/exp/slices"
)

// TopTransitions caps Overview.TopTransitions
const TopTransitions = 10

// Merge folds several lesson summaries into one overview
func Merge(summaries []domain.LessonSummary) domain.Overview {
	o := domain.Overview{
		Lessons:         len(summaries),
		ErrorCategories: map[string]int{},
		TopTransitions:  []domain.Transition{},
	}

	counts := make(map[domain.Transition]int)
	for _, s := range summaries {
		o.Correct += len(s.Correct)
		o.Incorrect += len(s.Incorrect)
		for key, n := range s.ErrorCategories {
			o.ErrorCategories[key] += n
		}
		collect(counts, mistakes.FamilyVerb, s.Verbs)
		collect(counts, mistakes.FamilyPronoun, s.Pronouns)
	}

	if total := o.Correct + o.Incorrect; total > 0 {
		o.Accuracy = float64(o.Correct) / float64(total)
	}

	for tr, n := range counts {
		tr.Count = n
		o.TopTransitions = append(o.TopTransitions, tr)
	}
	slices.SortFunc(o.TopTransitions, func(a, b domain.Transition) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		if a.Family != b.Family {
			return cmp.Compare(a.Family, b.Family)
		}
		if a.Dimension != b.Dimension {
			return cmp.Compare(a.Dimension, b.Dimension)
		}
		return cmp.Compare(a.Key, b.Key)
	})
	if len(o.TopTransitions) > TopTransitions {
		o.TopTransitions = o.TopTransitions[:TopTransitions]
	}
	return o
}

func collect(counts map[domain.Transition]int, family string, b domain.MistakeBreakdown) {
	for dimension, keys := range b.Transitions {
		for key, n := range keys {
			counts[domain.Transition{Family: family, Dimension: dimension, Key: key}] += n
		}
	}
}
