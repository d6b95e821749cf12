package handler

import (
	"cmp"
	"fmt"
	"strings"

	"traductor/internal/domain"
	"traductor/internal/session"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const maxCategories = 5

func renderPrompt(p session.Prompt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📖 %s · sentence %d/%d\n\n", p.Title, p.Sentence+1, p.TotalSentences)
	fmt.Fprintf(&b, "%s\n\n", p.English)

	for _, s := range p.Sections {
		switch {
		case s.Translated:
			fmt.Fprintf(&b, "✅ %s → %s\n", s.English, s.Answer)
		case s.Index == p.Active:
			fmt.Fprintf(&b, "👉 %s\n", s.English)
		case s.Gradable:
			fmt.Fprintf(&b, "▫️ %s\n", s.English)
		default:
			fmt.Fprintf(&b, "    %s\n", s.English)
		}
	}

	if p.Active >= 0 {
		b.WriteString("\nType the Spanish for the 👉 part.")
	}
	return b.String()
}

func renderResult(res session.Result) string {
	if res.Correct {
		return "✅ Correct!"
	}

	var b strings.Builder
	b.WriteString("❌ Not quite.")
	if len(res.Expected) > 0 {
		fmt.Fprintf(&b, " Expected: %s", strings.Join(res.Expected, " / "))
	}
	for _, fb := range res.Feedback {
		fmt.Fprintf(&b, "\n\n💡 %s", fb.Message())
	}
	for _, n := range res.Notes {
		fmt.Fprintf(&b, "\n\n📘 %s", n.Text)
	}
	return b.String()
}

// describeFunc maps an error-category key to readable text, "" when unknown
type describeFunc func(key string) string

// categoryLine shows the key's text when it has one
func categoryLine(l countLine, describe describeFunc) string {
	if text := describe(l.key); text != "" {
		return fmt.Sprintf("• %s ×%d\n", text, l.count)
	}
	return fmt.Sprintf("• %s ×%d\n", l.key, l.count)
}

func renderSummary(s domain.LessonSummary, describe describeFunc) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🏁 Lesson finished: %s\n\n", s.LessonID)
	fmt.Fprintf(&b, "Correct: %d/%d (%.0f%%)\n", len(s.Correct), s.Total, s.Accuracy()*100)

	if lines := topCounts(s.ErrorCategories, maxCategories); len(lines) > 0 {
		b.WriteString("\nWhat tripped you up:\n")
		for _, l := range lines {
			b.WriteString(categoryLine(l, describe))
		}
	}
	writeBreakdown(&b, "Verb mistakes", s.Verbs)
	writeBreakdown(&b, "Pronoun mistakes", s.Pronouns)
	return strings.TrimRight(b.String(), "\n")
}

func writeBreakdown(b *strings.Builder, title string, m domain.MistakeBreakdown) {
	if m.Total == 0 {
		return
	}
	fmt.Fprintf(b, "\n%s (%d):\n", title, m.Total)
	for _, l := range topCounts(m.Tags, maxCategories) {
		fmt.Fprintf(b, "• %s ×%d\n", l.key, l.count)
	}
}

func renderMixups(rows []domain.MixupRow) string {
	if len(rows) == 0 {
		return "🔀 No mixups recorded yet."
	}

	var b strings.Builder
	b.WriteString("🔀 Your mixups (expected ← you wrote):\n\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "%s ← %s ×%d\n", r.Expected, r.Wrong, r.Count)
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderOverview(o domain.Overview, describe describeFunc) string {
	if o.Lessons == 0 {
		return "📊 No finished lessons yet."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📊 Last %d lessons\n\n", o.Lessons)
	fmt.Fprintf(&b, "Correct: %d, incorrect: %d (%.0f%%)\n", o.Correct, o.Incorrect, o.Accuracy*100)

	if lines := topCounts(o.ErrorCategories, maxCategories); len(lines) > 0 {
		b.WriteString("\nMost common trouble spots:\n")
		for _, l := range lines {
			b.WriteString(categoryLine(l, describe))
		}
	}
	if len(o.TopTransitions) > 0 {
		b.WriteString("\nFrequent confusions:\n")
		for _, tr := range o.TopTransitions {
			fmt.Fprintf(&b, "• %s %s: %s ×%d\n", tr.Family, tr.Dimension, tr.Key, tr.Count)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderStoredSummaries(list []domain.StoredSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📝 Lessons on this day (%d):\n\n", len(list))
	for i, s := range list {
		fmt.Fprintf(&b, "%d. %s %s: %d/%d correct\n",
			i+1, s.CreatedAt.Format("15:04"), s.LessonID, len(s.Summary.Correct), s.Summary.Total)
	}
	return strings.TrimRight(b.String(), "\n")
}

type countLine struct {
	key   string
	count int
}

// topCounts orders a histogram by count descending, then key
func topCounts(m map[string]int, limit int) []countLine {
	keys := maps.Keys(m)
	slices.SortFunc(keys, func(a, b string) int {
		if m[a] != m[b] {
			return cmp.Compare(m[b], m[a])
		}
		return cmp.Compare(a, b)
	})
	if len(keys) > limit {
		keys = keys[:limit]
	}

	lines := make([]countLine, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, countLine{key: k, count: m[k]})
	}
	return lines
}
