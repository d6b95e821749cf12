package session

import (
	"traductor/internal/domain"
	"traductor/internal/grading"
)

// PromptSection is one section of the current sentence as shown to a learner
type PromptSection struct {
	Index      int
	English    string
	Gradable   bool
	Translated bool
	// Answer is filled once the section is translated.
	Answer string
}

// Prompt is the current position in the lesson
type Prompt struct {
	LessonID       string
	Title          string
	Sentence       int
	TotalSentences int
	English        string
	Sections       []PromptSection
	// Active is the index of the section awaiting an answer, -1 when none.
	Active int
}

// Prompt describes the current sentence. It returns false before Start or
// when the lesson has no gradable sentence.
func (s *Session) Prompt() (Prompt, bool) {
	if !s.started || s.progress.Sentence() < 0 {
		return Prompt{}, false
	}

	i := s.progress.Sentence()
	sentence := s.lesson.Sentences[i]
	p := Prompt{
		LessonID:       s.lesson.ID,
		Title:          s.lesson.Title,
		Sentence:       i,
		TotalSentences: len(s.lesson.Sentences),
		English:        sentence.English,
		Active:         -1,
	}

	translated := make(map[int]bool)
	for _, st := range s.progress.Sections() {
		translated[st.Index] = st.Translated
	}
	if active, ok := s.progress.Active(); ok {
		p.Active = active.Index
	}

	for j, section := range sentence.Sections {
		ps := PromptSection{
			Index:      j,
			English:    section.English,
			Gradable:   grading.IsGradable(section),
			Translated: translated[j],
		}
		if ps.Translated {
			ps.Answer = DisplayAnswer(section)
		}
		p.Sections = append(p.Sections, ps)
	}
	return p, true
}

// Hint returns answer choices for the active section: the display answer
// plus distractors, in alphabetical order.
func (s *Session) Hint() []string {
	if !s.started {
		return nil
	}
	active, ok := s.progress.Active()
	if !ok {
		return nil
	}

	choices := []string{DisplayAnswer(active.Section)}
	for _, w := range s.classifier.Distractors(active.Section) {
		choices = append(choices, w.Surface)
	}
	return sortedSurfaces(choices)
}

// DisplayAnswer is the answer shown for a section: the first accepted
// phrase, else the translation's surface.
func DisplayAnswer(section domain.Section) string {
	if len(section.Accepted) > 0 {
		return section.Accepted[0]
	}
	return section.Translation.Surface()
}
