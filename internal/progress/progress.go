// Package progress tracks which sections of the current sentence have been
// translated and walks a lesson sentence by sentence.
package progress

import (
	"traductor/internal/domain"
	"traductor/internal/grading"
)

// SectionState is a gradable section paired with its translated flag
type SectionState struct {
	// Index is the position of the section in the original sentence.
	Index      int
	Section    domain.Section
	Translated bool
}

// Outcome is the result of one submission against the active section
type Outcome struct {
	Correct bool
	// SentenceComplete is set when the submission translated the last
	// pending section; the owner should then call Advance.
	SentenceComplete bool
	// Section is the original index of the judged section, -1 when none.
	Section int
}

// Tracker is the per-learner progress state machine
type Tracker struct {
	lesson   *domain.Lesson
	sentence int
	sections []SectionState
	marked   bool
}

// New creates an empty tracker
func New() *Tracker {
	return &Tracker{sentence: -1}
}

// Start enters a lesson at its first sentence with a gradable section
func (t *Tracker) Start(lesson domain.Lesson) {
	t.lesson = &lesson
	t.marked = false
	t.sections = nil
	t.sentence = -1

	if next := t.nextGradable(0); next >= 0 {
		t.enter(next)
	}
}

// Initialize builds progress for a sentence: its gradable sections in
// original order, all pending. Inert sections never appear.
func (t *Tracker) Initialize(sentence domain.Sentence) {
	t.sections = nil
	for i, s := range sentence.Sections {
		if grading.IsGradable(s) {
			t.sections = append(t.sections, SectionState{Index: i, Section: s})
		}
	}
}

// Active returns the first pending section
func (t *Tracker) Active() (SectionState, bool) {
	for _, s := range t.sections {
		if !s.Translated {
			return s, true
		}
	}
	return SectionState{}, false
}

// Submit judges input against the active section. Sections are completed
// strictly in order; a submission with no active section is a no-op.
func (t *Tracker) Submit(input string) Outcome {
	for i := range t.sections {
		if t.sections[i].Translated {
			continue
		}
		if !grading.Matches(t.sections[i].Section, input) {
			return Outcome{Section: t.sections[i].Index}
		}
		t.sections[i].Translated = true
		return Outcome{
			Correct:          true,
			SentenceComplete: t.IsSentenceComplete(),
			Section:          t.sections[i].Index,
		}
	}
	return Outcome{Section: -1}
}

// IsSentenceComplete reports whether every gradable section is translated
func (t *Tracker) IsSentenceComplete() bool {
	if len(t.sections) == 0 {
		return false
	}
	for _, s := range t.sections {
		if !s.Translated {
			return false
		}
	}
	return true
}

// Advance moves to the next sentence with a gradable section. It returns
// false and leaves the current sentence in place when there is none.
func (t *Tracker) Advance() bool {
	if t.lesson == nil {
		return false
	}
	next := t.nextGradable(t.sentence + 1)
	if next < 0 {
		return false
	}
	t.enter(next)
	return true
}

// IsLessonComplete is true on the lesson's last gradable sentence once all
// its sections are translated, or after MarkComplete.
func (t *Tracker) IsLessonComplete() bool {
	if t.marked {
		return true
	}
	if t.lesson == nil || t.sentence < 0 {
		return false
	}
	return t.nextGradable(t.sentence+1) < 0 && t.IsSentenceComplete()
}

// MarkComplete flags the lesson complete out of band
func (t *Tracker) MarkComplete() {
	t.marked = true
}

// Reset clears the lesson and all progress
func (t *Tracker) Reset() {
	*t = Tracker{sentence: -1}
}

// Lesson returns the lesson being tracked
func (t *Tracker) Lesson() (domain.Lesson, bool) {
	if t.lesson == nil {
		return domain.Lesson{}, false
	}
	return *t.lesson, true
}

// Sentence returns the index of the current sentence, -1 when none
func (t *Tracker) Sentence() int {
	return t.sentence
}

// Sections returns a copy of the current sentence's progress
func (t *Tracker) Sections() []SectionState {
	out := make([]SectionState, len(t.sections))
	copy(out, t.sections)
	return out
}

func (t *Tracker) enter(i int) {
	t.sentence = i
	t.Initialize(t.lesson.Sentences[i])
}

func (t *Tracker) nextGradable(from int) int {
	for i := from; i < len(t.lesson.Sentences); i++ {
		for _, s := range t.lesson.Sentences[i].Sections {
			if grading.IsGradable(s) {
				return i
			}
		}
	}
	return -1
}
