// Package session ties the grading engine together for one learner: it owns
// the progress state machine, the submission and error logs, and forwards
// wrong answers to the mixup tracker.
package session

import (
	"errors"
	"fmt"
	"time"

	"traductor/internal/catalog"
	"traductor/internal/domain"
	"traductor/internal/grading"
	"traductor/internal/mistakes"
	"traductor/internal/mixup"
	"traductor/internal/progress"
	"traductor/internal/summary"

	"github.com/samber/lo"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

var (
	ErrUnknownLesson     = errors.New("unknown lesson")
	ErrUnknownSubmission = errors.New("unknown submission")
	ErrAlreadyCorrect    = errors.New("submission is already correct")
)

// Result describes the outcome of one Submit
type Result struct {
	Correct bool
	// SentenceAdvanced is set when the answer completed its sentence.
	SentenceAdvanced bool
	LessonComplete   bool
	// Submission is the logged record; zero when nothing was judged.
	Submission domain.Submission
	Expected   []string
	Verb       mistakes.Diagnosis
	Pronoun    mistakes.Diagnosis
	Feedback   []mistakes.Feedback
	// Notes are the grammar notes the missed section references.
	Notes []domain.Note
}

// Judged reports whether the submission reached an active section
func (r Result) Judged() bool {
	return r.Submission.ID != ""
}

type recordedMixup struct {
	expected string
	wrong    string
}

// Session is the mutable state of one learner working through lessons.
// It is not safe for concurrent use.
type Session struct {
	catalog    *catalog.Catalog
	classifier *mistakes.Classifier
	mixups     *mixup.Tracker
	progress   *progress.Tracker
	logger     *zap.Logger
	now        func() time.Time

	lesson      domain.Lesson
	started     bool
	submissions []domain.Submission
	errors      []domain.ErrorEntry
	reversals   []domain.MixupReversal
	recorded    map[string]recordedMixup
}

// New creates a session over a catalog, recording mixups into tracker
func New(cat *catalog.Catalog, tracker *mixup.Tracker, logger *zap.Logger) *Session {
	return &Session{
		catalog:    cat,
		classifier: mistakes.NewClassifier(cat.Index),
		mixups:     tracker,
		progress:   progress.New(),
		logger:     logger,
		now:        time.Now,
		recorded:   make(map[string]recordedMixup),
	}
}

// Start enters a lesson, discarding the previous lesson's logs
func (s *Session) Start(lessonID string) error {
	lesson, ok := s.catalog.Lesson(lessonID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLesson, lessonID)
	}

	s.lesson = lesson
	s.started = true
	s.submissions = nil
	s.errors = nil
	s.reversals = nil
	s.recorded = make(map[string]recordedMixup)
	s.progress.Start(lesson)

	s.logger.Info("Lesson started",
		zap.String("lesson_id", lessonID),
		zap.Int("sentences", len(lesson.Sentences)))
	return nil
}

// Lesson returns the active lesson
func (s *Session) Lesson() (domain.Lesson, bool) {
	return s.lesson, s.started
}

// Submit judges text against the active section. Without an active section
// it returns a zero Result.
func (s *Session) Submit(text string) Result {
	if !s.started {
		return Result{}
	}
	active, ok := s.progress.Active()
	if !ok {
		return Result{}
	}
	sentence := s.progress.Sentence()

	out := s.progress.Submit(text)
	now := s.now()
	sub := domain.Submission{
		ID:        newID(now),
		LessonID:  s.lesson.ID,
		Sentence:  sentence,
		Section:   active.Index,
		Input:     text,
		IsCorrect: out.Correct,
		CreatedAt: now,
	}
	s.submissions = append(s.submissions, sub)

	res := Result{
		Correct:    out.Correct,
		Submission: sub,
		Expected:   grading.ExpectedAnswers(active.Section),
	}

	if !out.Correct {
		s.recordMistake(sub, active.Section, &res)
		return res
	}

	if out.SentenceComplete {
		res.SentenceAdvanced = true
		res.LessonComplete = s.progress.IsLessonComplete()
		if res.LessonComplete {
			s.logger.Info("Lesson complete",
				zap.String("lesson_id", s.lesson.ID),
				zap.Int("submissions", len(s.submissions)))
		} else {
			s.progress.Advance()
		}
	}
	return res
}

func (s *Session) recordMistake(sub domain.Submission, section domain.Section, res *Result) {
	if token := grading.Normalize(sub.Input); token != "" && len(res.Expected) > 0 {
		s.mixups.Record(res.Expected[0], token)
		s.recorded[sub.ID] = recordedMixup{expected: res.Expected[0], wrong: token}
	}

	keys := catalog.ReferenceKeys(section)
	res.Notes = catalog.Notes(s.catalog, section)
	for _, d := range s.classifier.Classify(section, sub.Input) {
		switch d.Family {
		case mistakes.FamilyVerb:
			res.Verb = d
		case mistakes.FamilyPronoun:
			res.Pronoun = d
		}
		keys = append(keys, d.Keys()...)
		res.Feedback = append(res.Feedback, mistakes.BuildFeedback(d)...)
	}

	s.errors = append(s.errors, domain.ErrorEntry{
		SubmissionID: sub.ID,
		LessonID:     sub.LessonID,
		Sentence:     sub.Sentence,
		Section:      sub.Section,
		Keys:         keys,
	})

	s.logger.Debug("Incorrect submission",
		zap.String("lesson_id", sub.LessonID),
		zap.Int("sentence", sub.Sentence),
		zap.Int("section", sub.Section),
		zap.Strings("keys", keys))
}

// Forgive marks a logged incorrect submission as correct after the fact. The
// error entry is dropped and any recorded mixup is reverted; the returned
// reversal is also kept in the session's reversal log. Progress is unchanged.
func (s *Session) Forgive(submissionID string) (domain.MixupReversal, error) {
	_, i, ok := lo.FindIndexOf(s.submissions, func(sub domain.Submission) bool {
		return sub.ID == submissionID
	})
	if !ok {
		return domain.MixupReversal{}, fmt.Errorf("%w: %s", ErrUnknownSubmission, submissionID)
	}
	if s.submissions[i].IsCorrect {
		return domain.MixupReversal{}, ErrAlreadyCorrect
	}

	s.submissions[i].IsCorrect = true
	s.errors = lo.Reject(s.errors, func(e domain.ErrorEntry, _ int) bool {
		return e.SubmissionID == submissionID
	})

	reversal := domain.MixupReversal{SubmissionID: submissionID}
	if m, ok := s.recorded[submissionID]; ok {
		s.mixups.Revert(m.expected, m.wrong)
		delete(s.recorded, submissionID)
		reversal.Expected = m.expected
		reversal.Wrong = m.wrong
	}
	s.reversals = append(s.reversals, reversal)

	s.logger.Info("Submission forgiven",
		zap.String("lesson_id", s.lesson.ID),
		zap.String("submission_id", submissionID))
	return reversal, nil
}

// IsLessonComplete reports whether the active lesson is finished
func (s *Session) IsLessonComplete() bool {
	return s.started && s.progress.IsLessonComplete()
}

// MarkComplete flags the active lesson as complete
func (s *Session) MarkComplete() {
	s.progress.MarkComplete()
}

// Summary aggregates the active lesson's logs
func (s *Session) Summary() domain.LessonSummary {
	return summary.Build(s.lesson, s.classifier, s.submissions, s.errors)
}

// Submissions returns a copy of the submission log
func (s *Session) Submissions() []domain.Submission {
	return append([]domain.Submission(nil), s.submissions...)
}

// Errors returns a copy of the error log
func (s *Session) Errors() []domain.ErrorEntry {
	return append([]domain.ErrorEntry(nil), s.errors...)
}

// Reversals returns the mixup reversals emitted by Forgive
func (s *Session) Reversals() []domain.MixupReversal {
	return append([]domain.MixupReversal(nil), s.reversals...)
}

// Describe returns the text behind an error-category key
func (s *Session) Describe(key string) string {
	return Describe(s.catalog, key)
}

// Describe returns the text behind an error-category key: the referenced note
// for note keys, the tag explanation for classifier keys, else "".
func Describe(cat *catalog.Catalog, key string) string {
	if note, ok := cat.Note(key); ok {
		return note.Text
	}
	if text, ok := mistakes.ExplainKey(key); ok {
		return text
	}
	return ""
}

// Classifier exposes the session's mistake classifier
func (s *Session) Classifier() *mistakes.Classifier {
	return s.classifier
}

func newID(t time.Time) string {
	id, err := ksuid.NewRandomWithTime(t)
	if err != nil {
		return ksuid.New().String()
	}
	return id.String()
}

// sortedSurfaces returns unique surfaces in alphabetical order
func sortedSurfaces(surfaces []string) []string {
	out := lo.Uniq(lo.Compact(surfaces))
	slices.Sort(out)
	return out
}
