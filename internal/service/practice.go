package service

import (
	"errors"
	"fmt"
	"sync"

	"traductor/internal/catalog"
	"traductor/internal/domain"
	"traductor/internal/mixup"
	"traductor/internal/repository"
	"traductor/internal/session"

	"go.uber.org/zap"
)

var (
	ErrNoActiveLesson = errors.New("no active lesson")
	ErrUnknownLesson  = errors.New("unknown lesson")
)

// LessonMemory remembers which lesson a learner is working on
type LessonMemory interface {
	SetCurrentLesson(userID int64, lessonID string) error
	GetCurrentLesson(userID int64) (string, error)
}

// Outcome is a judged answer plus what the learner should see next
type Outcome struct {
	session.Result
	// Next is the following sentence after one was completed.
	Next *session.Prompt
	// Summary is set when the answer completed the lesson.
	Summary *domain.LessonSummary
}

// learnerState is guarded by its own mutex so learners never wait on each other
type learnerState struct {
	mu      sync.Mutex
	tracker *mixup.Tracker
	session *session.Session
}

// PracticeService runs lesson sessions for many learners
type PracticeService struct {
	catalog     *catalog.Catalog
	memory      LessonMemory
	mixupRepo   repository.MixupRepository
	summaryRepo repository.SummaryRepository
	logger      *zap.Logger

	mu       sync.Mutex
	learners map[int64]*learnerState
}

// NewPracticeService creates a new practice service
func NewPracticeService(
	cat *catalog.Catalog,
	memory LessonMemory,
	mixupRepo repository.MixupRepository,
	summaryRepo repository.SummaryRepository,
	logger *zap.Logger,
) *PracticeService {
	return &PracticeService{
		catalog:     cat,
		memory:      memory,
		mixupRepo:   mixupRepo,
		summaryRepo: summaryRepo,
		logger:      logger,
		learners:    make(map[int64]*learnerState),
	}
}

// Lessons returns the catalog's lessons in order
func (s *PracticeService) Lessons() []domain.Lesson {
	return s.catalog.Lessons()
}

// Describe returns the grammar note or mistake explanation behind an
// error-category key, or "" when the key is unknown
func (s *PracticeService) Describe(key string) string {
	return session.Describe(s.catalog, key)
}

// StartLesson begins (or restarts) a lesson for a learner
func (s *PracticeService) StartLesson(userID int64, lessonID string) (session.Prompt, error) {
	st := s.learner(userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	if err := s.start(userID, st, lessonID); err != nil {
		return session.Prompt{}, err
	}
	if err := s.memory.SetCurrentLesson(userID, lessonID); err != nil {
		s.logger.Error("Failed to remember current lesson",
			zap.Int64("user_id", userID),
			zap.String("lesson_id", lessonID),
			zap.Error(err))
	}

	p, _ := st.session.Prompt()
	return p, nil
}

// Prompt returns the learner's position, resuming the remembered lesson
// after a restart
func (s *PracticeService) Prompt(userID int64) (session.Prompt, error) {
	st := s.learner(userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, err := s.active(userID, st)
	if err != nil {
		return session.Prompt{}, err
	}
	p, ok := sess.Prompt()
	if !ok {
		return session.Prompt{}, ErrNoActiveLesson
	}
	return p, nil
}

// Submit judges an answer. A completed lesson is saved and forgotten.
func (s *PracticeService) Submit(userID int64, text string) (Outcome, error) {
	st := s.learner(userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, err := s.active(userID, st)
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{Result: sess.Submit(text)}
	if !out.Judged() {
		return out, ErrNoActiveLesson
	}

	switch {
	case out.LessonComplete:
		sum := s.finish(userID, st)
		out.Summary = &sum
	case out.SentenceAdvanced:
		if p, ok := sess.Prompt(); ok {
			out.Next = &p
		}
	}
	return out, nil
}

// Forgive marks one of the learner's wrong answers as correct
func (s *PracticeService) Forgive(userID int64, submissionID string) (domain.MixupReversal, error) {
	st := s.learner(userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.session == nil {
		return domain.MixupReversal{}, ErrNoActiveLesson
	}
	return st.session.Forgive(submissionID)
}

// Hint returns answer choices for the active section
func (s *PracticeService) Hint(userID int64) ([]string, error) {
	st := s.learner(userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	sess, err := s.active(userID, st)
	if err != nil {
		return nil, err
	}
	return sess.Hint(), nil
}

// Finish ends the active lesson early and stores its summary
func (s *PracticeService) Finish(userID int64) (domain.LessonSummary, error) {
	st := s.learner(userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.session == nil {
		return domain.LessonSummary{}, ErrNoActiveLesson
	}
	if _, ok := st.session.Lesson(); !ok {
		return domain.LessonSummary{}, ErrNoActiveLesson
	}

	st.session.MarkComplete()
	return s.finish(userID, st), nil
}

// Mixups returns the learner's mixup rows, optionally for one expected token
func (s *PracticeService) Mixups(userID int64, expected string) []domain.MixupRow {
	st := s.learner(userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	return s.tracker(userID, st).Query(expected)
}

// ClearMixups empties the learner's mixup table
func (s *PracticeService) ClearMixups(userID int64) {
	st := s.learner(userID)
	st.mu.Lock()
	defer st.mu.Unlock()

	s.tracker(userID, st).Clear()
}

func (s *PracticeService) learner(userID int64) *learnerState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.learners[userID]
	if !ok {
		st = &learnerState{}
		s.learners[userID] = st
	}
	return st
}

func (s *PracticeService) tracker(userID int64, st *learnerState) *mixup.Tracker {
	if st.tracker == nil {
		logger := s.logger.With(zap.Int64("user_id", userID))
		st.tracker = mixup.NewTracker(&mixupStore{repo: s.mixupRepo, userID: userID}, logger)
	}
	return st.tracker
}

func (s *PracticeService) start(userID int64, st *learnerState, lessonID string) error {
	if _, ok := s.catalog.Lesson(lessonID); !ok {
		return fmt.Errorf("%w: %s", ErrUnknownLesson, lessonID)
	}
	if st.session == nil {
		logger := s.logger.With(zap.Int64("user_id", userID))
		st.session = session.New(s.catalog, s.tracker(userID, st), logger)
	}
	return st.session.Start(lessonID)
}

// active returns the learner's session with a lesson in progress
func (s *PracticeService) active(userID int64, st *learnerState) (*session.Session, error) {
	if st.session != nil {
		if _, ok := st.session.Lesson(); ok && !st.session.IsLessonComplete() {
			return st.session, nil
		}
		return nil, ErrNoActiveLesson
	}

	lessonID, err := s.memory.GetCurrentLesson(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get current lesson: %w", err)
	}
	if lessonID == "" {
		return nil, ErrNoActiveLesson
	}
	if err := s.start(userID, st, lessonID); err != nil {
		if errors.Is(err, ErrUnknownLesson) {
			s.logger.Warn("Remembered lesson is no longer in the catalog",
				zap.Int64("user_id", userID),
				zap.String("lesson_id", lessonID))
			return nil, ErrNoActiveLesson
		}
		return nil, err
	}
	s.logger.Info("Resumed remembered lesson",
		zap.Int64("user_id", userID),
		zap.String("lesson_id", lessonID))
	return st.session, nil
}

// finish stores the summary of the session's lesson and forgets it. Storage
// failures are logged; the learner still gets the summary.
func (s *PracticeService) finish(userID int64, st *learnerState) domain.LessonSummary {
	sum := st.session.Summary()

	if err := s.summaryRepo.SaveSummary(userID, sum); err != nil {
		s.logger.Error("Failed to save lesson summary",
			zap.Int64("user_id", userID),
			zap.String("lesson_id", sum.LessonID),
			zap.Error(err))
	}
	if err := s.memory.SetCurrentLesson(userID, ""); err != nil {
		s.logger.Error("Failed to clear current lesson",
			zap.Int64("user_id", userID),
			zap.Error(err))
	}
	return sum
}

// mixupStore adapts a MixupRepository to one learner's mixup.Store
type mixupStore struct {
	repo   repository.MixupRepository
	userID int64
}

func (m *mixupStore) Load() (domain.MixupTable, error) {
	return m.repo.LoadMixups(m.userID)
}

func (m *mixupStore) Save(table domain.MixupTable) error {
	return m.repo.SaveMixups(m.userID, table)
}
