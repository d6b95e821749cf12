package testutil

import (
	"time"

	"traductor/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestDay creates a test day
func NewTestDay(date time.Time, summaryCount int) domain.Day {
	return domain.Day{
		Date:         date,
		SummaryCount: summaryCount,
	}
}

// NewTestSummary creates a lesson summary with the given verdict counts
func NewTestSummary(lessonID string, correct, incorrect int) domain.LessonSummary {
	s := domain.LessonSummary{
		LessonID:        lessonID,
		Total:           correct + incorrect,
		Correct:         make([]domain.Submission, correct),
		Incorrect:       make([]domain.IncorrectSubmission, incorrect),
		ErrorCategories: map[string]int{},
	}
	for i := range s.Correct {
		s.Correct[i] = domain.Submission{LessonID: lessonID, IsCorrect: true}
	}
	for i := range s.Incorrect {
		s.Incorrect[i] = domain.IncorrectSubmission{Submission: domain.Submission{LessonID: lessonID}}
	}
	return s
}

// NewTestStoredSummary wraps a summary as stored for a learner
func NewTestStoredSummary(id int, userID int64, summary domain.LessonSummary) domain.StoredSummary {
	return domain.StoredSummary{
		ID:        id,
		UserID:    userID,
		LessonID:  summary.LessonID,
		CreatedAt: time.Now(),
		Summary:   summary,
	}
}
