package repository

import (
	"time"

	"traductor/internal/domain"
)

// LearnerRepository defines learner data operations
type LearnerRepository interface {
	IsAuthorized(userID int64) (bool, error)
	AuthorizeUser(userID int64) error
	EnsureUserExists(userID int64) error
	SetCurrentLesson(userID int64, lessonID string) error
	GetCurrentLesson(userID int64) (string, error)
}

// MixupRepository stores one mixup table per learner
type MixupRepository interface {
	LoadMixups(userID int64) (domain.MixupTable, error)
	SaveMixups(userID int64, table domain.MixupTable) error
}

// SummaryRepository is the sink for finished lesson summaries
type SummaryRepository interface {
	SaveSummary(userID int64, summary domain.LessonSummary) error
	GetDaysWithSummaries(userID int64, limit, offset int) ([]domain.Day, error)
	GetTotalDaysCount(userID int64) (int, error)
	GetSummariesByDate(userID int64, date time.Time) ([]domain.StoredSummary, error)
	GetRecentSummaries(userID int64, limit int) ([]domain.StoredSummary, error)
	CleanOldSummaries(days int) error
}
