package testutil

import (
	"time"

	"traductor/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockLearnerRepository is a mock for LearnerRepository
type MockLearnerRepository struct {
	mock.Mock
}

func (m *MockLearnerRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLearnerRepository) AuthorizeUser(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockLearnerRepository) EnsureUserExists(userID int64) error {
	args := m.Called(userID)
	return args.Error(0)
}

func (m *MockLearnerRepository) SetCurrentLesson(userID int64, lessonID string) error {
	args := m.Called(userID, lessonID)
	return args.Error(0)
}

func (m *MockLearnerRepository) GetCurrentLesson(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

// MockMixupRepository is a mock for MixupRepository
type MockMixupRepository struct {
	mock.Mock
}

func (m *MockMixupRepository) LoadMixups(userID int64) (domain.MixupTable, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.MixupTable), args.Error(1)
}

func (m *MockMixupRepository) SaveMixups(userID int64, table domain.MixupTable) error {
	args := m.Called(userID, table)
	return args.Error(0)
}

// MockSummaryRepository is a mock for SummaryRepository
type MockSummaryRepository struct {
	mock.Mock
}

func (m *MockSummaryRepository) SaveSummary(userID int64, summary domain.LessonSummary) error {
	args := m.Called(userID, summary)
	return args.Error(0)
}

func (m *MockSummaryRepository) GetDaysWithSummaries(userID int64, limit, offset int) ([]domain.Day, error) {
	args := m.Called(userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Day), args.Error(1)
}

func (m *MockSummaryRepository) GetTotalDaysCount(userID int64) (int, error) {
	args := m.Called(userID)
	return args.Int(0), args.Error(1)
}

func (m *MockSummaryRepository) GetSummariesByDate(userID int64, date time.Time) ([]domain.StoredSummary, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StoredSummary), args.Error(1)
}

func (m *MockSummaryRepository) GetRecentSummaries(userID int64, limit int) ([]domain.StoredSummary, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StoredSummary), args.Error(1)
}

func (m *MockSummaryRepository) CleanOldSummaries(days int) error {
	args := m.Called(days)
	return args.Error(0)
}
