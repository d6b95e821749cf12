package service

import (
	"fmt"
	"testing"
	"time"

	"traductor/internal/domain"
	"traductor/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestStatsService_CleanupOldData(t *testing.T) {
	tests := []struct {
		name          string
		mockError     error
		expectedError bool
	}{
		{
			name:          "successful cleanup",
			mockError:     nil,
			expectedError: false,
		},
		{
			name:          "database error",
			mockError:     fmt.Errorf("db error"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockSummaryRepository)
			mockRepo.On("CleanOldSummaries", 90).Return(tt.mockError)

			logger := testutil.NewTestLogger()
			service := NewStatsService(mockRepo, 90, logger)

			err := service.CleanupOldData()

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestStatsService_GetDaysList(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		expectedOffset int
		totalDays      int
		expectedPages  int
		mockError      error
		expectedError  bool
	}{
		{
			name:           "first page",
			page:           1,
			expectedOffset: 0,
			totalDays:      10,
			expectedPages:  2,
		},
		{
			name:           "second page",
			page:           2,
			expectedOffset: 7,
			totalDays:      10,
			expectedPages:  2,
		},
		{
			name:           "invalid page defaults to first",
			page:           0,
			expectedOffset: 0,
			totalDays:      3,
			expectedPages:  1,
		},
		{
			name:           "no days still one page",
			page:           1,
			expectedOffset: 0,
			totalDays:      0,
			expectedPages:  1,
		},
		{
			name:           "database error",
			page:           1,
			expectedOffset: 0,
			mockError:      fmt.Errorf("db error"),
			expectedError:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockSummaryRepository)
			days := []domain.Day{testutil.NewTestDay(time.Now(), 2)}
			if tt.mockError != nil {
				mockRepo.On("GetDaysWithSummaries", int64(123), 7, tt.expectedOffset).Return(nil, tt.mockError)
			} else {
				mockRepo.On("GetDaysWithSummaries", int64(123), 7, tt.expectedOffset).Return(days, nil)
				mockRepo.On("GetTotalDaysCount", int64(123)).Return(tt.totalDays, nil)
			}

			service := NewStatsService(mockRepo, 90, testutil.NewTestLogger())

			result, pages, err := service.GetDaysList(123, tt.page)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, days, result)
				assert.Equal(t, tt.expectedPages, pages)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestStatsService_GetSummariesByDate(t *testing.T) {
	tests := []struct {
		name          string
		dateStr       string
		expectCall    bool
		expectedError bool
	}{
		{name: "valid date", dateStr: "20240315", expectCall: true},
		{name: "invalid date", dateStr: "2024-03-15", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockSummaryRepository)
			stored := []domain.StoredSummary{testutil.NewTestStoredSummary(1, 123, testutil.NewTestSummary("tener-1", 2, 1))}
			if tt.expectCall {
				mockRepo.On("GetSummariesByDate", int64(123), time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)).Return(stored, nil)
			}

			service := NewStatsService(mockRepo, 90, testutil.NewTestLogger())

			result, err := service.GetSummariesByDate(123, tt.dateStr)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, stored, result)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestStatsService_Overview(t *testing.T) {
	mockRepo := new(testutil.MockSummaryRepository)
	mockRepo.On("GetRecentSummaries", int64(123), mock.AnythingOfType("int")).Return([]domain.StoredSummary{
		testutil.NewTestStoredSummary(2, 123, testutil.NewTestSummary("tener-1", 3, 1)),
		testutil.NewTestStoredSummary(1, 123, testutil.NewTestSummary("ser-estar-1", 1, 3)),
	}, nil)

	service := NewStatsService(mockRepo, 90, testutil.NewTestLogger())

	o, err := service.Overview(123)

	assert.NoError(t, err)
	assert.Equal(t, 2, o.Lessons)
	assert.Equal(t, 4, o.Correct)
	assert.Equal(t, 4, o.Incorrect)
	assert.InDelta(t, 0.5, o.Accuracy, 1e-9)
	mockRepo.AssertExpectations(t)
}

func TestStatsService_OverviewError(t *testing.T) {
	mockRepo := new(testutil.MockSummaryRepository)
	mockRepo.On("GetRecentSummaries", int64(123), mock.Anything).Return(nil, fmt.Errorf("db error"))

	service := NewStatsService(mockRepo, 90, testutil.NewTestLogger())

	_, err := service.Overview(123)

	assert.Error(t, err)
}
