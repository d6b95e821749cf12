package service

import (
	"fmt"
	"time"

	"traductor/internal/domain"
	"traductor/internal/repository"
	"traductor/internal/summary"

	"go.uber.org/zap"
)

const (
	daysPageSize   = 7
	overviewWindow = 50
)

// StatsService handles lesson history, the overview and cleanup
type StatsService struct {
	summaryRepo   repository.SummaryRepository
	retentionDays int
	logger        *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(summaryRepo repository.SummaryRepository, retentionDays int, logger *zap.Logger) *StatsService {
	return &StatsService{
		summaryRepo:   summaryRepo,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// CleanupOldData removes summaries older than the retention period
func (s *StatsService) CleanupOldData() error {
	s.logger.Info("Starting cleanup of old lesson summaries", zap.Int("retention_days", s.retentionDays))

	err := s.summaryRepo.CleanOldSummaries(s.retentionDays)
	if err != nil {
		s.logger.Error("Failed to cleanup old lesson summaries", zap.Error(err))
		return err
	}

	s.logger.Info("Cleanup completed successfully")
	return nil
}

// GetDaysList returns paginated list of days with summary counts
func (s *StatsService) GetDaysList(userID int64, page int) ([]domain.Day, int, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * daysPageSize
	days, err := s.summaryRepo.GetDaysWithSummaries(userID, daysPageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	totalDays, err := s.summaryRepo.GetTotalDaysCount(userID)
	if err != nil {
		return nil, 0, err
	}

	totalPages := (totalDays + daysPageSize - 1) / daysPageSize
	if totalPages == 0 {
		totalPages = 1
	}

	return days, totalPages, nil
}

// GetSummariesByDate returns the summaries stored on a day given as YYYYMMDD
func (s *StatsService) GetSummariesByDate(userID int64, dateStr string) ([]domain.StoredSummary, error) {
	date, err := time.Parse("20060102", dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}

	return s.summaryRepo.GetSummariesByDate(userID, date)
}

// Overview merges the learner's most recent lesson summaries
func (s *StatsService) Overview(userID int64) (domain.Overview, error) {
	stored, err := s.summaryRepo.GetRecentSummaries(userID, overviewWindow)
	if err != nil {
		return domain.Overview{}, err
	}

	summaries := make([]domain.LessonSummary, 0, len(stored))
	for _, st := range stored {
		summaries = append(summaries, st.Summary)
	}
	return summary.Merge(summaries), nil
}
