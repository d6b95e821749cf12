package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"traductor/internal/domain"
)

// SummaryRepo implements repository.SummaryRepository
type SummaryRepo struct {
	db *sql.DB
}

// NewSummaryRepo creates a new summary repository
func NewSummaryRepo(db *sql.DB) *SummaryRepo {
	return &SummaryRepo{db: db}
}

// SaveSummary stores a finished lesson summary
func (r *SummaryRepo) SaveSummary(userID int64, summary domain.LessonSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	query := `
		INSERT INTO lesson_summaries (user_id, lesson_id, correct_count, incorrect_count, data)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err = r.db.Exec(query, userID, summary.LessonID, len(summary.Correct), len(summary.Incorrect), data)
	return err
}

// GetDaysWithSummaries returns days that have summaries with counts.
// Days are UTC calendar days.
func (r *SummaryRepo) GetDaysWithSummaries(userID int64, limit, offset int) ([]domain.Day, error) {
	query := `
		SELECT DATE(created_at AT TIME ZONE 'UTC') as day, COUNT(*) as count
		FROM lesson_summaries
		WHERE user_id = $1
		GROUP BY DATE(created_at AT TIME ZONE 'UTC')
		ORDER BY day DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []domain.Day
	for rows.Next() {
		var d domain.Day
		if err := rows.Scan(&d.Date, &d.SummaryCount); err != nil {
			return nil, err
		}
		days = append(days, d)
	}

	return days, rows.Err()
}

// GetTotalDaysCount returns total number of days with summaries
func (r *SummaryRepo) GetTotalDaysCount(userID int64) (int, error) {
	query := `
		SELECT COUNT(DISTINCT DATE(created_at AT TIME ZONE 'UTC'))
		FROM lesson_summaries
		WHERE user_id = $1
	`

	var count int
	err := r.db.QueryRow(query, userID).Scan(&count)
	return count, err
}

// GetSummariesByDate returns all summaries stored on a UTC day
func (r *SummaryRepo) GetSummariesByDate(userID int64, date time.Time) ([]domain.StoredSummary, error) {
	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	query := `
		SELECT id, user_id, lesson_id, created_at, data
		FROM lesson_summaries
		WHERE user_id = $1
			AND created_at >= $2 AND created_at < $3
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, userID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// GetRecentSummaries returns the latest summaries, newest first
func (r *SummaryRepo) GetRecentSummaries(userID int64, limit int) ([]domain.StoredSummary, error) {
	query := `
		SELECT id, user_id, lesson_id, created_at, data
		FROM lesson_summaries
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// CleanOldSummaries deletes summaries older than specified days
func (r *SummaryRepo) CleanOldSummaries(days int) error {
	query := `
		DELETE FROM lesson_summaries
		WHERE created_at < NOW() - INTERVAL '1 day' * $1
	`
	_, err := r.db.Exec(query, days)
	return err
}

func scanSummaries(rows *sql.Rows) ([]domain.StoredSummary, error) {
	var out []domain.StoredSummary
	for rows.Next() {
		var s domain.StoredSummary
		var data []byte
		if err := rows.Scan(&s.ID, &s.UserID, &s.LessonID, &s.CreatedAt, &data); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(data, &s.Summary); err != nil {
			return nil, fmt.Errorf("failed to decode summary %d: %w", s.ID, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
