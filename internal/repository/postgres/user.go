package postgres

import (
	"database/sql"
)

// LearnerRepo implements repository.LearnerRepository
type LearnerRepo struct {
	db *sql.DB
}

// NewLearnerRepo creates a new learner repository
func NewLearnerRepo(db *sql.DB) *LearnerRepo {
	return &LearnerRepo{db: db}
}

// IsAuthorized checks if learner is authorized
func (r *LearnerRepo) IsAuthorized(userID int64) (bool, error) {
	var authorized bool
	query := `SELECT authorized FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&authorized)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return authorized, nil
}

// AuthorizeUser marks learner as authorized
func (r *LearnerRepo) AuthorizeUser(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, TRUE)
		ON CONFLICT (user_id)
		DO UPDATE SET authorized = TRUE
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// EnsureUserExists creates learner if not exists
func (r *LearnerRepo) EnsureUserExists(userID int64) error {
	query := `
		INSERT INTO users (user_id, authorized)
		VALUES ($1, FALSE)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID)
	return err
}

// SetCurrentLesson remembers the lesson a learner is working on.
// An empty lessonID clears it.
func (r *LearnerRepo) SetCurrentLesson(userID int64, lessonID string) error {
	query := `
		INSERT INTO users (user_id, authorized, current_lesson)
		VALUES ($1, FALSE, NULLIF($2, ''))
		ON CONFLICT (user_id)
		DO UPDATE SET current_lesson = NULLIF($2, '')
	`
	_, err := r.db.Exec(query, userID, lessonID)
	return err
}

// GetCurrentLesson returns the remembered lesson, empty when none
func (r *LearnerRepo) GetCurrentLesson(userID int64) (string, error) {
	var lesson sql.NullString
	query := `SELECT current_lesson FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&lesson)

	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	return lesson.String, nil
}
