package postgres

import (
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestLearnerRepo_IsAuthorized(t *testing.T) {
	tests := []struct {
		name          string
		userID        int64
		mockRows      *sqlmock.Rows
		mockError     error
		expectedAuth  bool
		expectedError bool
	}{
		{
			name:          "authorized user",
			userID:        123,
			mockRows:      sqlmock.NewRows([]string{"authorized"}).AddRow(true),
			mockError:     nil,
			expectedAuth:  true,
			expectedError: false,
		},
		{
			name:          "unauthorized user",
			userID:        456,
			mockRows:      sqlmock.NewRows([]string{"authorized"}).AddRow(false),
			mockError:     nil,
			expectedAuth:  false,
			expectedError: false,
		},
		{
			name:          "user not exists",
			userID:        789,
			mockRows:      nil,
			mockError:     sql.ErrNoRows,
			expectedAuth:  false,
			expectedError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewLearnerRepo(db)

			query := "SELECT authorized FROM users WHERE user_id = \\$1"

			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(tt.userID).WillReturnRows(tt.mockRows)
			}

			authorized, err := repo.IsAuthorized(tt.userID)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedAuth, authorized)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestLearnerRepo_AuthorizeUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLearnerRepo(db)

	userID := int64(123)

	mock.ExpectExec("INSERT INTO users").
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.AuthorizeUser(userID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLearnerRepo_EnsureUserExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLearnerRepo(db)

	userID := int64(123)

	mock.ExpectExec("INSERT INTO users").
		WithArgs(userID).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.EnsureUserExists(userID)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}


func TestLearnerRepo_SetCurrentLesson(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewLearnerRepo(db)

	mock.ExpectExec("INSERT INTO users \\(user_id, authorized, current_lesson\\)").
		WithArgs(int64(123), "ser-estar-1").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.SetCurrentLesson(123, "ser-estar-1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLearnerRepo_GetCurrentLesson(t *testing.T) {
	tests := []struct {
		name          string
		mockRows      *sqlmock.Rows
		mockError     error
		expected      string
		expectedError bool
	}{
		{
			name:     "lesson set",
			mockRows: sqlmock.NewRows([]string{"current_lesson"}).AddRow("tener-1"),
			expected: "tener-1",
		},
		{
			name:     "lesson null",
			mockRows: sqlmock.NewRows([]string{"current_lesson"}).AddRow(nil),
			expected: "",
		},
		{
			name:      "user not exists",
			mockError: sql.ErrNoRows,
			expected:  "",
		},
		{
			name:          "database error",
			mockError:     fmt.Errorf("connection refused"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewLearnerRepo(db)

			query := "SELECT current_lesson FROM users WHERE user_id = \\$1"
			if tt.mockError != nil {
				mock.ExpectQuery(query).WithArgs(int64(123)).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WithArgs(int64(123)).WillReturnRows(tt.mockRows)
			}

			lesson, err := repo.GetCurrentLesson(123)

			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, lesson)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
