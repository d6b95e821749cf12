package domain

import "time"

// Submission is one judged attempt
type Submission struct {
	ID        string    `json:"id"`
	LessonID  string    `json:"lesson_id"`
	Sentence  int       `json:"sentence"`
	Section   int       `json:"section"`
	Input     string    `json:"input"`
	IsCorrect bool      `json:"is_correct"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorEntry records the error categories attached to an incorrect submission
type ErrorEntry struct {
	SubmissionID string   `json:"submission_id"`
	LessonID     string   `json:"lesson_id"`
	Sentence     int      `json:"sentence"`
	Section      int      `json:"section"`
	Keys         []string `json:"keys"`
}

// MixupReversal is emitted when a forgiven submission undoes its mixup
type MixupReversal struct {
	SubmissionID string `json:"submission_id"`
	Expected     string `json:"expected"`
	Wrong        string `json:"wrong"`
}
