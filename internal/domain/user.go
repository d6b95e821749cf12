package domain

import "time"

// Learner represents a bot user
type Learner struct {
	UserID        int64
	Authorized    bool
	CurrentLesson string
	CreatedAt     time.Time
}
