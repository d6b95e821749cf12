package service

import (
	"traductor/internal/repository"
)

// LearnerService handles authentication and the learner's current lesson
type LearnerService struct {
	learnerRepo repository.LearnerRepository
	botPassword string
}

// NewLearnerService creates a new learner service
func NewLearnerService(learnerRepo repository.LearnerRepository, botPassword string) *LearnerService {
	return &LearnerService{
		learnerRepo: learnerRepo,
		botPassword: botPassword,
	}
}

// CheckPassword verifies if provided password matches
func (s *LearnerService) CheckPassword(password string) bool {
	return password == s.botPassword
}

// IsAuthorized checks if learner is authorized
func (s *LearnerService) IsAuthorized(userID int64) (bool, error) {
	return s.learnerRepo.IsAuthorized(userID)
}

// AuthorizeUser authorizes a learner
func (s *LearnerService) AuthorizeUser(userID int64) error {
	return s.learnerRepo.AuthorizeUser(userID)
}

// EnsureUserExists creates learner record if doesn't exist
func (s *LearnerService) EnsureUserExists(userID int64) error {
	return s.learnerRepo.EnsureUserExists(userID)
}

// SetCurrentLesson remembers the lesson a learner is working on
func (s *LearnerService) SetCurrentLesson(userID int64, lessonID string) error {
	return s.learnerRepo.SetCurrentLesson(userID, lessonID)
}

// GetCurrentLesson returns the remembered lesson, empty when none
func (s *LearnerService) GetCurrentLesson(userID int64) (string, error) {
	return s.learnerRepo.GetCurrentLesson(userID)
}
