package domain

import "time"

// LessonSummary is the analytics snapshot computed from a lesson's logs
type LessonSummary struct {
	LessonID        string                `json:"lesson_id"`
	Total           int                   `json:"total"`
	Correct         []Submission          `json:"correct"`
	Incorrect       []IncorrectSubmission `json:"incorrect"`
	Sentences       []SentenceStats       `json:"sentences"`
	ErrorCategories map[string]int        `json:"error_categories"`
	Verbs           MistakeBreakdown      `json:"verbs"`
	Pronouns        MistakeBreakdown      `json:"pronouns"`
}

// Accuracy returns the share of correct submissions, 0 when empty
func (s LessonSummary) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(len(s.Correct)) / float64(s.Total)
}

// IncorrectSubmission is a wrong attempt enriched with what was expected
type IncorrectSubmission struct {
	Submission
	Expected   []string `json:"expected"`
	References []string `json:"references"`
}

// SentenceStats holds per-sentence attempt statistics
type SentenceStats struct {
	Sentence        int         `json:"sentence"`
	TotalSections   int         `json:"total_sections"`
	Attempts        map[int]int `json:"attempts"`
	FirstTryCorrect int         `json:"first_try_correct"`
	Missed          []int       `json:"missed"`
}

// MistakeBreakdown aggregates classifier output for one grammatical family
type MistakeBreakdown struct {
	Total       int                       `json:"total"`
	Tags        map[string]int            `json:"tags"`
	Transitions map[string]map[string]int `json:"transitions"`
	Examples    map[string][]ExamplePair  `json:"examples"`
}

// ExamplePair is a concrete wrong/expected surface pair
type ExamplePair struct {
	Wrong    string `json:"wrong"`
	Expected string `json:"expected"`
	Count    int    `json:"count"`
}

// StoredSummary is a lesson summary persisted for a learner
type StoredSummary struct {
	ID        int
	UserID    int64
	LessonID  string
	CreatedAt time.Time
	Summary   LessonSummary
}

// Overview aggregates several lesson summaries
type Overview struct {
	Lessons         int            `json:"lessons"`
	Correct         int            `json:"correct"`
	Incorrect       int            `json:"incorrect"`
	Accuracy        float64        `json:"accuracy"`
	ErrorCategories map[string]int `json:"error_categories"`
	TopTransitions  []Transition   `json:"top_transitions"`
}

// Transition is a counted wrong->expected attribute change
type Transition struct {
	Family    string `json:"family"`
	Dimension string `json:"dimension"`
	Key       string `json:"key"`
	Count     int    `json:"count"`
}
