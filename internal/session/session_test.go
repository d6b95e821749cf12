package session

import (
	"errors"
	"os"
	"testing"
	"time"

	"traductor/internal/catalog"
	"traductor/internal/domain"
	"traductor/internal/mistakes"
	"traductor/internal/mixup"
	"traductor/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scenarioLessons = `{
  "lessons": [
    {
      "id": "scenario",
      "title": "Of the house",
      "sentences": [
        {
          "english": "The book of the house",
          "sections": [
            {"english": "The book"},
            {"english": "of", "word": "prepositions.de", "references": {"prepositions.de": [0]}},
            {"english": "the house", "words": ["articles.la", "nouns.casa"]}
          ]
        }
      ]
    },
    {"id": "empty", "title": "Nothing to do", "sentences": [{"english": "...", "sections": [{"english": "..."}]}]}
  ]
}`

func scenarioCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	vocabulary, err := os.ReadFile("../catalog/content/vocabulary.json")
	require.NoError(t, err)
	c, err := catalog.Load(vocabulary, []byte(scenarioLessons))
	require.NoError(t, err)
	return c
}

func newSession(t *testing.T, c *catalog.Catalog) (*Session, *mixup.Tracker) {
	t.Helper()
	tracker := mixup.NewTracker(mixup.NewMemoryStore(), testutil.NewTestLogger())
	s := New(c, tracker, testutil.NewTestLogger())
	clock := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s, tracker
}

func TestSession_Scenario(t *testing.T) {
	s, tracker := newSession(t, scenarioCatalog(t))
	require.NoError(t, s.Start("scenario"))

	r := s.Submit("por")
	assert.False(t, r.Correct)
	assert.False(t, r.SentenceAdvanced)
	assert.Equal(t, []string{"de"}, r.Expected)
	assert.Equal(t, 1, tracker.Table()["de"]["por"])
	require.Len(t, r.Notes, 1)
	assert.Equal(t, "De marks possession and origin: el libro de la casa.", r.Notes[0].Text)

	r = s.Submit("de")
	assert.True(t, r.Correct)
	assert.False(t, r.SentenceAdvanced)
	assert.Empty(t, r.Notes)

	r = s.Submit("la casa")
	assert.True(t, r.Correct)
	assert.True(t, r.SentenceAdvanced)
	assert.True(t, r.LessonComplete)
	assert.True(t, s.IsLessonComplete())

	r = s.Submit("la casa")
	assert.False(t, r.Judged())
	assert.Len(t, s.Submissions(), 3)
}

func TestSession_SubmitBeforeStart(t *testing.T) {
	s, _ := newSession(t, scenarioCatalog(t))

	r := s.Submit("de")

	assert.Equal(t, Result{}, r)
	assert.False(t, s.IsLessonComplete())
	assert.Empty(t, s.Hint())
	_, ok := s.Prompt()
	assert.False(t, ok)
}

func TestSession_StartUnknownLesson(t *testing.T) {
	s, _ := newSession(t, scenarioCatalog(t))

	err := s.Start("missing")

	assert.True(t, errors.Is(err, ErrUnknownLesson))
	_, ok := s.Lesson()
	assert.False(t, ok)
}

func TestSession_ErrorLog(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	s, tracker := newSession(t, c)
	require.NoError(t, s.Start("ser-estar-1"))

	r := s.Submit("soy")

	assert.False(t, r.Correct)
	assert.Equal(t, []mistakes.Tag{mistakes.TagSerVsEstar}, r.Verb.Tags)
	assert.True(t, r.Pronoun.Empty())
	require.Len(t, r.Feedback, 1)
	assert.Contains(t, r.Feedback[0].Message(), `"soy" (ser, present, first person singular)`)
	require.Len(t, r.Notes, 1)
	assert.Equal(t, "verbs.estar.notes.1", r.Notes[0].Key)
	assert.Equal(t, "Estar describes how something is right now: moods, conditions and states.", r.Notes[0].Text)

	errs := s.Errors()
	require.Len(t, errs, 1)
	assert.Equal(t, r.Submission.ID, errs[0].SubmissionID)
	assert.Equal(t, []string{"verbs.estar.notes.1", "verb/ser-vs-estar"}, errs[0].Keys)
	assert.Equal(t, 1, tracker.Table()["estoy"]["soy"])
}

func TestSession_EmptyAnswerRecordsNoMixup(t *testing.T) {
	s, tracker := newSession(t, scenarioCatalog(t))
	require.NoError(t, s.Start("scenario"))

	r := s.Submit("  ")

	assert.False(t, r.Correct)
	assert.True(t, r.Judged())
	assert.Empty(t, tracker.Table())
	assert.Len(t, s.Errors(), 1)
}

func TestSession_Forgive(t *testing.T) {
	s, tracker := newSession(t, scenarioCatalog(t))
	require.NoError(t, s.Start("scenario"))
	wrong := s.Submit("por")
	require.False(t, wrong.Correct)

	reversal, err := s.Forgive(wrong.Submission.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.MixupReversal{SubmissionID: wrong.Submission.ID, Expected: "de", Wrong: "por"}, reversal)
	assert.Empty(t, tracker.Table())
	assert.Empty(t, s.Errors())
	assert.True(t, s.Submissions()[0].IsCorrect)
	assert.Equal(t, []domain.MixupReversal{reversal}, s.Reversals())

	p, ok := s.Prompt()
	require.True(t, ok)
	assert.Equal(t, 1, p.Active, "forgiving does not move progress")

	sum := s.Summary()
	assert.Len(t, sum.Correct, 1)
	assert.Empty(t, sum.Incorrect)
	assert.Empty(t, sum.ErrorCategories)
}

func TestSession_ForgiveErrors(t *testing.T) {
	s, _ := newSession(t, scenarioCatalog(t))
	require.NoError(t, s.Start("scenario"))
	right := s.Submit("de")
	require.True(t, right.Correct)

	_, err := s.Forgive("nope")
	assert.True(t, errors.Is(err, ErrUnknownSubmission))

	_, err = s.Forgive(right.Submission.ID)
	assert.True(t, errors.Is(err, ErrAlreadyCorrect))
	assert.Empty(t, s.Reversals())
}

func TestSession_WalkDefaultLesson(t *testing.T) {
	c, err := catalog.Default()
	require.NoError(t, err)
	s, _ := newSession(t, c)
	require.NoError(t, s.Start("prepositions-1"))

	steps := []struct {
		input    string
		advanced bool
	}{
		{"de", false},
		{"la casa", true},
		{"el libro es", false},
		{"para", false},
		{"mi", false},
		{"madre", true},
	}
	for _, step := range steps {
		r := s.Submit(step.input)
		require.True(t, r.Correct, step.input)
		assert.Equal(t, step.advanced, r.SentenceAdvanced, step.input)
	}
	assert.True(t, s.IsLessonComplete())

	sum := s.Summary()
	assert.Equal(t, 6, sum.Total)
	assert.Equal(t, 1.0, sum.Accuracy())
}

func TestSession_StartResets(t *testing.T) {
	s, tracker := newSession(t, scenarioCatalog(t))
	require.NoError(t, s.Start("scenario"))
	s.Submit("por")

	require.NoError(t, s.Start("scenario"))

	assert.Empty(t, s.Submissions())
	assert.Empty(t, s.Errors())
	assert.Equal(t, 1, tracker.Table()["de"]["por"], "mixups outlive a lesson")
}

func TestSession_MarkComplete(t *testing.T) {
	s, _ := newSession(t, scenarioCatalog(t))
	require.NoError(t, s.Start("empty"))
	assert.False(t, s.IsLessonComplete())

	s.MarkComplete()

	assert.True(t, s.IsLessonComplete())
}

func TestSession_SubmissionIDsAreOrdered(t *testing.T) {
	s, _ := newSession(t, scenarioCatalog(t))
	require.NoError(t, s.Start("scenario"))
	s.Submit("por")
	s.Submit("en")

	subs := s.Submissions()
	require.Len(t, subs, 2)
	assert.Less(t, subs[0].ID, subs[1].ID)
	assert.NotEqual(t, subs[0].ID, subs[1].ID)
}

func TestDescribe(t *testing.T) {
	s, _ := newSession(t, scenarioCatalog(t))

	tests := []struct {
		name     string
		key      string
		expected string
	}{
		{name: "note key", key: "verbs.ser.notes.0", expected: "Ser describes what something is: identity, origin, profession and lasting traits."},
		{name: "verb tag", key: "verb/ser-vs-estar", expected: mistakes.Explanation(mistakes.TagSerVsEstar)},
		{name: "pronoun tag", key: "pronoun/person", expected: mistakes.Explanation(mistakes.TagPerson)},
		{name: "stale note", key: "verbs.ser.notes.9", expected: ""},
		{name: "unknown", key: "grammar", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.Describe(tt.key))
		})
	}
}
