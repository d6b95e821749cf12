package summary

import (
	"encoding/json"
	"testing"
	"time"

	"traductor/internal/catalog"
	"traductor/internal/domain"
	"traductor/internal/mistakes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(t *testing.T) (domain.Lesson, *mistakes.Classifier) {
	t.Helper()
	c, err := catalog.Default()
	require.NoError(t, err)
	lesson, ok := c.Lesson("ser-estar-1")
	require.True(t, ok)
	return lesson, mistakes.NewClassifier(c.Index)
}

func sub(id string, sentence, section int, input string, correct bool) domain.Submission {
	return domain.Submission{
		ID:        id,
		LessonID:  "ser-estar-1",
		Sentence:  sentence,
		Section:   section,
		Input:     input,
		IsCorrect: correct,
		CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func logs() ([]domain.Submission, []domain.ErrorEntry) {
	other := sub("x", 0, 0, "nada", false)
	other.LessonID = "tener-1"

	subs := []domain.Submission{
		sub("a", 0, 0, "soy", false),
		sub("b", 0, 0, "estoy", true),
		sub("c", 0, 1, "cansado", true),
		sub("d", 1, 0, "está", false),
		sub("e", 1, 0, "es", true),
		other,
	}
	errs := []domain.ErrorEntry{
		{SubmissionID: "a", LessonID: "ser-estar-1", Keys: []string{"verbs.estar.notes.1", "verb/ser-vs-estar"}},
		{SubmissionID: "d", LessonID: "ser-estar-1", Sentence: 1, Keys: []string{"verbs.ser.notes.0", "verb/ser-vs-estar"}},
		{SubmissionID: "x", LessonID: "tener-1", Keys: []string{"verbs.tener.notes.0"}},
	}
	return subs, errs
}

func TestBuild(t *testing.T) {
	lesson, classifier := fixture(t)
	subs, errs := logs()

	s := Build(lesson, classifier, subs, errs)

	assert.Equal(t, "ser-estar-1", s.LessonID)
	assert.Equal(t, 5, s.Total)
	assert.Len(t, s.Correct, 3)
	require.Len(t, s.Incorrect, 2)
	assert.InDelta(t, 0.6, s.Accuracy(), 1e-9)

	assert.Equal(t, "a", s.Incorrect[0].ID)
	assert.Equal(t, []string{"estoy"}, s.Incorrect[0].Expected)
	assert.Equal(t, []string{"verbs.estar.notes.1"}, s.Incorrect[0].References)
	assert.Equal(t, []string{"es", "ella es"}, s.Incorrect[1].Expected)

	assert.Equal(t, map[string]int{
		"verbs.estar.notes.1": 1,
		"verbs.ser.notes.0":   1,
		"verb/ser-vs-estar":   2,
	}, s.ErrorCategories)
}

func TestBuild_SentenceStats(t *testing.T) {
	lesson, classifier := fixture(t)
	subs, errs := logs()

	s := Build(lesson, classifier, subs, errs)

	require.Len(t, s.Sentences, 3)
	assert.Equal(t, domain.SentenceStats{
		Sentence:        0,
		TotalSections:   2,
		Attempts:        map[int]int{0: 2, 1: 1},
		FirstTryCorrect: 1,
		Missed:          []int{0},
	}, s.Sentences[0])
	assert.Equal(t, domain.SentenceStats{
		Sentence:        1,
		TotalSections:   2,
		Attempts:        map[int]int{0: 2},
		FirstTryCorrect: 0,
		Missed:          []int{0},
	}, s.Sentences[1])
	assert.Equal(t, 4, s.Sentences[2].TotalSections)
	assert.Empty(t, s.Sentences[2].Attempts)
	assert.Empty(t, s.Sentences[2].Missed)
}

func TestBuild_VerbBreakdown(t *testing.T) {
	lesson, classifier := fixture(t)
	subs, errs := logs()

	s := Build(lesson, classifier, subs, errs)

	assert.Equal(t, 2, s.Verbs.Total)
	assert.Equal(t, map[string]int{"ser-vs-estar": 2}, s.Verbs.Tags)
	assert.Equal(t, map[string]map[string]int{
		"root": {"ser->estar": 1, "estar->ser": 1},
	}, s.Verbs.Transitions)
	assert.Equal(t, []domain.ExamplePair{{Wrong: "soy", Expected: "estoy", Count: 1}},
		s.Verbs.Examples[ExampleKey("root", "ser->estar")])
	assert.Equal(t, []domain.ExamplePair{{Wrong: "está", Expected: "es", Count: 1}},
		s.Verbs.Examples[ExampleKey("root", "estar->ser")])

	assert.Equal(t, 0, s.Pronouns.Total)
	assert.Empty(t, s.Pronouns.Tags)
}

func TestBuild_RepeatedExample(t *testing.T) {
	lesson, classifier := fixture(t)
	subs := []domain.Submission{
		sub("a", 0, 0, "soy", false),
		sub("b", 0, 0, "Soy.", false),
		sub("c", 0, 0, "estás", false),
	}

	s := Build(lesson, classifier, subs, nil)

	assert.Equal(t, 3, s.Verbs.Total)
	assert.Equal(t, map[string]int{"ser-vs-estar": 2, "conjugation": 1}, s.Verbs.Tags)
	assert.Equal(t, []domain.ExamplePair{{Wrong: "soy", Expected: "estoy", Count: 2}},
		s.Verbs.Examples[ExampleKey("root", "ser->estar")])
	assert.Equal(t, 1, s.Verbs.Transitions["person"]["second person singular->first person singular"])
}

func TestBuild_IgnoresErrorsOfForgivenSubmissions(t *testing.T) {
	lesson, classifier := fixture(t)
	subs, errs := logs()
	subs[0].IsCorrect = true

	s := Build(lesson, classifier, subs, errs)

	assert.Equal(t, map[string]int{"verbs.ser.notes.0": 1, "verb/ser-vs-estar": 1}, s.ErrorCategories)
	assert.Equal(t, 1, s.Verbs.Total)
}

func TestBuild_Deterministic(t *testing.T) {
	lesson, classifier := fixture(t)
	subs, errs := logs()

	first, err := json.Marshal(Build(lesson, classifier, subs, errs))
	require.NoError(t, err)
	second, err := json.Marshal(Build(lesson, classifier, subs, errs))
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestBuild_Empty(t *testing.T) {
	lesson, classifier := fixture(t)

	s := Build(lesson, classifier, nil, nil)

	assert.Equal(t, 0, s.Total)
	assert.Equal(t, float64(0), s.Accuracy())
	assert.Empty(t, s.Correct)
	assert.Empty(t, s.Incorrect)
	assert.Empty(t, s.ErrorCategories)
	assert.Len(t, s.Sentences, 3)
}
