package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/fast-microlearn-frost/internal/catalog"
	"github.com/apper-canvas/fast-microlearn-frost/internal/quiz"
)

func TestLoad(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, d.Lessons)
	assert.Equal(t, len(d.Lessons), len(d.Quizzes), "one quiz per lesson")
	assert.Equal(t, 3.0, d.Progress.PreferredDifficulty)
	assert.Zero(t, d.Progress.Streak)
	assert.True(t, d.Progress.LastActivity.IsZero())
}

func TestLoad_EveryLessonHasAQuiz(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	byLesson := make(map[int]quiz.Quiz, len(d.Quizzes))
	for _, q := range d.Quizzes {
		byLesson[q.LessonID] = q
	}
	for _, l := range d.Lessons {
		q, ok := byLesson[l.ID]
		require.Truef(t, ok, "lesson %d has no quiz", l.ID)
		assert.NotEmpty(t, q.Questions)
	}
}

func TestLoad_AnswerKeysInsideOptions(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	for _, q := range d.Quizzes {
		for i, question := range q.Questions {
			assert.GreaterOrEqualf(t, question.CorrectAnswer, 0, "quiz %d question %d", q.ID, i)
			assert.Lessf(t, question.CorrectAnswer, len(question.Options), "quiz %d question %d", q.ID, i)
			assert.GreaterOrEqual(t, len(question.Options), 2)
		}
	}
}

func TestLoad_KnownCategoriesOnly(t *testing.T) {
	d, err := Load()
	require.NoError(t, err)

	known := make(map[catalog.Category]bool)
	for _, c := range catalog.AllCategories() {
		known[c] = true
	}
	for _, l := range d.Lessons {
		assert.Truef(t, known[l.Category], "lesson %d has unknown category %q", l.ID, l.Category)
	}
}

func TestCheckQuizzes_RejectsBadAnswerKey(t *testing.T) {
	lessons := []catalog.Lesson{{ID: 1}}
	quizzes := []quiz.Quiz{{
		ID:       1,
		LessonID: 1,
		Questions: []quiz.Question{
			{Text: "q", Options: []string{"a", "b"}, CorrectAnswer: 2},
		},
	}}

	err := checkQuizzes(quizzes, lessons)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "correctAnswer")
}

func TestCheckQuizzes_RejectsDuplicateLessonQuiz(t *testing.T) {
	lessons := []catalog.Lesson{{ID: 1}}
	quizzes := []quiz.Quiz{
		{ID: 1, LessonID: 1, Questions: []quiz.Question{{Options: []string{"a", "b"}}}},
		{ID: 2, LessonID: 1, Questions: []quiz.Question{{Options: []string{"a", "b"}}}},
	}

	err := checkQuizzes(quizzes, lessons)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "more than one quiz")
}

func TestCheckLessons_RejectsDuplicateID(t *testing.T) {
	err := checkLessons([]catalog.Lesson{{ID: 3}, {ID: 3}})
	require.Error(t, err)
}
