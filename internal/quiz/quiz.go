package quiz

import "time"

// Question is a single multiple-choice question.
// CorrectAnswer is a zero-based index into Options.
type Question struct {
	Text          string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Quiz is the question set attached to a single lesson.
//
// Score, CompletedAt, and UserAnswers are set together when the quiz is
// graded. Re-submission overwrites them; last write wins.
type Quiz struct {
	ID          int        `json:"Id"`
	LessonID    int        `json:"lessonId"`
	Questions   []Question `json:"questions"`
	Score       *int       `json:"score,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
	UserAnswers []int      `json:"userAnswers,omitempty"`
}

// Completed reports whether the quiz has been graded at least once.
func (q *Quiz) Completed() bool {
	return q.CompletedAt != nil
}

// clone returns a deep copy so callers never alias internal state.
func (q *Quiz) clone() Quiz {
	c := *q
	c.Questions = make([]Question, len(q.Questions))
	for i, question := range q.Questions {
		question.Options = append([]string(nil), question.Options...)
		c.Questions[i] = question
	}
	if q.Score != nil {
		sc := *q.Score
		c.Score = &sc
	}
	if q.CompletedAt != nil {
		t := *q.CompletedAt
		c.CompletedAt = &t
	}
	c.UserAnswers = append([]int(nil), q.UserAnswers...)
	return c
}

// Result is the outcome of grading a submitted answer set.
type Result struct {
	Quiz           Quiz
	CorrectAnswers int
	TotalQuestions int
	Score          int
}
