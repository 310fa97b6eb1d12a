package quiz

import (
	"fmt"
	"math"
	"sync"
	"time"
)

// weekWindow is the trailing period considered "this week".
const weekWindow = 7 * 24 * time.Hour

// NotFoundError indicates no quiz exists with the requested ID.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("quiz %d not found", e.ID)
}

// NoQuizForLessonError indicates no quiz is attached to the requested lesson.
type NoQuizForLessonError struct {
	LessonID int
}

func (e *NoQuizForLessonError) Error() string {
	return fmt.Sprintf("no quiz for lesson %d", e.LessonID)
}

// Service holds the quizzes and grades submitted answer sets.
// All returned quizzes are copies; mutating them does not touch the store.
type Service struct {
	mu      sync.Mutex
	quizzes []Quiz
	now     func() time.Time
}

// NewService creates a quiz service over the given quizzes.
func NewService(quizzes []Quiz) *Service {
	s := &Service{
		quizzes: make([]Quiz, 0, len(quizzes)),
		now:     time.Now,
	}
	for i := range quizzes {
		s.quizzes = append(s.quizzes, quizzes[i].clone())
	}
	return s
}

// SetNowFunc overrides the clock. For tests.
func (s *Service) SetNowFunc(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// All returns every quiz.
func (s *Service) All() []Quiz {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Quiz, 0, len(s.quizzes))
	for i := range s.quizzes {
		out = append(out, s.quizzes[i].clone())
	}
	return out
}

// ByID returns the quiz with the given ID.
func (s *Service) ByID(id int) (Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.find(id)
	if q == nil {
		return Quiz{}, &NotFoundError{ID: id}
	}
	return q.clone(), nil
}

// ByLesson returns the quiz attached to the given lesson. Each lesson has
// exactly one quiz; if that invariant is ever broken, the first match wins.
func (s *Service) ByLesson(lessonID int) (Quiz, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.quizzes {
		if s.quizzes[i].LessonID == lessonID {
			return s.quizzes[i].clone(), nil
		}
	}
	return Quiz{}, &NoQuizForLessonError{LessonID: lessonID}
}

// Submit grades an answer set against the quiz's answer key and records the
// outcome on the quiz. answers is aligned index-for-index with the questions;
// positions missing from a short submission count as incorrect, and extra
// positions are ignored. Score is round(100 * correct / total).
func (s *Service) Submit(id int, answers []int) (*Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := s.find(id)
	if q == nil {
		return nil, &NotFoundError{ID: id}
	}

	correct := 0
	for i := range q.Questions {
		if i < len(answers) && answers[i] == q.Questions[i].CorrectAnswer {
			correct++
		}
	}

	total := len(q.Questions)
	score := 0
	if total > 0 {
		score = int(math.Round(100 * float64(correct) / float64(total)))
	}

	t := s.now()
	q.Score = &score
	q.CompletedAt = &t
	q.UserAnswers = append([]int(nil), answers...)

	return &Result{
		Quiz:           q.clone(),
		CorrectAnswers: correct,
		TotalQuestions: total,
		Score:          score,
	}, nil
}

// Results returns all graded quizzes.
func (s *Service) Results() []Quiz {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Quiz
	for i := range s.quizzes {
		if s.quizzes[i].CompletedAt != nil {
			out = append(out, s.quizzes[i].clone())
		}
	}
	return out
}

// CompletedThisWeek returns quizzes graded within the trailing seven-day
// window ending now. Both bounds are inclusive.
func (s *Service) CompletedThisWeek() []Quiz {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	weekAgo := now.Add(-weekWindow)

	var out []Quiz
	for i := range s.quizzes {
		at := s.quizzes[i].CompletedAt
		if at == nil {
			continue
		}
		if !at.Before(weekAgo) && !at.After(now) {
			out = append(out, s.quizzes[i].clone())
		}
	}
	return out
}

// SavedResult is the persisted grading outcome for one quiz.
type SavedResult struct {
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completedAt"`
	UserAnswers []int     `json:"userAnswers"`
}

// RestoreResults applies previously saved grading outcomes, keyed by quiz ID.
// Results for quizzes no longer present are ignored.
func (s *Service) RestoreResults(results map[int]SavedResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.quizzes {
		if r, ok := results[s.quizzes[i].ID]; ok {
			score := r.Score
			at := r.CompletedAt
			s.quizzes[i].Score = &score
			s.quizzes[i].CompletedAt = &at
			s.quizzes[i].UserAnswers = append([]int(nil), r.UserAnswers...)
		}
	}
}

// SavedResults returns the grading outcomes keyed by quiz ID, for saving.
func (s *Service) SavedResults() map[int]SavedResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[int]SavedResult)
	for i := range s.quizzes {
		q := &s.quizzes[i]
		if q.Score == nil || q.CompletedAt == nil {
			continue
		}
		out[q.ID] = SavedResult{
			Score:       *q.Score,
			CompletedAt: *q.CompletedAt,
			UserAnswers: append([]int(nil), q.UserAnswers...),
		}
	}
	return out
}

func (s *Service) find(id int) *Quiz {
	for i := range s.quizzes {
		if s.quizzes[i].ID == id {
			return &s.quizzes[i]
		}
	}
	return nil
}
