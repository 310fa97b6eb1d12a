package catalog

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// TodaysLessonCount is the number of lessons surfaced as today's picks.
const TodaysLessonCount = 3

// weekWindow is the trailing period considered "this week".
const weekWindow = 7 * 24 * time.Hour

// NotFoundError indicates no lesson exists with the requested ID.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("lesson %d not found", e.ID)
}

// Service holds the lesson catalog and records completions.
// All returned lessons are copies; mutating them does not touch the catalog.
type Service struct {
	mu      sync.Mutex
	lessons []Lesson
	now     func() time.Time
}

// NewService creates a catalog service over the given lessons.
// Catalog order is preserved for the lifetime of the service.
func NewService(lessons []Lesson) *Service {
	s := &Service{
		lessons: make([]Lesson, 0, len(lessons)),
		now:     time.Now,
	}
	for i := range lessons {
		s.lessons = append(s.lessons, lessons[i].clone())
	}
	return s
}

// SetNowFunc overrides the clock. For tests.
func (s *Service) SetNowFunc(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// All returns every lesson in catalog order.
func (s *Service) All() []Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyAll()
}

// ByID returns the lesson with the given ID.
func (s *Service) ByID(id int) (Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lessons {
		if s.lessons[i].ID == id {
			return s.lessons[i].clone(), nil
		}
	}
	return Lesson{}, &NotFoundError{ID: id}
}

// ByCategory returns lessons whose category matches name, ignoring case.
// An unknown category yields an empty slice, not an error.
func (s *Service) ByCategory(name string) []Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Lesson
	for i := range s.lessons {
		if strings.EqualFold(string(s.lessons[i].Category), name) {
			out = append(out, s.lessons[i].clone())
		}
	}
	return out
}

// Todays returns the recommended lessons for today: a fixed-size prefix of
// the catalog standing in for a real recommender.
func (s *Service) Todays() []Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := TodaysLessonCount
	if n > len(s.lessons) {
		n = len(s.lessons)
	}
	out := make([]Lesson, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, s.lessons[i].clone())
	}
	return out
}

// MarkCompleted stamps the lesson's completion time with the current time
// and returns the updated lesson. Re-completion overwrites the prior stamp.
func (s *Service) MarkCompleted(id int) (Lesson, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lessons {
		if s.lessons[i].ID == id {
			t := s.now()
			s.lessons[i].CompletedAt = &t
			return s.lessons[i].clone(), nil
		}
	}
	return Lesson{}, &NotFoundError{ID: id}
}

// Completed returns all completed lessons in catalog order.
func (s *Service) Completed() []Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Lesson
	for i := range s.lessons {
		if s.lessons[i].CompletedAt != nil {
			out = append(out, s.lessons[i].clone())
		}
	}
	return out
}

// Search returns lessons whose title, content, or any tag contains query,
// ignoring case.
func (s *Service) Search(query string) []Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()

	term := strings.ToLower(query)
	var out []Lesson
	for i := range s.lessons {
		if lessonMatches(&s.lessons[i], term) {
			out = append(out, s.lessons[i].clone())
		}
	}
	return out
}

// CompletedThisWeek returns lessons completed within the trailing seven-day
// window ending now. Both bounds are inclusive.
func (s *Service) CompletedThisWeek() []Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	weekAgo := now.Add(-weekWindow)

	var out []Lesson
	for i := range s.lessons {
		at := s.lessons[i].CompletedAt
		if at == nil {
			continue
		}
		if !at.Before(weekAgo) && !at.After(now) {
			out = append(out, s.lessons[i].clone())
		}
	}
	return out
}

// RestoreCompletions applies previously saved completion stamps, keyed by
// lesson ID. Stamps for lessons no longer in the catalog are ignored.
func (s *Service) RestoreCompletions(completions map[int]time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lessons {
		if at, ok := completions[s.lessons[i].ID]; ok {
			t := at
			s.lessons[i].CompletedAt = &t
		}
	}
}

// Completions returns the completion stamps keyed by lesson ID, for saving.
func (s *Service) Completions() map[int]time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[int]time.Time)
	for i := range s.lessons {
		if s.lessons[i].CompletedAt != nil {
			out[s.lessons[i].ID] = *s.lessons[i].CompletedAt
		}
	}
	return out
}

func (s *Service) copyAll() []Lesson {
	out := make([]Lesson, 0, len(s.lessons))
	for i := range s.lessons {
		out = append(out, s.lessons[i].clone())
	}
	return out
}

func lessonMatches(l *Lesson, term string) bool {
	if strings.Contains(strings.ToLower(l.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(l.Content), term) {
		return true
	}
	for _, tag := range l.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
