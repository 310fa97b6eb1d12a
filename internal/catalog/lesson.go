package catalog

import "time"

// Category is one of the fixed topics a lesson belongs to.
type Category string

const (
	CategoryPsychology   Category = "Psychology"
	CategoryTechnology   Category = "Technology"
	CategoryProductivity Category = "Productivity"
)

// AllCategories returns the known categories in display order.
func AllCategories() []Category {
	return []Category{CategoryPsychology, CategoryTechnology, CategoryProductivity}
}

// Lesson is a short reading unit in the catalog.
//
// CompletedAt is nil until the lesson is completed; re-completing a lesson
// overwrites it, so only the most recent completion is kept.
type Lesson struct {
	ID           int        `json:"Id"`
	Category     Category   `json:"category"`
	Title        string     `json:"title"`
	Content      string     `json:"content"`
	Tags         []string   `json:"tags"`
	DurationSecs int        `json:"duration"`
	Difficulty   int        `json:"difficulty"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

// DurationMinutes returns the reading duration rounded up to whole minutes.
func (l *Lesson) DurationMinutes() int {
	if l.DurationSecs <= 0 {
		return 0
	}
	return (l.DurationSecs + 59) / 60
}

// Completed reports whether the lesson has been completed at least once.
func (l *Lesson) Completed() bool {
	return l.CompletedAt != nil
}

// clone returns a deep copy so callers never alias internal state.
func (l *Lesson) clone() Lesson {
	c := *l
	c.Tags = append([]string(nil), l.Tags...)
	if l.CompletedAt != nil {
		t := *l.CompletedAt
		c.CompletedAt = &t
	}
	return c
}
