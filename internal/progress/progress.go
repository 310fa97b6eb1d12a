package progress

import "time"

const (
	// ScoreHistoryCap is the per-category sliding window size: only the
	// most recent scores are kept, oldest evicted first.
	ScoreHistoryCap = 10

	// MinDifficulty and MaxDifficulty bound the preferred difficulty.
	MinDifficulty = 1.0
	MaxDifficulty = 5.0

	// DifficultyStep is the fixed adjustment applied per qualifying result.
	DifficultyStep = 0.5

	// RaiseThreshold and LowerThreshold delimit the performance band.
	// Above RaiseThreshold difficulty goes up, below LowerThreshold it
	// goes down, and anything in between leaves it untouched.
	RaiseThreshold = 80
	LowerThreshold = 60

	// MasteryThreshold is the category average that counts as mastered.
	MasteryThreshold = 85

	// WeeklyLessonGoal is the lesson count that fills the weekly goal ring.
	WeeklyLessonGoal = 7

	// weeklyAverageWindow is how many recent scores feed the weekly average.
	weeklyAverageWindow = 6
)

// CategoryScores holds the bounded score history for one category.
// Categories are kept in first-seen order so pooled aggregates are stable.
type CategoryScores struct {
	Category string `json:"category"`
	Scores   []int  `json:"scores"`
}

// Average returns the mean of the recorded scores, or 0 if there are none.
func (c *CategoryScores) Average() float64 {
	if len(c.Scores) == 0 {
		return 0
	}
	sum := 0
	for _, s := range c.Scores {
		sum += s
	}
	return float64(sum) / float64(len(c.Scores))
}

// Progress is the single learner record.
type Progress struct {
	Streak              int              `json:"streak"`
	LastActivity        time.Time        `json:"lastActivity"`
	TotalLessons        int              `json:"totalLessons"`
	CategoryScores      []CategoryScores `json:"categoryScores"`
	PreferredDifficulty float64          `json:"preferredDifficulty"`
}

// Scores returns the score history for a category, or nil if none recorded.
func (p *Progress) Scores(category string) []int {
	for i := range p.CategoryScores {
		if p.CategoryScores[i].Category == category {
			return p.CategoryScores[i].Scores
		}
	}
	return nil
}

// clone returns a deep copy so callers never alias internal state.
func (p *Progress) clone() Progress {
	c := *p
	c.CategoryScores = make([]CategoryScores, len(p.CategoryScores))
	for i, cs := range p.CategoryScores {
		cs.Scores = append([]int(nil), cs.Scores...)
		c.CategoryScores[i] = cs
	}
	return c
}

// WeeklyStats is the aggregate view backing the progress report.
type WeeklyStats struct {
	WeeklyLessonsCompleted int
	WeeklyQuizAverage      float64
	TopicsMastered         int
	WeeklyGoalProgress     float64
}
