package progress

// WeeklyStats computes the aggregate view shown on the progress report.
//
// WeeklyLessonsCompleted caps the lifetime total at 5 rather than counting
// completions inside the week window.
// TODO: derive this from lesson completion timestamps instead of capping the
// lifetime total; the goal ring consumes this exact value today.
func (t *Tracker) WeeklyStats() WeeklyStats {
	t.mu.Lock()
	defer t.mu.Unlock()

	lessons := t.rec.TotalLessons
	if lessons > 5 {
		lessons = 5
	}

	goal := float64(lessons) / WeeklyLessonGoal * 100
	if goal > 100 {
		goal = 100
	}

	return WeeklyStats{
		WeeklyLessonsCompleted: lessons,
		WeeklyQuizAverage:      t.weeklyQuizAverage(),
		TopicsMastered:         t.topicsMastered(),
		WeeklyGoalProgress:     goal,
	}
}

// weeklyQuizAverage averages the most recent scores across all categories.
// Histories are pooled in category first-seen order, then the trailing
// weeklyAverageWindow entries of the pool are averaged. This is not a true
// chronological merge across categories; it mirrors the per-category windows.
func (t *Tracker) weeklyQuizAverage() float64 {
	var pooled []int
	for i := range t.rec.CategoryScores {
		pooled = append(pooled, t.rec.CategoryScores[i].Scores...)
	}
	if len(pooled) == 0 {
		return 0
	}
	if len(pooled) > weeklyAverageWindow {
		pooled = pooled[len(pooled)-weeklyAverageWindow:]
	}

	sum := 0
	for _, s := range pooled {
		sum += s
	}
	return float64(sum) / float64(len(pooled))
}

// topicsMastered counts categories whose average meets MasteryThreshold.
func (t *Tracker) topicsMastered() int {
	count := 0
	for i := range t.rec.CategoryScores {
		cs := &t.rec.CategoryScores[i]
		if len(cs.Scores) > 0 && cs.Average() >= MasteryThreshold {
			count++
		}
	}
	return count
}
