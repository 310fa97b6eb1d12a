package progress

import (
	"sync"
	"time"
)

// Tracker owns the learner's mutable progress record.
// All reads return defensive copies; all mutators are serialized by a mutex.
type Tracker struct {
	mu  sync.Mutex
	rec Progress
	now func() time.Time
}

// NewTracker creates a tracker seeded with the given record.
func NewTracker(initial Progress) *Tracker {
	return &Tracker{
		rec: initial.clone(),
		now: time.Now,
	}
}

// SetNowFunc overrides the clock. For tests.
func (t *Tracker) SetNowFunc(now func() time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = now
}

// Snapshot returns a copy of the current record.
func (t *Tracker) Snapshot() Progress {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rec.clone()
}

// Restore replaces the record wholesale, e.g. from a saved snapshot.
func (t *Tracker) Restore(rec Progress) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rec = rec.clone()
}

// UpdateStreak advances the consecutive-day streak. The comparison is by
// calendar date, not timestamp:
//
//   - same calendar date as LastActivity: no-op, the streak was already
//     credited today
//   - LastActivity was exactly yesterday: streak += 1
//   - anything else (gap of two or more days, or first activity): reset to 1
//
// LastActivity is stamped only when the streak changes.
func (t *Tracker) UpdateStreak() Progress {
	t.mu.Lock()
	defer t.mu.Unlock()

	now := t.now()
	if !t.rec.LastActivity.IsZero() && sameDay(now, t.rec.LastActivity) {
		return t.rec.clone()
	}

	if !t.rec.LastActivity.IsZero() && sameDay(now.AddDate(0, 0, -1), t.rec.LastActivity) {
		t.rec.Streak++
	} else {
		t.rec.Streak = 1
	}
	t.rec.LastActivity = now

	return t.rec.clone()
}

// IncrementLessonsCompleted bumps the lifetime lesson counter.
func (t *Tracker) IncrementLessonsCompleted() Progress {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.rec.TotalLessons++
	t.rec.LastActivity = t.now()
	return t.rec.clone()
}

// UpdateCategoryScore appends score to the category's history, creating the
// history on first sight. The history is a sliding window: once it exceeds
// ScoreHistoryCap entries the oldest is evicted.
func (t *Tracker) UpdateCategoryScore(category string, score int) Progress {
	t.mu.Lock()
	defer t.mu.Unlock()

	cs := t.history(category)
	cs.Scores = append(cs.Scores, score)
	if len(cs.Scores) > ScoreHistoryCap {
		cs.Scores = cs.Scores[len(cs.Scores)-ScoreHistoryCap:]
	}
	return t.rec.clone()
}

// AdjustDifficulty nudges the preferred difficulty by a fixed step based on
// quiz performance: above RaiseThreshold it goes up while below the maximum,
// below LowerThreshold it goes down while above the minimum, and anything in
// the [LowerThreshold, RaiseThreshold] band is a no-op. Borderline results
// can oscillate the value by one step per call; there is deliberately no
// dead-band beyond that gap.
func (t *Tracker) AdjustDifficulty(performance int) Progress {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch {
	case performance > RaiseThreshold && t.rec.PreferredDifficulty < MaxDifficulty:
		t.rec.PreferredDifficulty += DifficultyStep
	case performance < LowerThreshold && t.rec.PreferredDifficulty > MinDifficulty:
		t.rec.PreferredDifficulty -= DifficultyStep
	}
	return t.rec.clone()
}

// history returns the mutable score history for category, creating it at the
// end of the list on first sight so first-seen order is preserved.
func (t *Tracker) history(category string) *CategoryScores {
	for i := range t.rec.CategoryScores {
		if t.rec.CategoryScores[i].Category == category {
			return &t.rec.CategoryScores[i]
		}
	}
	t.rec.CategoryScores = append(t.rec.CategoryScores, CategoryScores{Category: category})
	return &t.rec.CategoryScores[len(t.rec.CategoryScores)-1]
}

// sameDay reports whether a and b fall on the same calendar date in local time.
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
