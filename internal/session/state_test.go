package session

import (
	"context"
	"testing"
	"time"

	"github.com/apper-canvas/fast-microlearn-frost/internal/progress"
	"github.com/apper-canvas/fast-microlearn-frost/internal/quiz"
	"github.com/apper-canvas/fast-microlearn-frost/internal/store"
)

// memSnapshots is an in-memory SnapshotRepo for tests.
type memSnapshots struct {
	snaps []*store.Snapshot
}

func (m *memSnapshots) Save(_ context.Context, snap *store.Snapshot) error {
	m.snaps = append(m.snaps, snap)
	return nil
}

func (m *memSnapshots) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(m.snaps) == 0 {
		return nil, nil
	}
	return m.snaps[len(m.snaps)-1], nil
}

func (m *memSnapshots) Prune(_ context.Context, keep int) error {
	if len(m.snaps) > keep {
		m.snaps = m.snaps[len(m.snaps)-keep:]
	}
	return nil
}

// memAttempts is an in-memory AttemptRepo for tests.
type memAttempts struct {
	attempts []store.Attempt
}

func (m *memAttempts) Append(_ context.Context, a *store.Attempt) error {
	m.attempts = append(m.attempts, *a)
	return nil
}

func (m *memAttempts) Recent(_ context.Context, limit int) ([]store.Attempt, error) {
	out := append([]store.Attempt(nil), m.attempts...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestLoad_SeedsFromFixtures(t *testing.T) {
	s, err := Load(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if len(s.Catalog.All()) == 0 {
		t.Error("catalog is empty")
	}
	if got := s.Tracker.Snapshot().PreferredDifficulty; got != 3 {
		t.Errorf("seeded PreferredDifficulty = %v, want 3", got)
	}
}

func TestLoad_OverlaysSnapshot(t *testing.T) {
	ctx := context.Background()
	completedAt := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	snaps := &memSnapshots{snaps: []*store.Snapshot{{
		Data: store.SnapshotData{
			Progress:          progress.Progress{Streak: 6, TotalLessons: 11, PreferredDifficulty: 4},
			LessonCompletions: map[int]time.Time{1: completedAt},
			QuizResults: map[int]quiz.SavedResult{
				1: {Score: 100, CompletedAt: completedAt, UserAnswers: []int{1, 1, 0}},
			},
		},
	}}}

	s, err := Load(ctx, snaps, nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if got := s.Tracker.Snapshot().Streak; got != 6 {
		t.Errorf("restored Streak = %d, want 6", got)
	}
	l, err := s.Catalog.ByID(1)
	if err != nil {
		t.Fatal(err)
	}
	if l.CompletedAt == nil || !l.CompletedAt.Equal(completedAt) {
		t.Errorf("restored lesson completion = %v, want %v", l.CompletedAt, completedAt)
	}
	q, err := s.Quizzes.ByID(1)
	if err != nil {
		t.Fatal(err)
	}
	if q.Score == nil || *q.Score != 100 {
		t.Errorf("restored quiz score = %v, want 100", q.Score)
	}
}

func TestFinishQuiz_FansOut(t *testing.T) {
	ctx := context.Background()
	snaps := &memSnapshots{}
	attempts := &memAttempts{}

	s, err := Load(ctx, snaps, attempts)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	lesson, err := s.Catalog.ByID(1)
	if err != nil {
		t.Fatal(err)
	}
	res, err := s.Quizzes.Submit(1, []int{1, 1, 0})
	if err != nil {
		t.Fatal(err)
	}

	if err := s.FinishQuiz(ctx, lesson, res); err != nil {
		t.Fatalf("FinishQuiz error: %v", err)
	}

	rec := s.Tracker.Snapshot()
	if rec.TotalLessons != 1 {
		t.Errorf("TotalLessons = %d, want 1", rec.TotalLessons)
	}
	if rec.Streak != 1 {
		t.Errorf("Streak = %d, want 1", rec.Streak)
	}
	if scores := rec.Scores(string(lesson.Category)); len(scores) != 1 || scores[0] != res.Score {
		t.Errorf("category scores = %v, want [%d]", scores, res.Score)
	}

	updated, err := s.Catalog.ByID(1)
	if err != nil {
		t.Fatal(err)
	}
	if updated.CompletedAt == nil {
		t.Error("lesson not marked completed")
	}

	if len(attempts.attempts) != 1 {
		t.Fatalf("attempt log has %d entries, want 1", len(attempts.attempts))
	}
	if attempts.attempts[0].QuizID != 1 || attempts.attempts[0].Score != res.Score {
		t.Errorf("attempt = %+v, want quiz 1 with score %d", attempts.attempts[0], res.Score)
	}

	if len(snaps.snaps) != 1 {
		t.Fatalf("snapshot repo has %d saves, want 1", len(snaps.snaps))
	}
	if snaps.snaps[0].Data.Progress.TotalLessons != 1 {
		t.Error("saved snapshot does not carry the updated progress record")
	}
}

func TestFinishQuiz_StreakAcrossDays(t *testing.T) {
	ctx := context.Background()
	s, err := Load(ctx, nil, nil)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	day1 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.Local)
	s.Tracker.SetNowFunc(func() time.Time { return day1 })

	finish := func(lessonID int) {
		t.Helper()
		lesson, err := s.Catalog.ByID(lessonID)
		if err != nil {
			t.Fatal(err)
		}
		res, err := s.Quizzes.Submit(lessonID, []int{0, 0, 0})
		if err != nil {
			t.Fatal(err)
		}
		if err := s.FinishQuiz(ctx, lesson, res); err != nil {
			t.Fatalf("FinishQuiz error: %v", err)
		}
	}

	finish(1)
	if got := s.Tracker.Snapshot().Streak; got != 1 {
		t.Errorf("Streak after first day = %d, want 1", got)
	}

	// A second quiz the same day must not double-credit the streak.
	finish(2)
	if got := s.Tracker.Snapshot().Streak; got != 1 {
		t.Errorf("Streak after second quiz same day = %d, want 1", got)
	}

	// The day after, the streak continues.
	s.Tracker.SetNowFunc(func() time.Time { return day1.AddDate(0, 0, 1) })
	finish(3)
	if got := s.Tracker.Snapshot().Streak; got != 2 {
		t.Errorf("Streak after consecutive day = %d, want 2", got)
	}

	// A two-day gap resets it.
	s.Tracker.SetNowFunc(func() time.Time { return day1.AddDate(0, 0, 3) })
	finish(4)
	if got := s.Tracker.Snapshot().Streak; got != 1 {
		t.Errorf("Streak after two-day gap = %d, want 1", got)
	}
}

func TestSave_NoRepoIsNoOp(t *testing.T) {
	s, err := Load(context.Background(), nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(context.Background()); err != nil {
		t.Errorf("Save with nil repo = %v, want nil", err)
	}
}
