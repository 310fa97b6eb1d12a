// Package session wires the three in-memory services to the persistence
// layer. The services never call each other; all orchestration happens here
// and in the screens that consume this state.
package session

import (
	"context"
	"fmt"

	"github.com/apper-canvas/fast-microlearn-frost/internal/catalog"
	"github.com/apper-canvas/fast-microlearn-frost/internal/progress"
	"github.com/apper-canvas/fast-microlearn-frost/internal/quiz"
	"github.com/apper-canvas/fast-microlearn-frost/internal/seed"
	"github.com/apper-canvas/fast-microlearn-frost/internal/store"
)

// SnapshotKeep is how many historical snapshots are retained after a save.
const SnapshotKeep = 20

// State bundles the seeded services and their persistence.
type State struct {
	Catalog   *catalog.Service
	Quizzes   *quiz.Service
	Tracker   *progress.Tracker
	Snapshots store.SnapshotRepo
	Attempts  store.AttemptRepo
}

// Load seeds the services from the embedded fixtures and overlays the most
// recent snapshot, if any. Repos may be nil, in which case state is volatile
// for the process lifetime.
func Load(ctx context.Context, snapshots store.SnapshotRepo, attempts store.AttemptRepo) (*State, error) {
	d, err := seed.Load()
	if err != nil {
		return nil, fmt.Errorf("load seed data: %w", err)
	}

	s := &State{
		Catalog:   catalog.NewService(d.Lessons),
		Quizzes:   quiz.NewService(d.Quizzes),
		Tracker:   progress.NewTracker(d.Progress),
		Snapshots: snapshots,
		Attempts:  attempts,
	}

	if snapshots != nil {
		snap, err := snapshots.Latest(ctx)
		if err != nil {
			return nil, fmt.Errorf("load latest snapshot: %w", err)
		}
		if snap != nil {
			s.Tracker.Restore(snap.Data.Progress)
			s.Catalog.RestoreCompletions(snap.Data.LessonCompletions)
			s.Quizzes.RestoreResults(snap.Data.QuizResults)
		}
	}

	return s, nil
}

// Save writes the current state as a new snapshot and prunes old ones.
// A nil snapshot repo makes this a no-op.
func (s *State) Save(ctx context.Context) error {
	if s.Snapshots == nil {
		return nil
	}

	snap := &store.Snapshot{
		Data: store.SnapshotData{
			Progress:          s.Tracker.Snapshot(),
			LessonCompletions: s.Catalog.Completions(),
			QuizResults:       s.Quizzes.SavedResults(),
		},
	}
	if err := s.Snapshots.Save(ctx, snap); err != nil {
		return err
	}
	return s.Snapshots.Prune(ctx, SnapshotKeep)
}

// FinishLesson completes a lesson that has no quiz attached: the completion
// still counts toward totals and the streak, but no scores change.
func (s *State) FinishLesson(ctx context.Context, lessonID int) error {
	if _, err := s.Catalog.MarkCompleted(lessonID); err != nil {
		return fmt.Errorf("mark lesson completed: %w", err)
	}
	// Streak first: IncrementLessonsCompleted stamps LastActivity, which
	// would make UpdateStreak see today as already credited.
	s.Tracker.UpdateStreak()
	s.Tracker.IncrementLessonsCompleted()

	if err := s.Save(ctx); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// FinishQuiz runs the full post-quiz sequence for a graded result: progress
// mutations, lesson completion, the attempt log entry, and a snapshot save.
func (s *State) FinishQuiz(ctx context.Context, lesson catalog.Lesson, res *quiz.Result) error {
	// Streak first: the other mutators stamp LastActivity, and UpdateStreak
	// treats a today-stamped record as already credited.
	s.Tracker.UpdateStreak()
	s.Tracker.IncrementLessonsCompleted()
	s.Tracker.UpdateCategoryScore(string(lesson.Category), res.Score)
	s.Tracker.AdjustDifficulty(res.Score)

	if _, err := s.Catalog.MarkCompleted(lesson.ID); err != nil {
		return fmt.Errorf("mark lesson completed: %w", err)
	}

	if s.Attempts != nil {
		a := &store.Attempt{
			QuizID:         res.Quiz.ID,
			LessonID:       lesson.ID,
			Score:          res.Score,
			CorrectAnswers: res.CorrectAnswers,
			TotalQuestions: res.TotalQuestions,
		}
		if err := s.Attempts.Append(ctx, a); err != nil {
			return fmt.Errorf("record attempt: %w", err)
		}
	}

	if err := s.Save(ctx); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}
