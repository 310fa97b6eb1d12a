package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apper-canvas/fast-microlearn-frost/internal/progress"
	"github.com/apper-canvas/fast-microlearn-frost/internal/quiz"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSnapshotRoundTrip(t *testing.T) {
	st := openTestStore(t)
	repo := st.SnapshotRepo()
	ctx := context.Background()

	completedAt := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	data := SnapshotData{
		Progress: progress.Progress{
			Streak:              4,
			LastActivity:        completedAt,
			TotalLessons:        9,
			PreferredDifficulty: 3.5,
			CategoryScores: []progress.CategoryScores{
				{Category: "Psychology", Scores: []int{80, 90}},
			},
		},
		LessonCompletions: map[int]time.Time{2: completedAt},
		QuizResults: map[int]quiz.SavedResult{
			2: {Score: 90, CompletedAt: completedAt, UserAnswers: []int{1, 0, 2}},
		},
	}

	require.NoError(t, repo.Save(ctx, &Snapshot{Data: data}))

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, SnapshotVersion, got.Data.Version)
	assert.Equal(t, 4, got.Data.Progress.Streak)
	assert.Equal(t, 3.5, got.Data.Progress.PreferredDifficulty)
	assert.Equal(t, []int{80, 90}, got.Data.Progress.Scores("Psychology"))
	require.Contains(t, got.Data.LessonCompletions, 2)
	assert.True(t, got.Data.LessonCompletions[2].Equal(completedAt))
	require.Contains(t, got.Data.QuizResults, 2)
	assert.Equal(t, 90, got.Data.QuizResults[2].Score)
	assert.Equal(t, []int{1, 0, 2}, got.Data.QuizResults[2].UserAnswers)
}

func TestLatest_Empty(t *testing.T) {
	st := openTestStore(t)

	got, err := st.SnapshotRepo().Latest(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLatest_ReturnsNewest(t *testing.T) {
	st := openTestStore(t)
	repo := st.SnapshotRepo()
	ctx := context.Background()

	for streak := 1; streak <= 3; streak++ {
		snap := &Snapshot{Data: SnapshotData{Progress: progress.Progress{Streak: streak}}}
		require.NoError(t, repo.Save(ctx, snap))
	}

	got, err := repo.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.Data.Progress.Streak)
}

func TestPrune(t *testing.T) {
	st := openTestStore(t)
	repo := st.SnapshotRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Save(ctx, &Snapshot{}))
	}
	require.NoError(t, repo.Prune(ctx, 2))

	var count int
	require.NoError(t, st.DB().QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&count))
	assert.Equal(t, 2, count)
}

func TestAttempts(t *testing.T) {
	st := openTestStore(t)
	repo := st.AttemptRepo()
	ctx := context.Background()

	first := &Attempt{
		QuizID:         1,
		LessonID:       1,
		Score:          67,
		CorrectAnswers: 2,
		TotalQuestions: 3,
		CreatedAt:      time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC),
	}
	second := &Attempt{
		QuizID:         2,
		LessonID:       2,
		Score:          100,
		CorrectAnswers: 3,
		TotalQuestions: 3,
		CreatedAt:      time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC),
	}

	require.NoError(t, repo.Append(ctx, first))
	require.NoError(t, repo.Append(ctx, second))
	assert.NotEmpty(t, first.ID, "Append fills a missing ID")

	got, err := repo.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].QuizID, "newest first")
	assert.Equal(t, 67, got[1].Score)
}

func TestAttempts_Limit(t *testing.T) {
	st := openTestStore(t)
	repo := st.AttemptRepo()
	ctx := context.Background()

	base := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 4; i++ {
		require.NoError(t, repo.Append(ctx, &Attempt{
			QuizID:    i + 1,
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}))
	}

	got, err := repo.Recent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 4, got[0].QuizID)
	assert.Equal(t, 3, got[1].QuizID)
}
