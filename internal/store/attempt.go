package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Attempt is one graded quiz submission.
type Attempt struct {
	ID             string
	QuizID         int
	LessonID       int
	Score          int
	CorrectAnswers int
	TotalQuestions int
	CreatedAt      time.Time
}

// AttemptRepo is the append-only log of quiz attempts.
type AttemptRepo interface {
	// Append records an attempt. A missing ID is filled with a fresh UUID.
	Append(ctx context.Context, a *Attempt) error

	// Recent returns up to limit attempts, newest first.
	Recent(ctx context.Context, limit int) ([]Attempt, error)
}

type attemptRepo struct {
	db *sql.DB
}

func (r *attemptRepo) Append(ctx context.Context, a *Attempt) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempts
			(id, quiz_id, lesson_id, score, correct_answers, total_questions, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.QuizID, a.LessonID, a.Score, a.CorrectAnswers, a.TotalQuestions,
		a.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

func (r *attemptRepo) Recent(ctx context.Context, limit int) ([]Attempt, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, quiz_id, lesson_id, score, correct_answers, total_questions, created_at
		FROM attempts ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []Attempt
	for rows.Next() {
		var (
			a         Attempt
			createdAt string
		)
		if err := rows.Scan(&a.ID, &a.QuizID, &a.LessonID, &a.Score,
			&a.CorrectAnswers, &a.TotalQuestions, &createdAt); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse attempt timestamp: %w", err)
		}
		a.CreatedAt = t
		out = append(out, a)
	}
	return out, rows.Err()
}
