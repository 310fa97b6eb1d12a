package quizscreen

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/apper-canvas/fast-microlearn-frost/internal/router"
	"github.com/apper-canvas/fast-microlearn-frost/internal/session"
)

func testState(t *testing.T) *session.State {
	t.Helper()
	state, err := session.Load(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("load session: %v", err)
	}
	return state
}

func TestQuizScreen_Title(t *testing.T) {
	state := testState(t)
	q, err := state.Quizzes.ByLesson(1)
	if err != nil {
		t.Fatalf("quiz for lesson 1: %v", err)
	}

	s := New(state, q.ID)
	if s.Title() != "Quiz" {
		t.Errorf("Title = %q, want %q", s.Title(), "Quiz")
	}
}

func TestQuizScreen_AnswerFlow(t *testing.T) {
	state := testState(t)
	q, err := state.Quizzes.ByLesson(1)
	if err != nil {
		t.Fatalf("quiz for lesson 1: %v", err)
	}

	s := New(state, q.ID)
	if s.phase != phaseAnswering {
		t.Fatal("expected answering phase at start")
	}

	// Lock in the first option for every question.
	for range q.Questions {
		s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	}

	if s.phase != phaseSummary {
		t.Fatal("expected summary phase after last question")
	}
	if s.result == nil {
		t.Fatal("expected a graded result")
	}
	if len(s.answers) != len(q.Questions) {
		t.Errorf("answers len = %d, want %d", len(s.answers), len(q.Questions))
	}

	// Finishing the quiz feeds the progress tracker and the catalog.
	rec := state.Tracker.Snapshot()
	if rec.TotalLessons != 1 {
		t.Errorf("TotalLessons = %d, want 1", rec.TotalLessons)
	}
	if rec.Streak != 1 {
		t.Errorf("Streak = %d, want 1", rec.Streak)
	}

	lesson, err := state.Catalog.ByID(q.LessonID)
	if err != nil {
		t.Fatalf("lesson %d: %v", q.LessonID, err)
	}
	if !lesson.Completed() {
		t.Error("expected lesson marked completed after quiz")
	}

	saved, err := state.Quizzes.ByID(q.ID)
	if err != nil {
		t.Fatalf("quiz %d: %v", q.ID, err)
	}
	if !saved.Completed() {
		t.Error("expected quiz marked completed after submission")
	}
}

func TestQuizScreen_NoRevealBeforeSubmit(t *testing.T) {
	state := testState(t)
	q, err := state.Quizzes.ByLesson(1)
	if err != nil {
		t.Fatalf("quiz for lesson 1: %v", err)
	}

	s := New(state, q.ID)
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	// One answer in: nothing graded, nothing recorded yet.
	if s.phase != phaseAnswering {
		t.Fatal("expected answering phase mid-quiz")
	}
	if s.result != nil {
		t.Error("expected no result before the last question")
	}
	if rec := state.Tracker.Snapshot(); rec.TotalLessons != 0 {
		t.Errorf("TotalLessons = %d mid-quiz, want 0", rec.TotalLessons)
	}
}

func TestQuizScreen_SummaryDisplay(t *testing.T) {
	state := testState(t)
	q, err := state.Quizzes.ByLesson(1)
	if err != nil {
		t.Fatalf("quiz for lesson 1: %v", err)
	}

	s := New(state, q.ID)
	for range q.Questions {
		s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	}

	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
}

func TestQuizScreen_SummaryEnterPops(t *testing.T) {
	state := testState(t)
	q, err := state.Quizzes.ByLesson(1)
	if err != nil {
		t.Fatalf("quiz for lesson 1: %v", err)
	}

	s := New(state, q.ID)
	for range q.Questions {
		s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter from the summary")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected a PopScreenMsg back to the lesson list")
	}
}

func TestQuizScreen_EscAbandons(t *testing.T) {
	state := testState(t)
	q, err := state.Quizzes.ByLesson(1)
	if err != nil {
		t.Fatalf("quiz for lesson 1: %v", err)
	}

	s := New(state, q.ID)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
	if rec := state.Tracker.Snapshot(); rec.TotalLessons != 0 {
		t.Errorf("TotalLessons = %d after abandon, want 0", rec.TotalLessons)
	}
}

func TestQuizScreen_UnknownQuiz(t *testing.T) {
	state := testState(t)
	s := New(state, 999)
	if s.errMsg == "" {
		t.Error("expected an error message for an unknown quiz")
	}
	if view := s.View(80, 24); view == "" {
		t.Error("expected the error to render")
	}
}
