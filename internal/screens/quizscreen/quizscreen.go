package quizscreen

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/apper-canvas/fast-microlearn-frost/internal/quiz"
	"github.com/apper-canvas/fast-microlearn-frost/internal/router"
	"github.com/apper-canvas/fast-microlearn-frost/internal/screen"
	"github.com/apper-canvas/fast-microlearn-frost/internal/session"
	"github.com/apper-canvas/fast-microlearn-frost/internal/ui/components"
	"github.com/apper-canvas/fast-microlearn-frost/internal/ui/layout"
	"github.com/apper-canvas/fast-microlearn-frost/internal/ui/theme"
)

type phase int

const (
	phaseAnswering phase = iota
	phaseSummary
)

// QuizScreen runs one quiz: question by question, then a graded summary.
// Answers are not graded until the whole quiz is submitted.
type QuizScreen struct {
	state   *session.State
	quiz    quiz.Quiz
	current int
	answers []int
	choice  components.MultiChoice
	phase   phase
	result  *quiz.Result
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the given quiz ID.
func New(state *session.State, quizID int) *QuizScreen {
	q, err := state.Quizzes.ByID(quizID)
	s := &QuizScreen{
		state: state,
		quiz:  q,
	}
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	if len(q.Questions) > 0 {
		s.choice = components.NewMultiChoice(q.Questions[0].Text, q.Questions[0].Options)
	}
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.phase == phaseSummary {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Done"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Lock in"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if s.phase == phaseSummary {
		if kmsg, ok := msg.(tea.KeyMsg); ok {
			switch kmsg.String() {
			case "enter", "esc":
				// The quiz replaced the reader, so one pop lands in the list.
				return s, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
		return s, nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	if s.errMsg != "" || len(s.quiz.Questions) == 0 {
		return s, nil
	}

	var cmd tea.Cmd
	s.choice, cmd = s.choice.Update(msg)

	if s.choice.Confirmed() {
		s.answers = append(s.answers, s.choice.Chosen)
		s.current++
		if s.current < len(s.quiz.Questions) {
			q := s.quiz.Questions[s.current]
			s.choice = components.NewMultiChoice(q.Text, q.Options)
		} else {
			s.finish()
		}
	}

	return s, cmd
}

// finish grades the quiz and runs the post-quiz bookkeeping.
func (s *QuizScreen) finish() {
	res, err := s.state.Quizzes.Submit(s.quiz.ID, s.answers)
	if err != nil {
		s.errMsg = err.Error()
		return
	}

	lesson, err := s.state.Catalog.ByID(s.quiz.LessonID)
	if err != nil {
		s.errMsg = err.Error()
		return
	}

	if err := s.state.FinishQuiz(context.Background(), lesson, res); err != nil {
		s.errMsg = err.Error()
		return
	}

	s.result = res
	s.phase = phaseSummary
}

func (s *QuizScreen) View(width, height int) string {
	if s.errMsg != "" {
		return theme.Incorrect.Width(width).Align(lipgloss.Center).Render(s.errMsg)
	}

	if s.phase == phaseSummary {
		return s.viewSummary(width)
	}

	return s.viewQuestion(width)
}

func (s *QuizScreen) viewQuestion(width int) string {
	total := len(s.quiz.Questions)
	if total == 0 {
		return theme.Hint.Width(width).Align(lipgloss.Center).Render("This quiz has no questions.")
	}

	var b strings.Builder

	counter := fmt.Sprintf("Question %d of %d", s.current+1, total)
	b.WriteString(theme.Subtitle.Width(width).Render(counter))
	b.WriteString("\n")

	bar := components.NewProgressBar("", float64(s.current)/float64(total), false, min(width-8, 40))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	card := lipgloss.NewStyle().
		Width(min(width-8, 64)).
		Render(s.choice.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	return b.String()
}

func (s *QuizScreen) viewSummary(width int) string {
	res := s.result

	var b strings.Builder

	headline := "Keep practicing!"
	style := theme.Incorrect
	switch {
	case res.Score >= 80:
		headline = "Excellent work!"
		style = theme.Correct
	case res.Score >= 60:
		headline = "Good effort!"
		style = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	}

	b.WriteString(style.Width(width).Align(lipgloss.Center).Render(headline))
	b.WriteString("\n\n")

	scoreLine := fmt.Sprintf("Score: %d%%        Correct: %d of %d",
		res.Score, res.CorrectAnswers, res.TotalQuestions)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(scoreLine))
	b.WriteString("\n\n")

	reviewWidth := min(width-8, 64)
	for i, q := range s.quiz.Questions {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			s.renderReview(i, &q, reviewWidth)))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *QuizScreen) renderReview(i int, q *quiz.Question, width int) string {
	chosen := -1
	if i < len(s.answers) {
		chosen = s.answers[i]
	}

	mark := theme.Incorrect.Render("✗")
	if chosen == q.CorrectAnswer {
		mark = theme.Correct.Render("✓")
	}

	line := fmt.Sprintf("%s %s", mark, q.Text)

	detail := fmt.Sprintf("answer: %s) %s",
		components.OptionLabel(q.CorrectAnswer), q.Options[q.CorrectAnswer])
	if chosen != q.CorrectAnswer && chosen >= 0 && chosen < len(q.Options) {
		detail = fmt.Sprintf("you chose %s) %s · %s",
			components.OptionLabel(chosen), q.Options[chosen], detail)
	}

	body := theme.Body.Render(line) + "\n" +
		"  " + theme.TagBadge.Render(detail)
	if q.Explanation != "" {
		body += "\n  " + theme.Hint.Render(q.Explanation)
	}

	return lipgloss.NewStyle().Width(width).Render(body)
}
