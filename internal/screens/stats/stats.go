package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/apper-canvas/fast-microlearn-frost/internal/progress"
	"github.com/apper-canvas/fast-microlearn-frost/internal/router"
	"github.com/apper-canvas/fast-microlearn-frost/internal/screen"
	"github.com/apper-canvas/fast-microlearn-frost/internal/session"
	"github.com/apper-canvas/fast-microlearn-frost/internal/store"
	"github.com/apper-canvas/fast-microlearn-frost/internal/ui/components"
	"github.com/apper-canvas/fast-microlearn-frost/internal/ui/layout"
	"github.com/apper-canvas/fast-microlearn-frost/internal/ui/theme"
)

// recentAttemptCount is how many attempt log rows the screen shows.
const recentAttemptCount = 5

type attemptsLoadedMsg struct {
	Attempts []store.Attempt
	Err      error
}

// StatsScreen is the progress report: streak, weekly stats, per-category
// averages, and the recent attempt log.
type StatsScreen struct {
	state    *session.State
	attempts []store.Attempt
	loaded   bool
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(state *session.State) *StatsScreen {
	return &StatsScreen{state: state}
}

func (s *StatsScreen) Init() tea.Cmd {
	if s.state.Attempts == nil {
		return nil
	}
	return func() tea.Msg {
		attempts, err := s.state.Attempts.Recent(context.Background(), recentAttemptCount)
		return attemptsLoadedMsg{Attempts: attempts, Err: err}
	}
}

func (s *StatsScreen) Title() string {
	return "Progress"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case attemptsLoadedMsg:
		if msg.Err == nil {
			s.attempts = msg.Attempts
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	rec := s.state.Tracker.Snapshot()
	weekly := s.state.Tracker.WeeklyStats()

	barWidth := min(width-8, 48)

	var b strings.Builder

	statsLine := fmt.Sprintf("🔥 %d day streak      📚 %d lessons      🎯 difficulty %.1f",
		rec.Streak, rec.TotalLessons, rec.PreferredDifficulty)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	b.WriteString(sectionHeader("This Week", width))

	goal := components.NewProgressBar("Lessons", weekly.WeeklyGoalProgress/100, true, barWidth)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, goal.View()))
	b.WriteString("\n")
	weekLine := fmt.Sprintf("%d of %d lessons · quiz average %.0f%% · %d topics mastered",
		weekly.WeeklyLessonsCompleted, progress.WeeklyLessonGoal,
		weekly.WeeklyQuizAverage, weekly.TopicsMastered)
	b.WriteString(theme.Subtitle.Width(width).Render(weekLine))
	b.WriteString("\n\n")

	b.WriteString(sectionHeader("Categories", width))
	if len(rec.CategoryScores) == 0 {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("No quizzes taken yet."))
		b.WriteString("\n")
	}
	for i := range rec.CategoryScores {
		cs := &rec.CategoryScores[i]
		avg := cs.Average()
		label := fmt.Sprintf("%-13s", cs.Category)
		if avg >= progress.MasteryThreshold {
			label = fmt.Sprintf("%-12s🏆", cs.Category)
		}
		bar := components.NewProgressBar(label, avg/100, true, barWidth)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionHeader("Recent Quizzes", width))
	if len(s.attempts) == 0 {
		msg := "No attempts recorded."
		if !s.loaded && s.state.Attempts != nil {
			msg = "Loading..."
		}
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(msg))
		return b.String()
	}

	for _, a := range s.attempts {
		title := fmt.Sprintf("lesson %d", a.LessonID)
		if l, err := s.state.Catalog.ByID(a.LessonID); err == nil {
			title = l.Title
		}
		row := fmt.Sprintf("%s  %s  %d%% (%d/%d)",
			theme.TagBadge.Render(a.CreatedAt.Format("Jan 2 15:04")),
			title, a.Score, a.CorrectAnswers, a.TotalQuestions)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Width(min(width-8, 64)).Foreground(theme.Text).Render(row)))
		b.WriteString("\n")
	}

	return b.String()
}

func sectionHeader(label string, width int) string {
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)) +
		"\n" + lipgloss.PlaceHorizontal(width, lipgloss.Center, divider) + "\n\n"
}
