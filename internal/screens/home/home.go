package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/apper-canvas/fast-microlearn-frost/internal/progress"
	"github.com/apper-canvas/fast-microlearn-frost/internal/router"
	"github.com/apper-canvas/fast-microlearn-frost/internal/screen"
	"github.com/apper-canvas/fast-microlearn-frost/internal/screens/library"
	"github.com/apper-canvas/fast-microlearn-frost/internal/screens/stats"
	"github.com/apper-canvas/fast-microlearn-frost/internal/session"
	"github.com/apper-canvas/fast-microlearn-frost/internal/ui/components"
	"github.com/apper-canvas/fast-microlearn-frost/internal/ui/theme"
)

// HomeScreen is the landing screen: daily picks, streak, and navigation.
type HomeScreen struct {
	state *session.State
	menu  components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(state *session.State) *HomeScreen {
	items := []components.MenuItem{
		{Label: "TODAY'S LESSONS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: library.New(state, library.ModeToday)}
			}
		}},
		{Label: "LESSON LIBRARY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: library.New(state, library.ModeAll)}
			}
		}},
		{Label: "PROGRESS REPORT", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(state)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		state: state,
		menu:  components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	rec := h.state.Tracker.Snapshot()
	weekly := h.state.Tracker.WeeklyStats()

	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Microlearn"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Five minutes a day, every day"))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("🔥 %d day streak      📚 %d lessons completed      🏆 %d topics mastered",
		rec.Streak, rec.TotalLessons, weekly.TopicsMastered)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n\n")

	goal := components.NewProgressBar("Weekly goal", weekly.WeeklyGoalProgress/100, true, min(width-8, 48))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, goal.View()))
	b.WriteString("\n")
	goalHint := fmt.Sprintf("%d of %d lessons this week", weekly.WeeklyLessonsCompleted, progress.WeeklyLessonGoal)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(goalHint))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
