package reader

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/apper-canvas/fast-microlearn-frost/internal/quiz"
	"github.com/apper-canvas/fast-microlearn-frost/internal/router"
	"github.com/apper-canvas/fast-microlearn-frost/internal/screen"
	"github.com/apper-canvas/fast-microlearn-frost/internal/screens/quizscreen"
	"github.com/apper-canvas/fast-microlearn-frost/internal/session"
	"github.com/apper-canvas/fast-microlearn-frost/internal/ui/layout"
	"github.com/apper-canvas/fast-microlearn-frost/internal/ui/theme"
)

// ReaderScreen shows one lesson's content and hands off to the quiz.
type ReaderScreen struct {
	state    *session.State
	lessonID int
	scroll   int
	hasQuiz  bool
	errMsg   string
}

var _ screen.Screen = (*ReaderScreen)(nil)
var _ screen.KeyHintProvider = (*ReaderScreen)(nil)

// New creates a ReaderScreen for the given lesson.
func New(state *session.State, lessonID int) *ReaderScreen {
	_, err := state.Quizzes.ByLesson(lessonID)
	return &ReaderScreen{
		state:    state,
		lessonID: lessonID,
		hasQuiz:  err == nil,
	}
}

func (s *ReaderScreen) Init() tea.Cmd {
	return nil
}

func (s *ReaderScreen) Title() string {
	return "Lesson"
}

func (s *ReaderScreen) KeyHints() []layout.KeyHint {
	action := layout.KeyHint{Key: "Enter", Description: "Start quiz"}
	if !s.hasQuiz {
		action = layout.KeyHint{Key: "Enter", Description: "Mark complete"}
	}
	return []layout.KeyHint{
		action,
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ReaderScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.scroll > 0 {
			s.scroll--
		}
	case "down", "j":
		s.scroll++
	case "enter":
		if s.hasQuiz {
			q, err := s.state.Quizzes.ByLesson(s.lessonID)
			if err != nil {
				var noQuiz *quiz.NoQuizForLessonError
				if errors.As(err, &noQuiz) {
					s.hasQuiz = false
					return s, nil
				}
				s.errMsg = err.Error()
				return s, nil
			}
			// The reader is done once the quiz starts; swap instead of
			// stacking so the quiz pops straight back to the list.
			return s, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: quizscreen.New(s.state, q.ID)}
			}
		}
		if err := s.state.FinishLesson(context.Background(), s.lessonID); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return s, nil
}

func (s *ReaderScreen) View(width, height int) string {
	lesson, err := s.state.Catalog.ByID(s.lessonID)
	if err != nil {
		return theme.Incorrect.Render("  " + err.Error())
	}

	contentWidth := min(width-8, 72)

	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render(lesson.Title))
	b.WriteString("\n")

	meta := fmt.Sprintf("%s · %d min read",
		theme.CategoryBadge.Render(string(lesson.Category)),
		lesson.DurationMinutes())
	if lesson.Completed() {
		meta += theme.Correct.Render("  ✓ completed")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, meta))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(theme.Text).
		Render(lesson.Content)

	lines := strings.Split(body, "\n")
	visible := height - 8
	if visible < 4 {
		visible = 4
	}
	if s.scroll > len(lines)-visible {
		s.scroll = max(len(lines)-visible, 0)
	}
	end := min(s.scroll+visible, len(lines))
	body = strings.Join(lines[s.scroll:end], "\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
	b.WriteString("\n\n")

	if len(lesson.Tags) > 0 {
		tags := theme.TagBadge.Render("#" + strings.Join(lesson.Tags, " #"))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tags))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render(s.errMsg))
	}

	return b.String()
}
