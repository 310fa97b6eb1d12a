package library

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/apper-canvas/fast-microlearn-frost/internal/catalog"
	"github.com/apper-canvas/fast-microlearn-frost/internal/router"
	"github.com/apper-canvas/fast-microlearn-frost/internal/screen"
	"github.com/apper-canvas/fast-microlearn-frost/internal/screens/reader"
	"github.com/apper-canvas/fast-microlearn-frost/internal/session"
	"github.com/apper-canvas/fast-microlearn-frost/internal/ui/components"
	"github.com/apper-canvas/fast-microlearn-frost/internal/ui/layout"
	"github.com/apper-canvas/fast-microlearn-frost/internal/ui/theme"
)

// Mode selects which slice of the catalog the screen lists.
type Mode int

const (
	// ModeAll lists the whole catalog with filtering and search.
	ModeAll Mode = iota
	// ModeToday lists only the daily picks.
	ModeToday
)

// filterAll is the synthetic first entry in the category cycle.
const filterAll = "All"

// LibraryScreen lists lessons and opens the reader on selection.
type LibraryScreen struct {
	state     *session.State
	mode      Mode
	filters   []string
	filterIdx int
	selected  int
	searching bool
	search    components.SearchInput
	query     string
}

var _ screen.Screen = (*LibraryScreen)(nil)
var _ screen.KeyHintProvider = (*LibraryScreen)(nil)

// New creates a new LibraryScreen.
func New(state *session.State, mode Mode) *LibraryScreen {
	filters := []string{filterAll}
	for _, c := range catalog.AllCategories() {
		filters = append(filters, string(c))
	}

	return &LibraryScreen{
		state:   state,
		mode:    mode,
		filters: filters,
		search:  components.NewSearchInput("search title, content, tags..."),
	}
}

func (s *LibraryScreen) Init() tea.Cmd {
	return nil
}

func (s *LibraryScreen) Title() string {
	if s.mode == ModeToday {
		return "Today's Lessons"
	}
	return "Library"
}

func (s *LibraryScreen) KeyHints() []layout.KeyHint {
	if s.searching {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Apply"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Read"},
	}
	if s.mode == ModeAll {
		hints = append(hints,
			layout.KeyHint{Key: "Tab", Description: "Category"},
			layout.KeyHint{Key: "/", Description: "Search"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

// lessons resolves the visible lesson list from the live services, so
// completion marks stay current after a quiz finishes underneath us.
func (s *LibraryScreen) lessons() []catalog.Lesson {
	if s.mode == ModeToday {
		return s.state.Catalog.Todays()
	}
	if s.query != "" {
		return s.state.Catalog.Search(s.query)
	}
	if s.filters[s.filterIdx] != filterAll {
		return s.state.Catalog.ByCategory(s.filters[s.filterIdx])
	}
	return s.state.Catalog.All()
}

func (s *LibraryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.searching {
		switch kmsg.String() {
		case "enter":
			s.searching = false
			s.query = s.search.Value()
			s.selected = 0
		case "esc":
			s.searching = false
			s.query = ""
			s.search = components.NewSearchInput("search title, content, tags...")
		default:
			var cmd tea.Cmd
			s.search, cmd = s.search.Update(msg)
			return s, cmd
		}
		return s, nil
	}

	visible := s.lessons()

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(visible)-1 {
			s.selected++
		}
	case "tab":
		if s.mode == ModeAll {
			s.filterIdx = (s.filterIdx + 1) % len(s.filters)
			s.query = ""
			s.selected = 0
		}
	case "/":
		if s.mode == ModeAll {
			s.searching = true
			s.search = components.NewSearchInput("search title, content, tags...")
			return s, s.search.Init()
		}
	case "enter":
		if s.selected < len(visible) {
			lesson := visible[s.selected]
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: reader.New(s.state, lesson.ID)}
			}
		}
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	return s, nil
}

func (s *LibraryScreen) View(width, height int) string {
	visible := s.lessons()
	if s.selected >= len(visible) {
		s.selected = max(len(visible)-1, 0)
	}

	var b strings.Builder

	if s.mode == ModeAll {
		b.WriteString(s.renderFilterBar(width))
		b.WriteString("\n\n")
	} else {
		b.WriteString(theme.Subtitle.Width(width).Render(
			fmt.Sprintf("%d bite-sized lessons picked for today", len(visible))))
		b.WriteString("\n\n")
	}

	if s.searching {
		b.WriteString("  " + s.search.View())
		b.WriteString("\n\n")
	}

	if len(visible) == 0 {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("No lessons match."))
		return b.String()
	}

	for i, l := range visible {
		b.WriteString(s.renderRow(&l, i == s.selected, width))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *LibraryScreen) renderFilterBar(width int) string {
	parts := make([]string, 0, len(s.filters))
	for i, f := range s.filters {
		if i == s.filterIdx && s.query == "" {
			parts = append(parts, theme.Selected.Render("["+f+"]"))
		} else {
			parts = append(parts, theme.TagBadge.Render(" "+f+" "))
		}
	}
	bar := "  " + strings.Join(parts, " ")
	if s.query != "" {
		bar += "   " + theme.Hint.Render(fmt.Sprintf("search: %q", s.query))
	}
	return bar
}

func (s *LibraryScreen) renderRow(l *catalog.Lesson, selected bool, width int) string {
	check := "  "
	if l.Completed() {
		check = theme.Correct.Render("✓ ")
	}

	cursor := "  "
	titleStyle := theme.Unselected
	if selected {
		cursor = theme.Selected.Render("▸ ")
		titleStyle = theme.Selected
	}

	dots := strings.Repeat("●", l.Difficulty) + strings.Repeat("○", 5-l.Difficulty)

	tags := l.Tags
	if len(tags) > 3 {
		tags = tags[:3]
	}

	meta := fmt.Sprintf("%s · %d min · %s",
		theme.CategoryBadge.Render(string(l.Category)),
		l.DurationMinutes(),
		theme.TagBadge.Render(dots))
	if len(tags) > 0 {
		meta += theme.TagBadge.Render("  #" + strings.Join(tags, " #"))
	}

	return cursor + check + titleStyle.Render(l.Title) + "\n" +
		"      " + meta
}
