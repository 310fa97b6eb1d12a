package library

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

func TestLibraryScreen_ModeAllListsCatalog(t *testing.T) {
	state := testState(t)
	s := New(state, ModeAll)

	all := state.Catalog.All()
	if got := s.lessons(); len(got) != len(all) {
		t.Errorf("visible lessons = %d, want %d", len(got), len(all))
	}
}

func TestLibraryScreen_ModeTodayListsDailyPicks(t *testing.T) {
	state := testState(t)
	s := New(state, ModeToday)

	if got := s.lessons(); len(got) != 3 {
		t.Errorf("today's lessons = %d, want 3", len(got))
	}
	if s.Title() != "Today's Lessons" {
		t.Errorf("Title = %q, want %q", s.Title(), "Today's Lessons")
	}
}

func TestLibraryScreen_TabCyclesCategories(t *testing.T) {
	state := testState(t)
	s := New(state, ModeAll)

	s.Update(tea.KeyPressMsg{Code: tea.KeyTab})

	// First tab lands on the first real category.
	want := state.Catalog.ByCategory(s.filters[1])
	if got := s.lessons(); len(got) != len(want) {
		t.Errorf("filtered lessons = %d, want %d", len(got), len(want))
	}

	// A full cycle returns to All.
	for i := 1; i < len(s.filters); i++ {
		s.Update(tea.KeyPressMsg{Code: tea.KeyTab})
	}
	if got := s.lessons(); len(got) != len(state.Catalog.All()) {
		t.Errorf("after full cycle, lessons = %d, want %d", len(got), len(state.Catalog.All()))
	}
}

func TestLibraryScreen_SearchFlow(t *testing.T) {
	state := testState(t)
	s := New(state, ModeAll)

	s.Update(tea.KeyPressMsg{Code: '/', Text: "/"})
	if !s.searching {
		t.Fatal("expected search mode after /")
	}

	for _, r := range "brain" {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if s.searching {
		t.Error("expected search mode to end on Enter")
	}
	if s.query != "brain" {
		t.Errorf("query = %q, want %q", s.query, "brain")
	}

	want := state.Catalog.Search("brain")
	if got := s.lessons(); len(got) != len(want) {
		t.Errorf("search results = %d, want %d", len(got), len(want))
	}
}

func TestLibraryScreen_EnterOpensReader(t *testing.T) {
	state := testState(t)
	s := New(state, ModeAll)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected a PushScreenMsg for the reader")
	}
}

func TestLibraryScreen_Display(t *testing.T) {
	state := testState(t)
	s := New(state, ModeAll)
	if view := s.View(80, 24); view == "" {
		t.Error("expected non-empty library view")
	}
}
