// Package router keeps the navigation stack: screens push on top of each
// other (home → library → reader → quiz) and pop back off, so "back" always
// means "the screen you came from". Screens request navigation by emitting
// one of the message types below; they never touch the router directly.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/apper-canvas/fast-microlearn-frost/internal/screen"
)

// PushScreenMsg asks the router to stack a new screen on top.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg asks the router to discard the top screen.
type PopScreenMsg struct{}

// ReplaceScreenMsg asks the router to swap the top screen in place, keeping
// the stack depth. Used when the current screen is finished for good, e.g.
// the reader handing off to its quiz.
type ReplaceScreenMsg struct {
	Screen screen.Screen
}

// Router is the screen stack. The bottom screen is never popped.
type Router struct {
	stack []screen.Screen
}

// New creates a router whose bottom screen is root.
func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

// Push stacks s on top and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Pop discards the top screen. Popping the bottom screen is a no-op.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) > 1 {
		r.stack = r.stack[:len(r.stack)-1]
	}
	return nil
}

// Replace swaps the top screen for s, runs its Init, and keeps the depth.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Active returns the screen currently on top, or nil for an empty stack.
func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns how many screens are stacked.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update consumes navigation messages itself and forwards everything else to
// the active screen, storing whatever screen value it returns.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(msg.Screen)
	}

	active := r.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen's content area.
func (r *Router) View(width, height int) string {
	active := r.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
