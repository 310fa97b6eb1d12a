// Package screen defines the contract every view in the app fulfils. The
// router owns a stack of these; the app model forwards messages to whichever
// screen is on top and frames its output with the shared header and footer.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/apper-canvas/fast-microlearn-frost/internal/ui/layout"
)

// Screen is one full-content view (home, library, reader, quiz, stats).
type Screen interface {
	// Init returns a command to run when the screen enters the stack.
	Init() tea.Cmd

	// Update reacts to a message and returns the screen to keep showing.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the content area. The frame around it is not the
	// screen's concern.
	View(width, height int) string

	// Title is shown in the header bar.
	Title() string
}

// KeyHintProvider lets a screen override the default footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
