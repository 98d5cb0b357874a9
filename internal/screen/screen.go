// Package screen defines the contract between the navigation stack and
// the individual full-screen views.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"leksika/internal/ui/layout"
)

// Screen is one full-screen view. The chrome (header, footer, frame)
// is drawn by the app model; a screen only renders the content area it
// is given.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string

	// Title labels the screen in the header bar.
	Title() string
}

// Hinter is implemented by screens whose footer key hints depend on
// their internal state. Screens without it get the default menu hints.
type Hinter interface {
	KeyHints() []layout.KeyHint
}
