// Package router keeps the screen navigation stack. Screens never hold
// references to each other; they navigate by emitting PushScreenMsg and
// PopScreenMsg, which the app model routes here.
package router

import (
	tea "charm.land/bubbletea/v2"

	"leksika/internal/screen"
)

// PushScreenMsg opens the given screen on top of the current one.
type PushScreenMsg struct {
	Screen screen.Screen
}

// PopScreenMsg closes the current screen and returns to the one below.
type PopScreenMsg struct{}

// Router is the navigation stack. The screen it is created with sits at
// the bottom and cannot be closed; Pop at depth 1 is a no-op.
type Router struct {
	screens []screen.Screen
}

// New creates a Router rooted at home.
func New(home screen.Screen) *Router {
	return &Router{screens: []screen.Screen{home}}
}

// Push opens s and runs its Init command. A nil screen is ignored.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	if s == nil {
		return nil
	}
	r.screens = append(r.screens, s)
	return s.Init()
}

// Pop closes the top screen, never the root.
func (r *Router) Pop() {
	if len(r.screens) > 1 {
		r.screens = r.screens[:len(r.screens)-1]
	}
}

// Top returns the screen currently shown.
func (r *Router) Top() screen.Screen {
	return r.screens[len(r.screens)-1]
}

// Depth returns the stack depth, at least 1.
func (r *Router) Depth() int {
	return len(r.screens)
}

// Update consumes navigation messages itself and forwards everything
// else to the top screen, keeping whatever screen value it returns.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushScreenMsg:
		return r.Push(msg.Screen)
	case PopScreenMsg:
		r.Pop()
		return nil
	}

	updated, cmd := r.Top().Update(msg)
	r.screens[len(r.screens)-1] = updated
	return cmd
}

// View renders the screen currently shown.
func (r *Router) View(width, height int) string {
	return r.Top().View(width, height)
}
