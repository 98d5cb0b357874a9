package app

import (
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"leksika/internal/picker"
	sess "leksika/internal/practice"
	"leksika/internal/router"
	"leksika/internal/screen"
	"leksika/internal/screens/home"
	"leksika/internal/srs"
	"leksika/internal/store"
	"leksika/internal/ui/layout"
	"leksika/internal/vocab"
)

// Options configures the TUI.
type Options struct {
	Store *store.Store

	// Pool is the loaded vocabulary; PoolErr carries the load failure if
	// loading failed (the UI starts anyway and explains).
	Pool    []vocab.Item
	PoolErr error

	// Session carries practice overrides from the command line: length,
	// direction and an explicit item selection. Zero values mean the
	// session defaults.
	Session sess.Options
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	store  *store.Store
	width  int
	height int
}

func newAppModel(opts Options) AppModel {
	sched := srs.NewScheduler()
	pick := picker.New(time.Now().UnixNano())
	homeScreen := home.New(opts.Store, opts.Pool, opts.PoolErr, sched, pick, opts.Session)
	return AppModel{
		router: router.New(homeScreen),
		store:  opts.Store,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Top()
	title := active.Title()

	due := 0
	direction := m.store.Direction()
	if states, err := m.store.DueStates(direction, time.Now()); err == nil {
		due = len(states)
	}
	header := layout.RenderHeader(title, string(direction), due, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if h, ok := active.(screen.Hinter); ok {
		if hints := h.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
