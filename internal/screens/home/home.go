package home

import (
	"strconv"
	"time"

	tea "charm.land/bubbletea/v2"

	"leksika/internal/picker"
	sess "leksika/internal/practice"
	"leksika/internal/router"
	"leksika/internal/screen"
	"leksika/internal/screens/history"
	practicescreen "leksika/internal/screens/practice"
	"leksika/internal/screens/stats"
	"leksika/internal/srs"
	"leksika/internal/store"
	"leksika/internal/ui/components"
	"leksika/internal/ui/layout"
	"leksika/internal/ui/theme"
	"leksika/internal/vocab"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	store     *store.Store
	pool      []vocab.Item
	poolErr   error
	scheduler *srs.Scheduler
	picker    *picker.Picker

	// sessOpts carries command-line practice overrides into every
	// session started from this menu.
	sessOpts sess.Options

	menu      components.Menu
	direction srs.Direction
	dueCount  int
	wordCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen wired to the shared services.
func New(st *store.Store, pool []vocab.Item, poolErr error, sched *srs.Scheduler, pick *picker.Picker, sessOpts sess.Options) *HomeScreen {
	h := &HomeScreen{
		store:     st,
		pool:      pool,
		poolErr:   poolErr,
		scheduler: sched,
		picker:    pick,
		sessOpts:  sessOpts,
		wordCount: len(pool),
	}
	if sessOpts.Direction.Valid() {
		_ = st.SetDirection(sessOpts.Direction)
	}
	h.refresh()

	items := []components.MenuItem{
		{Label: "PRACTICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				opts := h.sessOpts
				opts.Direction = h.direction
				return router.PushScreenMsg{
					Screen: practicescreen.New(st, pool, poolErr, sched, pick, opts),
				}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(st, h.direction, len(pool))}
			}
		}},
		{Label: "HISTORY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(st)}
			}
		}},
		{Label: "SWITCH DIRECTION", Action: func() tea.Cmd {
			_ = st.SetDirection(h.direction.Opposite())
			h.refresh()
			return nil
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

// refresh reloads the direction preference and due count. Called on
// entry and whenever the direction flips.
func (h *HomeScreen) refresh() {
	h.direction = h.store.Direction()
	due, err := h.store.DueStates(h.direction, time.Now())
	if err == nil {
		h.dueCount = len(due)
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
	title := theme.Title.Render("ЛЕКСИКА · LEKSIKA")
	sub := theme.Subtitle.Render(h.direction.Label())

	counts := theme.Hint.Render(
		pluralize(h.wordCount, "word") + " · " + pluralize(h.dueCount, "review") + " due",
	)

	content := title + "\n" + sub + "\n\n" + counts + "\n\n" + h.menu.View()
	return layout.Center(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func pluralize(n int, noun string) string {
	s := noun
	if n != 1 {
		s += "s"
	}
	return strconv.Itoa(n) + " " + s
}
