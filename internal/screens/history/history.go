package history

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"leksika/internal/router"
	"leksika/internal/screen"
	"leksika/internal/store"
	"leksika/internal/ui/layout"
	"leksika/internal/ui/theme"
)

const pageSize = 10

// HistoryScreen lists completed practice sessions, newest first.
type HistoryScreen struct {
	store   *store.Store
	records []store.SessionRecord
	offset  int
	err     error
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.Hinter = (*HistoryScreen)(nil)

// New creates a HistoryScreen.
func New(st *store.Store) *HistoryScreen {
	return &HistoryScreen{store: st}
}

func (h *HistoryScreen) Init() tea.Cmd {
	records, err := h.store.History()
	// Newest first.
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	h.records, h.err = records, err
	return nil
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if h.offset > 0 {
			h.offset--
		}
	case "down", "j":
		if h.offset+pageSize < len(h.records) {
			h.offset++
		}
	case "esc", "q", "enter":
		return h, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return h, nil
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) View(width, height int) string {
	if h.err != nil {
		return layout.Center(theme.Incorrect.Render("Could not load history: "+h.err.Error()), width, height)
	}
	if len(h.records) == 0 {
		return layout.Center(theme.Hint.Render("No sessions yet. Go practice!"), width, height)
	}

	body := theme.Title.Render("Session history") + "\n\n"

	end := h.offset + pageSize
	if end > len(h.records) {
		end = len(h.records)
	}
	for _, rec := range h.records[h.offset:end] {
		line := fmt.Sprintf(
			"%s  %s  %2d/%2d  %3.0f%%  %s",
			rec.CompletedAt.Format("2006-01-02 15:04"),
			rec.Direction,
			rec.Correct, rec.Total,
			rec.Accuracy*100,
			formatDuration(rec.DurationSecs),
		)
		body += theme.Body.Render(line) + "\n"
	}
	if len(h.records) > pageSize {
		body += "\n" + theme.Hint.Render(fmt.Sprintf("%d-%d of %d", h.offset+1, end, len(h.records)))
	}

	return layout.Center(body, width, height)
}

func (h *HistoryScreen) Title() string {
	return "History"
}

func formatDuration(secs int) string {
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm%02ds", secs/60, secs%60)
}
