package stats

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"leksika/internal/router"
	"leksika/internal/screen"
	"leksika/internal/srs"
	"leksika/internal/store"
	"leksika/internal/ui/components"
	"leksika/internal/ui/layout"
	"leksika/internal/ui/theme"
)

// StatsScreen shows aggregate review statistics for one direction.
type StatsScreen struct {
	store     *store.Store
	direction srs.Direction
	poolSize  int

	stats store.Stats
	err   error
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates a StatsScreen.
func New(st *store.Store, d srs.Direction, poolSize int) *StatsScreen {
	return &StatsScreen{store: st, direction: d, poolSize: poolSize}
}

func (s *StatsScreen) Init() tea.Cmd {
	stats, err := s.store.ReviewStats(s.direction, time.Now())
	s.stats, s.err = stats, err
	return nil
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.err != nil {
		return layout.Center(theme.Incorrect.Render("Could not load statistics: "+s.err.Error()), width, height)
	}

	coverage := 0.0
	if s.poolSize > 0 {
		coverage = float64(s.stats.Total) / float64(s.poolSize)
	}

	bar := components.ProgressBar{
		Label:       "Coverage",
		Percent:     coverage,
		ShowPercent: true,
		Width:       width / 2,
	}

	body := theme.Title.Render("Statistics") + "\n" +
		theme.Subtitle.Render(s.direction.Label()) + "\n\n" +
		theme.Body.Render(fmt.Sprintf("Tracked words     %d of %d", s.stats.Total, s.poolSize)) + "\n" +
		theme.Body.Render(fmt.Sprintf("Due for review    %d", s.stats.Due)) + "\n" +
		theme.Body.Render(fmt.Sprintf("Average ease      %.2f", s.stats.AvgEaseFactor)) + "\n" +
		theme.Body.Render(fmt.Sprintf("Average accuracy  %.0f%%", s.stats.AvgAccuracy*100)) + "\n\n" +
		bar.View()

	return layout.Center(body, width, height)
}

func (s *StatsScreen) Title() string {
	return "Statistics"
}
