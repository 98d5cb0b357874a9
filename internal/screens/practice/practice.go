package practice

import (
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"leksika/internal/picker"
	sess "leksika/internal/practice"
	"leksika/internal/router"
	"leksika/internal/screen"
	"leksika/internal/srs"
	"leksika/internal/store"
	"leksika/internal/ui/layout"
	"leksika/internal/ui/theme"
	"leksika/internal/vocab"
)

// feedbackDelay is how long the correct/incorrect flash stays up before
// the next card appears.
const feedbackDelay = 600 * time.Millisecond

// PracticeScreen runs one flashcard session.
type PracticeScreen struct {
	ctrl *sess.Controller
	opts sess.Options
	spin spinner.Model

	pendingResume *store.PracticeSnapshot
	showingQuit   bool

	// feedback flash after a grade
	showingFeedback bool
	lastCorrect     bool
	lastBack        string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.Hinter = (*PracticeScreen)(nil)

// New creates a PracticeScreen with its own session controller. opts
// carries the session length, direction and explicit item selection.
func New(st *store.Store, pool []vocab.Item, poolErr error, sched *srs.Scheduler, pick *picker.Picker, opts sess.Options) *PracticeScreen {
	ctrl := sess.New(sess.Deps{
		Store:     st,
		Scheduler: sched,
		Picker:    pick,
		Pool:      pool,
		PoolErr:   poolErr,
	})
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(theme.Primary)
	return &PracticeScreen{ctrl: ctrl, opts: opts, spin: spin}
}

func (p *PracticeScreen) Init() tea.Cmd {
	if snap := p.ctrl.ResumeAvailable(); snap != nil {
		p.pendingResume = snap
		return nil
	}
	return tea.Batch(p.spin.Tick, startCmd())
}

func startCmd() tea.Cmd {
	return func() tea.Msg { return startSessionMsg{} }
}

func (p *PracticeScreen) Title() string {
	return "Practice"
}

func (p *PracticeScreen) KeyHints() []layout.KeyHint {
	switch {
	case p.pendingResume != nil:
		return []layout.KeyHint{
			{Key: "Y", Description: "Resume"},
			{Key: "N", Description: "Start fresh"},
		}
	case p.showingQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case p.ctrl.Phase() == sess.PhaseComplete:
		return []layout.KeyHint{
			{Key: "R", Description: "Again"},
			{Key: "M", Description: "Mistakes only"},
			{Key: "Esc", Description: "Back"},
		}
	case p.ctrl.IsFlipped():
		return []layout.KeyHint{
			{Key: "0-5", Description: "Grade"},
			{Key: "→", Description: "Knew it"},
			{Key: "←", Description: "Missed it"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Space", Description: "Flip"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (p *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case startSessionMsg:
		_ = p.ctrl.Start(p.opts)
		return p, nil
	case feedbackDoneMsg:
		p.showingFeedback = false
		return p, nil
	case spinner.TickMsg:
		if p.ctrl.Phase() != sess.PhaseLoading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return p, cmd
	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if p.pendingResume != nil {
		switch key {
		case "y", "Y", "enter":
			p.ctrl.Resume(p.pendingResume)
			p.pendingResume = nil
		case "n", "N", "esc":
			p.ctrl.DeclineResume()
			p.pendingResume = nil
			return p, startCmd()
		}
		return p, nil
	}

	if p.showingQuit {
		switch key {
		case "y", "Y":
			p.showingQuit = false
			p.ctrl.End()
		case "n", "N", "esc":
			p.showingQuit = false
		}
		return p, nil
	}

	if p.showingFeedback {
		// Any key skips the flash.
		p.showingFeedback = false
		return p, nil
	}

	switch p.ctrl.Phase() {
	case sess.PhaseNoItems:
		return p, popCmd()

	case sess.PhaseComplete:
		switch key {
		case "r", "R":
			_ = p.ctrl.Restart()
		case "m", "M":
			_ = p.ctrl.ReviewMistakesOnly()
		case "esc", "q":
			return p, popCmd()
		}
		return p, nil

	case sess.PhaseInSession:
		if key == "esc" {
			p.showingQuit = true
			return p, nil
		}
		if !p.ctrl.IsFlipped() {
			if key == " " || key == "space" || key == "enter" {
				p.ctrl.Flip()
			}
			return p, nil
		}
		return p.grade(key)
	}

	return p, nil
}

// grade maps a key to an SM-2 grade and applies it. The arrow keys are
// the binary shorthand: right = pass (4), left = fail (1).
func (p *PracticeScreen) grade(key string) (screen.Screen, tea.Cmd) {
	var g int
	switch key {
	case "0", "1", "2", "3", "4", "5":
		g = int(key[0] - '0')
	case "right":
		g = 4
	case "left":
		g = 1
	default:
		return p, nil
	}

	card, ok := p.ctrl.Current()
	if !ok {
		return p, nil
	}
	back := card.Back(p.ctrl.Direction())

	if err := p.ctrl.Grade(g); err != nil {
		return p, nil
	}

	p.showingFeedback = true
	p.lastCorrect = g >= srs.PassThreshold
	p.lastBack = back
	return p, tea.Tick(feedbackDelay, func(time.Time) tea.Msg {
		return feedbackDoneMsg{}
	})
}

func popCmd() tea.Cmd {
	return func() tea.Msg { return router.PopScreenMsg{} }
}
