package practice

import (
	"fmt"

	sess "leksika/internal/practice"
	"leksika/internal/ui/components"
	"leksika/internal/ui/layout"
	"leksika/internal/ui/theme"
)

func (p *PracticeScreen) View(width, height int) string {
	switch {
	case p.pendingResume != nil:
		return p.renderResumePrompt(width, height)
	case p.showingQuit:
		return p.renderQuitConfirm(width, height)
	case p.showingFeedback:
		return p.renderFeedback(width, height)
	}

	switch p.ctrl.Phase() {
	case sess.PhaseLoading:
		return layout.Center(p.spin.View()+" "+theme.Hint.Render("Preparing session..."), width, height)
	case sess.PhaseNoItems:
		return p.renderNoItems(width, height)
	case sess.PhaseComplete:
		return p.renderSummary(width, height)
	}
	return p.renderCard(width, height)
}

func (p *PracticeScreen) renderResumePrompt(width, height int) string {
	snap := p.pendingResume
	msg := theme.Title.Render("Unfinished session found") + "\n\n" +
		theme.Body.Render(fmt.Sprintf(
			"%d of %d cards done, %d correct.",
			snap.CurrentIndex, len(snap.ItemIDs), snap.Correct,
		)) + "\n\n" +
		theme.Hint.Render("Resume? (y/n)")
	return layout.Center(msg, width, height)
}

func (p *PracticeScreen) renderQuitConfirm(width, height int) string {
	msg := theme.Title.Render("End session?") + "\n\n" +
		theme.Hint.Render("Progress so far is kept. (y/n)")
	return layout.Center(msg, width, height)
}

func (p *PracticeScreen) renderFeedback(width, height int) string {
	var verdict string
	if p.lastCorrect {
		verdict = theme.Correct.Render("✓ Correct")
	} else {
		verdict = theme.Incorrect.Render("✗ " + p.lastBack)
	}
	return layout.Center(verdict, width, height)
}

func (p *PracticeScreen) renderNoItems(width, height int) string {
	msg := theme.Title.Render("Nothing to practice")
	if err := p.ctrl.Err(); err != nil {
		msg += "\n\n" + theme.Hint.Render(err.Error())
	}
	msg += "\n\n" + theme.Hint.Render("Press any key to go back")
	return layout.Center(msg, width, height)
}

func (p *PracticeScreen) renderCard(width, height int) string {
	card, ok := p.ctrl.Current()
	if !ok {
		return ""
	}
	d := p.ctrl.Direction()

	face := card.Front(d)
	detail := ""
	if p.ctrl.IsFlipped() {
		face = card.Back(d)
		detail = card.Note(d)
		if detail == "" && card.Etymology != "" {
			detail = card.Etymology
		}
	}

	flash := components.Flashcard{
		Word:    face,
		Detail:  detail,
		Flipped: p.ctrl.IsFlipped(),
		Width:   width,
	}

	progress := components.ProgressBar{
		Label:   fmt.Sprintf("Card %d/%d", p.ctrl.Index()+1, p.ctrl.Len()),
		Percent: float64(p.ctrl.Index()) / float64(p.ctrl.Len()),
		Width:   width / 2,
	}

	content := flash.View() + "\n\n" + progress.View()
	if w := p.ctrl.Warning(); w != "" {
		content += "\n\n" + theme.Incorrect.Render("⚠ "+w)
	}
	return layout.Center(content, width, height)
}

func (p *PracticeScreen) renderSummary(width, height int) string {
	st := p.ctrl.Stats()

	accuracy := 0
	if st.Total > 0 {
		accuracy = st.Correct * 100 / st.Total
	}

	body := theme.Title.Render("Session complete") + "\n\n" +
		theme.Body.Render(fmt.Sprintf("%d/%d correct (%d%%)", st.Correct, st.Total, accuracy))

	if mistakes := p.ctrl.MistakeItems(); len(mistakes) > 0 {
		body += "\n\n" + theme.Subtitle.Render("To revisit:")
		d := p.ctrl.Direction()
		for _, it := range mistakes {
			body += "\n" + theme.Incorrect.Render("  "+it.Front(d)) +
				theme.Hint.Render("  "+it.Back(d))
		}
	}

	return layout.Center(body, width, height)
}
