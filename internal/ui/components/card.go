package components

import (
	"charm.land/lipgloss/v2"

	"leksika/internal/ui/theme"
)

// Flashcard renders one side of a vocabulary card.
type Flashcard struct {
	Word    string
	Detail  string // note, etymology or level line under the word
	Flipped bool
	Width   int
}

// View renders the card box, centered within Width.
func (c Flashcard) View() string {
	word := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.Text).
		Align(lipgloss.Center).
		Render(c.Word)

	content := word
	if c.Detail != "" {
		content += "\n\n" + theme.Hint.Align(lipgloss.Center).Render(c.Detail)
	}

	cardWidth := c.Width * 2 / 3
	if cardWidth < 30 {
		cardWidth = 30
	}

	box := theme.Card
	if c.Flipped {
		box = theme.CardFlipped
	}
	return box.Width(cardWidth).Align(lipgloss.Center).Render(content)
}
