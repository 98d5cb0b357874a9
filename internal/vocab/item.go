package vocab

import "leksika/internal/srs"

// Notes holds optional study notes per direction. The general note applies
// to both directions and is used as a fallback.
type Notes struct {
	BgToDe  string `json:"bgToDe,omitempty"`
	DeToBg  string `json:"deToBg,omitempty"`
	General string `json:"general,omitempty"`
}

// Item is one vocabulary entry. Word is the Bulgarian side, Translation
// the German side. The core treats everything except the front/back
// selection as opaque display payload.
type Item struct {
	ID          string `json:"id"`
	Word        string `json:"word"`
	Translation string `json:"translation"`
	Level       string `json:"level"`    // CEFR: A1..C2
	Category    string `json:"category"` // e.g. "food", "travel"
	Frequency   int    `json:"frequency"`
	Notes       Notes  `json:"notes,omitzero"`
	Etymology   string `json:"etymology,omitempty"`
}

// Front returns the prompt side of the card for the given direction.
func (it Item) Front(d srs.Direction) string {
	if d == srs.DeToBg {
		return it.Translation
	}
	return it.Word
}

// Back returns the answer side of the card for the given direction.
func (it Item) Back(d srs.Direction) string {
	if d == srs.DeToBg {
		return it.Word
	}
	return it.Translation
}

// Note resolves the study note for a direction, falling back to the
// general note. This replaces the old bilingual-string splitting.
func (it Item) Note(d srs.Direction) string {
	switch d {
	case srs.BgToDe:
		if it.Notes.BgToDe != "" {
			return it.Notes.BgToDe
		}
	case srs.DeToBg:
		if it.Notes.DeToBg != "" {
			return it.Notes.DeToBg
		}
	}
	return it.Notes.General
}

// DirectionOrDefault returns d if valid, otherwise the bg-de default.
func DirectionOrDefault(d srs.Direction) srs.Direction {
	if !d.Valid() {
		return srs.BgToDe
	}
	return d
}

// levelRank orders CEFR levels for new-item introduction (easy first).
var levelRank = map[string]int{
	"A1": 0, "A2": 1, "B1": 2, "B2": 3, "C1": 4, "C2": 5,
}

// LevelRank returns the sort rank of a CEFR level. Unknown levels sort
// after all known ones.
func LevelRank(level string) int {
	if r, ok := levelRank[level]; ok {
		return r
	}
	return len(levelRank)
}
