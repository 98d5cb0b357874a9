package practice

import (
	"path/filepath"
	"testing"

	tea "charm.land/bubbletea/v2"

	"leksika/internal/picker"
	sess "leksika/internal/practice"
	"leksika/internal/screen"
	"leksika/internal/srs"
	"leksika/internal/store"
	"leksika/internal/vocab"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func newScreen(t *testing.T, opts sess.Options) *PracticeScreen {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { st.Close() })

	pool := []vocab.Item{
		{ID: "kniga", Word: "книга", Translation: "das Buch", Level: "A1", Frequency: 900},
		{ID: "voda", Word: "вода", Translation: "das Wasser", Level: "A1", Frequency: 950},
		{ID: "hlyab", Word: "хляб", Translation: "das Brot", Level: "A1", Frequency: 800},
	}

	return New(st, pool, nil, srs.NewScheduler(), picker.New(1), opts)
}

// testScreen returns a screen already inside a three-card session,
// started through the same message the Init command emits.
func testScreen(t *testing.T) *PracticeScreen {
	t.Helper()

	p := newScreen(t, sess.Options{Length: 3, Direction: srs.BgToDe})
	scr, _ := p.Update(startSessionMsg{})
	pp := scr.(*PracticeScreen)
	if pp.ctrl.Phase() != sess.PhaseInSession {
		t.Fatalf("phase after start = %v, want InSession", pp.ctrl.Phase())
	}
	return pp
}

func TestPracticeScreen_StartsOnMessage(t *testing.T) {
	p := newScreen(t, sess.Options{Direction: srs.BgToDe})

	if p.ctrl.Phase() != sess.PhaseLoading {
		t.Fatalf("phase before start = %v, want Loading", p.ctrl.Phase())
	}

	// The Init command only emits the message; the controller must not
	// change until Update processes it on the program loop.
	scr, _ := p.Update(startSessionMsg{})
	pp := scr.(*PracticeScreen)
	if pp.ctrl.Phase() != sess.PhaseInSession {
		t.Errorf("phase after start message = %v, want InSession", pp.ctrl.Phase())
	}
}

func TestPracticeScreen_OptionsReachSession(t *testing.T) {
	p := newScreen(t, sess.Options{
		Selection: []string{"hlyab", "kniga"},
		Direction: srs.DeToBg,
	})

	scr, _ := p.Update(startSessionMsg{})
	pp := scr.(*PracticeScreen)

	if pp.ctrl.Len() != 2 {
		t.Fatalf("session length = %d, want 2", pp.ctrl.Len())
	}
	card, ok := pp.ctrl.Current()
	if !ok || card.ID != "hlyab" {
		t.Errorf("first card = %+v, want hlyab first per selection order", card)
	}
	if pp.ctrl.Direction() != srs.DeToBg {
		t.Errorf("direction = %v, want de-bg", pp.ctrl.Direction())
	}
}

func TestPracticeScreen_LengthOptionLimitsCards(t *testing.T) {
	p := newScreen(t, sess.Options{Length: 2, Direction: srs.BgToDe})

	scr, _ := p.Update(startSessionMsg{})
	pp := scr.(*PracticeScreen)
	if pp.ctrl.Len() != 2 {
		t.Errorf("session length = %d, want 2", pp.ctrl.Len())
	}
}

func TestPracticeScreen_Title(t *testing.T) {
	p := testScreen(t)
	if p.Title() != "Practice" {
		t.Errorf("Title = %q, want %q", p.Title(), "Practice")
	}
}

func TestPracticeScreen_FlipAndGrade(t *testing.T) {
	p := testScreen(t)

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress(' '))
	pp := scr.(*PracticeScreen)
	if !pp.ctrl.IsFlipped() {
		t.Fatal("space should flip the card")
	}

	// Right arrow is the binary "knew it" grade.
	scr, cmd := pp.Update(specialKey(tea.KeyRight))
	pp = scr.(*PracticeScreen)
	if !pp.showingFeedback {
		t.Error("expected feedback flash after grading")
	}
	if cmd == nil {
		t.Error("expected a tick command for the feedback flash")
	}
	if pp.ctrl.Index() != 1 {
		t.Errorf("index = %d, want 1", pp.ctrl.Index())
	}
}

func TestPracticeScreen_GradeIgnoredBeforeFlip(t *testing.T) {
	p := testScreen(t)

	var scr screen.Screen = p
	scr, _ = scr.Update(keyPress('4'))
	pp := scr.(*PracticeScreen)
	if pp.ctrl.Index() != 0 || pp.showingFeedback {
		t.Error("grading an unflipped card must do nothing")
	}
}

func TestPracticeScreen_QuitConfirm(t *testing.T) {
	p := testScreen(t)

	var scr screen.Screen = p
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	pp := scr.(*PracticeScreen)
	if !pp.showingQuit {
		t.Fatal("expected quit confirmation dialog")
	}

	scr, _ = pp.Update(keyPress('n'))
	pp = scr.(*PracticeScreen)
	if pp.showingQuit {
		t.Error("n should dismiss the quit dialog")
	}

	scr, _ = pp.Update(specialKey(tea.KeyEscape))
	pp = scr.(*PracticeScreen)
	scr, _ = pp.Update(keyPress('y'))
	pp = scr.(*PracticeScreen)
	if pp.ctrl.Phase() != sess.PhaseComplete {
		t.Errorf("phase after confirmed quit = %v, want Complete", pp.ctrl.Phase())
	}
}

func TestPracticeScreen_ViewNonEmptyPerPhase(t *testing.T) {
	p := testScreen(t)

	if p.View(80, 24) == "" {
		t.Error("in-session view should not be empty")
	}

	p.ctrl.Flip()
	if p.View(80, 24) == "" {
		t.Error("flipped view should not be empty")
	}

	p.ctrl.End()
	if p.View(80, 24) == "" {
		t.Error("summary view should not be empty")
	}
}

func TestPracticeScreen_KeyHintsFollowState(t *testing.T) {
	p := testScreen(t)

	unflipped := p.KeyHints()
	p.ctrl.Flip()
	flipped := p.KeyHints()

	if len(unflipped) == 0 || len(flipped) == 0 {
		t.Fatal("expected key hints in both states")
	}
	if unflipped[0].Key == flipped[0].Key {
		t.Error("hints should change when the card flips")
	}
}
