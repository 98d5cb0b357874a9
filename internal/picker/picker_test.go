package picker

import (
	"testing"
	"time"

	"leksika/internal/srs"
	"leksika/internal/vocab"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func item(id, level string, freq int) vocab.Item {
	return vocab.Item{ID: id, Word: id, Translation: id, Level: level, Frequency: freq}
}

func dueState(id string, overdueDays int, ease float64, streak, total int) srs.ReviewState {
	return srs.ReviewState{
		ItemID:        id,
		Direction:     srs.BgToDe,
		EaseFactor:    ease,
		Interval:      1,
		NextReviewAt:  testNow.AddDate(0, 0, -overdueDays),
		CorrectStreak: streak,
		TotalReviews:  total,
	}
}

func TestScore_FavorsOverdueAndDifficult(t *testing.T) {
	hard := Score(dueState("a", 2, 1.5, 1, 5), testNow)
	easy := Score(dueState("b", 2, 2.8, 1, 5), testNow)
	if hard <= easy {
		t.Errorf("hard item score %v should beat easy item score %v", hard, easy)
	}

	fresh := Score(dueState("c", 0, 2.5, 0, 5), testNow)
	if fresh < 15 {
		t.Errorf("lapsed item score = %v, want lapse bonus applied", fresh)
	}
}

func TestScore_StreakSuppression(t *testing.T) {
	long := Score(dueState("a", 1, 2.5, 30, 40), testNow)
	short := Score(dueState("b", 1, 2.5, 2, 40), testNow)
	if long >= short {
		t.Errorf("long streak score %v should be below short streak score %v", long, short)
	}

	// Suppression is capped, so heavily overdue items never go negative.
	if got := Score(dueState("c", 0, 3.0, 50, 60), testNow); got != 0 {
		t.Errorf("floored score = %v, want 0", got)
	}
}

func TestAssemble_ExplicitSelectionBypassesScoring(t *testing.T) {
	pool := make([]vocab.Item, 0, 500)
	for i := 0; i < 500; i++ {
		pool = append(pool, item(itemID(i), "A1", i))
	}

	p := New(1)
	out := p.Assemble(pool, Request{
		Selection: []string{itemID(7), itemID(432)},
		Length:    10,
		Due:       []srs.ReviewState{dueState(itemID(3), 5, 1.5, 0, 9)},
		Now:       testNow,
	})

	if len(out) != 2 || out[0].ID != itemID(7) || out[1].ID != itemID(432) {
		t.Errorf("selection result = %v", ids(out))
	}
}

func TestAssemble_DueRankedByScore(t *testing.T) {
	pool := []vocab.Item{item("a", "A1", 1), item("b", "A1", 1), item("c", "A1", 1)}

	// Same overdue, same streak — only ease differs, so the harder item
	// (lower ease) must come first.
	due := []srs.ReviewState{
		dueState("a", 2, 2.8, 1, 5),
		dueState("b", 2, 1.5, 1, 5),
	}

	p := New(1)
	out := p.Assemble(pool, Request{
		Length:   2,
		Due:      due,
		Reviewed: map[string]bool{"a": true, "b": true},
		Now:      testNow,
	})

	if len(out) != 2 || out[0].ID != "b" || out[1].ID != "a" {
		t.Errorf("ranked order = %v, want [b a]", ids(out))
	}
}

func TestAssemble_FillsWithNewItemsEasyFirst(t *testing.T) {
	pool := []vocab.Item{
		item("rare-hard", "C1", 10),
		item("common-easy", "A1", 900),
		item("rare-easy", "A1", 100),
		item("due1", "A2", 500),
	}

	p := New(1)
	out := p.Assemble(pool, Request{
		Length:   3,
		Due:      []srs.ReviewState{dueState("due1", 1, 2.0, 1, 3)},
		Reviewed: map[string]bool{"due1": true},
		Now:      testNow,
	})

	want := []string{"due1", "common-easy", "rare-easy"}
	if got := ids(out); !equal(got, want) {
		t.Errorf("assembled = %v, want %v", got, want)
	}
}

func TestAssemble_PadsFromRemainingPool(t *testing.T) {
	pool := []vocab.Item{item("a", "A1", 1), item("b", "A1", 1), item("c", "A1", 1)}

	// Everything is tracked, nothing due: only the random tier can fill.
	p := New(42)
	out := p.Assemble(pool, Request{
		Length:   3,
		Reviewed: map[string]bool{"a": true, "b": true, "c": true},
		Now:      testNow,
	})
	if len(out) != 3 {
		t.Fatalf("padded length = %d, want 3", len(out))
	}
	seen := map[string]bool{}
	for _, it := range out {
		if seen[it.ID] {
			t.Fatalf("duplicate item %s in %v", it.ID, ids(out))
		}
		seen[it.ID] = true
	}
}

func TestAssemble_LengthTruncation(t *testing.T) {
	pool := []vocab.Item{item("a", "A1", 3), item("b", "A1", 2), item("c", "A1", 1)}

	p := New(1)
	out := p.Assemble(pool, Request{Length: 2, Now: testNow})
	if len(out) != 2 {
		t.Errorf("length = %d, want 2", len(out))
	}

	// Zero length means the whole pool.
	all := p.Assemble(pool, Request{Now: testNow})
	if len(all) != 3 {
		t.Errorf("unbounded length = %d, want 3", len(all))
	}
}

func itemID(i int) string {
	return "w" + string(rune('a'+i/26/26%26)) + string(rune('a'+i/26%26)) + string(rune('a'+i%26))
}

func ids(items []vocab.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
