package srs

import (
	"testing"
	"time"
)

func TestNewReviewState_DueImmediately(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	st := NewReviewState("hljab", BgToDe, now)

	if !st.IsDue(now) {
		t.Error("fresh state should be due immediately")
	}
	if st.EaseFactor != InitialEaseFactor {
		t.Errorf("ease = %v, want %v", st.EaseFactor, InitialEaseFactor)
	}
	if st.Interval != 1 {
		t.Errorf("interval = %d, want 1", st.Interval)
	}
	if st.Repetitions != 0 {
		t.Errorf("repetitions = %d, want 0", st.Repetitions)
	}
	if !st.LastReviewAt.IsZero() {
		t.Error("fresh state should have no last review")
	}
}

func TestIsDue(t *testing.T) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	st := ReviewState{NextReviewAt: now.Add(time.Hour)}
	if st.IsDue(now) {
		t.Error("not due before the review time")
	}

	st.NextReviewAt = now
	if !st.IsDue(now) {
		t.Error("due exactly at the review time")
	}

	st.NextReviewAt = now.Add(-time.Hour)
	if !st.IsDue(now) {
		t.Error("due after the review time")
	}
}

func TestOverdueDays(t *testing.T) {
	due := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	st := ReviewState{NextReviewAt: due}

	if got := st.OverdueDays(due.Add(-time.Hour)); got != 0 {
		t.Errorf("OverdueDays before due = %v, want 0", got)
	}

	got := st.OverdueDays(due.AddDate(0, 0, 3))
	if got < 2.99 || got > 3.01 {
		t.Errorf("OverdueDays = %v, want ~3", got)
	}
}

func TestAccuracy(t *testing.T) {
	st := ReviewState{}
	if st.Accuracy() != 0 {
		t.Errorf("accuracy with no reviews = %v, want 0", st.Accuracy())
	}

	st.TotalReviews = 8
	st.CorrectAnswers = 6
	if st.Accuracy() != 0.75 {
		t.Errorf("accuracy = %v, want 0.75", st.Accuracy())
	}
}

func TestParseDirection(t *testing.T) {
	if d, err := ParseDirection("bg-de"); err != nil || d != BgToDe {
		t.Errorf("ParseDirection(bg-de) = %v, %v", d, err)
	}
	if d, err := ParseDirection("de-bg"); err != nil || d != DeToBg {
		t.Errorf("ParseDirection(de-bg) = %v, %v", d, err)
	}
	if _, err := ParseDirection("en-de"); err == nil {
		t.Error("expected error for unknown direction")
	}
}

func TestDirectionOpposite(t *testing.T) {
	if BgToDe.Opposite() != DeToBg || DeToBg.Opposite() != BgToDe {
		t.Error("Opposite should swap the two directions")
	}
}

func TestDefaultMultipliers_CoverBothDirections(t *testing.T) {
	m := DefaultMultipliers()
	for _, d := range []Direction{BgToDe, DeToBg} {
		if m[d] < 1.0 || m[d] > 1.3 {
			t.Errorf("multiplier for %s = %v, out of expected range", d, m[d])
		}
	}
}
