package srs

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func freshState(d Direction) ReviewState {
	return NewReviewState("kniga", d, testNow)
}

func TestScheduleNext_InvalidGrade(t *testing.T) {
	s := NewScheduler()
	st := freshState(BgToDe)

	for _, grade := range []int{-1, 6, 42} {
		got, err := s.ScheduleNext(st, grade, testNow)
		if !errors.Is(err, ErrInvalidGrade) {
			t.Errorf("grade %d: err = %v, want ErrInvalidGrade", grade, err)
		}
		if got != st {
			t.Errorf("grade %d: state mutated on invalid grade", grade)
		}
	}
}

func TestScheduleNext_FirstTwoPasses(t *testing.T) {
	s := NewScheduler()
	st := freshState(BgToDe)

	st, err := s.ScheduleNext(st, 4, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Interval != 1 {
		t.Errorf("first pass interval = %d, want 1", st.Interval)
	}
	if st.Repetitions != 1 {
		t.Errorf("first pass repetitions = %d, want 1", st.Repetitions)
	}

	st, err = s.ScheduleNext(st, 4, testNow.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Interval != 6 {
		t.Errorf("second pass interval = %d, want 6", st.Interval)
	}
}

func TestScheduleNext_ThirdPassUsesMultiplier(t *testing.T) {
	s := NewScheduler()

	// Grade 4 leaves the ease factor at 2.5, so the third pass is
	// round(6 * 2.5 * mult) for each direction.
	cases := []struct {
		direction Direction
		want      int
	}{
		{BgToDe, 18}, // round(6 * 2.5 * 1.2)
		{DeToBg, 17}, // round(6 * 2.5 * 1.1) = round(16.5)
	}

	for _, tc := range cases {
		st := freshState(tc.direction)
		for i := 0; i < 3; i++ {
			var err error
			st, err = s.ScheduleNext(st, 4, testNow.AddDate(0, 0, i))
			if err != nil {
				t.Fatalf("%s pass %d: %v", tc.direction, i, err)
			}
		}
		if st.Interval != tc.want {
			t.Errorf("%s third pass interval = %d, want %d", tc.direction, st.Interval, tc.want)
		}
		if st.Repetitions != 3 {
			t.Errorf("%s repetitions = %d, want 3", tc.direction, st.Repetitions)
		}
		if st.CorrectStreak != 3 {
			t.Errorf("%s streak = %d, want 3", tc.direction, st.CorrectStreak)
		}
	}
}

func TestScheduleNext_PerfectGradesRaiseEase(t *testing.T) {
	s := NewScheduler()
	st := freshState(BgToDe)

	wantEase := []float64{2.6, 2.7, 2.8}
	for i, want := range wantEase {
		var err error
		st, err = s.ScheduleNext(st, 5, testNow.AddDate(0, 0, i))
		if err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
		if st.EaseFactor != want {
			t.Errorf("pass %d ease = %v, want %v", i, st.EaseFactor, want)
		}
	}
}

func TestScheduleNext_Lapse(t *testing.T) {
	s := NewScheduler()
	st := ReviewState{
		ItemID:         "maslo",
		Direction:      DeToBg,
		EaseFactor:     2.2,
		Interval:       20,
		Repetitions:    4,
		TotalReviews:   10,
		CorrectAnswers: 8,
		CorrectStreak:  4,
	}

	got, err := s.ScheduleNext(st, 1, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Repetitions != 0 {
		t.Errorf("repetitions = %d, want 0", got.Repetitions)
	}
	if got.Interval != 1 {
		t.Errorf("interval = %d, want 1", got.Interval)
	}
	if got.EaseFactor != 2.0 {
		t.Errorf("ease = %v, want 2.0", got.EaseFactor)
	}
	if got.CorrectStreak != 0 {
		t.Errorf("streak = %v, want 0", got.CorrectStreak)
	}
	if got.TotalReviews != 11 {
		t.Errorf("totalReviews = %d, want 11", got.TotalReviews)
	}
	if got.CorrectAnswers != 8 {
		t.Errorf("correctAnswers = %d, want unchanged 8", got.CorrectAnswers)
	}
}

func TestScheduleNext_EaseFloor(t *testing.T) {
	s := NewScheduler()
	st := freshState(BgToDe)

	// Any grade sequence keeps the ease factor at or above the floor.
	grades := []int{0, 0, 3, 0, 1, 2, 3, 0, 0, 0, 5, 0, 0}
	for i, g := range grades {
		var err error
		st, err = s.ScheduleNext(st, g, testNow.AddDate(0, 0, i))
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if st.EaseFactor < MinEaseFactor {
			t.Fatalf("step %d (grade %d): ease %v below floor", i, g, st.EaseFactor)
		}
		if st.Interval < 1 {
			t.Fatalf("step %d: interval %d below 1", i, st.Interval)
		}
		if st.CorrectAnswers > st.TotalReviews {
			t.Fatalf("step %d: correct %d > total %d", i, st.CorrectAnswers, st.TotalReviews)
		}
	}
}

func TestScheduleNext_LapseAfterProgressResets(t *testing.T) {
	s := NewScheduler()
	st := freshState(BgToDe)

	for i := 0; i < 4; i++ {
		var err error
		st, err = s.ScheduleNext(st, 4, testNow.AddDate(0, 0, i))
		if err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
	}
	if st.Repetitions == 0 {
		t.Fatal("expected progress before the lapse")
	}

	st, err := s.ScheduleNext(st, 2, testNow.AddDate(0, 0, 30))
	if err != nil {
		t.Fatalf("lapse: %v", err)
	}
	if st.Repetitions != 0 || st.Interval != 1 {
		t.Errorf("after lapse repetitions = %d, interval = %d, want 0 and 1", st.Repetitions, st.Interval)
	}
}

func TestScheduleNext_IntervalCap(t *testing.T) {
	s := NewScheduler()
	st := ReviewState{
		ItemID:      "planina",
		Direction:   BgToDe,
		EaseFactor:  2.5,
		Interval:    300,
		Repetitions: 8,
	}

	got, err := s.ScheduleNext(st, 5, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Interval != DefaultMaxInterval {
		t.Errorf("interval = %d, want cap %d", got.Interval, DefaultMaxInterval)
	}
}

func TestScheduleNext_NextReviewDerivedFromInterval(t *testing.T) {
	s := NewScheduler()
	st := freshState(DeToBg)

	got, err := s.ScheduleNext(st, 3, testNow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := testNow.AddDate(0, 0, got.Interval)
	if !got.NextReviewAt.Equal(want) {
		t.Errorf("nextReviewAt = %v, want %v", got.NextReviewAt, want)
	}
	if !got.LastReviewAt.Equal(testNow) {
		t.Errorf("lastReviewAt = %v, want %v", got.LastReviewAt, testNow)
	}
}

func TestNextEaseFactor_Rounding(t *testing.T) {
	// Grade 3 delta is -0.14; starting from 2.5 the result must come back
	// with exactly two decimal places.
	got := nextEaseFactor(2.5, 3)
	if got != 2.36 {
		t.Errorf("nextEaseFactor(2.5, 3) = %v, want 2.36", got)
	}
}
