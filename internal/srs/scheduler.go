package srs

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Grade bounds and tuning constants for the SM-2 variant.
const (
	MinGrade = 0
	MaxGrade = 5

	// PassThreshold is the lowest grade counted as a successful recall.
	PassThreshold = 3

	MinEaseFactor     = 1.3
	InitialEaseFactor = 2.5

	// LapsePenalty is subtracted from the ease factor on a failed recall.
	LapsePenalty = 0.2

	// DefaultMaxInterval caps interval growth at one year.
	DefaultMaxInterval = 365
)

// ErrInvalidGrade is returned for grades outside [MinGrade, MaxGrade].
var ErrInvalidGrade = errors.New("grade out of range")

// Scheduler computes the next review state from a current state and a
// recall grade. It is pure: the only inputs are the state, the grade and
// the supplied clock value.
type Scheduler struct {
	// Multipliers scales interval growth per direction.
	Multipliers map[Direction]float64

	// MaxInterval caps the computed interval, in days.
	MaxInterval int
}

// NewScheduler returns a Scheduler with the canonical multiplier table.
func NewScheduler() *Scheduler {
	return &Scheduler{
		Multipliers: DefaultMultipliers(),
		MaxInterval: DefaultMaxInterval,
	}
}

// ScheduleNext applies grade to state and returns the updated state.
// Grades >= PassThreshold advance the repetition ladder; lower grades are
// lapses that reset interval and repetitions. The input state is not
// modified.
func (s *Scheduler) ScheduleNext(state ReviewState, grade int, now time.Time) (ReviewState, error) {
	if grade < MinGrade || grade > MaxGrade {
		return state, fmt.Errorf("%w: %d not in [%d,%d]", ErrInvalidGrade, grade, MinGrade, MaxGrade)
	}

	next := state
	next.TotalReviews++

	if grade >= PassThreshold {
		next.EaseFactor = nextEaseFactor(state.EaseFactor, grade)
		next.Interval = s.nextInterval(state, next.EaseFactor)
		next.Repetitions = state.Repetitions + 1
		next.CorrectAnswers = state.CorrectAnswers + 1
		next.CorrectStreak = state.CorrectStreak + 1
	} else {
		next.EaseFactor = round2(math.Max(MinEaseFactor, state.EaseFactor-LapsePenalty))
		next.Interval = 1
		next.Repetitions = 0
		next.CorrectStreak = 0
	}

	next.LastReviewAt = now
	next.NextReviewAt = now.AddDate(0, 0, next.Interval)
	next.UpdatedAt = now
	next.SchemaVersion = SchemaVersion
	return next, nil
}

// nextInterval implements the SM-2 ladder: 1 day, then 6 days, then the
// previous interval scaled by the new ease factor and the direction
// multiplier.
func (s *Scheduler) nextInterval(state ReviewState, easeFactor float64) int {
	var days int
	switch state.Repetitions {
	case 0:
		days = 1
	case 1:
		days = 6
	default:
		mult := s.Multipliers[state.Direction]
		if mult == 0 {
			mult = 1
		}
		days = int(math.Round(float64(state.Interval) * easeFactor * mult))
	}

	if days < 1 {
		days = 1
	}
	max := s.MaxInterval
	if max <= 0 {
		max = DefaultMaxInterval
	}
	if days > max {
		days = max
	}
	return days
}

// nextEaseFactor applies the SM-2 ease adjustment for a passing grade,
// floored at MinEaseFactor and rounded to two decimal places.
func nextEaseFactor(ef float64, grade int) float64 {
	q := float64(grade)
	ef += 0.1 - (5-q)*(0.08+(5-q)*0.02)
	if ef < MinEaseFactor {
		ef = MinEaseFactor
	}
	return round2(ef)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
