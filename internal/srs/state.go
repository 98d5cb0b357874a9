package srs

import "time"

// SchemaVersion tags the unified review record layout. Records migrated
// from the legacy single-direction schema are rewritten at this version.
const SchemaVersion = 2

// ReviewState holds the spaced repetition state for one (item, direction)
// pair. NextReviewAt is always derived from a review plus the interval;
// callers never set it directly.
type ReviewState struct {
	ItemID         string    `json:"itemId"`
	Direction      Direction `json:"direction"`
	EaseFactor     float64   `json:"easeFactor"`
	Interval       int       `json:"interval"` // days
	Repetitions    int       `json:"repetitions"`
	NextReviewAt   time.Time `json:"nextReviewAt"`
	LastReviewAt   time.Time `json:"lastReviewAt,omitzero"` // zero = never reviewed
	TotalReviews   int       `json:"totalReviews"`
	CorrectAnswers int       `json:"correctAnswers"`
	CorrectStreak  int       `json:"correctStreak"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	SchemaVersion  int       `json:"schemaVersion"`
}

// NewReviewState returns a freshly initialized state for an item that has
// never been graded: due immediately, default ease.
func NewReviewState(itemID string, direction Direction, now time.Time) ReviewState {
	return ReviewState{
		ItemID:        itemID,
		Direction:     direction,
		EaseFactor:    InitialEaseFactor,
		Interval:      1,
		NextReviewAt:  now,
		CreatedAt:     now,
		UpdatedAt:     now,
		SchemaVersion: SchemaVersion,
	}
}

// IsDue reports whether the item is at or past its next review time.
func (rs *ReviewState) IsDue(now time.Time) bool {
	return !now.Before(rs.NextReviewAt)
}

// OverdueDays returns how many days past due the item is. Returns 0 if
// not yet due.
func (rs *ReviewState) OverdueDays(now time.Time) float64 {
	if now.Before(rs.NextReviewAt) {
		return 0
	}
	return now.Sub(rs.NextReviewAt).Hours() / 24.0
}

// Accuracy returns the lifetime correct-answer ratio, or 0 before the
// first review.
func (rs *ReviewState) Accuracy() float64 {
	if rs.TotalReviews == 0 {
		return 0
	}
	return float64(rs.CorrectAnswers) / float64(rs.TotalReviews)
}
