package store

import (
	"encoding/json"
	"time"

	"leksika/internal/srs"
)

// legacyRecord is the old single-direction review schema. It is only ever
// read; migration rewrites it under the unified key.
type legacyRecord struct {
	EasinessFactor float64 `json:"easinessFactor"`
	Interval       int     `json:"interval"`
	Repetitions    int     `json:"repetitions"`
	NextReviewDate string  `json:"nextReviewDate"`
	LastReviewDate string  `json:"lastReviewDate"`
	Streak         int     `json:"streak"`
	TotalReviews   int     `json:"totalReviews"`
	CorrectAnswers int     `json:"correctAnswers"`
}

// migrateLegacy looks up the legacy key for itemID and, when present,
// synthesizes a unified record, persists it and returns it. The direction
// on the migrated record is the caller-supplied one; the legacy schema
// never tracked direction. Returns ok=false when no usable legacy record
// exists.
func (s *Store) migrateLegacy(itemID string, d srs.Direction, now time.Time) (srs.ReviewState, bool, error) {
	raw, found, err := s.get(legacyKey(itemID))
	if err != nil {
		return srs.ReviewState{}, false, err
	}
	if !found {
		return srs.ReviewState{}, false, nil
	}

	var rec legacyRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		// Corrupt legacy record: treat as absent.
		return srs.ReviewState{}, false, nil
	}

	st := srs.ReviewState{
		ItemID:         itemID,
		Direction:      d,
		EaseFactor:     rec.EasinessFactor,
		Interval:       rec.Interval,
		Repetitions:    rec.Repetitions,
		CorrectStreak:  rec.Streak,
		TotalReviews:   rec.TotalReviews,
		CorrectAnswers: rec.CorrectAnswers,
		NextReviewAt:   parseLegacyTime(rec.NextReviewDate, now),
		LastReviewAt:   parseLegacyTime(rec.LastReviewDate, time.Time{}),
		CreatedAt:      now,
		UpdatedAt:      now,
		SchemaVersion:  srs.SchemaVersion,
	}

	// Clamp values the old engine allowed to drift out of range.
	if st.EaseFactor < srs.MinEaseFactor {
		st.EaseFactor = srs.MinEaseFactor
	}
	if st.Interval < 1 {
		st.Interval = 1
	}
	if st.CorrectAnswers > st.TotalReviews {
		st.TotalReviews = st.CorrectAnswers
	}

	if err := s.SaveState(st); err != nil {
		return srs.ReviewState{}, false, err
	}
	return st, true, nil
}

// parseLegacyTime accepts the two timestamp formats the old site wrote:
// bare dates and RFC 3339.
func parseLegacyTime(s string, fallback time.Time) time.Time {
	if s == "" {
		return fallback
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return fallback
}
